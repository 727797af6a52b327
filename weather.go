package ridership

import (
	"math"
	"math/rand/v2"
)

// WeatherSource says where a weather column's values come from. The choice
// is made once per batch at the orchestrator boundary, from column presence
// in the uploaded CSV, and the synthesizer never overrides supplied values.
type WeatherSource int

const (
	WeatherSynthesized WeatherSource = iota
	WeatherSupplied
)

// WeatherSynthesizer fills absent weather columns from a seasonal model
// plus noise. It stands in for a real weather-data source; predictions for
// rows without genuine weather values are approximate by design.
type WeatherSynthesizer struct {
	rng *rand.Rand
}

// NewWeatherSynthesizer returns a synthesizer with its own PRNG stream.
func NewWeatherSynthesizer(seed1, seed2 uint64) *WeatherSynthesizer {
	return &WeatherSynthesizer{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

func newDefaultSynthesizer() *WeatherSynthesizer {
	return &WeatherSynthesizer{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// rainy months carry the higher precipitation regime.
var rainyMonths = map[int]bool{10: true, 11: true, 12: true, 1: true, 2: true, 3: true}

// Temperature returns a simulated mean temperature for the month:
// 15 + 10*sin((month-3)*2*pi/12) plus N(0,3) noise, one decimal.
func (s *WeatherSynthesizer) Temperature(month int) float64 {
	t := 15 + 10*math.Sin(float64(month-3)*(2*math.Pi/12)) + s.rng.NormFloat64()*3
	return round1(t)
}

// Precipitation returns simulated daily precipitation for the month:
// N(3,5) in rainy months, N(0.5,1.5) otherwise, clamped to >= 0, one
// decimal.
func (s *WeatherSynthesizer) Precipitation(month int) float64 {
	var p float64
	if rainyMonths[month] {
		p = 3 + s.rng.NormFloat64()*5
	} else {
		p = 0.5 + s.rng.NormFloat64()*1.5
	}
	return round1(math.Max(0, p))
}

// fill populates the weather fields of rows whose source is synthesized.
func (s *WeatherSynthesizer) fill(t *FeatureTable, temperature, precipitation WeatherSource) {
	for i := range t.Rows {
		row := &t.Rows[i]
		if temperature == WeatherSynthesized {
			row.TemperatureMeanC = s.Temperature(row.Month)
		}
		if precipitation == WeatherSynthesized {
			row.PrecipitationMM = s.Precipitation(row.Month)
		}
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
