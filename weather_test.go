package ridership

import (
	"math"
	"testing"
)

func TestWeatherSynthesizer_TemperatureSeasonalBand(t *testing.T) {
	ws := NewWeatherSynthesizer(1, 2)
	for month := 1; month <= 12; month++ {
		seasonal := 15 + 10*math.Sin(float64(month-3)*(2*math.Pi/12))
		for i := 0; i < 200; i++ {
			got := ws.Temperature(month)
			// Noise is N(0,3); anything past 8 sigma is a bug, not luck.
			if math.Abs(got-seasonal) > 24 {
				t.Fatalf("month %d: temperature %.1f too far from seasonal %.1f", month, got, seasonal)
			}
			if got != round1(got) {
				t.Fatalf("temperature %v not rounded to 1 decimal", got)
			}
		}
	}
}

func TestWeatherSynthesizer_PrecipitationNonNegative(t *testing.T) {
	ws := NewWeatherSynthesizer(3, 4)
	for month := 1; month <= 12; month++ {
		for i := 0; i < 200; i++ {
			got := ws.Precipitation(month)
			if got < 0 {
				t.Fatalf("month %d: negative precipitation %v", month, got)
			}
			if got != round1(got) {
				t.Fatalf("precipitation %v not rounded to 1 decimal", got)
			}
		}
	}
}

func TestWeatherSynthesizer_RainySeasonWetter(t *testing.T) {
	ws := NewWeatherSynthesizer(5, 6)
	const n = 2000
	sum := func(month int) float64 {
		var s float64
		for i := 0; i < n; i++ {
			s += ws.Precipitation(month)
		}
		return s / n
	}
	wet := sum(12)
	dry := sum(7)
	if wet <= dry {
		t.Errorf("December mean precipitation (%.2f) should exceed July's (%.2f)", wet, dry)
	}
}

func TestWeatherSynthesizer_SameSeedSameStream(t *testing.T) {
	a := NewWeatherSynthesizer(7, 8)
	b := NewWeatherSynthesizer(7, 8)
	for i := 0; i < 50; i++ {
		if a.Temperature(6) != b.Temperature(6) {
			t.Fatal("identically seeded synthesizers must agree")
		}
	}
}

func TestFill_RespectsSuppliedColumns(t *testing.T) {
	ws := NewWeatherSynthesizer(9, 10)
	tab := &FeatureTable{Rows: []FeatureRow{
		{Month: 1, TemperatureMeanC: 12.3, PrecipitationMM: 4.0},
	}}
	ws.fill(tab, WeatherSupplied, WeatherSynthesized)
	if tab.Rows[0].TemperatureMeanC != 12.3 {
		t.Errorf("supplied temperature overridden: %v", tab.Rows[0].TemperatureMeanC)
	}
	ws.fill(tab, WeatherSynthesized, WeatherSupplied)
	if tab.Rows[0].PrecipitationMM != 4.0 {
		t.Errorf("supplied precipitation overridden: %v", tab.Rows[0].PrecipitationMM)
	}
}
