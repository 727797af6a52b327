package ridership

import (
	"github.com/theoremus-urban-solutions/ridership-forecast/events"
)

// Preprocess runs the feature pipeline over a raw batch: calendar feature
// extraction, event/holiday merge, weather fill, day-of-week encoding. The
// stage order is fixed: event merge keys on the parsed date, weather
// synthesis needs the derived month, and encoding needs the day-of-week
// ordinal.
//
// The returned table has the full canonical column set for every valid
// batch, including a batch left empty after date filtering. The only fatal
// input condition is a missing Date column.
func Preprocess(batch RawBatch, ix *events.Index) (*FeatureTable, error) {
	return preprocess(batch, ix, newDefaultSynthesizer())
}

// PreprocessWithSynthesizer is Preprocess with a caller-owned weather
// synthesizer, which pins the noise stream in tests.
func PreprocessWithSynthesizer(batch RawBatch, ix *events.Index, ws *WeatherSynthesizer) (*FeatureTable, error) {
	return preprocess(batch, ix, ws)
}

func preprocess(batch RawBatch, ix *events.Index, ws *WeatherSynthesizer) (*FeatureTable, error) {
	t, err := buildCalendarRows(batch)
	if err != nil {
		return nil, err
	}
	if ix == nil {
		ix = events.NewIndex()
	}
	mergeEvents(t, ix)

	// Supplied-vs-synthesized is decided here, once per batch and per
	// column, from header presence in the upload.
	temperature, precipitation := WeatherSynthesized, WeatherSynthesized
	if batch.HasTemperature {
		temperature = WeatherSupplied
	}
	if batch.HasPrecipitation {
		precipitation = WeatherSupplied
	}
	ws.fill(t, temperature, precipitation)

	encodeDayOfWeek(t)
	return t, nil
}
