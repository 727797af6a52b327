package ridership

import (
	"errors"
	"time"
)

// ErrMissingDateColumn is returned when the raw batch has no Date column at
// all. Individual unparsable dates are not an error; those rows are dropped.
var ErrMissingDateColumn = errors.New("input must contain a 'Date' column")

const dateLayout = "2006-01-02"

// dayOfWeek maps time.Weekday (Sunday=0) onto the Monday=0..Sunday=6
// ordinal the models were trained with.
func dayOfWeek(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// buildCalendarRows parses the batch dates and derives the temporal
// features. Rows whose date does not parse are excluded from the result;
// the caller reads the drop count from the returned table.
func buildCalendarRows(batch RawBatch) (*FeatureTable, error) {
	if !batch.HasDate {
		return nil, ErrMissingDateColumn
	}
	t := &FeatureTable{Rows: make([]FeatureRow, 0, len(batch.Rows))}
	for _, raw := range batch.Rows {
		d, err := time.ParseInLocation(dateLayout, raw.Date, time.UTC)
		if err != nil {
			t.Dropped++
			continue
		}
		row := FeatureRow{
			Date:      d,
			Year:      d.Year(),
			Month:     int(d.Month()),
			Day:       d.Day(),
			DayOfWeek: dayOfWeek(d),
			DayOfYear: d.YearDay(),
		}
		if row.DayOfWeek == 5 || row.DayOfWeek == 6 {
			row.IsWeekend = 1
		}
		_, row.WeekOfYear = d.ISOWeek()
		if batch.HasCount {
			row.ActualCount = raw.Count
			row.HasActual = true
		}
		if batch.HasTemperature {
			row.TemperatureMeanC = raw.Temperature
		}
		if batch.HasPrecipitation {
			row.PrecipitationMM = raw.Precipitation
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}
