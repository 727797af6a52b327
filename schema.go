package ridership

import (
	"fmt"
	"time"
)

// Column names of the model feature set. The Date and actual-count fields
// are carried on FeatureRow for reporting but are never model features.
const (
	ColYear             = "year"
	ColMonth            = "month"
	ColDay              = "day"
	ColDayOfWeek        = "day_of_week"
	ColIsWeekend        = "is_weekend"
	ColDayOfYear        = "day_of_year"
	ColWeekOfYear       = "week_of_year"
	ColIsHoliday        = "is_holiday"
	ColIsSchoolVacation = "is_school_vacation"
	ColIsSpecialEvent   = "is_special_event"
	ColTemperature      = "temperature_mean_c"
	ColPrecipitation    = "precipitation_mm"
)

// weekdayNames is indexed by the day-of-week ordinal (Monday=0 .. Sunday=6).
var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayColumn returns the one-hot column name for a day-of-week ordinal.
func WeekdayColumn(ord int) string {
	return "day_" + weekdayNames[ord]
}

// FeatureColumns returns the canonical ordered feature column list. Every
// preprocessed batch exposes exactly these columns, in this order,
// independent of which dates, weekdays or event categories the batch spans.
func FeatureColumns() []string {
	cols := []string{
		ColYear, ColMonth, ColDay, ColDayOfWeek, ColIsWeekend,
		ColDayOfYear, ColWeekOfYear,
		ColIsHoliday, ColIsSchoolVacation, ColIsSpecialEvent,
		ColTemperature, ColPrecipitation,
	}
	for i := range weekdayNames {
		cols = append(cols, WeekdayColumn(i))
	}
	return cols
}

// FeatureRow is one calendar date with all derived model features. DayOneHot
// is a fixed 7-element array indexed by DayOfWeek, so the encoded output is
// structurally rank-7 for any batch composition.
type FeatureRow struct {
	Date time.Time

	Year       int
	Month      int
	Day        int
	DayOfWeek  int // Monday=0 .. Sunday=6
	IsWeekend  int
	DayOfYear  int
	WeekOfYear int

	IsHoliday        int
	IsSchoolVacation int
	IsSpecialEvent   int

	TemperatureMeanC float64
	PrecipitationMM  float64

	DayOneHot [7]int

	// ActualCount holds the historical count when the input carried one.
	// It is renamed away from the raw column so it can never collide with
	// the model's own prediction output, and HasActual distinguishes
	// "unknown" from zero.
	ActualCount float64
	HasActual   bool
}

// Value resolves a feature column by name.
func (r *FeatureRow) Value(col string) (float64, bool) {
	switch col {
	case ColYear:
		return float64(r.Year), true
	case ColMonth:
		return float64(r.Month), true
	case ColDay:
		return float64(r.Day), true
	case ColDayOfWeek:
		return float64(r.DayOfWeek), true
	case ColIsWeekend:
		return float64(r.IsWeekend), true
	case ColDayOfYear:
		return float64(r.DayOfYear), true
	case ColWeekOfYear:
		return float64(r.WeekOfYear), true
	case ColIsHoliday:
		return float64(r.IsHoliday), true
	case ColIsSchoolVacation:
		return float64(r.IsSchoolVacation), true
	case ColIsSpecialEvent:
		return float64(r.IsSpecialEvent), true
	case ColTemperature:
		return r.TemperatureMeanC, true
	case ColPrecipitation:
		return r.PrecipitationMM, true
	}
	for i := range weekdayNames {
		if col == WeekdayColumn(i) {
			return float64(r.DayOneHot[i]), true
		}
	}
	return 0, false
}

// FeatureTable is the preprocessed output of one batch. Rows keep input
// order after unparsable-date rows are dropped; Dropped counts those rows.
type FeatureTable struct {
	Rows    []FeatureRow
	Dropped int
}

// Columns returns the table's column set, which is the canonical list for
// every table regardless of content.
func (t *FeatureTable) Columns() []string { return FeatureColumns() }

// ValidateExpected checks that every column a model expects is addressable
// in this table's schema. A mismatch is an integration failure between the
// pipeline and the trained model, caught here at the boundary rather than
// surfacing as a silently skewed prediction.
func (t *FeatureTable) ValidateExpected(expected []string) error {
	if len(expected) == 0 {
		return fmt.Errorf("expected feature list is empty")
	}
	var probe FeatureRow
	for _, col := range expected {
		if _, ok := probe.Value(col); !ok {
			return fmt.Errorf("model expects feature %q which the pipeline does not emit", col)
		}
	}
	return nil
}

// Matrix projects the table onto the expected column order as model input.
// The result always has one vector per row, each of len(expected).
func (t *FeatureTable) Matrix(expected []string) ([][]float32, error) {
	if err := t.ValidateExpected(expected); err != nil {
		return nil, err
	}
	m := make([][]float32, len(t.Rows))
	for i := range t.Rows {
		vec := make([]float32, len(expected))
		for j, col := range expected {
			v, _ := t.Rows[i].Value(col)
			vec[j] = float32(v)
		}
		m[i] = vec
	}
	return m, nil
}
