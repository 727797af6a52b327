package ridership

import "github.com/theoremus-urban-solutions/ridership-forecast/events"

// mergeEvents sets the three event indicators from the reference index.
// With an empty index every indicator is 0 for every row, which is
// indistinguishable in shape from the populated case; downstream code never
// branches on whether a reference table was supplied. Categories are
// independent, so a date can carry several indicators at once.
func mergeEvents(t *FeatureTable, ix *events.Index) {
	for i := range t.Rows {
		row := &t.Rows[i]
		if ix.Has(row.Date, events.Holiday) {
			row.IsHoliday = 1
		}
		if ix.Has(row.Date, events.SchoolVacation) {
			row.IsSchoolVacation = 1
		}
		if ix.Has(row.Date, events.SpecialEvent) {
			row.IsSpecialEvent = 1
		}
	}
}
