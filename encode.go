package ridership

// encodeDayOfWeek writes the one-hot weekday indicators. DayOneHot is a
// fixed 7-element array indexed by the weekday ordinal, so all seven
// columns exist for any batch, including one that spans a single day, and
// exactly one entry is 1 per row.
func encodeDayOfWeek(t *FeatureTable) {
	for i := range t.Rows {
		row := &t.Rows[i]
		row.DayOneHot = [7]int{}
		row.DayOneHot[row.DayOfWeek] = 1
	}
}
