package events

import "time"

// Category is one of the reference-table event types.
type Category int

const (
	Holiday Category = iota
	SchoolVacation
	SpecialEvent
)

// Reference-table labels as persisted by the upstream events export.
const (
	labelHoliday        = "Jour_Ferie"
	labelSchoolVacation = "Vacances_Scolaires"
	labelSpecialEvent   = "Evenement_Special"
)

// ParseCategory maps a reference-table label to its category. Unrecognized
// labels report ok=false and are skipped by the loader, so new label types
// in newer reference data do not break older pipeline code.
func ParseCategory(label string) (Category, bool) {
	switch label {
	case labelHoliday:
		return Holiday, true
	case labelSchoolVacation:
		return SchoolVacation, true
	case labelSpecialEvent:
		return SpecialEvent, true
	}
	return 0, false
}

func (c Category) String() string {
	switch c {
	case Holiday:
		return labelHoliday
	case SchoolVacation:
		return labelSchoolVacation
	case SpecialEvent:
		return labelSpecialEvent
	}
	return "Unknown"
}

type categorySet uint8

const dateKeyLayout = "2006-01-02"

// Index maps calendar dates to the set of categories present on that date.
// A date may carry zero, one or several categories; they are independent,
// never mutually exclusive.
type Index struct {
	byDate map[string]categorySet
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{byDate: map[string]categorySet{}}
}

func (ix *Index) add(date time.Time, c Category) {
	ix.byDate[date.Format(dateKeyLayout)] |= 1 << uint(c)
}

// Has reports whether date is a member of category c. Time-of-day is
// ignored; membership is keyed on the calendar date only.
func (ix *Index) Has(date time.Time, c Category) bool {
	return ix.byDate[date.Format(dateKeyLayout)]&(1<<uint(c)) != 0
}

// Len returns the number of distinct dates carrying at least one category.
func (ix *Index) Len() int { return len(ix.byDate) }
