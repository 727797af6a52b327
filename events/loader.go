package events

import (
	"encoding/csv"
	"io"
	"os"
	"strings"
	"time"
)

// LoadIndex reads the events/holidays reference CSV (columns Date, Type).
// A missing file is not an error: the service keeps serving with an empty
// index and all-zero indicators. Any other failure also returns an empty,
// usable index alongside the error so the caller can log and proceed.
func LoadIndex(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewIndex(), nil
		}
		return NewIndex(), err
	}
	defer f.Close()
	return ReadIndex(f)
}

// ReadIndex parses reference rows from r. Rows with unparsable dates or
// unrecognized type labels are skipped.
func ReadIndex(r io.Reader) (*Index, error) {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return NewIndex(), err
	}
	ix := NewIndex()
	if len(rec) == 0 {
		return ix, nil
	}
	head := rec[0]
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	dateIdx := idx("Date")
	typeIdx := idx("Type")
	if dateIdx < 0 || typeIdx < 0 {
		return ix, nil
	}
	for _, row := range rec[1:] {
		if dateIdx >= len(row) || typeIdx >= len(row) {
			continue
		}
		d, err := time.ParseInLocation(dateKeyLayout, strings.TrimSpace(row[dateIdx]), time.UTC)
		if err != nil {
			continue
		}
		c, ok := ParseCategory(strings.TrimSpace(row[typeIdx]))
		if !ok {
			continue
		}
		ix.add(d, c)
	}
	return ix, nil
}
