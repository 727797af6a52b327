package ridership

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
)

// Raw batch CSV column headers, as written by the upstream data exports.
const (
	rawColDate          = "Date"
	rawColCount         = "Nb_Passagers"
	rawColTemperature   = "Temperature_Moyenne_C"
	rawColPrecipitation = "Precipitations_mm"
)

// RawRow is one unprocessed input row. Numeric fields are only meaningful
// when the batch-level presence flag for their column is set.
type RawRow struct {
	Date          string
	Count         float64
	Temperature   float64
	Precipitation float64
}

// RawBatch is a parsed input CSV plus per-column presence. Presence is
// header presence: a column that exists with empty cells is still supplied,
// and the pipeline never second-guesses it.
type RawBatch struct {
	Rows []RawRow

	HasDate          bool
	HasCount         bool
	HasTemperature   bool
	HasPrecipitation bool
}

// ParseRawCSV reads an uploaded batch. Ragged or quoting-broken CSV data is
// an error; a missing Date column is not detected here but by the pipeline,
// which owns the input error taxonomy.
func ParseRawCSV(r io.Reader) (RawBatch, error) {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return RawBatch{}, err
	}
	if len(rec) == 0 {
		return RawBatch{}, errors.New("empty CSV input")
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
	dateIdx := idx(rawColDate)
	countIdx := idx(rawColCount)
	tempIdx := idx(rawColTemperature)
	precIdx := idx(rawColPrecipitation)

	batch := RawBatch{
		Rows:             make([]RawRow, 0, len(rec)-1),
		HasDate:          dateIdx >= 0,
		HasCount:         countIdx >= 0,
		HasTemperature:   tempIdx >= 0,
		HasPrecipitation: precIdx >= 0,
	}
	cell := func(row []string, i int) string {
		if i >= 0 && i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}
	for _, row := range rec[1:] {
		rr := RawRow{Date: cell(row, dateIdx)}
		rr.Count, _ = strconv.ParseFloat(cell(row, countIdx), 64)
		rr.Temperature, _ = strconv.ParseFloat(cell(row, tempIdx), 64)
		rr.Precipitation, _ = strconv.ParseFloat(cell(row, precIdx), 64)
		batch.Rows = append(batch.Rows, rr)
	}
	return batch, nil
}
