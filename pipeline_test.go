package ridership

import (
	"fmt"
	"strings"
	"testing"

	"github.com/theoremus-urban-solutions/ridership-forecast/events"
)

func mustBatch(t *testing.T, csv string) RawBatch {
	t.Helper()
	batch, err := ParseRawCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse batch: %v", err)
	}
	return batch
}

func mustIndex(t *testing.T, csv string) *events.Index {
	t.Helper()
	ix, err := events.ReadIndex(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("parse events: %v", err)
	}
	return ix
}

func TestPreprocess_HolidaySunday(t *testing.T) {
	batch := mustBatch(t, "Date\n2023-01-01\n")
	ix := mustIndex(t, "Date,Type\n2023-01-01,Jour_Ferie\n")
	tab, err := Preprocess(batch, ix)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tab.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(tab.Rows))
	}
	row := tab.Rows[0]
	if row.DayOfWeek != 6 || row.IsWeekend != 1 {
		t.Errorf("calendar fields: %+v", row)
	}
	if row.DayOneHot != [7]int{0, 0, 0, 0, 0, 0, 1} {
		t.Errorf("one-hot: %v", row.DayOneHot)
	}
	if row.IsHoliday != 1 || row.IsSchoolVacation != 0 || row.IsSpecialEvent != 0 {
		t.Errorf("event indicators: %+v", row)
	}
}

func TestPreprocess_SaturdayNoReference(t *testing.T) {
	batch := mustBatch(t, "Date\n2023-01-07\n")
	tab, err := Preprocess(batch, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := tab.Rows[0]
	if row.DayOfWeek != 5 || row.IsWeekend != 1 {
		t.Errorf("calendar fields: %+v", row)
	}
	if v, _ := row.Value("day_Saturday"); v != 1 {
		t.Error("day_Saturday should be 1")
	}
	if row.IsHoliday != 0 || row.IsSchoolVacation != 0 || row.IsSpecialEvent != 0 {
		t.Errorf("indicators must all be 0 without a reference: %+v", row)
	}
}

func TestPreprocess_EmptyIndexSameShape(t *testing.T) {
	batch := mustBatch(t, "Date\n2023-01-01\n2023-01-02\n")
	withRef, err := Preprocess(batch, mustIndex(t, "Date,Type\n2023-01-01,Jour_Ferie\n"))
	if err != nil {
		t.Fatal(err)
	}
	withoutRef, err := Preprocess(batch, events.NewIndex())
	if err != nil {
		t.Fatal(err)
	}
	// Same columns either way; only values differ.
	a, errA := withRef.Matrix(FeatureColumns())
	b, errB := withoutRef.Matrix(FeatureColumns())
	if errA != nil || errB != nil {
		t.Fatalf("projection errors: %v %v", errA, errB)
	}
	if len(a) != len(b) || len(a[0]) != len(b[0]) {
		t.Errorf("shape differs between populated and empty index")
	}
}

func TestPreprocess_MultipleCategoriesSameDate(t *testing.T) {
	batch := mustBatch(t, "Date\n2023-01-01\n")
	ix := mustIndex(t, "Date,Type\n2023-01-01,Jour_Ferie\n2023-01-01,Vacances_Scolaires\n")
	tab, err := Preprocess(batch, ix)
	if err != nil {
		t.Fatal(err)
	}
	row := tab.Rows[0]
	if row.IsHoliday != 1 || row.IsSchoolVacation != 1 {
		t.Errorf("both indicators should be set simultaneously: %+v", row)
	}
}

func TestPreprocess_ShortBatchFullSchema(t *testing.T) {
	batch := mustBatch(t, "Date\n2023-01-02\n2023-01-03\n") // Monday, Tuesday
	tab, err := Preprocess(batch, nil)
	if err != nil {
		t.Fatal(err)
	}
	m, err := tab.Matrix(FeatureColumns())
	if err != nil {
		t.Fatalf("2-day batch must still expose all 7 weekday columns: %v", err)
	}
	for _, vec := range m {
		sum := float32(0)
		for i, col := range FeatureColumns() {
			if strings.HasPrefix(col, "day_") && col != ColDayOfWeek && col != ColDayOfYear {
				sum += vec[i]
			}
		}
		if sum != 1 {
			t.Errorf("weekday indicators must sum to 1, got %v", sum)
		}
	}
	for _, row := range tab.Rows {
		for i := 2; i < 7; i++ {
			if row.DayOneHot[i] != 0 {
				t.Errorf("Wednesday..Sunday must be 0 in a Mon/Tue batch: %v", row.DayOneHot)
			}
		}
	}
}

func TestPreprocess_EmptyAfterFiltering(t *testing.T) {
	batch := mustBatch(t, "Date\nnot-a-date\nalso-bad\n")
	tab, err := Preprocess(batch, nil)
	if err != nil {
		t.Fatalf("fully filtered batch is not an error: %v", err)
	}
	if len(tab.Rows) != 0 || tab.Dropped != 2 {
		t.Errorf("rows=%d dropped=%d", len(tab.Rows), tab.Dropped)
	}
	if len(tab.Columns()) != len(FeatureColumns()) {
		t.Error("empty output must still carry the full column set")
	}
}

func TestPreprocess_SuppliedWeatherKept(t *testing.T) {
	batch := mustBatch(t, "Date,Temperature_Moyenne_C,Precipitations_mm\n2023-01-01,12.3,4.0\n")
	tab, err := Preprocess(batch, nil)
	if err != nil {
		t.Fatal(err)
	}
	row := tab.Rows[0]
	if row.TemperatureMeanC != 12.3 || row.PrecipitationMM != 4.0 {
		t.Errorf("supplied weather must pass through untouched: %+v", row)
	}
}

func TestPreprocess_SynthesizedWeatherVaries(t *testing.T) {
	var csv strings.Builder
	csv.WriteString("Date\n")
	for d := 1; d <= 28; d++ {
		fmt.Fprintf(&csv, "2023-01-%02d\n", d)
		fmt.Fprintf(&csv, "2023-06-%02d\n", d)
	}
	batch := mustBatch(t, csv.String())
	a, err := Preprocess(batch, nil)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Preprocess(batch, nil)
	if err != nil {
		t.Fatal(err)
	}
	differ := false
	for i := range a.Rows {
		if a.Rows[i].TemperatureMeanC != b.Rows[i].TemperatureMeanC {
			differ = true
		}
		if a.Rows[i].PrecipitationMM < 0 || b.Rows[i].PrecipitationMM < 0 {
			t.Fatal("negative synthesized precipitation")
		}
		// Calendar and indicator fields are deterministic across runs.
		if a.Rows[i].DayOfWeek != b.Rows[i].DayOfWeek || a.Rows[i].IsHoliday != b.Rows[i].IsHoliday {
			t.Fatal("deterministic fields differ between runs")
		}
	}
	if !differ {
		t.Error("synthesized weather should differ across runs")
	}
}

func TestPreprocess_PinnedSynthesizerIsDeterministic(t *testing.T) {
	batch := mustBatch(t, "Date\n2023-01-01\n2023-06-15\n")
	a, err := PreprocessWithSynthesizer(batch, nil, NewWeatherSynthesizer(11, 12))
	if err != nil {
		t.Fatal(err)
	}
	b, err := PreprocessWithSynthesizer(batch, nil, NewWeatherSynthesizer(11, 12))
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Rows {
		if a.Rows[i].TemperatureMeanC != b.Rows[i].TemperatureMeanC ||
			a.Rows[i].PrecipitationMM != b.Rows[i].PrecipitationMM {
			t.Fatal("pinned synthesizer must reproduce the same weather")
		}
	}
}

func TestPreprocess_MissingDateColumn(t *testing.T) {
	batch := mustBatch(t, "Jour,Nb\n2023-01-01,100\n")
	if _, err := Preprocess(batch, nil); err != ErrMissingDateColumn {
		t.Fatalf("expected ErrMissingDateColumn, got %v", err)
	}
}
