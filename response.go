package ridership

import (
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"
)

// ForecastPoint is one predicted date in a forecast response. Actual is
// only present when the uploaded batch carried a historical count column.
type ForecastPoint struct {
	Date      string   `json:"date"`
	Predicted float64  `json:"predicted"`
	Actual    *float64 `json:"actual,omitempty"`
}

// ForecastResponse is the payload of a forecast request.
type ForecastResponse struct {
	Model       string          `json:"model"`
	GeneratedAt string          `json:"generated_at"`
	Rows        int             `json:"rows"`
	DroppedRows int             `json:"dropped_rows"`
	Points      []ForecastPoint `json:"points"`
}

// HistoryPoint is one historical date with its recorded count, used to
// seed the caller's chart.
type HistoryPoint struct {
	Date   string  `json:"date"`
	Actual float64 `json:"actual"`
}

type HistoryResponse struct {
	Rows   int            `json:"rows"`
	Points []HistoryPoint `json:"points"`
}

type responseBuilder struct{}

func newResponseBuilder() *responseBuilder { return &responseBuilder{} }

func (rb *responseBuilder) BuildJSON(res *ForecastResponse) []byte {
	b, _ := json.Marshal(res)
	return b
}

func (rb *responseBuilder) buildHistoryJSON(res *HistoryResponse) []byte {
	b, _ := json.Marshal(res)
	return b
}

// BuildCSV renders the forecast as a downloadable CSV. The actual column
// is present only when the batch supplied one, mirroring the JSON shape.
func (rb *responseBuilder) BuildCSV(res *ForecastResponse) []byte {
	var b strings.Builder
	w := csv.NewWriter(&b)
	hasActual := false
	for _, p := range res.Points {
		if p.Actual != nil {
			hasActual = true
			break
		}
	}
	head := []string{"Date", "Prediction"}
	if hasActual {
		head = append(head, "Nb_Passagers")
	}
	_ = w.Write(head)
	for _, p := range res.Points {
		rec := []string{p.Date, strconv.FormatFloat(p.Predicted, 'f', 1, 64)}
		if hasActual {
			actual := ""
			if p.Actual != nil {
				actual = strconv.FormatFloat(*p.Actual, 'f', 0, 64)
			}
			rec = append(rec, actual)
		}
		_ = w.Write(rec)
	}
	w.Flush()
	return []byte(b.String())
}

// buildForecastResponse pairs the preprocessed rows with the model output.
func buildForecastResponse(modelName string, t *FeatureTable, preds []float64) *ForecastResponse {
	res := &ForecastResponse{
		Model:       modelName,
		GeneratedAt: iso8601Now(),
		Rows:        len(t.Rows),
		DroppedRows: t.Dropped,
		Points:      make([]ForecastPoint, 0, len(t.Rows)),
	}
	for i := range t.Rows {
		row := &t.Rows[i]
		p := ForecastPoint{Date: row.Date.Format(dateLayout)}
		if i < len(preds) {
			p.Predicted = preds[i]
		}
		if row.HasActual {
			actual := row.ActualCount
			p.Actual = &actual
		}
		res.Points = append(res.Points, p)
	}
	return res
}

func buildHistoryResponse(t *FeatureTable) *HistoryResponse {
	res := &HistoryResponse{Rows: len(t.Rows), Points: make([]HistoryPoint, 0, len(t.Rows))}
	for i := range t.Rows {
		row := &t.Rows[i]
		if !row.HasActual {
			continue
		}
		res.Points = append(res.Points, HistoryPoint{Date: row.Date.Format(dateLayout), Actual: row.ActualCount})
	}
	res.Rows = len(res.Points)
	return res
}

func buildErrorPayload(msg string) []byte {
	type apiErr struct {
		Error string `json:"error"`
	}
	b, _ := json.Marshal(apiErr{Error: msg})
	return b
}
