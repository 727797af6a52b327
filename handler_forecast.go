package ridership

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

func (a *App) handleForecast(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		_, _ = w.Write(buildErrorPayload("POST a multipart form with a 'csv_file' field"))
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, Config.Server.MaxUploadBytes)

	format, err := normalizeFormat(r.URL.Query().Get("format"))
	if err != nil {
		writeRequestError(w, err)
		return
	}

	file, _, err := r.FormFile("csv_file")
	if err != nil {
		writeRequestError(w, &QueryError{Msg: "Missing or unreadable 'csv_file' upload: " + err.Error()})
		return
	}
	defer file.Close()

	batch, err := ParseRawCSV(file)
	if err != nil {
		writeRequestError(w, &QueryError{Msg: "CSV parse failed: " + err.Error()})
		return
	}

	modelParam := r.FormValue("model")
	if modelParam == "" {
		modelParam = r.URL.Query().Get("model")
	}
	res, err := a.Forecast(batch, modelParam)
	if err != nil {
		var qe *QueryError
		if errors.As(err, &qe) || errors.Is(err, ErrMissingDateColumn) {
			writeRequestError(w, err)
			return
		}
		writeServerError(w, err)
		return
	}

	rb := newResponseBuilder()
	if format == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", "attachment; filename=forecast.csv")
		_, _ = w.Write(rb.BuildCSV(res))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(rb.BuildJSON(res))
}

func (a *App) handleHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	buf, err := a.historyPayload()
	if err != nil {
		writeServerError(w, err)
		return
	}
	_, _ = w.Write(buf)
}

func (a *App) handleModels(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	type modelsResponse struct {
		Models  []string `json:"models"`
		Default string   `json:"default"`
	}
	_ = json.NewEncoder(w).Encode(modelsResponse{Models: a.models.Names(), Default: Config.Models.Default})
}

func writeRequestError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write(buildErrorPayload(err.Error()))
}

func writeServerError(w http.ResponseWriter, err error) {
	log.Printf("request failed: %v", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buildErrorPayload(err.Error()))
}
