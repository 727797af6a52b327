package ridership

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status       string `json:"status"`
	EventDates   int    `json:"event_dates"`
	ModelsLoaded int    `json:"models_loaded"`
}

func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status:       "ok",
		EventDates:   a.events.Len(),
		ModelsLoaded: a.models.Len(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
