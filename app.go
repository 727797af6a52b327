package ridership

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/theoremus-urban-solutions/ridership-forecast/events"
	"github.com/theoremus-urban-solutions/ridership-forecast/model"
)

// App is the process-wide application context: configuration, the
// read-only event index and the loaded model registry, constructed once at
// startup and shared by all requests. The "missing file means empty
// defaults" policy lives here, at construction time.
type App struct {
	cfg    AppConfig
	events *events.Index
	models *model.Registry

	histOnce sync.Once
	histJSON []byte
	histErr  error
}

// NewApp builds the application context from the loaded configuration. A
// missing events file or missing model files degrade the service (all-zero
// indicators, fewer models) but are not startup failures.
func NewApp(cfg AppConfig) (*App, error) {
	ix, err := events.LoadIndex(cfg.Data.EventsPath)
	if err != nil {
		log.Printf("events reference %s unavailable, indicators default to 0: %v", cfg.Data.EventsPath, err)
	}
	if ix.Len() > 0 {
		log.Printf("event index loaded: %d dates from %s", ix.Len(), cfg.Data.EventsPath)
	}

	reg, err := model.LoadRegistry(cfg.Models.Dir, cfg.Models.RuntimeLib)
	if err != nil {
		return nil, fmt.Errorf("load model registry: %w", err)
	}
	if reg.Len() == 0 {
		log.Printf("no models loaded from %s; forecast requests will be rejected", cfg.Models.Dir)
	}

	return &App{cfg: cfg, events: ix, models: reg}, nil
}

// Events returns the shared read-only event index.
func (a *App) Events() *events.Index { return a.events }

// Models returns the shared model registry.
func (a *App) Models() *model.Registry { return a.models }

// Close releases model sessions.
func (a *App) Close() { a.models.Close() }

// Forecast preprocesses a raw batch and runs the named model over it.
func (a *App) Forecast(batch RawBatch, modelName string) (*ForecastResponse, error) {
	name, predictor, err := resolveModel(modelName, a.models)
	if err != nil {
		return nil, err
	}
	table, err := Preprocess(batch, a.events)
	if err != nil {
		return nil, err
	}
	if table.Dropped > 0 {
		log.Printf("forecast batch: dropped %d rows with unparsable dates", table.Dropped)
	}
	matrix, err := table.Matrix(a.cfg.Models.ExpectedFeatures)
	if err != nil {
		return nil, err
	}
	preds, err := predictor.Predict(matrix)
	if err != nil {
		return nil, err
	}
	return buildForecastResponse(name, table, preds), nil
}

// ForecastFile runs a forecast over a CSV file and renders it in the given
// format; used by the oneshot CLI mode.
func (a *App) ForecastFile(path, modelName, format string) ([]byte, error) {
	format, err := normalizeFormat(format)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	batch, err := ParseRawCSV(f)
	if err != nil {
		return nil, err
	}
	res, err := a.Forecast(batch, modelName)
	if err != nil {
		return nil, err
	}
	rb := newResponseBuilder()
	if format == "csv" {
		return rb.BuildCSV(res), nil
	}
	return rb.BuildJSON(res), nil
}

// historyPayload runs the configured historical dataset through the same
// pipeline as uploads and memoizes the JSON; the underlying file is static
// for the process lifetime.
func (a *App) historyPayload() ([]byte, error) {
	a.histOnce.Do(func() {
		a.histJSON, a.histErr = a.buildHistoryPayload()
	})
	return a.histJSON, a.histErr
}

func (a *App) buildHistoryPayload() ([]byte, error) {
	f, err := os.Open(a.cfg.Data.HistoryPath)
	if err != nil {
		return nil, fmt.Errorf("history dataset: %w", err)
	}
	defer f.Close()
	batch, err := ParseRawCSV(f)
	if err != nil {
		return nil, fmt.Errorf("history dataset: %w", err)
	}
	t, err := Preprocess(batch, a.events)
	if err != nil {
		return nil, fmt.Errorf("history dataset: %w", err)
	}
	res := buildHistoryResponse(t)
	return newResponseBuilder().buildHistoryJSON(res), nil
}
