package model

import (
	"log"
	"os"
	"path/filepath"
	"sort"
)

// Predictor runs one trained regressor over a feature matrix. Each inner
// slice is one row in the model's expected column order; the result has one
// predicted daily count per row.
type Predictor interface {
	Predict(features [][]float32) ([]float64, error)
	Close() error
}

// knownModels maps registry names to their ONNX export filenames.
var knownModels = map[string]string{
	"XGBoost":           "xgboost.onnx",
	"Random Forest":     "random_forest.onnx",
	"Linear Regression": "linear_regression.onnx",
}

// Registry maps model names to loaded predictors.
type Registry struct {
	predictors map[string]Predictor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{predictors: map[string]Predictor{}}
}

// LoadRegistry loads every known model file found under dir. Missing files
// are logged and skipped; the service keeps running with whatever subset
// loaded. libPath locates the ONNX Runtime shared library.
func LoadRegistry(dir, libPath string) (*Registry, error) {
	r := NewRegistry()
	for name, file := range knownModels {
		path := filepath.Join(dir, file)
		if _, err := os.Stat(path); err != nil {
			log.Printf("model %q not available: %v", name, err)
			continue
		}
		p, err := newONNXPredictor(path, libPath)
		if err != nil {
			log.Printf("model %q failed to load: %v", name, err)
			continue
		}
		r.predictors[name] = p
		log.Printf("model %q loaded from %s", name, path)
	}
	return r, nil
}

// Register adds or replaces a predictor under name.
func (r *Registry) Register(name string, p Predictor) {
	r.predictors[name] = p
}

// Get returns the predictor registered under name.
func (r *Registry) Get(name string) (Predictor, bool) {
	p, ok := r.predictors[name]
	return p, ok
}

// Names lists registered model names in stable order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.predictors))
	for name := range r.predictors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of loaded models.
func (r *Registry) Len() int { return len(r.predictors) }

// Close releases every loaded predictor.
func (r *Registry) Close() {
	for name, p := range r.predictors {
		if err := p.Close(); err != nil {
			log.Printf("model %q close: %v", name, err)
		}
	}
}
