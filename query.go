package ridership

import (
	"strings"

	"github.com/theoremus-urban-solutions/ridership-forecast/model"
)

// QueryError is a caller-input problem, surfaced as a 400.
type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// normalizeFormat validates the response format parameter. Empty means
// JSON.
func normalizeFormat(s string) (string, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "json" {
		return "json", nil
	}
	if s == "csv" {
		return "csv", nil
	}
	return "", &QueryError{Msg: "Unsupported format: " + s}
}

// resolveModel picks the requested model from the registry, falling back
// to the configured default when the parameter is empty. An unknown name
// is a caller error, not a fallback.
func resolveModel(name string, reg *model.Registry) (string, model.Predictor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = Config.Models.Default
	}
	p, ok := reg.Get(name)
	if !ok {
		return "", nil, &QueryError{Msg: "Model '" + name + "' is not available. Loaded models: " + strings.Join(reg.Names(), ", ")}
	}
	return name, p, nil
}
