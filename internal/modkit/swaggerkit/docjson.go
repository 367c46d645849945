package swaggerkit

import (
	"encoding/json"
	"net/http"
)

// SpecMutator lets modules tweak the served swagger spec
type SpecMutator func(map[string]any)

// mutators is the in process registry for spec mutators
var mutators []SpecMutator

// Register adds a spec mutator for swagger JSON
// call this from module init so it is wired automatically
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// baseSpec is the served skeleton; swag codegen is not used in this repo so
// modules contribute paths through mutators instead
func baseSpec() map[string]any {
	return map[string]any{
		"openapi": "3.0.3",
		"info": map[string]any{
			"title":   "Jubilee API",
			"version": "0.1.0",
		},
		"servers": []any{
			map[string]any{"url": "/api/v1"},
		},
		"paths": map[string]any{},
	}
}

// serveDocJSON serves swagger JSON and lets modules adjust details
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		spec := baseSpec()
		for _, m := range mutators {
			m(spec)
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}
