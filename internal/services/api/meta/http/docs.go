package http

import "jubilee/internal/modkit/swaggerkit"

func init() {
	swaggerkit.Register(func(spec map[string]any) {
		paths, _ := spec["paths"].(map[string]any)
		if paths == nil {
			return
		}
		for route, summary := range map[string]string{
			"/meta/health":  "Health check",
			"/meta/ready":   "Readiness probe",
			"/meta/version": "Build and version info",
			"/meta/service": "Service info and uptime",
		} {
			paths[route] = map[string]any{
				"get": map[string]any{"summary": summary, "tags": []any{"Meta"}},
			}
		}
	})
}
