package http

import "jubilee/internal/modkit/swaggerkit"

func init() {
	swaggerkit.Register(func(spec map[string]any) {
		paths, _ := spec["paths"].(map[string]any)
		if paths == nil {
			return
		}
		paths["/anniversary/analyze"] = map[string]any{
			"post": map[string]any{
				"summary": "Analyze an uploaded roster workbook",
				"tags":    []any{"Anniversary"},
			},
		}
		paths["/anniversary/analyze/json"] = map[string]any{
			"post": map[string]any{
				"summary": "Analyze tabular roster data supplied as JSON",
				"tags":    []any{"Anniversary"},
			},
		}
		paths["/anniversary/runs/{id}"] = map[string]any{
			"get":    map[string]any{"summary": "Fetch a stored analysis run", "tags": []any{"Anniversary"}},
			"delete": map[string]any{"summary": "Discard one stored run", "tags": []any{"Anniversary"}},
		}
		paths["/anniversary/runs/{id}/included.xlsx"] = map[string]any{
			"get": map[string]any{"summary": "Download the included-records workbook", "tags": []any{"Anniversary"}},
		}
		paths["/anniversary/runs/{id}/summary.xlsx"] = map[string]any{
			"get": map[string]any{"summary": "Download the anniversary-summary workbook", "tags": []any{"Anniversary"}},
		}
		paths["/anniversary/runs"] = map[string]any{
			"delete": map[string]any{"summary": "Discard every stored run", "tags": []any{"Anniversary"}},
		}
	})
}
