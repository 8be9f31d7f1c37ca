package keyed

// sampleDoc returns a fresh document shared by several tests.
func sampleDoc() *Map {
	return MustNew([]Pair{
		{"headers", map[string]any{
			"Accept-Encoding": "gzip",
			"Content-Type":    "application/json",
		}},
		{"body", map[string]any{
			"C-D": 1.2,
			"e":   []any{2, map[string]any{"g": 9.806}},
			"f": map[string]any{
				"x": nil,
				"y": []any{map[string]any{"p": 5}, []any{8}},
			},
		}},
		{"extra", "info"},
	})
}
