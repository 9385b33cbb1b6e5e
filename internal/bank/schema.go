package bank

// bankSchema is the JSON Schema a structured bank file must satisfy.
// It admits both the legacy flat shape (answerIndex + 4 choices) and the
// v2.1 tagged shape (item_type with type-specific correctness fields);
// semantic checks beyond structure (index ranges, domain membership)
// happen during mapping.
var bankSchema = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":       map[string]any{"type": "string"},
			"domain":   map[string]any{"type": "string"},
			"question": map[string]any{"type": "string"},
			"choices": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"answerIndex": map[string]any{"type": "integer"},
			"item_type": map[string]any{
				"type": "string",
				"enum": []any{"single", "multi", "match"},
			},
			"correct_index": map[string]any{"type": "integer"},
			"correct_indices": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
			"left": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"right": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"pairs": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"left":  map[string]any{"type": "integer"},
						"right": map[string]any{"type": "integer"},
					},
					"required": []any{"left", "right"},
				},
			},
			"rationales": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"explanation": map[string]any{"type": "string"},
			"reference":   map[string]any{"type": "string"},
			"asset_url":   map[string]any{"type": "string"},
		},
		"required": []any{"domain", "question"},
	},
}
