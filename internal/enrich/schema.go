package enrich

import "github.com/abhisek/pmprep/internal/llm"

// enrichmentSchema is the structured output contract for one question.
// Rationales line up with choices a through d.
var enrichmentSchema = &llm.Schema{
	Name:        "question-enrichment",
	Description: "An explanation of the correct answer and a short rationale per choice",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the correct choice is correct, 2-4 sentences",
			},
			"rationales": map[string]any{
				"type":        "array",
				"description": "One short rationale per choice, in choice order",
				"items":       map[string]any{"type": "string"},
				"minItems":    4,
				"maxItems":    4,
			},
		},
		"required": []any{"explanation", "rationales"},
	},
}

// Enrichment is the parsed structured output for one question.
type Enrichment struct {
	Explanation string   `json:"explanation"`
	Rationales  []string `json:"rationales"`
}
