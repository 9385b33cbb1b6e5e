package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiAliases)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explanation": map[string]any{"type": "string"},
			"confidence":  map[string]any{"type": "integer"},
			"verdict":     map[string]any{"type": "string", "enum": []any{"correct", "incorrect"}},
			"rationales": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"explanation", "rationales"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["explanation"].Type != "STRING" {
		t.Fatalf("expected STRING for explanation, got %s", schema.Properties["explanation"].Type)
	}
	if schema.Properties["confidence"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for confidence, got %s", schema.Properties["confidence"].Type)
	}
	if len(schema.Properties["verdict"].Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(schema.Properties["verdict"].Enum))
	}
	if schema.Properties["rationales"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for rationales, got %s", schema.Properties["rationales"].Type)
	}
	if schema.Properties["rationales"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for rationales items, got %s", schema.Properties["rationales"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
