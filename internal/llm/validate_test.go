package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-explanation",
		Description: "A test explanation object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"explanation": map[string]any{"type": "string"},
				"confidence":  map[string]any{"type": "integer", "minimum": 0},
				"verdict":     map[string]any{"type": "string", "enum": []any{"correct", "incorrect", "partial"}},
			},
			"required": []any{"explanation", "confidence"},
		},
	}
}

func assertInvalid(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"explanation":"Crashing adds resources to the critical path.","confidence":90,"verdict":"correct"}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"explanation":"Fast tracking overlaps activities.","confidence":75}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"explanation":"incomplete"}`)
	assertInvalid(t, validateResponse(testSchema(), raw))
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"explanation":"x","confidence":"high"}`)
	assertInvalid(t, validateResponse(testSchema(), raw))
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"explanation":"x","confidence":50,"verdict":"maybe"}`)
	assertInvalid(t, validateResponse(testSchema(), raw))
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	assertInvalid(t, validateResponse(testSchema(), raw))
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	if err := validateResponse(testSchema(), json.RawMessage(``)); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "test-nested",
		Description: "Nested test",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{"type": "string"},
					},
					"required": []any{"id"},
				},
				"rationales": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required": []any{"question", "rationales"},
		},
	}

	valid := json.RawMessage(`{"question":{"id":"Q7"},"rationales":["a is wrong","b is right"]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"question":{"id":"Q7"},"rationales":[1,2]}`)
	assertInvalid(t, validateResponse(schema, invalid))
}
