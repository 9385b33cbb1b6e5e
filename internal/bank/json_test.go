package bank

import (
	"testing"
)

func TestParseJSON_LegacyFlatShape(t *testing.T) {
	raw := []byte(`[
		{"domain":"Process","question":"Q1?","choices":["a","b","c","d"],"answerIndex":2},
		{"id":"X9","domain":"Agile","question":"Q2?","choices":["a","b","c","d"],"answerIndex":0,"explanation":"why"}
	]`)

	qs, err := ParseJSON(raw)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("len(qs) = %d, want 2", len(qs))
	}
	if qs[0].ID != "U1" || qs[0].CorrectIndex != 2 || qs[0].Type != ItemSingle {
		t.Errorf("legacy question = %+v", qs[0])
	}
	if qs[1].ID != "X9" || qs[1].Explanation != "why" {
		t.Errorf("legacy question = %+v", qs[1])
	}
}

func TestParseJSON_TaggedShapes(t *testing.T) {
	raw := []byte(`[
		{"domain":"People","question":"single?","item_type":"single","choices":["a","b","c"],"correct_index":1,"rationales":["r0","r1","r2"]},
		{"domain":"Process","question":"multi?","item_type":"multi","choices":["a","b","c","d"],"correct_indices":[0,2]},
		{"domain":"Agile","question":"match?","item_type":"match","left":["L0","L1"],"right":["R0","R1"],"pairs":[{"left":0,"right":1},{"left":1,"right":0}],"asset_url":"https://example.com/x.png"}
	]`)

	qs, err := ParseJSON(raw)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("len(qs) = %d, want 3", len(qs))
	}

	if qs[0].Type != ItemSingle || qs[0].CorrectIndex != 1 || len(qs[0].Choices) != 3 {
		t.Errorf("single = %+v", qs[0])
	}
	if qs[1].Type != ItemMulti || len(qs[1].CorrectSet) != 2 {
		t.Errorf("multi = %+v", qs[1])
	}
	if qs[2].Type != ItemMatch || len(qs[2].Pairs) != 2 || qs[2].AssetURL == "" {
		t.Errorf("match = %+v", qs[2])
	}
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	if _, err := ParseJSON([]byte("{not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestParseJSON_SchemaViolation(t *testing.T) {
	// answerIndex as a string violates the schema.
	raw := []byte(`[{"domain":"Process","question":"Q?","choices":["a","b","c","d"],"answerIndex":"two"}]`)
	if _, err := ParseJSON(raw); err == nil {
		t.Error("expected schema validation error")
	}
}

func TestParseJSON_DropsUnresolvableRecords(t *testing.T) {
	raw := []byte(`[
		{"domain":"Scrum","question":"bad domain","choices":["a","b","c","d"],"answerIndex":0},
		{"domain":"Process","question":"index out of range","choices":["a","b","c","d"],"answerIndex":9},
		{"domain":"Process","question":"multi with bad index","item_type":"multi","choices":["a","b"],"correct_indices":[5]},
		{"domain":"Process","question":"kept","choices":["a","b","c","d"],"answerIndex":3}
	]`)

	qs, err := ParseJSON(raw)
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if len(qs) != 1 || qs[0].Prompt != "kept" {
		t.Errorf("qs = %+v, want only the resolvable record", qs)
	}
}
