package bank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// jsonItem covers both structured bank shapes. The tagged v2.1 shape is
// recognized by a non-empty ItemType; otherwise the record is treated as
// the legacy flat shape (AnswerIndex + 4 choices).
type jsonItem struct {
	ID          string   `json:"id"`
	Domain      string   `json:"domain"`
	Question    string   `json:"question"`
	Choices     []string `json:"choices"`
	AnswerIndex *int     `json:"answerIndex"`

	ItemType       string   `json:"item_type"`
	CorrectIndex   *int     `json:"correct_index"`
	CorrectIndices []int    `json:"correct_indices"`
	Left           []string `json:"left"`
	Right          []string `json:"right"`
	Pairs          []Pair   `json:"pairs"`
	Rationales     []string `json:"rationales"`

	Explanation string `json:"explanation"`
	Reference   string `json:"reference"`
	AssetURL    string `json:"asset_url"`
}

var compileBankSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(bankSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal bank schema: %w", err)
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		return nil, fmt.Errorf("parse bank schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const url = "schema://question-bank.json"
	if err := c.AddResource(url, def); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(url)
})

// ParseJSON converts a structured bank file into a normalized question
// list. Unlike the CSV path, structural failures are returned as errors:
// a structured file is user-authored, and silently loading half of it
// would hide the mistake. Records that are structurally valid but not
// resolvable (unknown domain, indices out of range) are still dropped
// soft-fail, mirroring the CSV policy.
func ParseJSON(raw []byte) ([]Question, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compileBankSchema()
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("bank file does not match schema: %w", err)
	}

	var items []jsonItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode bank items: %w", err)
	}

	var questions []Question
	for i, item := range items {
		q, ok := itemToQuestion(item, i+1)
		if !ok {
			continue
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func itemToQuestion(item jsonItem, rowNum int) (Question, bool) {
	domain, ok := ParseDomain(item.Domain)
	if !ok {
		return Question{}, false
	}
	if item.Question == "" {
		return Question{}, false
	}

	id := item.ID
	if id == "" {
		id = fmt.Sprintf("U%d", rowNum)
	}

	q := Question{
		ID:          id,
		Domain:      domain,
		Prompt:      item.Question,
		Explanation: item.Explanation,
		Reference:   item.Reference,
		Rationales:  item.Rationales,
		AssetURL:    item.AssetURL,
	}

	switch ItemType(item.ItemType) {
	case ItemMulti:
		q.Type = ItemMulti
		q.Choices = item.Choices
		q.CorrectSet = item.CorrectIndices
		if len(q.CorrectSet) == 0 || !indicesInRange(q.CorrectSet, len(q.Choices)) {
			return Question{}, false
		}
	case ItemMatch:
		q.Type = ItemMatch
		q.Left = item.Left
		q.Choices = item.Right
		q.Pairs = item.Pairs
		if len(q.Pairs) == 0 || !pairsInRange(q.Pairs, len(q.Left), len(q.Choices)) {
			return Question{}, false
		}
	case ItemSingle:
		q.Type = ItemSingle
		q.Choices = item.Choices
		if item.CorrectIndex == nil {
			return Question{}, false
		}
		q.CorrectIndex = *item.CorrectIndex
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
			return Question{}, false
		}
	default:
		// Legacy flat shape.
		q.Type = ItemSingle
		q.Choices = item.Choices
		if item.AnswerIndex == nil {
			return Question{}, false
		}
		q.CorrectIndex = *item.AnswerIndex
		if len(q.Choices) != 4 || q.CorrectIndex < 0 || q.CorrectIndex >= 4 {
			return Question{}, false
		}
	}

	return q, true
}

func indicesInRange(indices []int, n int) bool {
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return false
		}
	}
	return true
}

func pairsInRange(pairs []Pair, nLeft, nRight int) bool {
	for _, p := range pairs {
		if p.Left < 0 || p.Left >= nLeft || p.Right < 0 || p.Right >= nRight {
			return false
		}
	}
	return true
}
