package bank

import (
	"fmt"
	"strings"

	"github.com/abhisek/pmprep/internal/csvio"
)

// requiredColumns must all be present in the header row for a CSV bank
// to be usable. Matching is case-insensitive after trimming.
var requiredColumns = []string{"domain", "question", "a", "b", "c", "d", "correct"}

// ParseCSV converts raw CSV text into a normalized question list.
// The policy is soft-fail throughout: a missing required column yields an
// empty result, and rows that cannot be resolved are dropped rather than
// aborting the whole load. It never returns an error because a bad bank
// file must degrade to "no usable data", not a crash.
func ParseCSV(raw string) []Question {
	rows := csvio.Parse(raw)
	if len(rows) < 2 {
		return nil
	}

	cols := headerIndex(rows[0])
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil
		}
	}

	var questions []Question
	for rowNum, row := range rows[1:] {
		q, ok := rowToQuestion(row, cols, rowNum+1)
		if !ok {
			continue
		}
		questions = append(questions, q)
	}
	return questions
}

// headerIndex maps lowercased, trimmed header names to column positions.
// The first occurrence of a name wins.
func headerIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, cell := range header {
		name := strings.ToLower(strings.TrimSpace(cell))
		if _, exists := cols[name]; !exists {
			cols[name] = i
		}
	}
	return cols
}

func rowToQuestion(row []string, cols map[string]int, rowNum int) (Question, bool) {
	cell := func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	domain, ok := ParseDomain(cell("domain"))
	if !ok {
		return Question{}, false
	}

	correct, ok := resolveCorrect(cell("correct"))
	if !ok {
		return Question{}, false
	}

	prompt := strings.TrimSpace(cell("question"))
	if prompt == "" {
		return Question{}, false
	}

	id := strings.TrimSpace(cell("id"))
	if id == "" {
		id = fmt.Sprintf("U%d", rowNum)
	}

	return Question{
		ID:     id,
		Domain: domain,
		Prompt: prompt,
		Choices: []string{
			strings.TrimSpace(cell("a")),
			strings.TrimSpace(cell("b")),
			strings.TrimSpace(cell("c")),
			strings.TrimSpace(cell("d")),
		},
		Type:         ItemSingle,
		CorrectIndex: correct,
		Explanation:  strings.TrimSpace(cell("explanation")),
		Reference:    strings.TrimSpace(cell("reference")),
	}, true
}

// EncodeCSV renders questions back into bank CSV text. Only single-answer
// items round-trip through this format; other item types are skipped.
func EncodeCSV(qs []Question) string {
	rows := [][]string{
		{"id", "domain", "question", "a", "b", "c", "d", "correct", "explanation", "reference"},
	}
	letters := []string{"a", "b", "c", "d"}
	for _, q := range qs {
		if q.Type != ItemSingle || len(q.Choices) != 4 {
			continue
		}
		if q.CorrectIndex < 0 || q.CorrectIndex > 3 {
			continue
		}
		rows = append(rows, []string{
			q.ID, string(q.Domain), q.Prompt,
			q.Choices[0], q.Choices[1], q.Choices[2], q.Choices[3],
			letters[q.CorrectIndex], q.Explanation, q.Reference,
		})
	}
	return csvio.Encode(rows)
}

// resolveCorrect maps a/b/c/d or a literal digit 0-3 to a zero-based
// choice index. Anything else makes the row unresolvable.
func resolveCorrect(cell string) (int, bool) {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "a", "0":
		return 0, true
	case "b", "1":
		return 1, true
	case "c", "2":
		return 2, true
	case "d", "3":
		return 3, true
	}
	return 0, false
}
