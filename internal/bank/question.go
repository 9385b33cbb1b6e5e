// Package bank owns the question model and the ingestion paths (CSV,
// JSON, built-in starter set) that produce a normalized bank.
package bank

import (
	"fmt"
	"strings"

	"github.com/abhisek/pmprep/internal/shuffle"
)

// Domain is one of the fixed PMP exam content domains. Rows carrying any
// other value are dropped during parsing.
type Domain string

const (
	DomainPeople   Domain = "People"
	DomainProcess  Domain = "Process"
	DomainBusiness Domain = "Business"
	DomainAgile    Domain = "Agile"
)

// AllDomains lists the allowed domains in display order.
var AllDomains = []Domain{DomainPeople, DomainProcess, DomainBusiness, DomainAgile}

// ParseDomain trims and checks membership in the allowed set.
func ParseDomain(s string) (Domain, bool) {
	d := Domain(strings.TrimSpace(s))
	for _, allowed := range AllDomains {
		if d == allowed {
			return d, true
		}
	}
	return "", false
}

// ItemType distinguishes how an item is answered and scored.
type ItemType string

const (
	ItemSingle ItemType = "single" // one correct choice
	ItemMulti  ItemType = "multi"  // a correct subset of choices
	ItemMatch  ItemType = "match"  // left/right pairing
)

// Pair links a left-column index to a right-column index in a match item.
type Pair struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// Question is a normalized bank record. Exactly one correctness field is
// meaningful depending on Type: CorrectIndex for single, CorrectSet for
// multi, Pairs for match.
type Question struct {
	ID           string
	Domain       Domain
	Prompt       string
	Choices      []string // right column for match items
	Left         []string // match items only
	Type         ItemType
	CorrectIndex int
	CorrectSet   []int
	Pairs        []Pair
	Explanation  string
	Reference    string
	Rationales   []string
	AssetURL     string
}

// Selection is a learner's answer to a question. Index is used for
// single items, Indices for multi, Pairs for match.
type Selection struct {
	Index   int
	Indices []int
	Pairs   []Pair
}

// IsCorrect reports whether the selection satisfies the question's
// correctness specification.
func (q Question) IsCorrect(sel Selection) bool {
	switch q.Type {
	case ItemMulti:
		return sameIndexSet(sel.Indices, q.CorrectSet)
	case ItemMatch:
		return samePairSet(sel.Pairs, q.Pairs)
	default:
		return sel.Index == q.CorrectIndex
	}
}

// PermuteChoices returns a copy of the question with its choices
// reordered by perm (perm[newIndex] = old index) and every correctness
// index remapped so it still points at the same choice text. For match
// items the right column is permuted and pair targets follow it.
func (q Question) PermuteChoices(perm []int) Question {
	out := q
	out.Choices = shuffle.Apply(q.Choices, perm)
	if len(q.Rationales) == len(q.Choices) {
		out.Rationales = shuffle.Apply(q.Rationales, perm)
	}

	switch q.Type {
	case ItemMulti:
		out.CorrectSet = make([]int, len(q.CorrectSet))
		for i, old := range q.CorrectSet {
			out.CorrectSet[i] = shuffle.Remap(old, perm)
		}
	case ItemMatch:
		out.Pairs = make([]Pair, len(q.Pairs))
		for i, p := range q.Pairs {
			out.Pairs[i] = Pair{Left: p.Left, Right: shuffle.Remap(p.Right, perm)}
		}
	default:
		out.CorrectIndex = shuffle.Remap(q.CorrectIndex, perm)
	}
	return out
}

// CorrectText renders the correct answer as display text: the correct
// choice for single items, the joined correct choices for multi, and
// serialized left->right pairs for match.
func (q Question) CorrectText() string {
	switch q.Type {
	case ItemMulti:
		parts := make([]string, 0, len(q.CorrectSet))
		for _, idx := range q.CorrectSet {
			if idx >= 0 && idx < len(q.Choices) {
				parts = append(parts, q.Choices[idx])
			}
		}
		return strings.Join(parts, " | ")
	case ItemMatch:
		parts := make([]string, 0, len(q.Pairs))
		for _, p := range q.Pairs {
			if p.Left >= 0 && p.Left < len(q.Left) && p.Right >= 0 && p.Right < len(q.Choices) {
				parts = append(parts, fmt.Sprintf("%s->%s", q.Left[p.Left], q.Choices[p.Right]))
			}
		}
		return strings.Join(parts, " | ")
	default:
		if q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Choices) {
			return q.Choices[q.CorrectIndex]
		}
		return ""
	}
}

func sameIndexSet(a, b []int) bool {
	if len(b) == 0 {
		return false
	}
	setA := make(map[int]bool, len(a))
	for _, v := range a {
		setA[v] = true
	}
	setB := make(map[int]bool, len(b))
	for _, v := range b {
		setB[v] = true
	}
	if len(setA) != len(setB) {
		return false
	}
	for v := range setA {
		if !setB[v] {
			return false
		}
	}
	return true
}

func samePairSet(a, b []Pair) bool {
	if len(a) != len(b) || len(b) == 0 {
		return false
	}
	set := make(map[Pair]bool, len(b))
	for _, p := range b {
		set[p] = true
	}
	for _, p := range a {
		if !set[p] {
			return false
		}
	}
	return true
}
