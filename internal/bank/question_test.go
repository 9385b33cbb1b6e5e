package bank

import (
	"testing"

	"github.com/abhisek/pmprep/internal/shuffle"
)

func TestIsCorrect_Single(t *testing.T) {
	q := Question{Type: ItemSingle, Choices: []string{"a", "b", "c", "d"}, CorrectIndex: 2}
	if !q.IsCorrect(Selection{Index: 2}) {
		t.Error("index 2 should be correct")
	}
	if q.IsCorrect(Selection{Index: 0}) {
		t.Error("index 0 should be wrong")
	}
}

func TestIsCorrect_MultiExactSet(t *testing.T) {
	q := Question{Type: ItemMulti, Choices: []string{"a", "b", "c", "d"}, CorrectSet: []int{1, 3}}

	tests := []struct {
		name    string
		indices []int
		want    bool
	}{
		{"exact match", []int{1, 3}, true},
		{"order irrelevant", []int{3, 1}, true},
		{"subset", []int{1}, false},
		{"superset", []int{1, 3, 0}, false},
		{"disjoint", []int{0, 2}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		if got := q.IsCorrect(Selection{Indices: tt.indices}); got != tt.want {
			t.Errorf("%s: IsCorrect = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestIsCorrect_Match(t *testing.T) {
	q := Question{
		Type:    ItemMatch,
		Left:    []string{"L0", "L1"},
		Choices: []string{"R0", "R1"},
		Pairs:   []Pair{{Left: 0, Right: 1}, {Left: 1, Right: 0}},
	}
	if !q.IsCorrect(Selection{Pairs: []Pair{{Left: 1, Right: 0}, {Left: 0, Right: 1}}}) {
		t.Error("complete pairing should be correct")
	}
	if q.IsCorrect(Selection{Pairs: []Pair{{Left: 0, Right: 0}, {Left: 1, Right: 1}}}) {
		t.Error("swapped pairing should be wrong")
	}
	if q.IsCorrect(Selection{Pairs: []Pair{{Left: 0, Right: 1}}}) {
		t.Error("partial pairing should be wrong")
	}
}

func TestPermuteChoices_SingleTracksText(t *testing.T) {
	q := Question{Type: ItemSingle, Choices: []string{"w", "x", "y", "z"}, CorrectIndex: 2}
	correctText := q.Choices[q.CorrectIndex]

	for seed := int64(0); seed < 20; seed++ {
		perm := shuffle.Perm(4, shuffle.New(seed))
		p := q.PermuteChoices(perm)
		if p.Choices[p.CorrectIndex] != correctText {
			t.Fatalf("seed %d: correct text moved to %q", seed, p.Choices[p.CorrectIndex])
		}
	}
}

func TestPermuteChoices_MultiTracksTexts(t *testing.T) {
	q := Question{Type: ItemMulti, Choices: []string{"w", "x", "y", "z"}, CorrectSet: []int{0, 3}}
	perm := shuffle.Perm(4, shuffle.New(7))
	p := q.PermuteChoices(perm)

	want := map[string]bool{"w": true, "z": true}
	for _, idx := range p.CorrectSet {
		if !want[p.Choices[idx]] {
			t.Errorf("correct set points at %q after permutation", p.Choices[idx])
		}
	}
}

func TestPermuteChoices_MatchTracksRightColumn(t *testing.T) {
	q := Question{
		Type:    ItemMatch,
		Left:    []string{"L0", "L1"},
		Choices: []string{"R0", "R1", "R2"},
		Pairs:   []Pair{{Left: 0, Right: 2}, {Left: 1, Right: 0}},
	}
	perm := shuffle.Perm(3, shuffle.New(11))
	p := q.PermuteChoices(perm)

	for i, pair := range p.Pairs {
		origPair := q.Pairs[i]
		if p.Choices[pair.Right] != q.Choices[origPair.Right] {
			t.Errorf("pair %d: right text %q, want %q", i, p.Choices[pair.Right], q.Choices[origPair.Right])
		}
		if pair.Left != origPair.Left {
			t.Errorf("pair %d: left index changed to %d", i, pair.Left)
		}
	}
}

func TestPermuteChoices_InputUnchanged(t *testing.T) {
	q := Question{Type: ItemSingle, Choices: []string{"w", "x", "y", "z"}, CorrectIndex: 1}
	q.PermuteChoices(shuffle.Perm(4, shuffle.New(3)))
	if q.CorrectIndex != 1 || q.Choices[1] != "x" {
		t.Errorf("original question mutated: %+v", q)
	}
}

func TestPermuteChoices_RationalesFollow(t *testing.T) {
	q := Question{
		Type:       ItemSingle,
		Choices:    []string{"w", "x", "y", "z"},
		Rationales: []string{"rw", "rx", "ry", "rz"},
		CorrectIndex: 0,
	}
	perm := shuffle.Perm(4, shuffle.New(9))
	p := q.PermuteChoices(perm)
	for i, c := range p.Choices {
		if p.Rationales[i] != "r"+c {
			t.Errorf("rationale at %d = %q, choice %q", i, p.Rationales[i], c)
		}
	}
}

func TestCorrectText(t *testing.T) {
	single := Question{Type: ItemSingle, Choices: []string{"w", "x"}, CorrectIndex: 1}
	if got := single.CorrectText(); got != "x" {
		t.Errorf("single CorrectText = %q, want x", got)
	}

	multi := Question{Type: ItemMulti, Choices: []string{"w", "x", "y"}, CorrectSet: []int{0, 2}}
	if got := multi.CorrectText(); got != "w | y" {
		t.Errorf("multi CorrectText = %q", got)
	}

	match := Question{
		Type:    ItemMatch,
		Left:    []string{"L"},
		Choices: []string{"R"},
		Pairs:   []Pair{{Left: 0, Right: 0}},
	}
	if got := match.CorrectText(); got != "L->R" {
		t.Errorf("match CorrectText = %q", got)
	}
}

func TestFilter(t *testing.T) {
	qs := []Question{
		{ID: "1", Domain: DomainPeople},
		{ID: "2", Domain: DomainProcess},
		{ID: "3", Domain: DomainAgile},
	}
	got := Filter(qs, []Domain{DomainPeople, DomainAgile})
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Errorf("Filter = %+v", got)
	}
	if got := Filter(qs, nil); len(got) != 3 {
		t.Errorf("nil filter should keep all, got %d", len(got))
	}
}
