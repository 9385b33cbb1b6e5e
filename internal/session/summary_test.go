package session

import (
	"testing"

	"github.com/abhisek/pmprep/internal/bank"
)

func TestBuildSummary_AccuracyRounding(t *testing.T) {
	s := startTest(t, Config{Size: 3, Mode: ModeExam, Seed: 8, Seeded: true})

	// 2 of 3 first-try correct => 66.67% => 67.
	for i := 0; i < 3; i++ {
		idx := correctIdx(t, s)
		if i == 2 {
			idx = wrongIdx(t, s)
		}
		SubmitSelection(s, bank.Selection{Index: idx})
		Advance(s)
	}

	sum := BuildSummary(s)
	if sum.Total != 3 || sum.FirstTryCorrect != 2 {
		t.Fatalf("summary = %+v", sum)
	}
	if sum.AccuracyPercent != 67 {
		t.Errorf("AccuracyPercent = %d, want 67", sum.AccuracyPercent)
	}
}

func TestBuildSummary_DomainBreakdownAndFlags(t *testing.T) {
	s := startTest(t, Config{Mode: ModeExam, Seed: 8, Seeded: true})

	flaggedID := s.Current().ID
	ToggleFlag(s)
	for !s.Finished() {
		SubmitSelection(s, bank.Selection{Index: correctIdx(t, s)})
		Advance(s)
	}

	sum := BuildSummary(s)
	if len(sum.ByDomain) != 4 {
		t.Errorf("ByDomain has %d entries, want 4 (one question per domain)", len(sum.ByDomain))
	}
	for _, dr := range sum.ByDomain {
		if dr.Total != 1 {
			t.Errorf("domain %s Total = %d, want 1", dr.Domain, dr.Total)
		}
	}
	if len(sum.Flagged) != 1 || sum.Flagged[0] != flaggedID {
		t.Errorf("Flagged = %v, want [%s]", sum.Flagged, flaggedID)
	}
	if sum.AccuracyPercent != 100 {
		t.Errorf("AccuracyPercent = %d, want 100", sum.AccuracyPercent)
	}
}

func TestBuildSummary_EmptyResults(t *testing.T) {
	s := startTest(t, Config{Mode: ModePractice, Seed: 8, Seeded: true})
	sum := BuildSummary(s)
	if sum.FirstTryCorrect != 0 || sum.AccuracyPercent != 0 {
		t.Errorf("summary of untouched session = %+v", sum)
	}
}
