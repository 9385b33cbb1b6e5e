package session

import (
	"math"
	"time"

	"github.com/abhisek/pmprep/internal/bank"
)

// DomainResult aggregates first-try performance for one domain.
type DomainResult struct {
	Domain          bank.Domain
	Total           int
	FirstTryCorrect int
}

// Summary holds the data displayed on the summary screen and persisted
// to history.
type Summary struct {
	SessionID       string
	Mode            Mode
	Seed            int64
	Duration        time.Duration
	Total           int
	FirstTryCorrect int
	AccuracyPercent int // first-try accuracy, rounded to nearest percent
	ByDomain        []DomainResult
	Flagged         []string // flagged question ids, in session order
}

// BuildSummary computes the aggregate view of a session. It can be
// called on an unfinished session; questions without results simply
// count as not first-try correct.
func BuildSummary(s *State) *Summary {
	sum := &Summary{
		SessionID: s.ID,
		Mode:      s.Mode,
		Seed:      s.Seed,
		Duration:  time.Since(s.StartTime),
		Total:     len(s.Questions),
	}

	byDomain := make(map[bank.Domain]*DomainResult)
	for _, d := range bank.AllDomains {
		byDomain[d] = &DomainResult{Domain: d}
	}

	for i, q := range s.Questions {
		dr := byDomain[q.Domain]
		if dr == nil {
			continue
		}
		dr.Total++
		if r := s.ResultFor(i); r != nil && r.FirstTryCorrect {
			dr.FirstTryCorrect++
			sum.FirstTryCorrect++
		}
		if s.Flags[q.ID] {
			sum.Flagged = append(sum.Flagged, q.ID)
		}
	}

	for _, d := range bank.AllDomains {
		if dr := byDomain[d]; dr.Total > 0 {
			sum.ByDomain = append(sum.ByDomain, *dr)
		}
	}

	if sum.Total > 0 {
		sum.AccuracyPercent = int(math.Round(float64(sum.FirstTryCorrect) / float64(sum.Total) * 100))
	}
	return sum
}
