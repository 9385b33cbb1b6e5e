// Package session owns the state machine for one run through a sampled,
// shuffled subset of the bank: current position, per-question attempt
// history, flags, and aggregate results.
package session

import (
	"time"

	"github.com/abhisek/pmprep/internal/bank"
)

// Mode selects the feedback policy for a session.
type Mode string

const (
	// ModePractice gives immediate feedback; wrong choices are
	// eliminated and the learner retries until correct.
	ModePractice Mode = "practice"

	// ModeExam accepts exactly one submission per question and defers
	// feedback to the summary.
	ModeExam Mode = "exam"
)

// Phase is the lifecycle state of the machine.
type Phase int

const (
	PhaseUnstarted Phase = iota
	PhaseActive
	PhaseFinished
)

// Config is the session setup surface: filters, size, mode, and seeding.
type Config struct {
	// Size bounds the number of questions; clamped to the pool size.
	// Zero means the whole pool.
	Size int

	// Seed fixes the question-selection order when Seeded is true;
	// otherwise a fresh random seed is drawn.
	Seed   int64
	Seeded bool

	// FullyDeterministic additionally derives per-question choice order
	// from the seed. The default leaves choice order random even under
	// a fixed seed, matching how the trainer has historically behaved.
	FullyDeterministic bool

	Mode    Mode
	Domains []bank.Domain
}

// ResultKey identifies a result by session-local position plus question
// id. Auto-generated ids can collide across uploaded files, so position
// is part of the key.
type ResultKey struct {
	Position int
	ID       string
}

// Result records the outcome for one question.
type Result struct {
	QuestionID      string
	Position        int
	FirstTryCorrect bool
	Tries           int
	ElapsedMs       int
	AttemptLog      []int
}

// State is the active session. It is mutated synchronously by the
// package-level transition functions; there is no concurrent access.
type State struct {
	ID        string
	Mode      Mode
	Seed      int64 // effective selection seed, kept for reproducibility display
	Questions []bank.Question
	Position  int
	Phase     Phase

	Results map[ResultKey]*Result
	Flags   map[string]bool

	// Per-question transient state, reset by Advance.
	Eliminated        map[int]bool
	AttemptLog        []int
	LastCorrect       bool
	Tries             int
	QuestionStartTime time.Time

	StartTime time.Time
}

// Current returns the question at the current position, or nil once the
// session is finished.
func (s *State) Current() *bank.Question {
	if s.Phase != PhaseActive || s.Position >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Position]
}

// Finished reports whether the machine has reached its terminal phase.
func (s *State) Finished() bool {
	return s.Phase == PhaseFinished
}

// resultKeyAt builds the composite key for the question at position.
func (s *State) resultKeyAt(position int) ResultKey {
	return ResultKey{Position: position, ID: s.Questions[position].ID}
}

// ResultFor returns the recorded result for the question at position,
// or nil if none was recorded.
func (s *State) ResultFor(position int) *Result {
	if position < 0 || position >= len(s.Questions) {
		return nil
	}
	return s.Results[s.resultKeyAt(position)]
}
