package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/pmprep/internal/bank"
	"github.com/abhisek/pmprep/internal/shuffle"
)

// ErrEmptyPool is returned when the filtered bank has no questions.
var ErrEmptyPool = errors.New("no questions available for the selected domains")

// Start builds an Active session from the pool: filters by domain,
// samples and orders the questions with the selection seed, and permutes
// each question's choices independently (remapping correctness through
// the permutation). The returned state is ready for SubmitSelection.
func Start(pool []bank.Question, cfg Config) (*State, error) {
	filtered := bank.Filter(pool, cfg.Domains)
	if len(filtered) == 0 {
		return nil, ErrEmptyPool
	}

	seed := cfg.Seed
	if !cfg.Seeded {
		seed = shuffle.NewRandom().Int63()
	}

	questions := shuffle.Sample(filtered, cfg.Size, shuffle.New(seed))

	// Choice order is a separate layer of randomness. Only the fully
	// deterministic mode derives it from the selection seed; the default
	// keeps question order reproducible and choice order fresh.
	var choiceRNG *shuffle.RNG
	if cfg.FullyDeterministic {
		choiceRNG = shuffle.New(seed + 1)
	} else {
		choiceRNG = shuffle.NewRandom()
	}
	for i, q := range questions {
		perm := shuffle.Perm(len(q.Choices), choiceRNG)
		questions[i] = q.PermuteChoices(perm)
	}

	mode := cfg.Mode
	if mode == "" {
		mode = ModePractice
	}

	now := time.Now()
	return &State{
		ID:                uuid.New().String(),
		Mode:              mode,
		Seed:              seed,
		Questions:         questions,
		Phase:             PhaseActive,
		Results:           make(map[ResultKey]*Result, len(questions)),
		Flags:             make(map[string]bool),
		Eliminated:        make(map[int]bool),
		StartTime:         now,
		QuestionStartTime: now,
	}, nil
}

// Outcome reports what a submission did so the caller can drive the UI.
type Outcome struct {
	Correct  bool
	Recorded bool // a result was written for the current question
	// AdvanceNow is set when the machine expects an immediate Advance
	// (exam mode). Practice mode advances after the feedback pause.
	AdvanceNow bool
}

// SubmitSelection processes a learner's answer for the current question.
// Valid only in the Active phase; submissions on eliminated choices or a
// finished session are no-ops.
func SubmitSelection(s *State, sel bank.Selection) Outcome {
	q := s.Current()
	if q == nil {
		return Outcome{}
	}

	if s.Mode == ModePractice && q.Type == bank.ItemSingle && s.Eliminated[sel.Index] {
		return Outcome{}
	}

	correct := q.IsCorrect(sel)
	s.Tries++
	s.LastCorrect = correct
	appendAttempt(s, q, sel)

	if s.Mode == ModeExam {
		// One submission per question, recorded regardless of correctness.
		recordResult(s, correct)
		return Outcome{Correct: correct, Recorded: true, AdvanceNow: true}
	}

	if correct {
		recordResult(s, correct)
		return Outcome{Correct: true, Recorded: true}
	}

	// Eliminate the chosen option(s) for the rest of this question. For
	// multi items only the wrongly chosen options are disabled, so a
	// correct option picked in a wrong combination stays selectable.
	switch q.Type {
	case bank.ItemMulti:
		correct := make(map[int]bool, len(q.CorrectSet))
		for _, idx := range q.CorrectSet {
			correct[idx] = true
		}
		for _, idx := range sel.Indices {
			if !correct[idx] {
				s.Eliminated[idx] = true
			}
		}
	case bank.ItemSingle:
		s.Eliminated[sel.Index] = true
	}
	return Outcome{Correct: false}
}

// Advance moves to the next question, resetting per-question transient
// state, or transitions to Finished past the last index.
func Advance(s *State) {
	if s.Phase != PhaseActive {
		return
	}
	if s.Position >= len(s.Questions)-1 {
		s.Position = len(s.Questions)
		s.Phase = PhaseFinished
		return
	}
	s.Position++
	s.Eliminated = make(map[int]bool)
	s.AttemptLog = nil
	s.Tries = 0
	s.LastCorrect = false
	s.QuestionStartTime = time.Now()
}

// ToggleFlag flips the review flag on the current question. Flags do not
// affect scoring or advancement.
func ToggleFlag(s *State) {
	q := s.Current()
	if q == nil {
		return
	}
	if s.Flags[q.ID] {
		delete(s.Flags, q.ID)
	} else {
		s.Flags[q.ID] = true
	}
}

// recordResult writes the result for the current question. Elapsed time
// runs from the moment the question became current to this terminal
// submission.
func recordResult(s *State, correct bool) {
	key := s.resultKeyAt(s.Position)
	log := make([]int, len(s.AttemptLog))
	copy(log, s.AttemptLog)
	s.Results[key] = &Result{
		QuestionID:      key.ID,
		Position:        s.Position,
		FirstTryCorrect: correct && s.Tries == 1,
		Tries:           s.Tries,
		ElapsedMs:       int(time.Since(s.QuestionStartTime).Milliseconds()),
		AttemptLog:      log,
	}
}

func appendAttempt(s *State, q *bank.Question, sel bank.Selection) {
	switch q.Type {
	case bank.ItemMulti:
		s.AttemptLog = append(s.AttemptLog, sel.Indices...)
	case bank.ItemMatch:
		for _, p := range sel.Pairs {
			s.AttemptLog = append(s.AttemptLog, p.Left, p.Right)
		}
	default:
		s.AttemptLog = append(s.AttemptLog, sel.Index)
	}
}
