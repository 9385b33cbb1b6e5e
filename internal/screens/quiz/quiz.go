// Package quiz runs one live session: it presents questions, applies the
// mode's feedback policy, and hands the finished state to the summary.
package quiz

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pmprep/internal/bank"
	"github.com/abhisek/pmprep/internal/router"
	"github.com/abhisek/pmprep/internal/screen"
	"github.com/abhisek/pmprep/internal/screens/summary"
	"github.com/abhisek/pmprep/internal/session"
	"github.com/abhisek/pmprep/internal/store"
	"github.com/abhisek/pmprep/internal/ui/components"
	"github.com/abhisek/pmprep/internal/ui/layout"
)

const defaultFeedbackPauseMs = 1200

// QuizScreen implements screen.Screen for an active session.
type QuizScreen struct {
	state     *session.State
	store     *store.Store
	pause     time.Duration
	exportDir string

	choices     components.ChoiceList
	matchIdx    int   // next left item awaiting a pair (match questions)
	matchPairs  []bank.Pair
	feedback    bool  // showing answer reveal before advancing
	lastCorrect bool
	retryNote   bool // practice: wrong submission, pick again
	quitConfirm bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a quiz screen over a started session.
func New(state *session.State, st *store.Store, pauseMs int, exportDir string) *QuizScreen {
	if pauseMs <= 0 {
		pauseMs = defaultFeedbackPauseMs
	}
	s := &QuizScreen{
		state:     state,
		store:     st,
		pause:     time.Duration(pauseMs) * time.Millisecond,
		exportDir: exportDir,
	}
	s.resetForQuestion()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	if s.state.Mode == session.ModeExam {
		return "Exam"
	}
	return "Practice"
}

func (s *QuizScreen) Status() string {
	return fmt.Sprintf("Q %d/%d", s.state.Position+1, len(s.state.Questions))
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.quitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.feedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "F", Description: "Flag"},
		{Key: "Esc", Description: "End"},
	}
	if q := s.state.Current(); q != nil && q.Type == bank.ItemMulti {
		hints = append([]layout.KeyHint{{Key: "Space", Description: "Toggle"}}, hints...)
	}
	return hints
}

// resetForQuestion rebuilds the per-question UI state.
func (s *QuizScreen) resetForQuestion() {
	q := s.state.Current()
	if q == nil {
		return
	}
	s.choices = components.NewChoiceList(q.Choices, q.Type == bank.ItemMulti)
	s.matchIdx = 0
	s.matchPairs = nil
	s.feedback = false
	s.retryNote = false
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		if s.feedback && msg.position == s.state.Position {
			return s.advance()
		}
		return s, nil

	case sessionEndMsg:
		return s, s.save()

	case savedMsg:
		sum := session.BuildSummary(s.state)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{
				Screen: summary.New(s.state, sum, msg.err, s.exportDir),
			}
		}

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if s.feedback {
		// Any key skips the remaining pause.
		return s.advance()
	}

	switch key {
	case "esc":
		s.quitConfirm = true
		return s, nil
	case "f", "F":
		session.ToggleFlag(s.state)
		return s, nil
	case "enter":
		return s.submit()
	case "backspace":
		if s.isMatch() && len(s.matchPairs) > 0 {
			s.matchPairs = s.matchPairs[:len(s.matchPairs)-1]
			s.matchIdx--
		}
		return s, nil
	case "1", "2", "3", "4":
		s.choices.MoveTo(int(key[0] - '1'))
		return s, nil
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	return s, cmd
}

func (s *QuizScreen) isMatch() bool {
	q := s.state.Current()
	return q != nil && q.Type == bank.ItemMatch
}

// submit hands the current selection to the session state machine and
// reacts to the outcome per the mode's policy.
func (s *QuizScreen) submit() (screen.Screen, tea.Cmd) {
	q := s.state.Current()
	if q == nil {
		return s, nil
	}

	var sel bank.Selection
	switch q.Type {
	case bank.ItemMulti:
		indices := s.choices.Selection()
		if len(indices) == 0 {
			return s, nil
		}
		sel.Indices = indices
	case bank.ItemMatch:
		// Enter pairs the cursor with the next unmatched left item.
		if s.matchIdx < len(q.Left) {
			s.matchPairs = append(s.matchPairs, bank.Pair{Left: s.matchIdx, Right: s.choices.Cursor})
			s.matchIdx++
			if s.matchIdx < len(q.Left) {
				return s, nil
			}
		}
		sel.Pairs = s.matchPairs
	default:
		sel.Index = s.choices.Cursor
	}

	outcome := session.SubmitSelection(s.state, sel)
	if !outcome.Recorded && !outcome.Correct && s.state.Mode == session.ModePractice {
		// Wrong in practice mode: strike out what was chosen, retry.
		s.retryNote = true
		switch q.Type {
		case bank.ItemMulti:
			var struck []int
			for _, i := range sel.Indices {
				if s.state.Eliminated[i] {
					struck = append(struck, i)
				}
			}
			s.choices.Eliminate(struck)
			s.choices.Checked = make(map[int]bool)
		case bank.ItemMatch:
			s.matchIdx = 0
			s.matchPairs = nil
		default:
			s.choices.Eliminate([]int{sel.Index})
		}
		return s, nil
	}

	if outcome.AdvanceNow {
		return s.advance()
	}

	// Practice: reveal the answer, pause, then move on.
	s.feedback = true
	s.lastCorrect = outcome.Correct
	s.choices.Reveal(correctIndices(q), chosenIndices(q, sel))
	pos := s.state.Position
	return s, tea.Tick(s.pause, func(time.Time) tea.Msg {
		return advanceMsg{position: pos}
	})
}

func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	session.Advance(s.state)
	if s.state.Finished() {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	s.resetForQuestion()
	return s, nil
}

// save persists the session asynchronously. A nil or failing store must
// not block the summary.
func (s *QuizScreen) save() tea.Cmd {
	state := s.state
	st := s.store
	return func() tea.Msg {
		if st == nil {
			return savedMsg{}
		}
		sum := session.BuildSummary(state)
		return savedMsg{err: st.SaveSession(context.Background(), state, sum)}
	}
}

func correctIndices(q *bank.Question) []int {
	switch q.Type {
	case bank.ItemMulti:
		return q.CorrectSet
	case bank.ItemMatch:
		var out []int
		for _, p := range q.Pairs {
			out = append(out, p.Right)
		}
		return out
	default:
		return []int{q.CorrectIndex}
	}
}

func chosenIndices(q *bank.Question, sel bank.Selection) []int {
	switch q.Type {
	case bank.ItemMulti:
		return sel.Indices
	case bank.ItemMatch:
		var out []int
		for _, p := range sel.Pairs {
			out = append(out, p.Right)
		}
		return out
	default:
		return []int{sel.Index}
	}
}
