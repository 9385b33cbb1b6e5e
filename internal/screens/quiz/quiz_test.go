package quiz

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pmprep/internal/bank"
	"github.com/abhisek/pmprep/internal/session"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testState(t *testing.T, mode session.Mode) *session.State {
	t.Helper()
	pool := []bank.Question{
		{ID: "Q1", Domain: bank.DomainPeople, Prompt: "p1", Choices: []string{"w", "x", "y", "z"}, Type: bank.ItemSingle, CorrectIndex: 2},
		{ID: "Q2", Domain: bank.DomainProcess, Prompt: "p2", Choices: []string{"w", "x", "y", "z"}, Type: bank.ItemSingle, CorrectIndex: 0},
	}
	st, err := session.Start(pool, session.Config{
		Seed: 5, Seeded: true, FullyDeterministic: true, Mode: mode,
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	return st
}

func correctCursor(st *session.State) int {
	return st.Current().CorrectIndex
}

func wrongCursor(st *session.State) int {
	for i := range st.Current().Choices {
		if i != st.Current().CorrectIndex && !st.Eliminated[i] {
			return i
		}
	}
	return -1
}

func TestPracticeWrongEliminatesAndRetries(t *testing.T) {
	st := testState(t, session.ModePractice)
	s := New(st, nil, 0, "")

	wrong := wrongCursor(st)
	s.choices.MoveTo(wrong)
	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*QuizScreen)

	if !s.retryNote {
		t.Error("expected retry note after wrong answer")
	}
	if !s.choices.Eliminated[wrong] {
		t.Error("wrong choice not struck out")
	}
	if st.Position != 0 {
		t.Errorf("position = %d, want 0 (still on the question)", st.Position)
	}
}

func TestPracticeCorrectShowsFeedbackThenAdvances(t *testing.T) {
	st := testState(t, session.ModePractice)
	s := New(st, nil, 0, "")

	s.choices.MoveTo(correctCursor(st))
	updated, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*QuizScreen)

	if !s.feedback {
		t.Fatal("expected feedback state after correct answer")
	}
	if cmd == nil {
		t.Fatal("expected a pause tick command")
	}

	updated, _ = s.Update(advanceMsg{position: 0})
	s = updated.(*QuizScreen)
	if st.Position != 1 {
		t.Errorf("position = %d, want 1", st.Position)
	}
	if s.feedback {
		t.Error("feedback not cleared for the next question")
	}
}

func TestStaleAdvanceTickIgnored(t *testing.T) {
	st := testState(t, session.ModePractice)
	s := New(st, nil, 0, "")

	s.choices.MoveTo(correctCursor(st))
	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*QuizScreen)

	// A tick for a question that is no longer current must be a no-op.
	updated, _ = s.Update(advanceMsg{position: 5})
	s = updated.(*QuizScreen)
	if st.Position != 0 {
		t.Errorf("stale tick advanced the session: position = %d", st.Position)
	}
}

func TestExamAdvancesWithoutFeedback(t *testing.T) {
	st := testState(t, session.ModeExam)
	s := New(st, nil, 0, "")

	s.choices.MoveTo(wrongCursor(st))
	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s = updated.(*QuizScreen)

	if s.feedback {
		t.Error("exam mode must not show feedback")
	}
	if st.Position != 1 {
		t.Errorf("position = %d, want 1", st.Position)
	}
	if st.ResultFor(0) == nil {
		t.Error("exam submission not recorded")
	}
}

func TestFlagToggle(t *testing.T) {
	st := testState(t, session.ModePractice)
	s := New(st, nil, 0, "")

	qid := st.Current().ID
	updated, _ := s.Update(keyPress('f'))
	s = updated.(*QuizScreen)
	if !st.Flags[qid] {
		t.Error("flag not set")
	}
	s.Update(keyPress('f'))
	if st.Flags[qid] {
		t.Error("flag not cleared")
	}
}

func TestEscOpensQuitConfirm(t *testing.T) {
	st := testState(t, session.ModePractice)
	s := New(st, nil, 0, "")

	updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	s = updated.(*QuizScreen)
	if !s.quitConfirm {
		t.Fatal("expected quit confirmation")
	}

	updated, _ = s.Update(keyPress('n'))
	s = updated.(*QuizScreen)
	if s.quitConfirm {
		t.Error("quit confirmation not dismissed")
	}
}

func TestFinishTriggersSave(t *testing.T) {
	st := testState(t, session.ModeExam)
	s := New(st, nil, 0, "")

	for range st.Questions {
		s.choices.MoveTo(correctCursor(st))
		updated, _ := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		s = updated.(*QuizScreen)
	}

	if !st.Finished() {
		t.Fatal("session not finished")
	}
}
