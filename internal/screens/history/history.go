// Package history lists stored sessions with expandable per-question
// detail.
package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmprep/internal/router"
	"github.com/abhisek/pmprep/internal/screen"
	"github.com/abhisek/pmprep/internal/store"
	"github.com/abhisek/pmprep/internal/ui/layout"
	"github.com/abhisek/pmprep/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []store.SessionRecord
	Err      error
}

type attemptsLoadedMsg struct {
	SessionID string
	Attempts  []store.AttemptRecord
}

// HistoryScreen displays past sessions.
type HistoryScreen struct {
	store    *store.Store
	sessions []store.SessionRecord
	attempts map[string][]store.AttemptRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(st *store.Store) *HistoryScreen {
	return &HistoryScreen{
		store:    st,
		attempts: make(map[string][]store.AttemptRecord),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	st := s.store
	return func() tea.Msg {
		if st == nil {
			return historyLoadedMsg{}
		}
		sessions, err := st.RecentSessions(context.Background(), 50)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Sessions: sessions}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
		}
		s.loaded = true
		return s, nil

	case attemptsLoadedMsg:
		s.attempts[msg.SessionID] = msg.Attempts
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			return s.toggleDetails()
		}
	}
	return s, nil
}

// toggleDetails expands the selected session, lazily loading its attempts.
func (s *HistoryScreen) toggleDetails() (screen.Screen, tea.Cmd) {
	if s.selected >= len(s.sessions) {
		return s, nil
	}
	s.expanded[s.selected] = !s.expanded[s.selected]

	rec := s.sessions[s.selected]
	if _, ok := s.attempts[rec.ID]; ok || !s.expanded[s.selected] || s.store == nil {
		return s, nil
	}
	st := s.store
	return s, func() tea.Msg {
		attempts, err := st.SessionAttempts(context.Background(), rec.ID)
		if err != nil {
			return attemptsLoadedMsg{SessionID: rec.ID}
		}
		return attemptsLoadedMsg{SessionID: rec.ID, Attempts: attempts}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start practicing!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, rec := range s.sessions {
		dateStr := rec.StartedAt.Format("Jan 02, 2006")
		mins := int(rec.Duration.Minutes())
		secs := int(rec.Duration.Seconds()) % 60

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %d:%02d  %d questions  %d%% first-try",
			prefix, dateStr, rec.Mode, mins, secs, rec.Total, rec.AccuracyPct)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			s.renderAttempts(&b, width, rec.ID)
		}
	}

	return b.String()
}

func (s *HistoryScreen) renderAttempts(b *strings.Builder, width int, sessionID string) {
	attempts, ok := s.attempts[sessionID]
	if !ok {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("    loading...")))
		b.WriteString("\n")
		return
	}
	for _, a := range attempts {
		mark := theme.Incorrect.Render("✗")
		switch {
		case !a.Answered:
			mark = lipgloss.NewStyle().Foreground(theme.TextDim).Render("—")
		case a.FirstTryCorrect:
			mark = theme.Correct.Render("✓")
		}
		flag := ""
		if a.Flagged {
			flag = "  " + theme.Flagged.Render("⚑")
		}
		line := fmt.Sprintf("    %s %-8s [%s] %s%s", mark, a.QuestionID, a.Domain, truncate(a.Question, 48), flag)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
		b.WriteString("\n")
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
