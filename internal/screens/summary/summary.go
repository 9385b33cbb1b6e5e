// Package summary shows the results of a finished session and offers
// the CSV export.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmprep/internal/export"
	"github.com/abhisek/pmprep/internal/router"
	"github.com/abhisek/pmprep/internal/screen"
	"github.com/abhisek/pmprep/internal/session"
	"github.com/abhisek/pmprep/internal/ui/components"
	"github.com/abhisek/pmprep/internal/ui/layout"
	"github.com/abhisek/pmprep/internal/ui/theme"
)

type exportDoneMsg struct {
	path string
	err  error
}

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	state     *session.State
	summary   *session.Summary
	saveErr   error
	exportDir string

	exportPath string
	exportErr  error
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a summary screen. saveErr carries a failed history write
// so the user learns about it without losing the summary.
func New(state *session.State, sum *session.Summary, saveErr error, exportDir string) *SummaryScreen {
	return &SummaryScreen{
		state:     state,
		summary:   sum,
		saveErr:   saveErr,
		exportDir: exportDir,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "E", Description: "Export CSV"},
		{Key: "Enter", Description: "Done"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case exportDoneMsg:
		s.exportPath = msg.path
		s.exportErr = msg.err
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "e", "E":
			state := s.state
			dir := s.exportDir
			return s, func() tea.Msg {
				path, err := export.WriteFile(state, dir)
				return exportDoneMsg{path: path, err: err}
			}
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s mode        Duration: %d:%02d        Seed: %d",
			sum.Mode, mins, secs, sum.Seed)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Questions: %d        First-try correct: %d        Accuracy: %d%%",
		sum.Total, sum.FirstTryCorrect, sum.AccuracyPercent)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Domains")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, dr := range sum.ByDomain {
		if dr.Total == 0 {
			continue
		}
		bar := components.ProgressBar{
			Label:       fmt.Sprintf("%-10s %2d/%2d", dr.Domain, dr.FirstTryCorrect, dr.Total),
			Percent:     float64(dr.FirstTryCorrect) / float64(dr.Total),
			Width:       min(width-8, 60),
			ShowPercent: true,
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}

	if len(sum.Flagged) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Flagged.Render(fmt.Sprintf("⚑ %d flagged for review: %s",
				len(sum.Flagged), strings.Join(sum.Flagged, ", ")))))
		b.WriteString("\n")
	}

	if s.saveErr != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(fmt.Sprintf("History not saved: %v", s.saveErr))))
		b.WriteString("\n")
	}

	switch {
	case s.exportErr != nil:
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(fmt.Sprintf("Export failed: %v", s.exportErr))))
	case s.exportPath != "":
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Success).
				Render(fmt.Sprintf("Exported to %s", s.exportPath))))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
