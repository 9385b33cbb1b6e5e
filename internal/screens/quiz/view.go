package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmprep/internal/bank"
	"github.com/abhisek/pmprep/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}

	q := s.state.Current()
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Wrapping up...")
	}

	var b strings.Builder

	// Info line: domain left, flag marker right.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", q.Domain))

	infoRight := ""
	if s.state.Flags[q.ID] {
		infoRight = theme.Flagged.Render("⚑ flagged")
	}

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Question text.
	questionStyle := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, questionStyle.Render(q.Prompt)))
	b.WriteString("\n\n")

	if q.Type == bank.ItemMatch {
		b.WriteString(s.renderMatch(width, q))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))
	}

	if s.retryNote && !s.feedback {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render("Not quite. Pick again from what's left.")))
	}

	if s.feedback {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width, q))
	}

	return b.String()
}

// renderMatch shows the left items with their committed pairings and the
// right-hand choices to pick from.
func (s *QuizScreen) renderMatch(width int, q *bank.Question) string {
	var b strings.Builder

	for i, left := range q.Left {
		line := fmt.Sprintf("  %d. %s", i+1, left)
		switch {
		case i < len(s.matchPairs):
			right := ""
			if r := s.matchPairs[i].Right; r >= 0 && r < len(q.Choices) {
				right = q.Choices[r]
			}
			line += theme.Hint.Render(fmt.Sprintf("  -> %s", right))
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		case i == s.matchIdx:
			b.WriteString(theme.Selected.Render(line + "  <- matching"))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(s.choices.View())

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

func (s *QuizScreen) renderFeedback(width int, q *bank.Question) string {
	var b strings.Builder

	if s.lastCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", q.CorrectText())))
	}

	if q.Explanation != "" {
		b.WriteString("\n\n")
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expStyle.Render(q.Explanation)))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Answered questions are kept; the rest are skipped."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
