package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmprep/internal/ui/theme"
)

// ChoiceList renders answer choices for one question. It supports a
// single-cursor mode and a checkbox mode for multi-answer items, plus
// per-choice eliminated and revealed states.
type ChoiceList struct {
	Options    []string
	Cursor     int
	MultiMode  bool
	Checked    map[int]bool
	Eliminated map[int]bool

	// Revealed switches rendering to answer-feedback mode: correct
	// choices in green, the wrongly chosen ones in red.
	Revealed   bool
	CorrectSet map[int]bool
	ChosenSet  map[int]bool
}

// NewChoiceList creates a choice list over the given options.
func NewChoiceList(options []string, multi bool) ChoiceList {
	return ChoiceList{
		Options:    options,
		MultiMode:  multi,
		Checked:    make(map[int]bool),
		Eliminated: make(map[int]bool),
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and checkbox toggling. Submission is
// the owning screen's concern.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || c.Revealed {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := c.Cursor - 1; i >= 0; i-- {
			if !c.Eliminated[i] {
				c.Cursor = i
				break
			}
		}
	case "down", "j":
		for i := c.Cursor + 1; i < len(c.Options); i++ {
			if !c.Eliminated[i] {
				c.Cursor = i
				break
			}
		}
	case "space", " ":
		if c.MultiMode && !c.Eliminated[c.Cursor] {
			c.Checked[c.Cursor] = !c.Checked[c.Cursor]
		}
	}

	return c, nil
}

// MoveTo places the cursor on index if it is selectable.
func (c *ChoiceList) MoveTo(index int) bool {
	if index < 0 || index >= len(c.Options) || c.Eliminated[index] {
		return false
	}
	c.Cursor = index
	return true
}

// Selection returns the chosen indices: the checked set in multi mode,
// the cursor otherwise.
func (c ChoiceList) Selection() []int {
	if !c.MultiMode {
		return []int{c.Cursor}
	}
	var out []int
	for i := range c.Options {
		if c.Checked[i] {
			out = append(out, i)
		}
	}
	return out
}

// Eliminate marks choices as struck out and moves the cursor off them.
func (c *ChoiceList) Eliminate(indices []int) {
	for _, i := range indices {
		if i >= 0 && i < len(c.Options) {
			c.Eliminated[i] = true
			delete(c.Checked, i)
		}
	}
	if c.Eliminated[c.Cursor] {
		for i := range c.Options {
			if !c.Eliminated[i] {
				c.Cursor = i
				break
			}
		}
	}
}

// Reveal switches to feedback rendering.
func (c *ChoiceList) Reveal(correct, chosen []int) {
	c.Revealed = true
	c.CorrectSet = make(map[int]bool, len(correct))
	for _, i := range correct {
		c.CorrectSet[i] = true
	}
	c.ChosenSet = make(map[int]bool, len(chosen))
	for _, i := range chosen {
		c.ChosenSet[i] = true
	}
}

// View renders the list.
func (c ChoiceList) View() string {
	labels := []string{"A", "B", "C", "D", "E", "F"}

	var s string
	for i, opt := range c.Options {
		label := fmt.Sprintf("%d", i+1)
		if i < len(labels) {
			label = labels[i]
		}

		marker := " "
		if c.MultiMode {
			marker = "[ ]"
			if c.Checked[i] {
				marker = "[x]"
			}
		}

		prefix := "  "
		if i == c.Cursor && !c.Revealed {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case c.Revealed && c.CorrectSet[i]:
			s += theme.Correct.Render(line) + "\n"
		case c.Revealed && c.ChosenSet[i]:
			s += theme.Incorrect.Render(line) + "\n"
		case c.Revealed:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case c.Eliminated[i]:
			s += theme.Eliminated.Render(line) + "\n"
		case i == c.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
