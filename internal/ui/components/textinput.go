package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// TextInput wraps bubbles/textinput with an optional digits-only filter
// for fields like question count and seed.
type TextInput struct {
	Model       textinput.Model
	NumericOnly bool
}

func NewTextInput(placeholder string, numericOnly bool, maxWidth int) TextInput {
	m := textinput.New()
	m.Placeholder = placeholder
	if maxWidth > 0 {
		m.CharLimit = maxWidth
	}
	m.Focus()

	return TextInput{Model: m, NumericOnly: numericOnly}
}

func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update forwards the message to the inner model, swallowing printable
// non-digit keys when the filter is on.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && t.NumericOnly {
		if key := kmsg.String(); len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return t, nil
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

func (t TextInput) View() string {
	return t.Model.View()
}

func (t TextInput) Value() string {
	return t.Model.Value()
}
