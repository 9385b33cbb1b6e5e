// Package screen defines the contract between the app shell and the
// individual screens it hosts.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pmprep/internal/ui/layout"
)

// Screen is a self-contained view managed by the router. The shell owns
// the header and footer chrome; View renders only the content between
// them.
type Screen interface {
	Init() tea.Cmd

	// Update returns the screen to keep on the stack, which may be a
	// different one.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	View(width, height int) string

	// Title labels the screen in the header.
	Title() string
}

// KeyHintProvider lets a screen put its own key hints in the footer
// instead of the defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen put a status string in the header, such
// as the mode and question counter during a session.
type StatusProvider interface {
	Status() string
}
