// Package setup is the entry screen: it shows where the question bank
// came from and lets the user shape the next session before starting it.
package setup

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/pmprep/internal/bank"
	"github.com/abhisek/pmprep/internal/config"
	"github.com/abhisek/pmprep/internal/router"
	"github.com/abhisek/pmprep/internal/screen"
	"github.com/abhisek/pmprep/internal/screens/history"
	"github.com/abhisek/pmprep/internal/screens/quiz"
	"github.com/abhisek/pmprep/internal/session"
	"github.com/abhisek/pmprep/internal/store"
	"github.com/abhisek/pmprep/internal/ui/components"
	"github.com/abhisek/pmprep/internal/ui/layout"
	"github.com/abhisek/pmprep/internal/ui/theme"
)

// focus selects which part of the screen receives key input.
type focus int

const (
	focusMenu focus = iota
	focusSize
	focusSeed
	focusDomains
)

type setupActionMsg struct {
	action string
}

// SetupScreen implements screen.Screen for session setup.
type SetupScreen struct {
	store *store.Store
	bank  bank.LoadResult
	cfg   config.Config

	mode     session.Mode
	size     int
	seed     int64
	seeded   bool
	domains  map[bank.Domain]bool
	focus    focus
	menu     components.Menu
	picker   components.ChoiceList
	input    components.TextInput
	errMsg   string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup screen from the loaded bank and config defaults.
func New(st *store.Store, loaded bank.LoadResult, cfg config.Config) *SetupScreen {
	s := &SetupScreen{
		store:   st,
		bank:    loaded,
		cfg:     cfg,
		mode:    session.Mode(cfg.Mode),
		size:    cfg.Size,
		domains: make(map[bank.Domain]bool),
	}
	if s.mode != session.ModeExam {
		s.mode = session.ModePractice
	}
	if cfg.Seed != nil {
		s.seed = *cfg.Seed
		s.seeded = true
	}
	for _, d := range cfg.Domains {
		if dom, ok := bank.ParseDomain(d); ok {
			s.domains[dom] = true
		}
	}
	s.menu = s.buildMenu()
	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Session"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	switch s.focus {
	case focusSize, focusSeed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Confirm"},
			{Key: "Esc", Description: "Cancel"},
		}
	case focusDomains:
		return []layout.KeyHint{
			{Key: "Space", Description: "Toggle"},
			{Key: "Enter", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
}

func (s *SetupScreen) buildMenu() components.Menu {
	emit := func(action string) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return setupActionMsg{action: action} }
		}
	}
	items := []components.MenuItem{
		{Label: "Start session", Action: emit("start")},
		{Label: fmt.Sprintf("Mode: %s", s.mode), Action: emit("mode")},
		{Label: fmt.Sprintf("Questions: %s", s.sizeLabel()), Action: emit("size")},
		{Label: fmt.Sprintf("Domains: %s", s.domainLabel()), Action: emit("domains")},
		{Label: fmt.Sprintf("Seed: %s", s.seedLabel()), Action: emit("seed")},
		{Label: "History", Action: emit("history")},
		{Label: "Quit", Action: emit("quit")},
	}
	menu := components.NewMenu(items)
	menu.Selected = s.menu.Selected
	if menu.Selected >= len(items) {
		menu.Selected = 0
	}
	return menu
}

func (s *SetupScreen) sizeLabel() string {
	if s.size <= 0 {
		return "all"
	}
	return strconv.Itoa(s.size)
}

func (s *SetupScreen) seedLabel() string {
	if !s.seeded {
		return "random"
	}
	return strconv.FormatInt(s.seed, 10)
}

func (s *SetupScreen) domainLabel() string {
	var picked []string
	for _, d := range bank.AllDomains {
		if s.domains[d] {
			picked = append(picked, string(d))
		}
	}
	if len(picked) == 0 || len(picked) == len(bank.AllDomains) {
		return "all"
	}
	return strings.Join(picked, ", ")
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case setupActionMsg:
		return s.handleAction(msg.action)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SetupScreen) handleAction(action string) (screen.Screen, tea.Cmd) {
	s.errMsg = ""
	switch action {
	case "start":
		return s.startSession()
	case "mode":
		if s.mode == session.ModePractice {
			s.mode = session.ModeExam
		} else {
			s.mode = session.ModePractice
		}
		s.menu = s.buildMenu()
	case "size":
		s.focus = focusSize
		s.input = components.NewTextInput("number of questions", true, 4)
		return s, s.input.Init()
	case "seed":
		s.focus = focusSeed
		s.input = components.NewTextInput("seed (blank = random)", true, 18)
		return s, s.input.Init()
	case "domains":
		s.focus = focusDomains
		labels := make([]string, len(bank.AllDomains))
		for i, d := range bank.AllDomains {
			labels[i] = string(d)
		}
		picker := components.NewChoiceList(labels, true)
		for i, d := range bank.AllDomains {
			picker.Checked[i] = s.domains[d]
		}
		s.picker = picker
	case "history":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: history.New(s.store)}
		}
	case "quit":
		return s, tea.Quit
	}
	return s, nil
}

func (s *SetupScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.focus {
	case focusSize, focusSeed:
		switch key {
		case "esc":
			s.focus = focusMenu
			return s, nil
		case "enter":
			s.applyInput()
			s.focus = focusMenu
			s.menu = s.buildMenu()
			return s, nil
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case focusDomains:
		switch key {
		case "enter", "esc":
			for i, d := range bank.AllDomains {
				s.domains[d] = s.picker.Checked[i]
			}
			s.focus = focusMenu
			s.menu = s.buildMenu()
			return s, nil
		}
		var cmd tea.Cmd
		s.picker, cmd = s.picker.Update(msg)
		return s, cmd
	}

	if key == "esc" {
		return s, tea.Quit
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SetupScreen) applyInput() {
	raw := strings.TrimSpace(s.input.Value())
	switch s.focus {
	case focusSize:
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			s.size = n
		}
	case focusSeed:
		if raw == "" {
			s.seeded = false
			return
		}
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			s.seed = n
			s.seeded = true
		}
	}
}

func (s *SetupScreen) startSession() (screen.Screen, tea.Cmd) {
	cfg := session.Config{
		Size:               s.size,
		Seed:               s.seed,
		Seeded:             s.seeded,
		FullyDeterministic: s.cfg.FullyDeterministic,
		Mode:               s.mode,
	}
	for _, d := range bank.AllDomains {
		if s.domains[d] {
			cfg.Domains = append(cfg.Domains, d)
		}
	}

	state, err := session.Start(s.bank.Questions, cfg)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	pauseMs := s.cfg.FeedbackPauseMs
	exportDir := s.cfg.ExportDir
	return s, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: quiz.New(state, s.store, pauseMs, exportDir),
		}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	sourceLine := fmt.Sprintf("Bank: %d questions (%s)", len(s.bank.Questions), s.bank.Source)
	if s.bank.Path != "" {
		sourceLine += "  " + s.bank.Path
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render(sourceLine)))
	b.WriteString("\n")

	if n := len(s.bank.Warnings); n > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).
				Render(fmt.Sprintf("%d bank warning(s), run `pmprep check` for details", n))))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch s.focus {
	case focusSize:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			"Questions per session: "+s.input.View()))
	case focusSeed:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			"Shuffle seed: "+s.input.View()))
	case focusDomains:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.picker.View()))
	default:
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(s.errMsg)))
	}

	return b.String()
}
