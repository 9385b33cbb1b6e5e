package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/pmprep/internal/screen"
)

type fakeScreen struct {
	name    string
	initRan bool
}

func (f *fakeScreen) Init() tea.Cmd {
	f.initRan = true
	return nil
}
func (f *fakeScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return f, nil }
func (f *fakeScreen) View(int, int) string                    { return f.name }
func (f *fakeScreen) Title() string                           { return f.name }

// expect checks the stack depth and the title of the active screen.
func expect(t *testing.T, r *Router, depth int, active string) {
	t.Helper()
	if got := r.Depth(); got != depth {
		t.Errorf("depth = %d, want %d", got, depth)
	}
	if got := r.Active().Title(); got != active {
		t.Errorf("active = %q, want %q", got, active)
	}
}

func TestPushActivatesAndInits(t *testing.T) {
	r := New(&fakeScreen{name: "first"})

	second := &fakeScreen{name: "second"}
	r.Push(second)

	expect(t, r, 2, "second")
	if !second.initRan {
		t.Error("pushed screen was not initialized")
	}
}

func TestPopRestoresPrevious(t *testing.T) {
	r := New(&fakeScreen{name: "first"})
	r.Push(&fakeScreen{name: "second"})
	r.Pop()

	expect(t, r, 1, "first")
}

func TestPopKeepsBottomScreen(t *testing.T) {
	r := New(&fakeScreen{name: "first"})
	r.Pop()

	expect(t, r, 1, "first")
}

func TestReplaceSwapsTop(t *testing.T) {
	r := New(&fakeScreen{name: "first"})

	second := &fakeScreen{name: "second"}
	r.Replace(second)

	expect(t, r, 1, "second")
	if !second.initRan {
		t.Error("replacement screen was not initialized")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	r := New(&fakeScreen{name: "first"})

	second := &fakeScreen{name: "second"}
	r.Update(ReplaceScreenMsg{Screen: second})

	expect(t, r, 1, "second")
	if !second.initRan {
		t.Error("replacement screen was not initialized")
	}
}

func TestReplaceKeepsLowerStack(t *testing.T) {
	r := New(&fakeScreen{name: "first"})
	r.Push(&fakeScreen{name: "second"})
	r.Replace(&fakeScreen{name: "third"})

	expect(t, r, 2, "third")
}
