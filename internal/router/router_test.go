package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/karthikv/numbersense/internal/screen"
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

func assertActive(t *testing.T, r *Router, name string) {
	t.Helper()
	if got := r.Active().Title(); got != name {
		t.Errorf("active screen = %q, want %q", got, name)
	}
}

func TestPushRunsInitAndActivates(t *testing.T) {
	r := New(&fakeScreen{name: "first"})

	second := &fakeScreen{name: "second"}
	r.Push(second)

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	assertActive(t, r, "second")
	if !second.initRan {
		t.Error("Init did not run on pushed screen")
	}
}

func TestPopRestoresPrevious(t *testing.T) {
	r := New(&fakeScreen{name: "first"})
	r.Push(&fakeScreen{name: "second"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	assertActive(t, r, "first")
}

func TestPopKeepsBottomScreen(t *testing.T) {
	r := New(&fakeScreen{name: "first"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	assertActive(t, r, "first")
}

func TestReplaceSwapsInPlace(t *testing.T) {
	r := New(&fakeScreen{name: "first"})

	second := &fakeScreen{name: "second"}
	r.Replace(second)

	if r.Depth() != 1 {
		t.Errorf("depth = %d, want 1", r.Depth())
	}
	assertActive(t, r, "second")
	if !second.initRan {
		t.Error("Init did not run on replacement screen")
	}
}

func TestReplaceKeepsStackDepth(t *testing.T) {
	r := New(&fakeScreen{name: "first"})
	r.Push(&fakeScreen{name: "second"})
	r.Replace(&fakeScreen{name: "third"})

	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}
	assertActive(t, r, "third")
}

func TestNavigationMessages(t *testing.T) {
	r := New(&fakeScreen{name: "first"})

	second := &fakeScreen{name: "second"}
	r.Update(PushScreenMsg{Screen: second})
	assertActive(t, r, "second")

	third := &fakeScreen{name: "third"}
	r.Update(ReplaceScreenMsg{Screen: third})
	assertActive(t, r, "third")
	if !third.initRan {
		t.Error("Init did not run via ReplaceScreenMsg")
	}

	r.Update(PopScreenMsg{})
	assertActive(t, r, "first")
}
