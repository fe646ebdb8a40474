package settings

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/karthikv/numbersense/internal/progress"
	"github.com/karthikv/numbersense/internal/screen"
	prefs "github.com/karthikv/numbersense/internal/settings"
)

type memKV struct {
	data map[string]string
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testScreen() (*SettingsScreen, *prefs.Store) {
	store := prefs.NewStore(newMemKV())
	ledger := progress.NewLedger(newMemKV())
	return New(store, ledger), store
}

func TestSettingsScreen_AdjustQuestionsPerSet(t *testing.T) {
	s, store := testScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('l'))
	ss := scr.(*SettingsScreen)

	if ss.current.QuestionsPerSet != 15 {
		t.Errorf("questionsPerSet = %d, want 15", ss.current.QuestionsPerSet)
	}
	if got := store.Get(context.Background()).QuestionsPerSet; got != 15 {
		t.Errorf("stored questionsPerSet = %d, want 15", got)
	}

	scr, _ = ss.Update(keyPress('h'))
	ss = scr.(*SettingsScreen)
	if ss.current.QuestionsPerSet != 10 {
		t.Errorf("questionsPerSet = %d, want 10 after decrement", ss.current.QuestionsPerSet)
	}
}

func TestSettingsScreen_QuestionsPerSetFloor(t *testing.T) {
	s, _ := testScreen()

	var scr screen.Screen = s
	for i := 0; i < 5; i++ {
		scr, _ = scr.Update(keyPress('h'))
	}
	ss := scr.(*SettingsScreen)

	if ss.current.QuestionsPerSet != prefs.MinQuestionsPerSet {
		t.Errorf("questionsPerSet = %d, want floor %d",
			ss.current.QuestionsPerSet, prefs.MinQuestionsPerSet)
	}
}

func TestSettingsScreen_CycleTheme(t *testing.T) {
	s, _ := testScreen()
	s.selected = fieldTheme

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('l'))
	ss := scr.(*SettingsScreen)

	if ss.current.Theme == "system" {
		t.Error("expected theme to move off the default")
	}

	// A full lap lands back on the default.
	scr, _ = ss.Update(keyPress('l'))
	scr, _ = scr.Update(keyPress('l'))
	ss = scr.(*SettingsScreen)
	if ss.current.Theme != "system" {
		t.Errorf("theme = %q, want %q after a full cycle", ss.current.Theme, "system")
	}
}

func TestSettingsScreen_CycleColorTheme(t *testing.T) {
	s, store := testScreen()
	s.selected = fieldColorTheme

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('l'))
	ss := scr.(*SettingsScreen)

	if ss.current.ColorTheme == "theme-default" {
		t.Error("expected color theme to change")
	}
	if got := store.Get(context.Background()).ColorTheme; got != ss.current.ColorTheme {
		t.Errorf("stored colorTheme = %q, want %q", got, ss.current.ColorTheme)
	}
}

func TestSettingsScreen_ClearProgress(t *testing.T) {
	store := prefs.NewStore(newMemKV())
	ledger := progress.NewLedger(newMemKV())
	ledger.Update(context.Background(), "geography", progress.Attempt{Correct: true, TimeTaken: 3, SetSize: 10})

	s := New(store, ledger)
	s.selected = fieldClear

	var scr screen.Screen = s
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	ss := scr.(*SettingsScreen)
	if !ss.showClearConfirm {
		t.Fatal("expected clear confirmation dialog")
	}

	scr, _ = ss.Update(keyPress('y'))
	ss = scr.(*SettingsScreen)
	if ss.showClearConfirm {
		t.Error("expected confirmation to be dismissed")
	}
	rec := ledger.Get(context.Background(), "geography")
	if rec.Overall.Attempted != 0 {
		t.Errorf("overall attempted = %d, want 0 after clear", rec.Overall.Attempted)
	}
}

func TestSettingsScreen_ClearProgress_Declined(t *testing.T) {
	store := prefs.NewStore(newMemKV())
	ledger := progress.NewLedger(newMemKV())
	ledger.Update(context.Background(), "geography", progress.Attempt{Correct: true, TimeTaken: 3, SetSize: 10})

	s := New(store, ledger)
	s.selected = fieldClear

	var scr screen.Screen = s
	scr, _ = scr.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	scr, _ = scr.Update(keyPress('n'))
	ss := scr.(*SettingsScreen)

	if ss.showClearConfirm {
		t.Error("expected confirmation to be dismissed")
	}
	rec := ledger.Get(context.Background(), "geography")
	if rec.Overall.Attempted != 1 {
		t.Errorf("overall attempted = %d, want progress kept", rec.Overall.Attempted)
	}
}

func TestSettingsScreen_EscPops(t *testing.T) {
	s, _ := testScreen()

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a pop command on esc")
	}
}
