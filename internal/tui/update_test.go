package tui

import (
	"io"
	"testing"

	"github.com/Iron-Ham/tally/internal/config"
	"github.com/Iron-Ham/tally/internal/logging"
	"github.com/Iron-Ham/tally/internal/store"
	"github.com/Iron-Ham/tally/internal/tui/keymap"
	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T) (Model, *store.Store) {
	t.Helper()
	st := store.New(nil)
	cfg := config.DefaultConfig()
	return NewModel(st, cfg, logging.NewTestLogger(io.Discard)), st
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return next, cmd
}

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestUpdate_IncrementDecrement(t *testing.T) {
	m, st := newTestModel(t)

	m, _ = press(t, m, runeMsg('+'))
	m, _ = press(t, m, runeMsg('+'))
	m, _ = press(t, m, runeMsg('-'))

	if got := st.State().Count; got != 1 {
		t.Errorf("Expected count 1 after ++-, got %d", got)
	}
	if got := st.State().Text; got != "" {
		t.Errorf("Counter keys must not touch text, got %q", got)
	}
}

func TestUpdate_ArrowKeys(t *testing.T) {
	m, st := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp})

	if got := st.State().Count; got != 1 {
		t.Errorf("Expected count 1, got %d", got)
	}
}

func TestUpdate_FocusSwitch(t *testing.T) {
	m, _ := newTestModel(t)

	if m.focus != panelCounter {
		t.Fatal("Counter panel should start focused")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != panelNote {
		t.Error("Tab should move focus to the note panel")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != panelCounter {
		t.Error("Tab should move focus back to the counter panel")
	}
}

func TestUpdate_InsertMode(t *testing.T) {
	m, st := newTestModel(t)

	m, cmd := press(t, m, runeMsg('i'))
	if m.mode != keymap.ModeInsert {
		t.Fatal("'i' should enter insert mode")
	}
	if m.focus != panelNote {
		t.Error("Insert mode should focus the note panel")
	}
	if cmd == nil {
		t.Error("Entering insert mode should return the blink command")
	}

	// Typed keys are forwarded to the input and dispatched to the store.
	m, _ = press(t, m, runeMsg('h'))
	m, _ = press(t, m, runeMsg('i'))

	if got := st.State().Text; got != "hi" {
		t.Errorf("Expected text %q after typing, got %q", "hi", got)
	}
	if got := st.State().Count; got != 0 {
		t.Errorf("Typing must not touch count, got %d", got)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != keymap.ModeNormal {
		t.Error("Esc should leave insert mode")
	}
	if got := st.State().Text; got != "hi" {
		t.Errorf("Leaving insert mode must keep the text, got %q", got)
	}
}

func TestUpdate_CounterKeysInactiveWhileInserting(t *testing.T) {
	m, st := newTestModel(t)

	m, _ = press(t, m, runeMsg('i'))
	m, _ = press(t, m, runeMsg('+'))

	if got := st.State().Count; got != 0 {
		t.Errorf("'+' in insert mode should edit the note, not the counter; count=%d", got)
	}
	if got := st.State().Text; got != "+" {
		t.Errorf("'+' in insert mode should append to the note, got %q", got)
	}
}

func TestUpdate_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := press(t, m, runeMsg('q'))
	if !m.quitting {
		t.Error("'q' should mark the model quitting")
	}
	if cmd == nil {
		t.Error("'q' should return the quit command")
	}
}

func TestUpdate_QuitFromInsertMode(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runeMsg('i'))
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if !m.quitting {
		t.Error("Ctrl+C should quit even in insert mode")
	}
	if cmd == nil {
		t.Error("Ctrl+C should return the quit command")
	}
}

func TestUpdate_ToggleHelp(t *testing.T) {
	m, _ := newTestModel(t)

	before := m.showHelp
	m, _ = press(t, m, runeMsg('?'))
	if m.showHelp == before {
		t.Error("'?' should toggle the help footer")
	}
	m, _ = press(t, m, runeMsg('?'))
	if m.showHelp != before {
		t.Error("'?' twice should restore the help footer")
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(Model)

	if m.width != 80 || m.height != 24 {
		t.Errorf("Expected 80x24, got %dx%d", m.width, m.height)
	}
}

func TestUpdate_StateChangedSyncsInput(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(stateChangedMsg{state: store.State{Count: 2, Text: "external"}})
	m = updated.(Model)

	if got := m.input.Value(); got != "external" {
		t.Errorf("Input should sync to the new state in normal mode, got %q", got)
	}
}

func TestUpdate_StateChangedLeavesInputWhileInserting(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runeMsg('i'))
	m, _ = press(t, m, runeMsg('x'))

	updated, _ := m.Update(stateChangedMsg{state: store.State{Text: "x"}})
	m = updated.(Model)

	if got := m.input.Value(); got != "x" {
		t.Errorf("Insert-mode input should keep the user's edit, got %q", got)
	}
}

func TestUpdate_ErrMsg(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(errMsg{err: io.ErrUnexpectedEOF})
	m = updated.(Model)

	if m.errText == "" {
		t.Error("errMsg should surface in the status line")
	}
}
