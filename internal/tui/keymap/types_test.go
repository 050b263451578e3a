package keymap

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeymap_HasAllModes(t *testing.T) {
	km := DefaultKeymap()

	for _, mode := range []Mode{ModeNormal, ModeInsert} {
		if _, ok := km.Modes[mode]; !ok {
			t.Errorf("Default keymap missing mode %s", mode)
		}
	}
}

func TestLookup_RuneBindings(t *testing.T) {
	km := DefaultKeymap()

	cases := []struct {
		r    rune
		want Command
	}{
		{'+', CmdIncrement},
		{'=', CmdIncrement},
		{'k', CmdIncrement},
		{'-', CmdDecrement},
		{'j', CmdDecrement},
		{'i', CmdEnterInsert},
		{'?', CmdToggleHelp},
		{'q', CmdQuit},
	}

	for _, tc := range cases {
		cmd, ok := km.Lookup(ModeNormal, runeKey(tc.r))
		if !ok {
			t.Errorf("Expected %q to be bound in normal mode", tc.r)
			continue
		}
		if cmd != tc.want {
			t.Errorf("Lookup(%q) = %s, want %s", tc.r, cmd, tc.want)
		}
	}
}

func TestLookup_SpecialKeys(t *testing.T) {
	km := DefaultKeymap()

	if cmd, ok := km.Lookup(ModeNormal, tea.KeyMsg{Type: tea.KeyTab}); !ok || cmd != CmdFocusNext {
		t.Errorf("Tab should map to focus_next, got %s (%v)", cmd, ok)
	}
	if cmd, ok := km.Lookup(ModeNormal, tea.KeyMsg{Type: tea.KeyUp}); !ok || cmd != CmdIncrement {
		t.Errorf("Up should map to increment, got %s (%v)", cmd, ok)
	}
	if cmd, ok := km.Lookup(ModeInsert, tea.KeyMsg{Type: tea.KeyEsc}); !ok || cmd != CmdExitInsert {
		t.Errorf("Esc in insert mode should map to exit_insert, got %s (%v)", cmd, ok)
	}
	if cmd, ok := km.Lookup(ModeInsert, tea.KeyMsg{Type: tea.KeyCtrlC}); !ok || cmd != CmdQuit {
		t.Errorf("Ctrl+C in insert mode should map to quit, got %s (%v)", cmd, ok)
	}
}

func TestLookup_UnboundKeys(t *testing.T) {
	km := DefaultKeymap()

	if _, ok := km.Lookup(ModeNormal, runeKey('z')); ok {
		t.Error("'z' should be unbound in normal mode")
	}
	// Printable keys stay unbound in insert mode so they reach the input.
	if _, ok := km.Lookup(ModeInsert, runeKey('a')); ok {
		t.Error("'a' should be unbound in insert mode")
	}
	if _, ok := km.Lookup("bogus", runeKey('q')); ok {
		t.Error("Unknown mode should never match")
	}
}

func TestMatches_RuneRequiresSingleRune(t *testing.T) {
	b := KeyBinding{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit}

	if b.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q', 'q'}}) {
		t.Error("Multi-rune messages should not match a single-rune binding")
	}
	if b.Matches(tea.KeyMsg{Type: tea.KeyEsc}) {
		t.Error("Non-rune messages should not match a rune binding")
	}
}

func TestBindingsFor(t *testing.T) {
	km := DefaultKeymap()

	if len(km.BindingsFor(ModeNormal)) == 0 {
		t.Error("Normal mode should expose bindings for help rendering")
	}
	if km.BindingsFor("bogus") != nil {
		t.Error("Unknown mode should return nil bindings")
	}
}
