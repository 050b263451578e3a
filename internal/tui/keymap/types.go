// Package keymap provides declarative, mode-aware key binding definitions
// and lookup for the TUI.
package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Mode represents the current input mode of the TUI. Different modes have
// different key bindings active.
type Mode string

const (
	ModeNormal Mode = "normal" // Default viewing mode
	ModeInsert Mode = "insert" // Keys edit the note field
)

// Command represents a named action triggered by a key binding.
type Command string

const (
	// Counter
	CmdIncrement Command = "increment"
	CmdDecrement Command = "decrement"

	// Focus and modes
	CmdFocusNext   Command = "focus_next"
	CmdEnterInsert Command = "enter_insert"
	CmdExitInsert  Command = "exit_insert"
	CmdToggleHelp  Command = "toggle_help"

	// Exit
	CmdQuit Command = "quit"
)

// KeyBinding maps one key to a command.
type KeyBinding struct {
	// KeyType is the bubbletea key type; KeyRunes bindings also match Rune.
	KeyType tea.KeyType
	// Rune is the character for KeyRunes bindings.
	Rune rune
	// Command is the action this key triggers.
	Command Command
	// Description is shown in the help footer.
	Description string
	// Category groups bindings in the help footer.
	Category string
}

// Matches reports whether the binding applies to the given key message.
func (b KeyBinding) Matches(msg tea.KeyMsg) bool {
	if b.KeyType == tea.KeyRunes {
		return msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] == b.Rune
	}
	return msg.Type == b.KeyType
}

// ModeBindings holds the bindings active in one mode.
type ModeBindings struct {
	Mode     Mode
	Bindings []KeyBinding
}

// Keymap is a complete key binding configuration across all modes.
type Keymap struct {
	Name        string
	Description string
	Modes       map[Mode]*ModeBindings
}

// Lookup resolves a key message to a command in the given mode. The second
// return is false when no binding matches; unbound keys are left to the
// mode's fallthrough handling (in insert mode they edit the note).
func (k *Keymap) Lookup(mode Mode, msg tea.KeyMsg) (Command, bool) {
	mb, ok := k.Modes[mode]
	if !ok {
		return "", false
	}
	for _, b := range mb.Bindings {
		if b.Matches(msg) {
			return b.Command, true
		}
	}
	return "", false
}

// BindingsFor returns the bindings active in the given mode, for help
// rendering. Returns nil for an unknown mode.
func (k *Keymap) BindingsFor(mode Mode) []KeyBinding {
	mb, ok := k.Modes[mode]
	if !ok {
		return nil
	}
	return mb.Bindings
}
