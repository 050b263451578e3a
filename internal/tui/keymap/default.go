package keymap

import tea "github.com/charmbracelet/bubbletea"

// DefaultKeymap returns the default key binding configuration.
func DefaultKeymap() *Keymap {
	return &Keymap{
		Name:        "default",
		Description: "Default tally key bindings",
		Modes: map[Mode]*ModeBindings{
			ModeNormal: defaultNormalBindings(),
			ModeInsert: defaultInsertBindings(),
		},
	}
}

func defaultNormalBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeNormal,
		Bindings: []KeyBinding{
			// Counter
			{KeyType: tea.KeyRunes, Rune: '+', Command: CmdIncrement, Description: "Increment", Category: "Counter"},
			{KeyType: tea.KeyRunes, Rune: '=', Command: CmdIncrement, Description: "Increment", Category: "Counter"},
			{KeyType: tea.KeyRunes, Rune: 'k', Command: CmdIncrement, Description: "Increment", Category: "Counter"},
			{KeyType: tea.KeyUp, Command: CmdIncrement, Description: "Increment", Category: "Counter"},
			{KeyType: tea.KeyRunes, Rune: '-', Command: CmdDecrement, Description: "Decrement", Category: "Counter"},
			{KeyType: tea.KeyRunes, Rune: '_', Command: CmdDecrement, Description: "Decrement", Category: "Counter"},
			{KeyType: tea.KeyRunes, Rune: 'j', Command: CmdDecrement, Description: "Decrement", Category: "Counter"},
			{KeyType: tea.KeyDown, Command: CmdDecrement, Description: "Decrement", Category: "Counter"},

			// Note
			{KeyType: tea.KeyRunes, Rune: 'i', Command: CmdEnterInsert, Description: "Edit note", Category: "Note"},
			{KeyType: tea.KeyEnter, Command: CmdEnterInsert, Description: "Edit note", Category: "Note"},

			// Panels and help
			{KeyType: tea.KeyTab, Command: CmdFocusNext, Description: "Switch panel", Category: "View"},
			{KeyType: tea.KeyRunes, Rune: '?', Command: CmdToggleHelp, Description: "Toggle help", Category: "View"},

			// Exit
			{KeyType: tea.KeyRunes, Rune: 'q', Command: CmdQuit, Description: "Quit", Category: "Exit"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Exit"},
		},
	}
}

func defaultInsertBindings() *ModeBindings {
	return &ModeBindings{
		Mode: ModeInsert,
		Bindings: []KeyBinding{
			{KeyType: tea.KeyEsc, Command: CmdExitInsert, Description: "Done editing", Category: "Note"},
			{KeyType: tea.KeyCtrlC, Command: CmdQuit, Description: "Quit", Category: "Exit"},
		},
	}
}
