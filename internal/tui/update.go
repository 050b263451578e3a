package tui

import (
	"github.com/Iron-Ham/tally/internal/tui/keymap"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model. All state transitions originate here: key
// events invoke store operations synchronously, and the follow-up
// stateChangedMsg (sent by the store subscription in App) triggers the
// re-render.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case stateChangedMsg:
		// The store already holds the new value; sync the input widget so
		// external edits (none today, but the bus allows them) show up.
		if m.mode != keymap.ModeInsert {
			m.input.SetValue(msg.state.Text)
		}
		return m, nil

	case themeReloadedMsg:
		if m.logger != nil {
			m.logger.Info("theme reloaded", "theme", msg.theme)
		}
		return m, nil

	case errMsg:
		m.errText = msg.err.Error()
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, bound := m.keymap.Lookup(m.mode, msg)
	if !bound {
		if m.mode == keymap.ModeInsert {
			return m.handleInsertInput(msg)
		}
		return m, nil
	}

	switch cmd {
	case keymap.CmdIncrement:
		m.counter.Increment()
		return m, nil

	case keymap.CmdDecrement:
		m.counter.Decrement()
		return m, nil

	case keymap.CmdFocusNext:
		if m.focus == panelCounter {
			m.focus = panelNote
		} else {
			m.focus = panelCounter
		}
		return m, nil

	case keymap.CmdEnterInsert:
		m.mode = keymap.ModeInsert
		m.focus = panelNote
		m.input.SetValue(m.note.Text())
		m.input.CursorEnd()
		m.input.Focus()
		return m, textinput.Blink

	case keymap.CmdExitInsert:
		m.mode = keymap.ModeNormal
		m.input.Blur()
		return m, nil

	case keymap.CmdToggleHelp:
		m.showHelp = !m.showHelp
		return m, nil

	case keymap.CmdQuit:
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleInsertInput forwards an unbound key to the text input and
// dispatches the resulting value to the store. Every keystroke is one
// SetText transition, so the shared state and the widget never drift.
func (m Model) handleInsertInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if value := m.input.Value(); value != m.note.Text() {
		m.note.SetText(value)
	}
	return m, cmd
}
