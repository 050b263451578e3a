package tui

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/tally/internal/tui/keymap"
	"github.com/Iron-Ham/tally/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render("tally"))
	b.WriteString("\n")

	panels := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderCounterPanel(),
		" ",
		m.renderNotePanel(),
	)
	b.WriteString(panels)
	b.WriteString("\n")

	if m.errText != "" {
		b.WriteString(styles.ErrorText.Render(m.errText))
		b.WriteString("\n")
	}

	if m.showHelp {
		b.WriteString(m.renderHelp())
	} else {
		b.WriteString(styles.StatusLine.Render("? for help"))
	}

	return b.String()
}

func (m Model) renderCounterPanel() string {
	style := styles.PanelInactive
	if m.focus == panelCounter {
		style = styles.PanelActive
	}

	content := fmt.Sprintf("%s\n\n%s",
		styles.PanelTitle.Render("Counter"),
		styles.CounterValue.Render(fmt.Sprintf("%d", m.counter.Count())),
	)
	return style.Render(content)
}

func (m Model) renderNotePanel() string {
	style := styles.PanelInactive
	if m.focus == panelNote {
		style = styles.PanelActive
	}

	var body string
	if m.mode == keymap.ModeInsert {
		body = m.input.View()
	} else if text := m.note.Text(); text != "" {
		body = text
	} else {
		body = styles.Subtitle.Render("(empty)")
	}

	content := fmt.Sprintf("%s\n\n%s",
		styles.PanelTitle.Render("Note"),
		body,
	)
	return style.Render(content)
}

// renderHelp builds the footer from the active mode's bindings, collapsing
// keys that share a command into one line per description.
func (m Model) renderHelp() string {
	bindings := m.keymap.BindingsFor(m.mode)
	if len(bindings) == 0 {
		return ""
	}

	seen := make(map[string]bool)
	var parts []string
	for _, b := range bindings {
		if seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, fmt.Sprintf("%s %s",
			styles.HelpKey.Render(keyLabel(b)),
			styles.HelpDesc.Render(b.Description),
		))
	}
	return strings.Join(parts, "  ")
}

func keyLabel(b keymap.KeyBinding) string {
	if b.Rune != 0 {
		return string(b.Rune)
	}
	return b.KeyType.String()
}
