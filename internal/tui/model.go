// Package tui implements the terminal UI for tally: a counter panel and a
// note panel over one shared store.
package tui

import (
	"github.com/Iron-Ham/tally/internal/config"
	"github.com/Iron-Ham/tally/internal/logging"
	"github.com/Iron-Ham/tally/internal/store"
	"github.com/Iron-Ham/tally/internal/tui/keymap"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// panel identifies which panel has focus.
type panel int

const (
	panelCounter panel = iota
	panelNote
)

// Model holds the TUI application state. Domain state lives in the store;
// the model keeps only view-local concerns (focus, mode, sizes, the input
// widget) and re-reads the store when rendering.
type Model struct {
	// Narrow views over the shared store, one per panel concern
	counter store.CounterView
	note    store.TextView

	keymap *keymap.Keymap
	logger *logging.Logger

	// UI state
	mode     keymap.Mode
	focus    panel
	input    textinput.Model
	width    int
	height   int
	showHelp bool
	quitting bool
	errText  string
}

// NewModel creates a new TUI model over the given store. The store must not
// be nil; the cmd layer always supplies one.
func NewModel(st *store.Store, cfg *config.Config, logger *logging.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "type a note"
	ti.CharLimit = 256
	ti.Width = 40
	ti.SetValue(st.State().Text)

	return Model{
		counter:  store.NewCounterView(st),
		note:     store.NewTextView(st),
		keymap:   keymap.DefaultKeymap(),
		logger:   logger,
		mode:     keymap.ModeNormal,
		focus:    panelCounter,
		input:    ti,
		showHelp: cfg.TUI.ShowHelp,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}
