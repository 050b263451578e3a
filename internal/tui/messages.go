package tui

import "github.com/Iron-Ham/tally/internal/store"

// stateChangedMsg is sent when the store completes a transition, so the
// view re-reads the bundle.
type stateChangedMsg struct {
	state store.State
}

// themeReloadedMsg is sent when the config watcher applies a new theme.
type themeReloadedMsg struct {
	theme string
}

// errMsg wraps an error for display in the status line.
type errMsg struct {
	err error
}
