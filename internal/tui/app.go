package tui

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/tally/internal/config"
	"github.com/Iron-Ham/tally/internal/logging"
	"github.com/Iron-Ham/tally/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

// App wraps the Bubbletea program and wires the store subscription to it.
type App struct {
	program *tea.Program
	model   Model
	store   *store.Store
	logger  *logging.Logger
}

// New creates a new TUI application over the given store.
func New(st *store.Store, cfg *config.Config, logger *logging.Logger) *App {
	return &App{
		model:  NewModel(st, cfg, logger),
		store:  st,
		logger: logger,
	}
}

// Send delivers a message to the running program. Safe to call from other
// goroutines (the config watcher uses it); a no-op before Run.
func (a *App) Send(msg tea.Msg) {
	if a.program != nil {
		a.program.Send(msg)
	}
}

// NotifyThemeReloaded tells the UI a new theme took effect.
func (a *App) NotifyThemeReloaded(theme string) {
	a.Send(themeReloadedMsg{theme: theme})
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Every store transition re-renders the UI. Dispatches originate in
	// Update, so the callback runs on the program goroutine and Send is a
	// non-blocking enqueue.
	unsubscribe := a.store.Subscribe(func(s store.State) {
		a.program.Send(stateChangedMsg{state: s})
	})
	defer unsubscribe()

	// Graceful shutdown on signals.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	go func() {
		<-sigChan
		if a.program != nil {
			a.program.Send(tea.Quit())
		}
	}()

	if a.logger != nil {
		a.logger.Info("tui started")
	}

	_, err := a.program.Run()
	return err
}
