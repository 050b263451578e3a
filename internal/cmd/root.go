// Package cmd wires the tally CLI: flag and config handling, logger setup,
// and launching the TUI.
package cmd

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/tally/internal/config"
	"github.com/Iron-Ham/tally/internal/event"
	"github.com/Iron-Ham/tally/internal/logging"
	"github.com/Iron-Ham/tally/internal/store"
	"github.com/Iron-Ham/tally/internal/tui"
	"github.com/Iron-Ham/tally/internal/tui/styles"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "A counter and scratch note in your terminal",
	Long: `Tally keeps a counter and a one-line note in a shared store and
shows both in a two-panel terminal UI. It exists mostly as a worked example
of the store/dispatch/view pattern.`,
	RunE: runTUI,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/tally/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))

	rootCmd.Flags().Int("count", 0, "initial counter value")
	rootCmd.Flags().String("text", "", "initial note content")
	_ = viper.BindPFlag("initial.count", rootCmd.Flags().Lookup("count"))
	_ = viper.BindPFlag("initial.text", rootCmd.Flags().Lookup("text"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("TALLY")
	// TALLY_TUI_THEME overrides tui.theme, and so on for nested keys
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return config.ValidationErrors(errs)
	}

	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer logger.Close()

	if err := applyTheme(cfg.TUI.Theme); err != nil {
		return err
	}

	bus := event.NewBus()
	bus.SubscribeAll(func(e event.Event) {
		logger.Debug("event", "type", e.EventType())
	})

	st := store.NewWithInitial(store.State{
		Count: cfg.Initial.Count,
		Text:  cfg.Initial.Text,
	}, bus)

	app := tui.New(st, cfg, logger)

	// Live theme reload: viper watches the config file and reapplies the
	// theme when it changes. Other keys need a restart.
	viper.OnConfigChange(func(in fsnotify.Event) {
		theme := viper.GetString("tui.theme")
		if err := applyTheme(theme); err != nil {
			logger.Warn("theme reload failed", "theme", theme, "error", err)
			return
		}
		app.NotifyThemeReloaded(theme)
	})
	viper.WatchConfig()

	logger.Info("starting", "count", cfg.Initial.Count, "theme", cfg.TUI.Theme)
	return app.Run()
}

// applyTheme resolves a theme name: built-in names first, then a path to a
// custom theme YAML file.
func applyTheme(name string) error {
	if styles.IsValidTheme(name) {
		return styles.Apply(name)
	}
	if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
		return styles.ApplyThemeFile(name)
	}
	return fmt.Errorf("unknown theme %q (built-in: %v, or a path to a .yaml theme file)",
		name, styles.BuiltinThemes())
}
