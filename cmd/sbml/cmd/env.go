package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/msto63/sbml/foundation/core/config"
	sbmlerror "github.com/msto63/sbml/foundation/core/error"
	sbmllog "github.com/msto63/sbml/foundation/core/log"
	"github.com/msto63/sbml/foundation/sbml"
	"github.com/msto63/sbml/internal/journal"
)

// appEnv is resolved once per invocation before any command runs
type appEnv struct {
	settings config.Settings
	logger   *sbmllog.Logger
}

var app = appEnv{
	settings: mustDefaults(),
	logger:   sbmllog.Discard(),
}

func mustDefaults() config.Settings {
	settings, err := config.Resolve(config.FromMap(config.Defaults(), ""))
	if err != nil {
		panic(err)
	}
	return settings
}

func loadEnvironment() error {
	var cfg *config.Config
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: config.EnvPrefix,
			Defaults:  config.Defaults(),
		})
	} else {
		cfg, err = config.Discover(config.DefaultDiscoveryOptions())
	}
	if err != nil {
		return sbmlerror.Wrap(err, "failed to load configuration").
			WithCode(sbmlerror.CodeConfigError).
			WithDetail("path", cfgFile)
	}

	settings, err := config.Resolve(cfg)
	if err != nil {
		return err
	}

	logger := sbmllog.NewWithConfig(sbmllog.Config{
		Level:  settings.LogLevel,
		Format: settings.LogFormat,
		Output: os.Stderr,
		Name:   "sbml",
	})
	sbmllog.SetDefault(logger)

	app = appEnv{settings: settings, logger: logger}
	logger.Debug("configuration loaded", sbmllog.Fields{"file": cfg.FilePath()})
	return nil
}

// newRunID returns a fresh run id and the logger tagged with it
func newRunID() (string, *sbmllog.Logger) {
	id := uuid.NewString()
	return id, app.logger.WithRunID(id)
}

// openJournal opens the run journal, or returns nil when it is disabled
func openJournal() (journal.Store, error) {
	if !app.settings.JournalEnabled {
		return nil, nil
	}
	return journal.NewSQLiteStore(journal.SQLiteConfig{Path: app.settings.JournalPath})
}

func recordRun(store journal.Store, entry *journal.Entry, logger *sbmllog.Logger) {
	if store == nil {
		return
	}
	if err := store.Record(context.Background(), entry); err != nil {
		logger.WarnWithErr("journal record failed", err)
	}
}

// reportProgramError prints the one line diagnostic to out and, with
// --verbose, the source snippet to errOut.
func reportProgramError(out, errOut io.Writer, err error, source string) {
	fmt.Fprintln(out, sbml.Diagnostic(err))
	if verbose {
		fmt.Fprintln(errOut, snippetStyle().Render(sbmlerror.Render(err, source)))
	}
}

func errorStyle() lipgloss.Style {
	if !app.settings.Color {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
}

func snippetStyle() lipgloss.Style {
	if !app.settings.Color {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#EF4444")).
		Padding(0, 1)
}

func mutedStyle() lipgloss.Style {
	if !app.settings.Color {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
}
