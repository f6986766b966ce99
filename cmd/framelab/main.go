// Command framelab is an interactive byte-layout reference for DNS, TCP
// and HTTP/1.1 framing. It renders the encodings of user-edited fields
// as a colored field map, a hex dump and a binary dump.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jessevdk/go-flags"

	"github.com/haukened/framelab/internal/lab/common/clock"
	"github.com/haukened/framelab/internal/lab/common/log"
	"github.com/haukened/framelab/internal/lab/config"
	"github.com/haukened/framelab/internal/lab/repos/history"
	"github.com/haukened/framelab/internal/lab/repos/presets"
	"github.com/haukened/framelab/internal/lab/tui"
)

const (
	version = "0.1.0-dev"
	appName = "framelab"
)

// options are the command-line overrides on top of the environment
// configuration.
type options struct {
	Presets     string `short:"p" long:"presets" description:"TOML file of field presets"`
	LogFile     string `long:"log-file" description:"Write logs to this file (empty disables logging)"`
	LogLevel    string `long:"log-level" description:"Log verbosity: debug, info, warn, error"`
	Theme       string `long:"theme" description:"Color theme: dark or light"`
	NoAltScreen bool   `long:"no-alt-screen" description:"Render inline instead of the alternate screen"`
	Version     bool   `short:"v" long:"version" description:"Print version and exit"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[OPTIONS]"
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("%s %s\n", appName, version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	applyOverrides(cfg, opts)

	if err := log.Configure(cfg.Env, cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logging configuration error: %v\n", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	logger.Info(map[string]any{
		"version":      version,
		"env":          cfg.Env,
		"log_level":    cfg.LogLevel,
		"history_size": cfg.HistorySize,
		"presets_file": cfg.PresetsFile,
		"theme":        cfg.Theme,
	}, "Starting framelab")

	catalog, err := presets.Load(cfg.PresetsFile)
	if err != nil {
		// Defaults were substituted; the session still starts.
		logger.Warn(map[string]any{"error": err.Error()}, "Falling back to built-in presets")
	}

	store, err := history.New(cfg.HistorySize, clock.RealClock{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "History error: %v\n", err)
		os.Exit(1)
	}

	app := tui.New(tui.NewTheme(cfg.Theme), catalog, store, logger)

	var teaOpts []tea.ProgramOption
	if !opts.NoAltScreen {
		teaOpts = append(teaOpts, tea.WithAltScreen())
	}
	if _, err := tea.NewProgram(app, teaOpts...).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI error: %v\n", err)
		os.Exit(1)
	}

	logger.Info(nil, "framelab stopped")
}

// applyOverrides lets command-line flags win over environment values.
func applyOverrides(cfg *config.AppConfig, opts options) {
	if opts.Presets != "" {
		cfg.PresetsFile = opts.Presets
	}
	if opts.LogFile != "" {
		cfg.LogFile = opts.LogFile
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	if opts.Theme != "" {
		cfg.Theme = opts.Theme
	}
}
