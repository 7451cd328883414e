package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dasher-arcade/internal/config"
	"github.com/vovakirdan/dasher-arcade/internal/core"
	"github.com/vovakirdan/dasher-arcade/internal/games/axe"
	"github.com/vovakirdan/dasher-arcade/internal/games/dasher"
	"github.com/vovakirdan/dasher-arcade/internal/platform/tui"
	"github.com/vovakirdan/dasher-arcade/internal/registry"
	"github.com/vovakirdan/dasher-arcade/internal/storage"
)

var (
	flagConfig  string
	flagWatch   bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game in the terminal.

Controls:
  A/D, Left/Right  - Move (Axe)
  Space/W/Up       - Jump (Dapper Dasher)
  P                - Pause
  R                - Restart (after the game ends)
  Ctrl+S           - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at lowest difficulty, speeds up with score
  normal - Start at 30% difficulty, speeds up with score
  hard   - Start at 70% difficulty, speeds up with score
  fixed  - No progression (the default tuning)

Examples:
  arcade play axe
  arcade play dasher --difficulty hard
  arcade play dasher --config ./my-dasher.toml --watch
  arcade play axe --log ./axe.log`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Restart the game when its config file changes")
	playCmd.Flags().StringVar(&flagLogFile, "log", "", "Write diagnostics to this file")
}

// configureGame points a game package at its config and preset, then loads
// the config once so mistakes are reported before the screen is taken over.
func configureGame(gameID, path, preset string) error {
	if preset != "" && config.ParsePreset(preset) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", preset)
	}

	switch gameID {
	case "axe":
		axe.SetConfigPath(path)
		axe.SetDifficultyPreset(preset)
		_, err := config.LoadAxe(path)
		return err
	case "dasher":
		dasher.SetConfigPath(path)
		dasher.SetDifficultyPreset(preset)
		_, err := config.LoadDasher(path)
		return err
	}
	return nil
}

// requireGame exits when gameID is not registered.
func requireGame(gameID string) {
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
}

// terminalConfig builds the runtime config for the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
}

// openStore opens the scores database, continuing without one on failure.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// fileLogger logs to path, or nowhere when path is empty. The terminal is
// owned by the game while it runs.
func fileLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	if err := configureGame(gameID, flagConfig, flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := fileLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	opts := tui.Options{Logger: logger}
	if flagWatch {
		path := config.ResolvePath(gameID, flagConfig)
		if path == "" {
			fmt.Fprintln(os.Stderr, "Warning: --watch needs a config file; using the embedded default without watching")
		} else {
			watcher, werr := config.NewWatcher(path)
			if werr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", werr)
				os.Exit(1)
			}
			defer watcher.Close()
			opts.Watcher = watcher
			logger.Info("watching config", "path", watcher.Path())
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	runErr := tui.Run(game, store, terminalConfig(), opts)
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
