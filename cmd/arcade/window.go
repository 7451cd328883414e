package main

import (
	"image"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dasher-arcade/internal/assets"
	"github.com/vovakirdan/dasher-arcade/internal/config"
	"github.com/vovakirdan/dasher-arcade/internal/platform/gfx"
	"github.com/vovakirdan/dasher-arcade/internal/registry"
)

var (
	flagAssets      string
	flagScale       float64
	flagPlaceholder bool
)

var windowCmd = &cobra.Command{
	Use:   "window <game>",
	Short: "Play a game in a desktop window",
	Long: `Open a desktop window and play the specified game with textures.

Dapper Dasher needs its textures below --assets:
  textures/scarfy.png
  textures/12_nebula_spritesheet.png
  textures/far-buildings.png
  textures/back-buildings.png
  textures/foreground.png
Missing or malformed textures stop the program before a window opens.
Use --placeholder to draw generated stand-ins instead.

Controls:
  A/D, Left/Right  - Move (Axe)
  Space/W/Up       - Jump (Dapper Dasher)
  P                - Pause
  R                - Restart (after the game ends)
  Q/Esc            - Quit

Examples:
  arcade window axe
  arcade window dasher --assets ./dapper-dasher --scale 2
  arcade window dasher --placeholder`,
	Args: cobra.ExactArgs(1),
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagAssets, "assets", ".", "Directory containing the textures/ folder")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
	windowCmd.Flags().BoolVar(&flagPlaceholder, "placeholder", false, "Draw generated textures instead of loading PNG files")
	windowCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
}

func runWindow(_ *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade-window",
	})

	gameID := args[0]
	requireGame(gameID)

	if err := configureGame(gameID, flagConfig, flagDifficulty); err != nil {
		logger.Fatal("invalid config", "game", gameID, "error", err)
	}

	textures, err := loadTextures(gameID)
	if err != nil {
		logger.Fatal("cannot load textures", "assets", flagAssets, "error", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		logger.Fatal("cannot create game", "error", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	err = gfx.Run(game, textures, cfg, gfx.Options{
		Scale:  flagScale,
		Store:  store,
		Logger: logger,
	})
	if err != nil {
		logger.Error("window closed with error", "error", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}

// loadTextures returns every texture the game draws. Axe draws primitives only.
func loadTextures(gameID string) (map[string]image.Image, error) {
	if gameID != "dasher" {
		return nil, nil
	}

	cfg, err := config.LoadDasher(flagConfig)
	if err != nil {
		return nil, err
	}
	manifest := assets.Manifest(cfg)

	if flagPlaceholder {
		out := make(map[string]image.Image, len(manifest))
		for _, t := range manifest {
			out[t.Path] = assets.Placeholder(t)
		}
		return out, nil
	}
	return assets.LoadAll(flagAssets, manifest)
}
