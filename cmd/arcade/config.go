package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dasher-arcade/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default configuration",
	Long: `Print the embedded default configuration for a game as YAML.

Copy it to ~/.arcade/configs/<game>.yaml or ./configs/<game>.yaml and edit
it to change the tuning; TOML files (<game>.toml) are read as well.

Examples:
  arcade config dasher > configs/dasher.yaml
  arcade config axe --check ./my-axe.toml`,
	Args: cobra.ExactArgs(1),
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate this config file instead of printing the default")
}

func runConfig(_ *cobra.Command, args []string) {
	gameID := args[0]
	requireGame(gameID)

	if flagCheck != "" {
		if err := configureGame(gameID, flagCheck, ""); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s: ok\n", flagCheck)
		return
	}

	data := config.GetDefaultYAML(gameID)
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: %s has no configuration\n", gameID)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
