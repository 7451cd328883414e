// arcade runs the Axe and Dapper Dasher arcade games in the terminal, over
// SSH, or in a desktop window.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game in the terminal
//	arcade window <game>     - Play a game in a desktop window
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade config <game>     - Print a game's default config
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--db <path>            - Set database path (default: ~/.arcade/scores.db)
//	--difficulty <preset>  - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/dasher-arcade/internal/games/axe"
	_ "github.com/vovakirdan/dasher-arcade/internal/games/dasher"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade - Axe and Dapper Dasher in your terminal",
	Long: `Arcade plays two small action games: Axe, where you dodge a
bouncing axe, and Dapper Dasher, where you jump over a field of nebulae
to reach the finish line.

Available commands:
  list     - Show all available games
  play     - Play a game in the terminal
  window   - Play a game in a desktop window
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print a game's default configuration

Examples:
  arcade list
  arcade play axe
  arcade window dasher
  arcade menu
  arcade serve --ssh :2222
  arcade scores dasher`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
