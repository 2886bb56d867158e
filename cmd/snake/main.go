// snake is a grid snake game for the terminal and the desktop.
//
// Usage:
//
//	snake play               - Play in the terminal
//	snake window             - Play in a desktop window
//	snake list               - List variants and difficulty presets
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--config <path>     - Use a custom snake.yaml
//	--log-file <path>   - Write logs to a file (default: discarded)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is the classic grid game: steer, eat, grow, and speed up.
Walls either wrap around or kill, and you can switch between the two
at any time with W.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  list     - Show variants and difficulty presets
  config   - Print the effective configuration

Examples:
  snake play
  snake play --difficulty hard --walls
  snake window --scale 2
  snake config > ~/.tui-snake/configs/snake.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}
