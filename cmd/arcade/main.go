// arcade runs small tile-grid games in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade config <game>     - Print a game's default config
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--grid <n>           - Requested cells per side (snake always uses 20)
//	--cell <n>           - Terminal columns per grid cell (default: 2)
//	--log-file <path>    - Log destination (default: ~/.arcade/arcade.log)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/grid-arcade/internal/games/snake"
	_ "github.com/vovakirdan/grid-arcade/internal/games/tetris"
)

var (
	// Global flags
	flagSeed     int64
	flagGrid     int
	flagCell     int
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
	Use:   "arcade",
	Short: "Grid Arcade - Snake and Tetris on a tile grid",
	Long: `Grid Arcade runs small tile-grid games in your terminal.

Available commands:
  list     - Show all available games
  play     - Play a specific game
  config   - Print a game's default config

Examples:
  arcade list
  arcade play snake
  arcade play tetris --seed 42`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagGrid, "grid", 0, "Cells per side (0 = game config)")
	rootCmd.PersistentFlags().IntVar(&flagCell, "cell", 2, "Terminal columns per grid cell")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/arcade.log", "Path to the log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
