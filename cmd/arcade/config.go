package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/grid-arcade/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print a game's default config",
	Long: `Prints the built-in YAML config for a game. Save it to
~/.arcade/configs/<game>.yaml or ./configs/<game>.yaml to override it.

Examples:
  arcade config snake > ~/.arcade/configs/snake.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data := config.GetDefaultYAML(args[0])
		if data == nil {
			return fmt.Errorf("no default config for %q", args[0])
		}
		_, err := cmd.OutOrStdout().Write(data)
		return err
	},
}
