package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/games/snake"
	"github.com/vovakirdan/grid-arcade/internal/games/tetris"
	"github.com/vovakirdan/grid-arcade/internal/logging"
	"github.com/vovakirdan/grid-arcade/internal/platform/tui"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move (Up rotates in tetris)
  Q/Esc/Ctrl+C - Quit

Examples:
  arcade play snake
  arcade play tetris --grid 12
  arcade play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		return err
	}
	defer closeLog()
	logger = logger.With("run", uuid.NewString())

	switch gameID {
	case "snake":
		snake.SetConfigPath(flagConfig)
	case "tetris":
		tetris.SetConfigPath(flagConfig)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	cfg := core.RuntimeConfig{
		GridCount: flagGrid,
		CellSize:  flagCell,
		Seed:      flagSeed,
	}
	model, err := tui.NewModel(game, cfg, logger)
	if err != nil {
		return err
	}
	warnIfTooSmall(logger, model)

	logger.Info("launching", "game", gameID, "seed", cfg.Seed, "grid", game.GridCount())
	if err := tui.Run(model); err != nil {
		logger.Error("game exited with error", "error", err)
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}

// openLogger opens the log file named by --log-file. An empty path discards
// logs.
func openLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return logging.Discard(), func() {}, nil
	}
	f, err := logging.OpenFile(flagLogFile)
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(f, flagLogLevel)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}

// warnIfTooSmall logs when the terminal cannot fit the board chosen by the
// game. The board is drawn anyway.
func warnIfTooSmall(logger *log.Logger, model tui.Model) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	needW, needH := model.FrameSize()
	if w < needW || h < needH {
		logger.Warn("terminal smaller than board", "width", w, "height", h, "need_width", needW, "need_height", needH)
	}
}
