// Package tetris implements a single falling tetromino: it drops one row per
// interval until it reaches the floor, and can be moved or rotated meanwhile.
package tetris

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/logging"
	"github.com/vovakirdan/grid-arcade/internal/loop"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

var configPath string

// SetConfigPath sets a custom config file path used by the next Init.
func SetConfigPath(path string) {
	configPath = path
}

// Game wires a Simulation to key handlers and a drop chain.
type Game struct {
	cfg        config.TetrisConfig
	sim        *Simulation
	renderer   core.Renderer
	chain      *loop.Chain
	logger     *log.Logger
	shapeColor core.Color
}

// New creates a new Tetris game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Init loads the config and spawns the shape. A non-zero grid count in
// env.Config overrides the configured one.
func (g *Game) Init(env registry.Env) error {
	cfg, loadErr := config.LoadTetris(configPath)
	if err := g.setup(env, cfg); err != nil {
		return err
	}
	if loadErr != nil {
		g.logger.Warn("using default config", "error", loadErr)
	}
	return nil
}

func (g *Game) setup(env registry.Env, cfg config.TetrisConfig) error {
	if env.Config.GridCount > 0 {
		cfg.GridCount = env.Config.GridCount
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	g.logger = env.Logger
	if g.logger == nil {
		g.logger = logging.Discard()
	}
	g.logger = g.logger.With("game", g.ID())

	g.shapeColor, _ = core.ParseColor(cfg.Colors.Shape)
	g.cfg = cfg
	g.renderer = env.Renderer
	g.sim = NewSimulation(cfg.GridCount, rand.New(rand.NewSource(env.Config.Seed)))
	g.chain = loop.NewChain(env.Scheduler, cfg.DropDelay(), g.drop)
	return nil
}

// GridCount returns the board size.
func (g *Game) GridCount() int {
	return g.cfg.GridCount
}

// Start draws the shape and runs the first drop.
func (g *Game) Start() {
	sh := g.sim.Shape()
	g.logger.Info("started", "shape", sh.Kind, "origin", g.sim.Origin(), "drop", g.cfg.DropDelay())
	g.draw()
	g.chain.Start()
}

func (g *Game) drop() bool {
	if !g.sim.Drop() {
		g.logger.Info("landed", "origin", g.sim.Origin(), "drops", g.sim.Drops())
		return false
	}
	g.draw()
	return true
}

// HandleAction applies moves and rotation immediately, outside the drop
// chain. Up rotates.
func (g *Game) HandleAction(a core.Action) {
	var changed bool
	switch a {
	case core.ActionLeft:
		changed = g.sim.MoveLeft()
	case core.ActionRight:
		changed = g.sim.MoveRight()
	case core.ActionDown:
		changed = g.sim.MoveDown()
	case core.ActionUp:
		changed = g.sim.Rotate()
	}
	if changed {
		g.draw()
	}
}

// UpLabel names what the Up key does in this game.
func (g *Game) UpLabel() string {
	return "rotate"
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Finished: g.sim.Landed(),
		Steps:    g.chain.Steps(),
	}
}

// Simulation exposes the underlying simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

func (g *Game) draw() {
	tag := g.sim.Shape().Tag
	g.renderer.Clear(tag)
	for _, c := range g.sim.Cells() {
		g.renderer.DrawCell(c, g.shapeColor, tag)
	}
}
