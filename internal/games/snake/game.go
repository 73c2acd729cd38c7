// Package snake implements the Snake game: a snake on a 20x20 torus that
// grows by eating food and loses when its head runs into its body.
package snake

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid-arcade/internal/config"
	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/logging"
	"github.com/vovakirdan/grid-arcade/internal/loop"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// Canvas tags for the two redraw groups.
const (
	TagSnake = "snake"
	TagFood  = "food"
)

var configPath string

// SetConfigPath sets a custom config file path used by the next Init.
func SetConfigPath(path string) {
	configPath = path
}

// Game drives a Simulation from a fixed-delay tick chain and draws it.
type Game struct {
	cfg      config.SnakeConfig
	sim      *Simulation
	input    *core.KeyLatch
	renderer core.Renderer
	chain    *loop.Chain
	logger   *log.Logger

	snakeColor core.Color
	foodColor  core.Color
	textColor  core.Color
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Init loads the config and builds the simulation. The requested grid count
// in env.Config is ignored: the board is always GridCount cells wide.
func (g *Game) Init(env registry.Env) error {
	cfg, loadErr := config.LoadSnake(configPath)
	if err := g.setup(env, cfg); err != nil {
		return err
	}
	if loadErr != nil {
		g.logger.Warn("using default config", "error", loadErr)
	}
	return nil
}

// setup wires the game from an already loaded config.
func (g *Game) setup(env registry.Env, cfg config.SnakeConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	g.logger = env.Logger
	if g.logger == nil {
		g.logger = logging.Discard()
	}
	g.logger = g.logger.With("game", g.ID())

	if env.Config.GridCount != 0 && env.Config.GridCount != GridCount {
		g.logger.Debug("grid count override ignored", "requested", env.Config.GridCount, "used", GridCount)
	}

	// Colors were validated above
	g.snakeColor, _ = core.ParseColor(cfg.Colors.Snake)
	g.foodColor, _ = core.ParseColor(cfg.Colors.Food)
	g.textColor, _ = core.ParseColor(cfg.Colors.Text)

	g.cfg = cfg
	g.renderer = env.Renderer
	g.sim = NewSimulation(rand.New(rand.NewSource(env.Config.Seed)))
	g.input = core.NewKeyLatch(core.DirRight)
	g.chain = loop.NewChain(env.Scheduler, cfg.TickDelay(), g.step)
	return nil
}

// GridCount returns the board size.
func (g *Game) GridCount() int {
	return GridCount
}

// Start draws the board and runs the first tick.
func (g *Game) Start() {
	g.logger.Info("started", "tick", g.cfg.TickDelay(), "food", g.sim.Food())
	g.drawSnake()
	g.drawFood()
	g.chain.Start()
}

// step is one tick: sample input once, advance, redraw, and keep going
// only while the snake is alive.
func (g *Game) step() bool {
	g.sim.SetDirection(g.input.LatestDirection())
	status := g.sim.Tick()

	g.drawSnake()
	g.drawFood()

	if status == GameOver {
		center := g.sim.GridCount() / 2
		g.renderer.DrawText(core.Coord{X: center, Y: center}, g.cfg.GameOverText, g.textColor)
		g.logger.Info("game over", "head", g.sim.Head(), "length", g.sim.Len(), "ticks", g.sim.Ticks())
		return false
	}
	return true
}

// HandleAction records direction keys; they are read on the next tick.
func (g *Game) HandleAction(a core.Action) {
	if d, ok := a.Direction(); ok {
		g.input.Press(d)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Finished: g.sim.Status() == GameOver,
		Steps:    g.chain.Steps(),
	}
}

// StatusText is shown next to the title once the snake has crashed.
func (g *Game) StatusText() string {
	if g.sim.Status() == GameOver {
		return "game over"
	}
	return ""
}

// Simulation exposes the underlying simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

func (g *Game) drawSnake() {
	g.renderer.Clear(TagSnake)
	for _, seg := range g.sim.Body() {
		g.renderer.DrawCell(seg, g.snakeColor, TagSnake)
	}
}

func (g *Game) drawFood() {
	g.renderer.Clear(TagFood)
	g.renderer.DrawCell(g.sim.Food(), g.foodColor, TagFood)
}
