package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/grid-arcade/internal/core"
	"github.com/vovakirdan/grid-arcade/internal/logging"
	"github.com/vovakirdan/grid-arcade/internal/registry"
)

// upLabeler is implemented by games whose Up key does something other than
// move up.
type upLabeler interface {
	UpLabel() string
}

// statusTexter is implemented by games that announce their state in the
// header. Games without it show nothing there.
type statusTexter interface {
	StatusText() string
}

// Model is the Bubble Tea model for running a grid game.
type Model struct {
	game     registry.Game
	canvas   *core.Canvas
	screen   *core.Screen
	sched    *teaScheduler
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	config   core.RuntimeConfig
	quitting bool
}

// NewModel initializes the game against a fresh canvas and scheduler.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	canvas := core.NewCanvas()
	sched := newTeaScheduler()
	env := registry.Env{
		Config:    cfg,
		Renderer:  canvas,
		Scheduler: sched,
		Logger:    logger,
	}
	if err := game.Init(env); err != nil {
		return Model{}, fmt.Errorf("tui: init %s: %w", game.ID(), err)
	}

	upHelp := "up"
	if l, ok := game.(upLabeler); ok {
		upHelp = l.UpLabel()
	}

	w, h := cfg.CanvasSize(game.GridCount())
	return Model{
		game:   game,
		canvas: canvas,
		screen: core.NewScreen(w, h),
		sched:  sched,
		keys:   DefaultKeyMap(upHelp),
		help:   help.New(),
		logger: logger,
		config: cfg,
	}, nil
}

// Init starts the game and hands its first timers to Bubble Tea.
func (m Model) Init() tea.Cmd {
	m.game.Start()
	return m.sched.flush()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case timerMsg:
		m.sched.fire(msg.id)
		return m, m.sched.flush()
	}

	return m, nil
}

// handleKey processes keyboard input. Moves go straight to the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.logger.Info("quit", "game", m.game.ID(), "steps", m.game.State().Steps)
		m.quitting = true
		return m, tea.Quit
	}

	m.game.HandleAction(action)
	return m, m.sched.flush()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.canvas.Paint(m.screen, m.config.CellSize)

	status := ""
	if st, ok := m.game.(statusTexter); ok {
		status = st.StatusText()
	}
	return RenderFrame(m.game.Title(), status, RenderScreen(m.screen), m.help.View(m.keys))
}

// FrameSize returns the terminal size the view needs: the board as sized by
// the initialized game, plus the border, title and help lines.
func (m Model) FrameSize() (width, height int) {
	return m.screen.Width() + 2, m.screen.Height() + 4
}

// Run starts the Bubble Tea program for an initialized model.
func Run(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
