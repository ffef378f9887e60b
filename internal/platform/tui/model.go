package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/intruders/internal/core"
	"github.com/vovakirdan/intruders/internal/games/intruders"
)

// helpRows is the number of terminal rows used by the help line.
const helpRows = 1

// Options configures a terminal session.
type Options struct {
	Config  core.RuntimeConfig
	KeyHold time.Duration
	Logger  *log.Logger
}

// Model is the Bubble Tea model for a Galactic Intruders session.
type Model struct {
	game    *intruders.Game
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	latch   *HoldLatch
	pending core.InputFrame // One-shot actions for the next tick
	logger  *log.Logger

	gameState core.GameState
	quitting  bool
	now       func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *intruders.Game, opts Options) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	hold := opts.KeyHold
	if hold <= 0 {
		hold = 150 * time.Millisecond
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, core.Max(1, cfg.ScreenH-helpRows)),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		latch:   NewHoldLatch(hold),
		pending: core.NewInputFrame(),
		logger:  logger,
		now:     time.Now,
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records a key press for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch {
	case action == core.ActionNone:
		return m, nil

	case action == core.ActionQuit:
		// Step once so the game sees the quit and logs the final score
		frame := core.NewInputFrame()
		frame.Set(core.ActionQuit)
		m.gameState = m.game.Step(frame).State
		m.quitting = true
		return m, tea.Quit

	case action.IsHeld():
		m.latch.Press(action, m.now())

	default:
		m.pending.Set(action)
	}

	return m, nil
}

// handleResize adapts the screen buffer to the terminal. The world has a
// fixed size, so the session continues unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(1, msg.Height-helpRows))
	m.help.Width = msg.Width
	m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
	return m, nil
}

// handleTick runs one simulation step with the collected input.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	frame := m.pending.Clone()
	m.pending.Clear()
	m.latch.Apply(&frame, at)

	result := m.game.Step(frame)
	m.gameState = result.State

	if m.gameState.GameOver || m.gameState.Paused {
		m.latch.Reset()
	}

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game *intruders.Game, opts Options) error {
	model := NewModel(game, opts)
	model.logger.Info("terminal opened", "width", model.config.ScreenW, "height", model.config.ScreenH, "tps", model.config.TickRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	model.logger.Info("terminal closed", "score", game.State().Score, "wave", game.Wave())
	return err
}
