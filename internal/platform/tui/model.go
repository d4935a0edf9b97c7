package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Model is the Bubble Tea model that drives one snake game.
type Model struct {
	ctrl   *snake.Controller
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	last      snake.Snapshot
	restartIn time.Duration
	paused    bool
	quitting  bool
}

// NewModel creates a Bubble Tea model around an engine controller.
// A nil logger discards log output.
func NewModel(ctrl *snake.Controller, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}

	return Model{
		ctrl:   ctrl,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-1), // Last line is the help footer
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		last:   ctrl.Snapshot(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "interval", m.config.TickInterval, "seed", m.ctrl.Settings().Seed)
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		wasVisible := m.BoardVisible()
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		if visible := m.BoardVisible(); visible != wasVisible {
			m.logger.Info("board visibility changed", "visible", visible, "width", msg.Width, "height", msg.Height)
		}
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Direction keys go straight to the
// controller, which queues them for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch {
	case action == core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "length", m.last.Length())
		return m, tea.Quit

	case action == core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case action == core.ActionPause:
		if !m.ctrl.IsGameOver() {
			m.paused = !m.paused
		}

	case action.IsMovement():
		if m.paused {
			return m, nil
		}
		dir := directionFor(action)
		if !m.ctrl.RequestDirectionChange(dir) {
			m.logger.Debug("direction rejected", "requested", dir, "heading", m.ctrl.Heading())
		}
	}

	return m, nil
}

// handleTick advances the game, or tries the timed restart while in GameOver.
// Nothing advances while paused or while the board does not fit the window.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.paused || !m.BoardVisible() {
		return m, tickCmd(m.config.TickInterval)
	}

	if m.ctrl.IsGameOver() {
		m.ctrl.RestartIfReady(now)
	} else {
		m.ctrl.Tick(snake.DirNone)
	}

	m.restartIn = 0
	if m.ctrl.IsGameOver() {
		m.restartIn = m.ctrl.Settings().RestartDelay - now.Sub(m.ctrl.GameOverAt())
	}

	snap := m.ctrl.Snapshot()
	m.logTransition(m.last, snap)
	m.last = snap

	return m, tickCmd(m.config.TickInterval)
}

// logTransition logs what changed between two snapshots.
func (m Model) logTransition(prev, cur snake.Snapshot) {
	if cur.Equal(prev) {
		return
	}

	switch {
	case cur.Won && !prev.Won:
		m.logger.Info("board cleared", "length", cur.Length(), "ticks", cur.Tick)
	case cur.GameOver && !prev.GameOver:
		m.logger.Info("game over", "length", cur.Length(), "head", cur.Head(), "heading", cur.Heading)
	case prev.GameOver && !cur.GameOver:
		m.logger.Info("restarted")
	case cur.Length() > prev.Length():
		m.logger.Debug("food eaten", "length", cur.Length(), "at", cur.Head())
	}

	if cur.HasFood && (!prev.HasFood || prev.Food != cur.Food) {
		m.logger.Debug("food placed", "at", cur.Food)
	}
}

// Snapshot returns the state shown by the last tick.
func (m Model) Snapshot() snake.Snapshot {
	return m.last
}

// Paused reports whether the player paused the game.
func (m Model) Paused() bool {
	return m.paused
}

// BoardVisible reports whether the current window can show the board.
func (m Model) BoardVisible() bool {
	return BoardFits(m.screen.Width(), m.screen.Height(), m.last.Width, m.last.Height)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawBoard(m.screen, m.last, BoardStatus{
		Paused:         m.paused,
		RestartIn:      m.restartIn,
		MovesPerSecond: float64(time.Second) / float64(m.config.TickInterval),
	})

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given controller.
func Run(ctrl *snake.Controller, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(ctrl, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
