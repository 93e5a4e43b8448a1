package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// Options configures the game host.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables result saving
	Logger  *log.Logger
}

// Model is the Bubble Tea model hosting one brick breaker session at a time.
type Model struct {
	opts    Options
	logger  *log.Logger
	session *Session
	screen  *core.Screen
	keys    KeyMap
	help    help.Model

	board      ScoreboardModel
	showScores bool

	lastFrame time.Time
	saved     bool
	quitting  bool
	err       error
}

// NewModel creates the host model with a fresh session.
func NewModel(opts Options) (Model, error) {
	if opts.Runtime.FrameRate <= 0 {
		opts.Runtime.FrameRate = core.DefaultConfig().FrameRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	session, err := NewSession(opts.Config, logger)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.ShowAll = false
	h.Width = opts.Runtime.ScreenW

	return Model{
		opts:    opts,
		logger:  logger,
		session: session,
		screen:  core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 1)),
		keys:    DefaultKeyMap(),
		help:    h,
	}, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.opts.Runtime.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showScores {
			return m.handleScoresKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.saveResult()
		m.session.Close()
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		m.session.TogglePause()

	case core.ActionRestart:
		if m.session.Game.State().Terminal() {
			m.restart()
		}

	case core.ActionScores:
		m.board = NewScoreboardModel(m.opts.Store, m.screen.Width(), m.screen.Height()+1)
		m.showScores = true

	case core.ActionNone:
		// ignore

	default:
		// Movement and launch run synchronously, outside the tick.
		m.session.Dispatch(action)
	}

	return m, nil
}

// handleScoresKey processes keyboard input while the scoreboard is shown.
func (m Model) handleScoresKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.board.keys.Quit):
		return m.handleKey(msg)
	case key.Matches(msg, m.board.keys.Back):
		m.showScores = false
		return m, nil
	}

	updated, cmd := m.board.Update(msg)
	m.board = updated.(ScoreboardModel)
	return m, cmd
}

// handleResize processes window resize events.
// The playfield is scaled, so the game keeps running unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	if m.showScores {
		m.board = m.board.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleFrame advances the game clock by the wall time since the last frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastFrame.IsZero() && !m.showScores {
		m.session.Advance(now.Sub(m.lastFrame))
	}
	m.lastFrame = now

	if m.session.Game.State().Terminal() {
		m.saveResult()
	}

	return m, frameCmd(m.opts.Runtime.FrameRate)
}

// restart replaces the finished session with a new game.
func (m *Model) restart() {
	m.session.Close()

	session, err := NewSession(m.opts.Config, m.logger)
	if err != nil {
		m.logger.Error("restart failed", "error", err)
		m.err = err
		return
	}
	m.session = session
	m.saved = false
	m.logger.Info("game restarted")
}

// saveResult records the session once.
func (m *Model) saveResult() {
	if m.saved {
		return
	}

	result, ok := m.session.Result()
	if !ok {
		return
	}
	m.saved = true

	if m.opts.Store == nil {
		return
	}
	id, err := m.opts.Store.SaveResult(result)
	if err != nil {
		// Best-effort save, the game continues regardless
		m.logger.Warn("could not save result", "error", err)
		return
	}
	m.logger.Info("result saved", "id", id, "outcome", result.Outcome, "score", result.Score)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.board.View()
	}

	m.screen.Clear()
	m.session.Canvas.Render(m.screen, core.NewRect(0, 0, m.screen.Width(), m.screen.Height()))
	if m.session.Paused() {
		m.screen.DrawTextCentered(m.screen.Height()/2, " PAUSED ", core.ColorBlack)
	}

	return RenderScreen(m.screen) + "\n" + m.footer()
}

// footer renders the status and key help line.
func (m Model) footer() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if m.err != nil {
		return style.Render("error: " + m.err.Error())
	}
	return style.Render(m.help.View(m.keys))
}

// Session returns the active session.
func (m Model) Session() *Session {
	return m.session
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok && !m.quitting {
		m.session.Close()
	}
	return err
}
