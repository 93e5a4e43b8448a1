package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/canvas"
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/games/brickbreaker"
	"github.com/vovakirdan/brickbreaker/internal/input"
	"github.com/vovakirdan/brickbreaker/internal/schedule"
	"github.com/vovakirdan/brickbreaker/internal/storage"
)

// maxFrameStep caps the virtual time a single frame may advance, so a
// suspended terminal does not replay seconds of ticks at once.
const maxFrameStep = 250 * time.Millisecond

// Session is one game together with the surface, clock and input it runs on.
type Session struct {
	Canvas *canvas.Canvas
	Clock  *schedule.Clock
	Input  *input.Bindings
	Game   *brickbreaker.Game

	paused bool
}

// NewSession builds a fresh game awaiting launch.
func NewSession(cfg config.Config, logger *log.Logger) (*Session, error) {
	s := &Session{
		Canvas: canvas.New(cfg.Playfield.Width, cfg.Playfield.Height),
		Clock:  schedule.NewClock(),
		Input:  input.NewBindings(),
	}

	var opts []brickbreaker.Option
	if logger != nil {
		opts = append(opts, brickbreaker.WithLogger(logger))
	}

	g, err := brickbreaker.New(s.Canvas, s.Clock, s.Input, cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot start game: %w", err)
	}
	s.Game = g
	return s, nil
}

// Advance moves the game clock by elapsed wall time unless paused.
func (s *Session) Advance(elapsed time.Duration) int {
	if s.paused || s.Game.Closed() {
		return 0
	}
	if elapsed > maxFrameStep {
		elapsed = maxFrameStep
	}
	return s.Clock.Advance(elapsed)
}

// Dispatch forwards a game action to the bound handler.
// Actions are ignored while paused.
func (s *Session) Dispatch(action core.Action) bool {
	if s.paused {
		return false
	}
	return s.Input.Dispatch(action)
}

// TogglePause pauses or resumes the clock. Finished games cannot be paused.
func (s *Session) TogglePause() {
	if s.Game.State().Terminal() {
		s.paused = false
		return
	}
	s.paused = !s.paused
}

// Paused reports whether the clock is frozen.
func (s *Session) Paused() bool {
	return s.paused
}

// Close cancels the game's pending callbacks.
func (s *Session) Close() {
	s.Game.Close()
	s.Clock.StopAll()
}

// Result describes the game for the results table. The second return value
// is false when there is nothing worth recording: an unfinished game with no
// destroyed bricks.
func (s *Session) Result() (storage.Result, bool) {
	g := s.Game

	var outcome storage.Outcome
	switch g.State() {
	case brickbreaker.StateWon:
		outcome = storage.OutcomeWon
	case brickbreaker.StateGameOver:
		outcome = storage.OutcomeGameOver
	default:
		if g.BricksDestroyed() == 0 {
			return storage.Result{}, false
		}
		outcome = storage.OutcomeQuit
	}

	return storage.Result{
		GameID:          brickbreaker.ID,
		Outcome:         outcome,
		Score:           g.Score(),
		BricksDestroyed: g.BricksDestroyed(),
		LivesLeft:       g.Lives(),
		Ticks:           g.Ticks(),
	}, true
}
