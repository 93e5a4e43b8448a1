// Package brickbreaker implements the brick breaker simulation: a paddle, a
// bouncing ball, a grid of bricks and the lives/win/lose state machine.
//
// The game draws through a Surface, schedules its ticks through a Scheduler
// and receives key actions through an InputSource. All of them are driven
// from a single goroutine.
package brickbreaker

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickbreaker/internal/canvas"
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/schedule"
)

// ID is the identifier used for score storage.
const ID = "brickbreaker"

// Title is the display name of the game.
const Title = "Brick Breaker"

// Surface tags.
const (
	TagBall       = "ball"
	TagPaddle     = "paddle"
	TagBrick      = "brick"
	TagBackground = "background"
	TagHUD        = "hud"
	TagMessage    = "message"
)

// Font sizes of the labels.
const (
	hudFontSize       = 15
	messageFontSize   = 40
	watermarkFontSize = 60
)

// State is a phase of the game's state machine.
type State int

const (
	StateSetup          State = iota // Building the next ball
	StateAwaitingLaunch              // Ball docked, waiting for the launch key
	StateRunning                     // Tick loop active
	StateLifeLost                    // Ball fell, waiting for the respawn delay
	StateWon                         // Every brick destroyed
	StateGameOver                    // No lives left
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateAwaitingLaunch:
		return "awaiting_launch"
	case StateRunning:
		return "running"
	case StateLifeLost:
		return "life_lost"
	case StateWon:
		return "won"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game can no longer change state.
func (s State) Terminal() bool {
	return s == StateWon || s == StateGameOver
}

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		g.logger = l
	}
}

// Game orchestrates the playfield.
type Game struct {
	surface Surface
	sched   Scheduler
	input   InputSource
	cfg     config.Config
	logger  *log.Logger

	paddle *Paddle
	ball   *Ball
	bricks []*Brick

	// items maps surface identity to the owning collidable entity.
	items map[canvas.ItemID]Collidable

	hud    canvas.ItemID
	score  canvas.ItemID
	prompt canvas.ItemID
	banner canvas.ItemID

	hudColor  core.Color
	textColor core.Color

	state  State
	lives  int
	points int
	ticks  int
	balls  int

	bricksTotal     int
	bricksDestroyed int

	pending *schedule.Timer
	closed  bool
}

// New builds the playfield and arms the first ball.
// On return the game is awaiting launch.
func New(surface Surface, sched Scheduler, in InputSource, cfg config.Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("brickbreaker: %w", err)
	}

	g := &Game{
		surface: surface,
		sched:   sched,
		input:   in,
		cfg:     cfg,
		logger:  log.New(io.Discard),
		items:   make(map[canvas.ItemID]Collidable),
		lives:   cfg.Gameplay.Lives,
	}
	for _, opt := range opts {
		opt(g)
	}

	// Colors were checked by Validate.
	g.hudColor, _ = core.ParseColor(cfg.Text.HUDColor)
	g.textColor, _ = core.ParseColor(cfg.Text.Color)

	if cfg.Background.Enabled {
		g.createBackground()
	}

	paddleColor, _ := core.ParseColor(cfg.Paddle.Color)
	g.paddle = NewPaddle(surface, surface.Width()/2, cfg.Paddle.Y, cfg.Paddle.Width, cfg.Paddle.Height, paddleColor)
	g.items[g.paddle.ID()] = g.paddle

	if err := g.createBricks(); err != nil {
		return nil, err
	}

	if err := g.setup(); err != nil {
		return nil, err
	}

	step := cfg.Paddle.Step
	in.Bind(core.ActionLeft, func() { g.paddle.Move(-step) })
	in.Bind(core.ActionRight, func() { g.paddle.Move(step) })

	g.logger.Info("game created",
		"bricks", g.bricksTotal,
		"lives", g.lives,
		"width", surface.Width(),
		"height", surface.Height(),
	)
	return g, nil
}

// createBackground draws the two-tone backdrop and the watermark.
func (g *Game) createBackground() {
	bg := g.cfg.Background
	w, h := g.surface.Width(), g.surface.Height()
	top, _ := core.ParseColor(bg.TopColor)
	bottom, _ := core.ParseColor(bg.BottomColor)

	g.surface.CreateRectangle(core.NewBox(0, 0, w, h/2), top, canvas.WithTags(TagBackground), canvas.WithGlyph('░'))
	g.surface.CreateRectangle(core.NewBox(0, h/2, w, h), bottom, canvas.WithTags(TagBackground), canvas.WithGlyph('░'))
	if bg.Watermark != "" {
		g.surface.CreateText(w/2, h/2, bg.Watermark, watermarkFontSize, core.ColorGray, canvas.WithTags(TagBackground))
	}
}

// createBricks lays out one brick per column for every configured row.
func (g *Game) createBricks() error {
	bc := g.cfg.Bricks
	w := g.surface.Width()

	for x := bc.Margin; x < w-bc.Margin; x += bc.Width {
		for _, row := range bc.Rows {
			brick, err := NewBrick(g.surface, x+bc.Width/2, row.Y, bc.Width, bc.Height, row.HitPoints)
			if err != nil {
				return err
			}
			g.bricks = append(g.bricks, brick)
			g.items[brick.ID()] = brick
		}
	}

	g.bricksTotal = len(g.bricks)
	return nil
}

// setup replaces the ball, refreshes the HUD and waits for the launch key.
func (g *Game) setup() error {
	g.pending = nil
	if g.closed {
		return nil
	}
	g.state = StateSetup

	if err := g.addBall(); err != nil {
		return err
	}
	g.updateHUD()

	g.prompt = g.surface.CreateText(g.surface.Width()/2, g.cfg.Paddle.Y, g.cfg.Text.Prompt, messageFontSize, g.textColor, canvas.WithTags(TagMessage))
	g.input.Bind(core.ActionJump, g.launch)

	g.state = StateAwaitingLaunch
	g.logger.Debug("ball ready", "ball", g.balls, "lives", g.lives)
	return nil
}

// respawn is the scheduled form of setup.
func (g *Game) respawn() {
	if err := g.setup(); err != nil {
		// Only reachable with a ball config that bypassed validation.
		g.logger.Error("respawn failed", "error", err)
	}
}

// addBall deletes the previous ball and docks a fresh one above the paddle.
func (g *Game) addBall() error {
	if g.ball != nil {
		g.ball.Delete()
	}

	x := g.paddle.Position().CenterX()
	ball, err := NewBall(g.surface, x, g.cfg.Ball.SpawnY, g.cfg.Ball)
	if err != nil {
		return fmt.Errorf("brickbreaker: cannot create ball: %w", err)
	}

	g.ball = ball
	g.balls++
	g.paddle.Dock(ball.ID())
	return nil
}

// updateHUD creates or refreshes the lives and score labels.
func (g *Game) updateHUD() {
	lives := fmt.Sprintf(g.cfg.Text.Lives, g.lives)
	if g.hud == canvas.NoItem {
		g.hud = g.surface.CreateText(50, 20, lives, hudFontSize, g.hudColor, canvas.WithTags(TagHUD))
	} else {
		g.surface.SetText(g.hud, lives)
	}

	score := fmt.Sprintf(g.cfg.Text.Score, g.points)
	if g.score == canvas.NoItem {
		g.score = g.surface.CreateText(g.surface.Width()-50, 20, score, hudFontSize, g.hudColor, canvas.WithTags(TagHUD))
	} else {
		g.surface.SetText(g.score, score)
	}
}

// launch starts the tick loop. Bound to the launch key while awaiting launch.
func (g *Game) launch() {
	if g.state != StateAwaitingLaunch || g.closed {
		return
	}

	g.input.Unbind(core.ActionJump)
	g.surface.Delete(g.prompt)
	g.prompt = canvas.NoItem
	g.paddle.Undock()

	g.state = StateRunning
	g.logger.Info("ball launched", "ball", g.balls, "lives", g.lives)
	g.tick()
}

// tick runs one step of the game loop and schedules the next one.
func (g *Game) tick() {
	g.pending = nil
	if g.closed || g.state != StateRunning {
		return
	}
	g.ticks++

	g.checkCollisions()

	switch {
	case len(g.surface.FindWithTag(TagBrick)) == 0:
		g.state = StateWon
		g.showBanner(g.cfg.Text.Won)
		g.logger.Info("game won", "score", g.points, "lives", g.lives, "ticks", g.ticks)

	case g.ball.Position().Bottom >= g.surface.Height():
		g.lives--
		if g.lives < 0 {
			g.state = StateGameOver
			g.showBanner(g.cfg.Text.GameOver)
			g.logger.Info("game over", "score", g.points, "bricks_left", g.BricksRemaining(), "ticks", g.ticks)
			return
		}
		g.state = StateLifeLost
		g.logger.Info("life lost", "lives", g.lives)
		g.pending = g.sched.After(g.cfg.Gameplay.RespawnDelay(), g.respawn)

	default:
		g.ball.Update()
		g.pending = g.sched.After(g.cfg.Gameplay.TickInterval(), g.tick)
	}
}

// checkCollisions feeds every game object overlapping the ball to Ball.Collide.
func (g *Game) checkCollisions() {
	var objects []Collidable
	for _, id := range g.surface.FindOverlapping(g.ball.Position()) {
		if obj, ok := g.items[id]; ok {
			objects = append(objects, obj)
		}
	}
	if len(objects) == 0 {
		return
	}

	before := 0
	for _, obj := range objects {
		if b, ok := obj.(*Brick); ok && b.Alive() {
			before++
		}
	}

	destroyed := g.ball.Collide(objects)
	for _, obj := range destroyed {
		delete(g.items, obj.ID())
	}

	g.bricksDestroyed += len(destroyed)
	g.points += before*g.cfg.Scoring.Hit + len(destroyed)*g.cfg.Scoring.Destroy
	if before > 0 {
		g.updateScore()
	}
}

func (g *Game) updateScore() {
	if g.score != canvas.NoItem {
		g.surface.SetText(g.score, fmt.Sprintf(g.cfg.Text.Score, g.points))
	}
}

func (g *Game) showBanner(text string) {
	g.banner = g.surface.CreateText(g.surface.Width()/2, g.surface.Height()/2, text, messageFontSize, g.textColor, canvas.WithTags(TagMessage))
}

// Close stops any pending tick or respawn and releases the input handlers.
// No game callback runs after Close returns.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	if g.pending != nil {
		g.pending.Stop()
		g.pending = nil
	}
	g.input.Unbind(core.ActionJump)
	g.input.Unbind(core.ActionLeft)
	g.input.Unbind(core.ActionRight)
	g.logger.Debug("game closed", "state", g.state)
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Lives returns the remaining lives. Negative after game over.
func (g *Game) Lives() int {
	return g.lives
}

// Score returns the points earned so far.
func (g *Game) Score() int {
	return g.points
}

// Ticks returns the number of ticks run.
func (g *Game) Ticks() int {
	return g.ticks
}

// BricksRemaining returns how many bricks are still in play.
func (g *Game) BricksRemaining() int {
	return g.bricksTotal - g.bricksDestroyed
}

// BricksDestroyed returns how many bricks were destroyed.
func (g *Game) BricksDestroyed() int {
	return g.bricksDestroyed
}

// Ball returns the active ball.
func (g *Game) Ball() *Ball {
	return g.ball
}

// Paddle returns the paddle.
func (g *Game) Paddle() *Paddle {
	return g.paddle
}

// Bricks returns every brick created at setup, including destroyed ones.
func (g *Game) Bricks() []*Brick {
	return g.bricks
}

// Closed reports whether Close was called.
func (g *Game) Closed() bool {
	return g.closed
}

// Banner returns the win/lose banner label, or canvas.NoItem while playing.
func (g *Game) Banner() canvas.ItemID {
	return g.banner
}
