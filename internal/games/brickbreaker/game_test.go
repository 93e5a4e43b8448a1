package brickbreaker

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/brickbreaker/internal/canvas"
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/input"
	"github.com/vovakirdan/brickbreaker/internal/schedule"
)

const tick = 50 * time.Millisecond

type harness struct {
	game   *Game
	canvas *canvas.Canvas
	clock  *schedule.Clock
	input  *input.Bindings
}

func newHarness(t *testing.T, mutate func(*config.Config)) *harness {
	t.Helper()
	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	h := &harness{
		canvas: canvas.New(cfg.Playfield.Width, cfg.Playfield.Height),
		clock:  schedule.NewClock(),
		input:  input.NewBindings(),
	}
	g, err := New(h.canvas, h.clock, h.input, cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	h.game = g
	return h
}

// dropBall moves the docked ball so that its bottom edge touches the floor.
func (h *harness) dropBall() {
	pos := h.game.Ball().Position()
	h.canvas.Move(h.game.Ball().ID(), 0, h.canvas.Height()-pos.Bottom)
}

func (h *harness) text(id canvas.ItemID) string {
	it, _ := h.canvas.Item(id)
	return it.Text
}

func TestNewLayout(t *testing.T) {
	h := newHarness(t, nil)
	g := h.game

	if g.State() != StateAwaitingLaunch {
		t.Errorf("state = %v, expected awaiting_launch", g.State())
	}
	if g.Lives() != 3 {
		t.Errorf("lives = %d, expected 3", g.Lives())
	}
	if n := len(g.Bricks()); n != 24 {
		t.Fatalf("bricks = %d, expected 24", n)
	}

	hits := map[float64]int{50: 3, 70: 2, 90: 1}
	for i, b := range g.Bricks() {
		pos := b.Position()
		if want := hits[pos.CenterY()]; b.HitPoints() != want {
			t.Errorf("brick %d at y=%v has %d hit points, expected %d", i, pos.CenterY(), b.HitPoints(), want)
		}
		if pos.Left < 5 || pos.Right > 605 {
			t.Errorf("brick %d spans [%v, %v], outside the margins", i, pos.Left, pos.Right)
		}
	}

	paddle := g.Paddle().Position()
	if paddle.CenterX() != 305 || paddle.CenterY() != 350 {
		t.Errorf("paddle center = (%v, %v), expected (305, 350)", paddle.CenterX(), paddle.CenterY())
	}
	ball := g.Ball().Position()
	if ball.CenterX() != 305 || ball.CenterY() != 330 {
		t.Errorf("ball center = (%v, %v), expected (305, 330)", ball.CenterX(), ball.CenterY())
	}
	if g.Paddle().Docked() != g.Ball().ID() {
		t.Error("ball should be docked on the paddle")
	}
	if !h.input.Bound(core.ActionJump) {
		t.Error("launch key should be bound while awaiting launch")
	}
	if got := h.text(g.hud); got != "Lives: 3" {
		t.Errorf("HUD = %q, expected %q", got, "Lives: 3")
	}
	if got := h.text(g.prompt); got != "Press Space to Start!" {
		t.Errorf("prompt = %q", got)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Bricks.Rows = append(cfg.Bricks.Rows, config.BrickRow{Y: 110, HitPoints: 4})

	c := canvas.New(cfg.Playfield.Width, cfg.Playfield.Height)
	_, err := New(c, schedule.NewClock(), input.NewBindings(), cfg)
	if !errors.Is(err, config.ErrInvalid) {
		t.Errorf("New() error = %v, expected ErrInvalid", err)
	}
}

func TestPaddleDragsDockedBall(t *testing.T) {
	h := newHarness(t, nil)
	g := h.game

	h.input.Dispatch(core.ActionLeft)
	h.input.Dispatch(core.ActionLeft)
	if x := g.Ball().Position().CenterX(); x != 285 {
		t.Errorf("docked ball x = %v, expected 285", x)
	}

	h.input.Dispatch(core.ActionJump)
	h.input.Dispatch(core.ActionRight)
	if x := g.Paddle().Position().CenterX(); x != 295 {
		t.Errorf("paddle x = %v, expected 295", x)
	}
	// Launch ran one update: 285 + 5.
	if x := g.Ball().Position().CenterX(); x != 290 {
		t.Errorf("launched ball x = %v, expected 290", x)
	}
}

func TestLaunch(t *testing.T) {
	h := newHarness(t, nil)
	g := h.game
	prompt := g.prompt

	if !h.input.Dispatch(core.ActionJump) {
		t.Fatal("launch key was not handled")
	}

	if g.State() != StateRunning {
		t.Errorf("state = %v, expected running", g.State())
	}
	if g.Ticks() != 1 {
		t.Errorf("ticks = %d, expected the first tick to run on launch", g.Ticks())
	}
	if _, ok := h.canvas.Coords(prompt); ok {
		t.Error("prompt should be deleted on launch")
	}
	if g.Paddle().Docked() != canvas.NoItem {
		t.Error("ball should be undocked on launch")
	}
	if h.input.Bound(core.ActionJump) {
		t.Error("launch key should be unbound while running")
	}
	if h.clock.Pending() != 1 {
		t.Errorf("pending timers = %d, expected the next tick", h.clock.Pending())
	}
}

func TestTicksUpdateBallOnce(t *testing.T) {
	h := newHarness(t, nil)
	g := h.game

	h.input.Dispatch(core.ActionJump)
	h.clock.Advance(19 * tick)

	if g.Ticks() != 20 {
		t.Fatalf("ticks = %d, expected 20", g.Ticks())
	}
	if g.Ball().Updates() != 20 {
		t.Errorf("ball updates = %d, expected one per tick", g.Ball().Updates())
	}
	if g.BricksRemaining() != 24 {
		t.Errorf("bricks remaining = %d, expected 24", g.BricksRemaining())
	}
	// Only background items overlapped the ball so far.
	if g.Ball().Direction() != (Direction{X: 1, Y: -1}) {
		t.Errorf("direction = %+v, expected unchanged", g.Ball().Direction())
	}
	ball := g.Ball().Position()
	if ball.CenterX() != 405 || ball.CenterY() != 230 {
		t.Errorf("ball center = (%v, %v), expected (405, 230)", ball.CenterX(), ball.CenterY())
	}
}

func TestFirstBrickContact(t *testing.T) {
	h := newHarness(t, nil)
	g := h.game

	h.input.Dispatch(core.ActionJump)
	// Tick 45 finds the ball's top edge on the bottom row, straddling two
	// 1-hit bricks.
	h.clock.Advance(43 * tick)
	if g.BricksRemaining() != 24 {
		t.Fatalf("bricks hit too early at tick %d", g.Ticks())
	}
	h.clock.Advance(tick)

	if g.Ticks() != 45 {
		t.Fatalf("ticks = %d, expected 45", g.Ticks())
	}
	if g.BricksRemaining() != 22 || g.BricksDestroyed() != 2 {
		t.Errorf("bricks remaining = %d, destroyed = %d", g.BricksRemaining(), g.BricksDestroyed())
	}
	if g.Score() != 2*10+2*50 {
		t.Errorf("score = %d, expected 120", g.Score())
	}
	if g.Ball().Direction() != (Direction{X: 1, Y: 1}) {
		t.Errorf("direction = %+v, expected downward", g.Ball().Direction())
	}
	if got := h.text(g.score); got != "Score: 120" {
		t.Errorf("score label = %q", got)
	}
	if n := len(h.canvas.FindWithTag(TagBrick)); n != 22 {
		t.Errorf("bricks on canvas = %d, expected 22", n)
	}
}

func TestWinWhenNoBricksLeft(t *testing.T) {
	h := newHarness(t, nil)
	g := h.game

	for _, b := range g.Bricks() {
		b.Delete()
	}
	h.input.Dispatch(core.ActionJump)

	if g.State() != StateWon {
		t.Fatalf("state = %v, expected won", g.State())
	}
	if h.clock.Pending() != 0 {
		t.Errorf("pending timers = %d, expected none after winning", h.clock.Pending())
	}
	if got := h.text(g.Banner()); got != "Congratulations! You Win" {
		t.Errorf("banner = %q", got)
	}
	if !g.State().Terminal() {
		t.Error("won should be terminal")
	}
}

func TestLifeLostAndRespawn(t *testing.T) {
	h := newHarness(t, nil)
	g := h.game
	first := g.Ball().ID()

	h.dropBall()
	h.input.Dispatch(core.ActionJump)

	if g.State() != StateLifeLost {
		t.Fatalf("state = %v, expected life_lost", g.State())
	}
	if g.Lives() != 2 {
		t.Errorf("lives = %d, expected 2", g.Lives())
	}

	h.clock.Advance(999 * time.Millisecond)
	if g.State() != StateLifeLost {
		t.Fatalf("respawned before the delay elapsed")
	}

	h.clock.Advance(time.Millisecond)
	if g.State() != StateAwaitingLaunch {
		t.Fatalf("state = %v, expected awaiting_launch", g.State())
	}
	if g.Ball().ID() == first {
		t.Error("a fresh ball should be created")
	}
	if _, ok := h.canvas.Coords(first); ok {
		t.Error("old ball should be deleted")
	}
	if n := len(h.canvas.FindWithTag(TagBall)); n != 1 {
		t.Errorf("balls on canvas = %d, expected 1", n)
	}
	if got := h.text(g.hud); got != "Lives: 2" {
		t.Errorf("HUD = %q, expected %q", got, "Lives: 2")
	}
	if !h.input.Bound(core.ActionJump) {
		t.Error("launch key should be bound again")
	}
}

func TestGameOver(t *testing.T) {
	h := newHarness(t, nil)
	g := h.game
	g.lives = 0

	h.dropBall()
	h.input.Dispatch(core.ActionJump)

	if g.State() != StateGameOver {
		t.Fatalf("state = %v, expected game_over", g.State())
	}
	if g.Lives() != -1 {
		t.Errorf("lives = %d, expected -1", g.Lives())
	}
	if h.clock.Pending() != 0 {
		t.Errorf("pending timers = %d, expected none", h.clock.Pending())
	}
	if got := h.text(g.Banner()); got != "Game Over! Try Again." {
		t.Errorf("banner = %q", got)
	}
}

func TestPlayUntilGameOver(t *testing.T) {
	h := newHarness(t, nil)
	g := h.game

	for i := 0; i < 10 && !g.State().Terminal(); i++ {
		h.dropBall()
		h.input.Dispatch(core.ActionJump)
		h.clock.Advance(time.Second)
	}

	if g.State() != StateGameOver {
		t.Fatalf("state = %v, expected game_over", g.State())
	}
	if g.Lives() != -1 {
		t.Errorf("lives = %d, expected -1", g.Lives())
	}
	if g.Snapshot().Balls != 4 {
		t.Errorf("balls = %d, expected 4", g.Snapshot().Balls)
	}
}

func TestCloseCancelsRespawn(t *testing.T) {
	h := newHarness(t, nil)
	g := h.game

	h.dropBall()
	h.input.Dispatch(core.ActionJump)
	g.Close()

	h.clock.Advance(5 * time.Second)

	if g.State() != StateLifeLost {
		t.Errorf("state = %v, expected life_lost to be frozen", g.State())
	}
	if g.Snapshot().Balls != 1 {
		t.Error("respawn ran after Close")
	}
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionJump} {
		if h.input.Bound(a) {
			t.Errorf("%v still bound after Close", a)
		}
	}
	if !g.Closed() {
		t.Error("Closed() should report true")
	}
}

func TestCloseStopsTicks(t *testing.T) {
	h := newHarness(t, nil)
	g := h.game

	h.input.Dispatch(core.ActionJump)
	h.clock.Advance(4 * tick)
	g.Close()
	g.Close()

	before := g.Snapshot()
	h.clock.Advance(time.Second)

	if g.Ticks() != before.Ticks {
		t.Errorf("ticks advanced from %d to %d after Close", before.Ticks, g.Ticks())
	}
	if h.clock.Pending() != 0 {
		t.Errorf("pending timers = %d, expected none", h.clock.Pending())
	}
}

func TestBackgroundIsNotCollidable(t *testing.T) {
	h := newHarness(t, nil)
	g := h.game

	if len(h.canvas.FindWithTag(TagBackground)) == 0 {
		t.Fatal("expected background items")
	}
	overlapping := h.canvas.FindOverlapping(g.Ball().Position())
	if len(overlapping) < 2 {
		t.Fatalf("ball should overlap background items, got %v", overlapping)
	}

	g.checkCollisions()
	if g.Ball().Direction() != (Direction{X: 1, Y: -1}) {
		t.Errorf("background changed ball direction to %+v", g.Ball().Direction())
	}
}

func TestWithoutBackground(t *testing.T) {
	h := newHarness(t, func(cfg *config.Config) {
		cfg.Background.Enabled = false
	})

	if n := len(h.canvas.FindWithTag(TagBackground)); n != 0 {
		t.Errorf("background items = %d, expected 0", n)
	}
	if h.game.State() != StateAwaitingLaunch {
		t.Errorf("state = %v", h.game.State())
	}
}

func TestDeterminism(t *testing.T) {
	play := func() uint64 {
		h := newHarness(t, nil)
		h.input.Dispatch(core.ActionLeft)
		h.input.Dispatch(core.ActionLeft)
		h.input.Dispatch(core.ActionJump)
		for i := 0; i < 300; i++ {
			if i%7 == 0 {
				h.input.Dispatch(core.ActionRight)
			}
			h.clock.Advance(tick)
			if h.game.State() == StateAwaitingLaunch {
				h.input.Dispatch(core.ActionJump)
			}
		}
		snap := h.game.Snapshot()
		return snap.Hash()
	}

	first := play()
	for i := 0; i < 3; i++ {
		if got := play(); got != first {
			t.Fatalf("run %d hash = %d, expected %d", i, got, first)
		}
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StateSetup, "setup"},
		{StateAwaitingLaunch, "awaiting_launch"},
		{StateRunning, "running"},
		{StateLifeLost, "life_lost"},
		{StateWon, "won"},
		{StateGameOver, "game_over"},
		{State(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.state.String(); got != tc.expected {
			t.Errorf("State(%d).String() = %q, expected %q", tc.state, got, tc.expected)
		}
	}
}
