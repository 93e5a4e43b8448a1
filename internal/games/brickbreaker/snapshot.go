package brickbreaker

// Snapshot contains the observable game state.
// Uses primitive types only for stable comparison in tests and logs.
type Snapshot struct {
	State           string
	Lives           int
	Score           int
	Ticks           int
	Balls           int
	BricksRemaining int
	BricksDestroyed int

	BallLeft, BallTop, BallRight, BallBottom float64
	BallDirX, BallDirY                       int
	BallUpdates                              int

	PaddleLeft, PaddleRight float64
	Docked                  bool

	// Remaining hit points per brick in creation order (0 = destroyed)
	BrickHits []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	hits := make([]int, len(g.bricks))
	for i, b := range g.bricks {
		hits[i] = b.HitPoints()
	}

	ball := g.ball.Position()
	paddle := g.paddle.Position()
	dir := g.ball.Direction()

	return Snapshot{
		State:           g.state.String(),
		Lives:           g.lives,
		Score:           g.points,
		Ticks:           g.ticks,
		Balls:           g.balls,
		BricksRemaining: g.BricksRemaining(),
		BricksDestroyed: g.bricksDestroyed,

		BallLeft:    ball.Left,
		BallTop:     ball.Top,
		BallRight:   ball.Right,
		BallBottom:  ball.Bottom,
		BallDirX:    dir.X,
		BallDirY:    dir.Y,
		BallUpdates: g.ball.Updates(),

		PaddleLeft:  paddle.Left,
		PaddleRight: paddle.Right,
		Docked:      g.paddle.Docked() != 0,

		BrickHits: hits,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(len(snap.State))
	for _, r := range snap.State {
		h = h*31 + uint64(r)
	}
	h = h*31 + uint64(snap.Lives+1)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Ticks)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Balls)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallLeft)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallTop)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDirX+1)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDirY+1)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleLeft)      //#nosec G115 -- hash computation

	for _, v := range snap.BrickHits {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
