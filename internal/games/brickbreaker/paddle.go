package brickbreaker

import (
	"github.com/vovakirdan/brickbreaker/internal/canvas"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Paddle is the player's paddle. It may carry a docked ball before launch.
type Paddle struct {
	Shape

	// docked is a non-owning handle to the ball riding on the paddle.
	docked canvas.ItemID
}

// NewPaddle creates a paddle of size w x h centered on (x, y).
func NewPaddle(surface Surface, x, y, w, h float64, fill core.Color) *Paddle {
	box := core.BoxAround(x, y, w, h)
	return &Paddle{
		Shape: Shape{surface: surface, id: surface.CreateRectangle(box, fill, canvas.WithTags(TagPaddle))},
	}
}

// Dock attaches a ball so it follows paddle moves.
func (p *Paddle) Dock(ball canvas.ItemID) {
	p.docked = ball
}

// Undock releases the docked ball, if any.
func (p *Paddle) Undock() {
	p.docked = canvas.NoItem
}

// Docked returns the docked ball handle, or canvas.NoItem.
func (p *Paddle) Docked() canvas.ItemID {
	return p.docked
}

// Move shifts the paddle horizontally. The move is rejected entirely when the
// paddle would leave the playfield.
func (p *Paddle) Move(offset float64) {
	pos := p.Position()
	width := p.surface.Width()
	if pos.Left+offset < 0 || pos.Right+offset > width {
		return
	}

	p.Shape.Move(offset, 0)
	if p.docked != canvas.NoItem {
		p.surface.Move(p.docked, offset, 0)
	}
}

// Hit does nothing; the paddle is indestructible.
func (p *Paddle) Hit() HitResult {
	return HitIgnored
}
