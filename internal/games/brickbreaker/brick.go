package brickbreaker

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/brickbreaker/internal/canvas"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// ErrInvalidHitPoints is returned when a brick is built with hit points outside 1..3.
var ErrInvalidHitPoints = errors.New("brickbreaker: invalid brick hit points")

// Brick hit points range.
const (
	MinHitPoints = 1
	MaxHitPoints = 3
)

// brickColor maps remaining hit points to the brick fill color.
func brickColor(hits int) (core.Color, bool) {
	switch hits {
	case 1:
		return core.ColorRed, true
	case 2:
		return core.ColorWhite, true
	case 3:
		return core.ColorRed, true
	default:
		return core.ColorDefault, false
	}
}

// Brick is a destructible block.
type Brick struct {
	Shape

	hits  int
	alive bool
}

// NewBrick creates a brick of size w x h centered on (x, y).
func NewBrick(surface Surface, x, y, w, h float64, hits int) (*Brick, error) {
	color, ok := brickColor(hits)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidHitPoints, hits)
	}

	box := core.BoxAround(x, y, w, h)
	return &Brick{
		Shape: Shape{surface: surface, id: surface.CreateRectangle(box, color, canvas.WithTags(TagBrick))},
		hits:  hits,
		alive: true,
	}, nil
}

// HitPoints returns the remaining hit points.
func (b *Brick) HitPoints() int {
	return b.hits
}

// Alive reports whether the brick is still in play.
func (b *Brick) Alive() bool {
	return b.alive
}

// Hit removes one hit point, recoloring the brick or deleting it at zero.
func (b *Brick) Hit() HitResult {
	if !b.alive {
		return HitIgnored
	}

	b.hits--
	if b.hits == 0 {
		b.alive = false
		b.Delete()
		return HitDestroyed
	}

	color, _ := brickColor(b.hits)
	b.surface.SetFill(b.id, color)
	return HitDamaged
}
