package brickbreaker

import (
	"github.com/vovakirdan/brickbreaker/internal/canvas"
	"github.com/vovakirdan/brickbreaker/internal/config"
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Direction is the ball's heading. Each component is always -1 or +1.
type Direction struct {
	X, Y int
}

// Ball is the bouncing ball.
type Ball struct {
	Shape

	radius    float64
	speed     float64
	direction Direction

	colors     []core.Color
	colorIndex int
	colorStep  int
	colorEvery int

	updates int
}

// NewBall creates a ball centered on (x, y) heading up and to the right.
func NewBall(surface Surface, x, y float64, cfg config.Ball) (*Ball, error) {
	colors := make([]core.Color, 0, len(cfg.Colors))
	for _, name := range cfg.Colors {
		c, err := core.ParseColor(name)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	if len(colors) == 0 {
		colors = append(colors, core.ColorRed)
	}

	b := &Ball{
		radius:     cfg.Radius,
		speed:      cfg.Speed,
		direction:  Direction{X: 1, Y: -1},
		colors:     colors,
		colorEvery: cfg.ColorEvery,
	}
	box := core.BoxAround(x, y, 2*cfg.Radius, 2*cfg.Radius)
	b.Shape = Shape{surface: surface, id: surface.CreateOval(box, colors[0], canvas.WithTags(TagBall))}
	return b, nil
}

// Direction returns the current heading.
func (b *Ball) Direction() Direction {
	return b.direction
}

// Color returns the current fill color.
func (b *Ball) Color() core.Color {
	return b.colors[b.colorIndex]
}

// Updates returns how many times Update has run.
func (b *Ball) Updates() int {
	return b.updates
}

// Update advances the color cycle, reflects off the side and top walls and
// moves the ball one step.
func (b *Ball) Update() {
	b.updates++

	b.colorStep++
	if b.colorStep >= b.colorEvery {
		b.colorIndex = (b.colorIndex + 1) % len(b.colors)
		b.surface.SetFill(b.id, b.colors[b.colorIndex])
		b.colorStep = 0
	}

	pos := b.Position()
	width := b.surface.Width()
	if pos.Left <= 0 || pos.Right >= width {
		b.direction.X *= -1
	}
	if pos.Top <= 0 {
		b.direction.Y *= -1
	}

	b.Move(float64(b.direction.X)*b.speed, float64(b.direction.Y)*b.speed)
}

// Collide reflects the ball off the objects overlapping it and hits each of
// them once. It returns the objects destroyed by the hits.
//
// Several overlapping objects always flip the vertical heading. A single
// object pushes the ball sideways when the ball's center is past one of its
// side edges and flips the vertical heading otherwise.
func (b *Ball) Collide(objects []Collidable) []Collidable {
	switch {
	case len(objects) > 1:
		b.direction.Y *= -1
	case len(objects) == 1:
		x := b.Position().CenterX()
		pos := objects[0].Position()
		switch {
		case x > pos.Right:
			b.direction.X = 1
		case x < pos.Left:
			b.direction.X = -1
		default:
			b.direction.Y *= -1
		}
	}

	var destroyed []Collidable
	for _, obj := range objects {
		if obj.Hit() == HitDestroyed {
			destroyed = append(destroyed, obj)
		}
	}
	return destroyed
}
