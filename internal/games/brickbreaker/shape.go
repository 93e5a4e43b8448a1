package brickbreaker

import (
	"time"

	"github.com/vovakirdan/brickbreaker/internal/canvas"
	"github.com/vovakirdan/brickbreaker/internal/core"
	"github.com/vovakirdan/brickbreaker/internal/schedule"
)

// Surface is the rendering surface the game draws on.
// *canvas.Canvas implements it.
type Surface interface {
	Width() float64
	Height() float64
	CreateOval(box core.Box, fill core.Color, opts ...canvas.ItemOption) canvas.ItemID
	CreateRectangle(box core.Box, fill core.Color, opts ...canvas.ItemOption) canvas.ItemID
	CreateText(x, y float64, text string, fontSize int, fill core.Color, opts ...canvas.ItemOption) canvas.ItemID
	Coords(id canvas.ItemID) (core.Box, bool)
	Move(id canvas.ItemID, dx, dy float64)
	Delete(id canvas.ItemID)
	SetFill(id canvas.ItemID, fill core.Color)
	SetText(id canvas.ItemID, text string)
	FindOverlapping(box core.Box) []canvas.ItemID
	FindWithTag(tag string) []canvas.ItemID
}

// Scheduler runs deferred calls. *schedule.Clock implements it.
type Scheduler interface {
	After(delay time.Duration, fn func()) *schedule.Timer
}

// InputSource delivers key actions to handlers. *input.Bindings implements it.
type InputSource interface {
	Bind(action core.Action, fn func())
	Unbind(action core.Action)
}

// Shape is a handle to one primitive on the surface.
type Shape struct {
	surface Surface
	id      canvas.ItemID
}

// ID returns the surface item backing the shape.
func (s *Shape) ID() canvas.ItemID {
	return s.id
}

// Position returns the shape's bounding box.
func (s *Shape) Position() core.Box {
	box, _ := s.surface.Coords(s.id)
	return box
}

// Move shifts the shape by (dx, dy).
func (s *Shape) Move(dx, dy float64) {
	s.surface.Move(s.id, dx, dy)
}

// Delete removes the shape from the surface.
func (s *Shape) Delete() {
	s.surface.Delete(s.id)
}

// HitResult describes what a collision did to an object.
type HitResult int

const (
	HitIgnored   HitResult = iota // Object is unaffected (paddle)
	HitDamaged                    // Object lost a hit point and stays in play
	HitDestroyed                  // Object was removed from play
)

// Collidable is what collision response needs from an object the ball touches.
type Collidable interface {
	ID() canvas.ItemID
	Position() core.Box
	Hit() HitResult
}
