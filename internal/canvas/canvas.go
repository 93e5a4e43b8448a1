// Package canvas implements a retained-mode drawing surface.
//
// Items (ovals, rectangles and text labels) live in stacking order and are
// addressed by ItemID. The surface answers bounding-box and overlap queries
// in playfield units and can rasterize itself onto a core.Screen.
package canvas

import (
	"github.com/vovakirdan/brickbreaker/internal/core"
)

// ItemID identifies an item on the canvas. Zero is never a valid item.
type ItemID int

// NoItem is the zero ItemID.
const NoItem ItemID = 0

// Kind is the primitive type of an item.
type Kind int

const (
	KindOval Kind = iota
	KindRectangle
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindOval:
		return "oval"
	case KindRectangle:
		return "rectangle"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Text glyphs are approximated as boxes of this many font units.
const (
	glyphWidthRatio  = 0.6
	glyphHeightRatio = 1.2
)

// Item is a single primitive on the canvas.
type Item struct {
	ID       ItemID
	Kind     Kind
	Box      core.Box
	Fill     core.Color
	Glyph    rune // Rasterization rune for shapes
	Text     string
	FontSize int
	Tags     []string
}

// HasTag reports whether the item carries the given tag.
func (it *Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ItemOption customizes an item at creation time.
type ItemOption func(*Item)

// WithTags attaches tags to the item.
func WithTags(tags ...string) ItemOption {
	return func(it *Item) {
		it.Tags = append(it.Tags, tags...)
	}
}

// WithGlyph overrides the rune used to rasterize a shape.
func WithGlyph(r rune) ItemOption {
	return func(it *Item) {
		it.Glyph = r
	}
}

// Canvas holds items in stacking order (first created is drawn first).
// It is not safe for concurrent use; the game runs on a single goroutine.
type Canvas struct {
	width  float64
	height float64
	items  map[ItemID]*Item
	order  []ItemID
	nextID ItemID
}

// New creates an empty canvas of the given size in playfield units.
func New(width, height float64) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		items:  make(map[ItemID]*Item),
		nextID: 1,
	}
}

// Width returns the canvas width.
func (c *Canvas) Width() float64 {
	return c.width
}

// Height returns the canvas height.
func (c *Canvas) Height() float64 {
	return c.height
}

// Len returns the number of live items.
func (c *Canvas) Len() int {
	return len(c.items)
}

func (c *Canvas) add(it *Item, opts []ItemOption) ItemID {
	for _, opt := range opts {
		opt(it)
	}
	it.ID = c.nextID
	c.nextID++
	c.items[it.ID] = it
	c.order = append(c.order, it.ID)
	return it.ID
}

// CreateOval adds an oval inscribed in box.
func (c *Canvas) CreateOval(box core.Box, fill core.Color, opts ...ItemOption) ItemID {
	return c.add(&Item{Kind: KindOval, Box: box, Fill: fill, Glyph: '●'}, opts)
}

// CreateRectangle adds a filled rectangle.
func (c *Canvas) CreateRectangle(box core.Box, fill core.Color, opts ...ItemOption) ItemID {
	return c.add(&Item{Kind: KindRectangle, Box: box, Fill: fill, Glyph: '█'}, opts)
}

// CreateText adds a text label centered on (x, y).
func (c *Canvas) CreateText(x, y float64, text string, fontSize int, fill core.Color, opts ...ItemOption) ItemID {
	it := &Item{Kind: KindText, Fill: fill, Text: text, FontSize: fontSize}
	it.Box = textBox(x, y, text, fontSize)
	return c.add(it, opts)
}

func textBox(cx, cy float64, text string, fontSize int) core.Box {
	w := float64(len([]rune(text))) * float64(fontSize) * glyphWidthRatio
	h := float64(fontSize) * glyphHeightRatio
	return core.BoxAround(cx, cy, w, h)
}

// Item returns a copy of the item with the given ID.
func (c *Canvas) Item(id ItemID) (Item, bool) {
	it, ok := c.items[id]
	if !ok {
		return Item{}, false
	}
	return *it, true
}

// Coords returns the bounding box of an item.
func (c *Canvas) Coords(id ItemID) (core.Box, bool) {
	it, ok := c.items[id]
	if !ok {
		return core.Box{}, false
	}
	return it.Box, true
}

// Move shifts an item by (dx, dy). Unknown IDs are ignored.
func (c *Canvas) Move(id ItemID, dx, dy float64) {
	if it, ok := c.items[id]; ok {
		it.Box = it.Box.Translate(dx, dy)
	}
}

// Delete removes an item. Unknown IDs are ignored.
func (c *Canvas) Delete(id ItemID) {
	if _, ok := c.items[id]; !ok {
		return
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// SetFill changes the fill color of an item.
func (c *Canvas) SetFill(id ItemID, fill core.Color) {
	if it, ok := c.items[id]; ok {
		it.Fill = fill
	}
}

// SetText replaces the text of a label, keeping it centered where it was.
func (c *Canvas) SetText(id ItemID, text string) {
	it, ok := c.items[id]
	if !ok || it.Kind != KindText {
		return
	}
	it.Text = text
	it.Box = textBox(it.Box.CenterX(), it.Box.CenterY(), text, it.FontSize)
}

// FindOverlapping returns, in stacking order, every item whose bounding box
// intersects or touches box.
func (c *Canvas) FindOverlapping(box core.Box) []ItemID {
	var ids []ItemID
	for _, id := range c.order {
		if c.items[id].Box.Overlaps(box) {
			ids = append(ids, id)
		}
	}
	return ids
}

// FindWithTag returns, in stacking order, every item carrying tag.
func (c *Canvas) FindWithTag(tag string) []ItemID {
	var ids []ItemID
	for _, id := range c.order {
		if c.items[id].HasTag(tag) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Items returns copies of all items in stacking order.
func (c *Canvas) Items() []Item {
	result := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		result = append(result, *c.items[id])
	}
	return result
}
