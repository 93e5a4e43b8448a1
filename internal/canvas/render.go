package canvas

import (
	"math"

	"github.com/vovakirdan/brickbreaker/internal/core"
)

// Render rasterizes the canvas into area of dst, scaling playfield units to
// cells. Items are painted in stacking order so later items cover earlier ones.
func (c *Canvas) Render(dst *core.Screen, area core.Rect) {
	if area.W <= 0 || area.H <= 0 {
		return
	}

	sx := float64(area.W) / c.width
	sy := float64(area.H) / c.height

	for _, id := range c.order {
		it := c.items[id]
		switch it.Kind {
		case KindRectangle:
			c.renderRect(dst, area, it, sx, sy)
		case KindOval:
			c.renderOval(dst, area, it, sx, sy)
		case KindText:
			c.renderText(dst, area, it, sx, sy)
		}
	}
}

// cellSpan converts [lo, hi) in playfield units into a half-open cell range,
// always covering at least one cell.
func cellSpan(lo, hi, scale float64, limit int) (int, int) {
	a := int(math.Floor(lo * scale))
	b := int(math.Ceil(hi * scale))
	if b <= a {
		b = a + 1
	}
	return core.Clamp(a, 0, limit), core.Clamp(b, 0, limit)
}

func (c *Canvas) renderRect(dst *core.Screen, area core.Rect, it *Item, sx, sy float64) {
	x0, x1 := cellSpan(it.Box.Left, it.Box.Right, sx, area.W)
	y0, y1 := cellSpan(it.Box.Top, it.Box.Bottom, sy, area.H)
	dst.FillRect(core.NewRect(area.X+x0, area.Y+y0, x1-x0, y1-y0), it.Glyph, it.Fill)
}

func (c *Canvas) renderOval(dst *core.Screen, area core.Rect, it *Item, sx, sy float64) {
	x0, x1 := cellSpan(it.Box.Left, it.Box.Right, sx, area.W)
	y0, y1 := cellSpan(it.Box.Top, it.Box.Bottom, sy, area.H)

	cx, cy := it.Box.CenterX(), it.Box.CenterY()
	rx, ry := it.Box.Width()/2, it.Box.Height()/2

	painted := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			// Sample the cell center back in playfield units.
			px := (float64(x) + 0.5) / sx
			py := (float64(y) + 0.5) / sy
			if rx > 0 && ry > 0 {
				dx := (px - cx) / rx
				dy := (py - cy) / ry
				if dx*dx+dy*dy > 1 {
					continue
				}
			}
			dst.SetCell(area.X+x, area.Y+y, it.Glyph, it.Fill)
			painted = true
		}
	}

	if !painted {
		x := core.Clamp(int(cx*sx), 0, area.W-1)
		y := core.Clamp(int(cy*sy), 0, area.H-1)
		dst.SetCell(area.X+x, area.Y+y, it.Glyph, it.Fill)
	}
}

func (c *Canvas) renderText(dst *core.Screen, area core.Rect, it *Item, sx, sy float64) {
	runes := []rune(it.Text)
	x := int(it.Box.CenterX()*sx) - len(runes)/2
	y := core.Clamp(int(it.Box.CenterY()*sy), 0, area.H-1)
	for i, r := range runes {
		cx := x + i
		if cx < 0 || cx >= area.W {
			continue
		}
		dst.SetCell(area.X+cx, area.Y+y, r, it.Fill)
	}
}
