package paint

import (
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic Bezier control points so a quarter curve approximates
// a circular arc.
const kappa = 0.5522847498

// Rect is a floating point rectangle in pixmap coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Inset shrinks the rectangle by the given amounts per edge.
func (r Rect) Inset(left, top, right, bottom float64) Rect {
	return Rect{X: r.X + left, Y: r.Y + top, W: r.W - left - right, H: r.H - top - bottom}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

type point struct{ x, y float64 }

type segment struct {
	cubic  bool
	c1, c2 point
	to     point
}

// Path is a closed outline made of lines and cubic curves.
type Path struct {
	start point
	segs  []segment
}

// RoundedRect returns the outline of r. Corners whose bit is set in corners
// are rounded with radius clamped to half of the shorter side; the others
// are sharp. The outline runs clockwise in screen coordinates.
func RoundedRect(r Rect, radius float64, corners int) Path {
	radius = math.Max(0, math.Min(radius, math.Min(r.W, r.H)/2))
	rad := func(bit int) float64 {
		if corners&bit != 0 {
			return radius
		}
		return 0
	}
	tl, tr := rad(CornerTopLeft), rad(CornerTopRight)
	bl, br := rad(CornerBottomLeft), rad(CornerBottomRight)
	x0, y0, x1, y1 := r.X, r.Y, r.X+r.W, r.Y+r.H

	p := Path{start: point{x0 + tl, y0}}
	p.lineTo(x1-tr, y0)
	p.arc(point{x1 - tr, y0}, point{x1, y0 + tr}, tr, true)
	p.lineTo(x1, y1-br)
	p.arc(point{x1, y1 - br}, point{x1 - br, y1}, br, false)
	p.lineTo(x0+bl, y1)
	p.arc(point{x0 + bl, y1}, point{x0, y1 - bl}, bl, true)
	p.lineTo(x0, y0+tl)
	p.arc(point{x0, y0 + tl}, point{x0 + tl, y0}, tl, false)
	return p
}

func (p *Path) lineTo(x, y float64) {
	p.segs = append(p.segs, segment{to: point{x, y}})
}

// arc adds a quarter curve from a to b. Horizontal-first arcs leave a along
// the x axis, the others along the y axis.
func (p *Path) arc(a, b point, radius float64, horizontalFirst bool) {
	if radius == 0 {
		return
	}
	k := kappa
	var c1, c2 point
	if horizontalFirst {
		c1 = point{a.x + (b.x-a.x)*k, a.y}
		c2 = point{b.x, b.y - (b.y-a.y)*k}
	} else {
		c1 = point{a.x, a.y + (b.y-a.y)*k}
		c2 = point{b.x - (b.x-a.x)*k, b.y}
	}
	p.segs = append(p.segs, segment{cubic: true, c1: c1, c2: c2, to: b})
}

// Reversed returns the same outline traversed in the opposite direction.
// Combined with an outer outline it cuts a hole.
func (p Path) Reversed() Path {
	if len(p.segs) == 0 {
		return p
	}
	out := Path{start: p.segs[len(p.segs)-1].to}
	for i := len(p.segs) - 1; i >= 0; i-- {
		from := p.start
		if i > 0 {
			from = p.segs[i-1].to
		}
		s := p.segs[i]
		if s.cubic {
			out.segs = append(out.segs, segment{cubic: true, c1: s.c2, c2: s.c1, to: from})
		} else {
			out.segs = append(out.segs, segment{to: from})
		}
	}
	return out
}

// AddTo appends the outline to a rasterizer.
func (p Path) AddTo(z *vector.Rasterizer) {
	z.MoveTo(float32(p.start.x), float32(p.start.y))
	for _, s := range p.segs {
		if s.cubic {
			z.CubeTo(
				float32(s.c1.x), float32(s.c1.y),
				float32(s.c2.x), float32(s.c2.y),
				float32(s.to.x), float32(s.to.y))
			continue
		}
		z.LineTo(float32(s.to.x), float32(s.to.y))
	}
	z.ClosePath()
}
