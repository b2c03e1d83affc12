package paint

import (
	"image"
	"image/color"
	"math"
)

// PatternType is the kind of a gradient pattern.
type PatternType int

const (
	PatternLinear PatternType = iota
	PatternRadial
)

// Pattern is a realized gradient: resolved geometry plus color stops. Values
// outside the [0,1] gradient range are padded with the end stops.
type Pattern struct {
	patternType PatternType
	// linear: (x0, y0) to (x1, y1)
	x0, y0, x1, y1 float64
	// radial: circle (x0, y0, r0) to circle (x1, y1, r1)
	r0, r1 float64
	stops  []ColorStop
}

// NewLinearPattern creates a linear gradient pattern.
func NewLinearPattern(x0, y0, x1, y1 float64) *Pattern {
	return &Pattern{patternType: PatternLinear, x0: x0, y0: y0, x1: x1, y1: y1}
}

// NewRadialPattern creates a two-circle radial gradient pattern.
func NewRadialPattern(cx0, cy0, r0, cx1, cy1, r1 float64) *Pattern {
	return &Pattern{
		patternType: PatternRadial,
		x0:          cx0,
		y0:          cy0,
		r0:          r0,
		x1:          cx1,
		y1:          cy1,
		r1:          r1,
	}
}

// AddColorStop appends a stop. Offsets are taken as given.
func (p *Pattern) AddColorStop(offset float64, c Color) {
	p.stops = append(p.stops, ColorStop{Offset: offset, Color: c})
}

// Type returns the pattern type.
func (p *Pattern) Type() PatternType {
	return p.patternType
}

// Stops returns the color stops in insertion order.
func (p *Pattern) Stops() []ColorStop {
	return p.stops
}

// Points returns the resolved geometry.
func (p *Pattern) Points() (x0, y0, r0, x1, y1, r1 float64) {
	return p.x0, p.y0, p.r0, p.x1, p.y1, p.r1
}

// ColorAt returns the color at position t along the gradient.
func (p *Pattern) ColorAt(t float64) Color {
	if len(p.stops) == 0 {
		return Color{}
	}
	if t <= p.stops[0].Offset {
		return p.stops[0].Color
	}
	last := p.stops[len(p.stops)-1]
	if t >= last.Offset {
		return last.Color
	}
	before, after := p.stops[0], last
	for i := 0; i < len(p.stops)-1; i++ {
		if t >= p.stops[i].Offset && t <= p.stops[i+1].Offset {
			before, after = p.stops[i], p.stops[i+1]
			break
		}
	}
	if after.Offset == before.Offset {
		return before.Color
	}
	ratio := (t - before.Offset) / (after.Offset - before.Offset)
	lerp := func(a, b float64) float64 { return a + ratio*(b-a) }
	return Color{
		R: lerp(before.Color.R, after.Color.R),
		G: lerp(before.Color.G, after.Color.G),
		B: lerp(before.Color.B, after.Color.B),
		A: lerp(before.Color.A, after.Color.A),
	}
}

// ColorAtPoint returns the color at (x, y). The second result is false where
// a radial gradient is undefined.
func (p *Pattern) ColorAtPoint(x, y float64) (Color, bool) {
	if p.patternType == PatternRadial {
		t, ok := p.radialT(x, y)
		if !ok {
			return Color{}, false
		}
		return p.ColorAt(t), true
	}
	return p.ColorAt(p.linearT(x, y)), true
}

func (p *Pattern) linearT(x, y float64) float64 {
	dx := p.x1 - p.x0
	dy := p.y1 - p.y0
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return 0
	}
	return ((x-p.x0)*dx + (y-p.y0)*dy) / lengthSq
}

// radialT finds the largest t for which (x, y) lies on the interpolated
// circle with a non-negative radius.
func (p *Pattern) radialT(x, y float64) (float64, bool) {
	cdx, cdy := p.x1-p.x0, p.y1-p.y0
	pdx, pdy := x-p.x0, y-p.y0
	dr := p.r1 - p.r0

	a := cdx*cdx + cdy*cdy - dr*dr
	b := pdx*cdx + pdy*cdy + p.r0*dr
	c := pdx*pdx + pdy*pdy - p.r0*p.r0

	if a == 0 {
		if b == 0 {
			return 0, false
		}
		t := c / (2 * b)
		return t, p.r0+t*dr >= 0
	}
	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t0 := (b + sq) / a
	t1 := (b - sq) / a
	if t0 < t1 {
		t0, t1 = t1, t0
	}
	if p.r0+t0*dr >= 0 {
		return t0, true
	}
	if p.r0+t1*dr >= 0 {
		return t1, true
	}
	return 0, false
}

// Image adapts the pattern to an image.Image over bounds, sampling at pixel
// centers. The origin shifts image coordinates into pattern space.
func (p *Pattern) Image(bounds image.Rectangle, origin image.Point) image.Image {
	return &patternImage{p: p, bounds: bounds, origin: origin}
}

type patternImage struct {
	p      *Pattern
	bounds image.Rectangle
	origin image.Point
}

func (pi *patternImage) ColorModel() color.Model { return color.NRGBAModel }

func (pi *patternImage) Bounds() image.Rectangle { return pi.bounds }

func (pi *patternImage) At(x, y int) color.Color {
	c, ok := pi.p.ColorAtPoint(float64(x-pi.origin.X)+0.5, float64(y-pi.origin.Y)+0.5)
	if !ok {
		return color.NRGBA{}
	}
	return c.NRGBA()
}
