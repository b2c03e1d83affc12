package paint

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// Mask rasterizes paths into an alpha coverage mask of size w x h.
func Mask(w, h int, paths ...Path) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return mask
	}
	z := vector.NewRasterizer(w, h)
	for _, p := range paths {
		p.AddTo(z)
	}
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// FillPath composites a solid color over dst inside the paths.
func FillPath(dst *image.RGBA, c Color, paths ...Path) {
	if c.A <= 0 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	for _, p := range paths {
		p.AddTo(z)
	}
	z.Draw(dst, b, image.NewUniform(c.NRGBA()), image.Point{})
}

// FillRoundedRect fills r with a solid color.
func FillRoundedRect(dst *image.RGBA, r Rect, radius float64, corners int, c Color) {
	if r.Empty() {
		return
	}
	FillPath(dst, c, RoundedRect(r, radius, corners))
}

// StrokeBorder paints the border of r as an inside stroke: the outer edge of
// the border is the outer edge of r. Only the sides selected by b.Sides are
// painted.
func StrokeBorder(dst *image.RGBA, r Rect, b Border, c Color) {
	if b.Width <= 0 || b.Sides == 0 || r.Empty() {
		return
	}
	radius := float64(b.Radius)
	outer := RoundedRect(r, radius, b.Corners)
	inner := r.Inset(float64(b.Left()), float64(b.Top()), float64(b.Right()), float64(b.Bottom()))
	if inner.Empty() {
		FillPath(dst, c, outer)
		return
	}
	innerRadius := math.Max(0, radius-float64(b.Width))
	FillPath(dst, c, outer, RoundedRect(inner, innerRadius, b.Corners).Reversed())
}

// Group accumulates gradients with additive blending into an isolated
// premultiplied layer which is then composited once.
type Group struct {
	img *image.RGBA
}

// NewGroup returns an empty group of size w x h.
func NewGroup(w, h int) *Group {
	return &Group{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Add paints the pattern through the mask, adding to what the group holds.
func (g *Group) Add(mask *image.Alpha, p *Pattern) {
	b := g.img.Bounds().Intersect(mask.Bounds())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m := float64(mask.AlphaAt(x, y).A) / 255
			if m == 0 {
				continue
			}
			c, ok := p.ColorAtPoint(float64(x)+0.5, float64(y)+0.5)
			if !ok || c.A <= 0 {
				continue
			}
			a := c.A * m
			i := g.img.PixOffset(x, y)
			pix := g.img.Pix[i : i+4 : i+4]
			pix[0] = addSat(pix[0], c.R*a)
			pix[1] = addSat(pix[1], c.G*a)
			pix[2] = addSat(pix[2], c.B*a)
			pix[3] = addSat(pix[3], a)
		}
	}
}

// Composite paints the group over dst.
func (g *Group) Composite(dst *image.RGBA) {
	draw.Draw(dst, dst.Bounds(), g.img, image.Point{}, draw.Over)
}

func addSat(v uint8, f float64) uint8 {
	s := int(v) + int(f*255+0.5)
	if s > 255 {
		return 255
	}
	return uint8(s)
}
