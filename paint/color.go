package paint

import (
	"image/color"
	"math"
)

// Color is a straight (non-premultiplied) RGBA color with every channel in
// [0,1].
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// IsBlack reports whether all color channels are zero, regardless of alpha.
func (c Color) IsBlack() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// IsGray reports whether the three color channels are equal.
func (c Color) IsGray() bool {
	return c.R == c.G && c.G == c.B
}

// NRGBA converts to an 8-bit straight-alpha color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: clampToByte(c.R),
		G: clampToByte(c.G),
		B: clampToByte(c.B),
		A: clampToByte(c.A),
	}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// FromColor converts any color.Color into a Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

func clampToByte(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Side bits select which edges of a border are drawn.
const (
	BorderTop = 1 << iota
	BorderBottom
	BorderLeft
	BorderRight

	BorderAll = BorderTop | BorderBottom | BorderLeft | BorderRight
)

// Corner bits select which corners of a border are rounded.
const (
	CornerTopLeft = 1 << iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight

	CornerAll = CornerTopLeft | CornerTopRight | CornerBottomLeft | CornerBottomRight
)

// Border describes the outline of a box.
type Border struct {
	Color   Color
	Width   int
	Radius  int
	Sides   int
	Corners int
}

// Left returns the painted width of the left edge.
func (b Border) Left() int { return b.side(BorderLeft) }

// Right returns the painted width of the right edge.
func (b Border) Right() int { return b.side(BorderRight) }

// Top returns the painted width of the top edge.
func (b Border) Top() int { return b.side(BorderTop) }

// Bottom returns the painted width of the bottom edge.
func (b Border) Bottom() int { return b.side(BorderBottom) }

func (b Border) side(bit int) int {
	if b.Sides&bit != 0 {
		return b.Width
	}
	return 0
}

// MouseState is the pointer interaction state of a box.
type MouseState int

const (
	MouseNormal MouseState = iota
	MouseOver
	MouseDown

	MouseStateCount = 3
)

func (s MouseState) String() string {
	switch s {
	case MouseOver:
		return "over"
	case MouseDown:
		return "down"
	default:
		return "normal"
	}
}

// Background is the generic decoration of a box. Gradient classes are not
// owned by the background; they belong to the theme table.
type Background struct {
	FillColor        Color
	FillColorHover   Color
	FillColorPressed Color

	Border        Border
	BorderHover   Border
	BorderPressed Border

	Gradients [MouseStateCount][]*GradientClass

	FillContentTintWeight   float64
	BorderContentTintWeight float64
}

// Fill returns the fill color for a mouse state.
func (bg *Background) Fill(state MouseState) Color {
	switch state {
	case MouseOver:
		return bg.FillColorHover
	case MouseDown:
		return bg.FillColorPressed
	}
	return bg.FillColor
}

// BorderFor returns the border for a mouse state.
func (bg *Background) BorderFor(state MouseState) Border {
	switch state {
	case MouseOver:
		return bg.BorderHover
	case MouseDown:
		return bg.BorderPressed
	}
	return bg.Border
}

// Transparent is a background that paints nothing.
var Transparent = &Background{}
