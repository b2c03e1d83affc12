package paint

import "math"

// Brightness returns the perceived brightness of c using the
// 0.299/0.587/0.114 luma weights applied to squared channels.
func Brightness(c Color) float64 {
	r2 := 0.299 * c.R * c.R
	g2 := 0.587 * c.G * c.G
	b2 := 0.114 * c.B * c.B
	switch {
	case c.R == 0:
		return math.Sqrt(g2 + b2)
	case c.G == 0:
		return math.Sqrt(r2 + b2)
	case c.B == 0:
		return math.Sqrt(r2 + g2)
	}
	return math.Sqrt(r2 + g2 + b2)
}

// Tint blends base toward content with the given weight. Blending happens on
// squared channels so intermediate colors keep their intensity. The content
// is first rescaled to the brightness of base; the output keeps base's alpha.
//
// Transparent or black bases and gray contents are returned untouched.
func Tint(base, content Color, weight float64) Color {
	if weight == 0 {
		return base
	}
	if base.A == 0 || base.IsBlack() || content.IsGray() {
		return base
	}
	if weight == 1 {
		return content
	}
	if base.R == content.R && base.G == content.G && base.B == content.B {
		return base
	}

	adjusted := matchBrightness(base, content)
	return Color{
		R: mixChannel(base.R, adjusted.R, weight),
		G: mixChannel(base.G, adjusted.G, weight),
		B: mixChannel(base.B, adjusted.B, weight),
		A: base.A,
	}
}

// matchBrightness scales content so its brightness approaches base's.
// Faint bases pull the ratio toward 1.
func matchBrightness(base, content Color) Color {
	lb := Brightness(base)
	lc := Brightness(content)
	ratio := lb / lc
	l1 := lb * base.A
	ratio = ratio*(1-l1*l1) + l1*l1

	out := Color{
		R: content.R * ratio,
		G: content.G * ratio,
		B: content.B * ratio,
		A: content.A,
	}
	peak := math.Max(out.R, math.Max(out.G, out.B))
	if peak > 1 {
		out.R /= peak
		out.G /= peak
		out.B /= peak
		out.A *= peak
	}
	if out.A > 1 {
		// Desaturate toward the content brightness until alpha fits.
		t := 1 - 1/out.A
		out.R = out.R*(1-t) + lc*t
		out.G = out.G*(1-t) + lc*t
		out.B = out.B*(1-t) + lc*t
		out.A = 1
	}
	return out
}

func mixChannel(a, b, weight float64) float64 {
	return math.Sqrt(a*a*(1-weight) + b*b*weight)
}
