package area

import (
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/example/tintpanel/paint"
)

// shrinkSlack is how much narrower text must get before a fixed text box
// shrinks. Clocks and counters would otherwise make the panel jitter.
const shrinkSlack = 6

const ellipsis = "..."

// TextBox is the widget of an area showing one or more centered lines of
// text. Lines wider than the area are ellipsized.
type TextBox struct {
	Lines []string
	// Faces holds the face of each line; missing entries use the last face
	// given, or basicfont when none is.
	Faces []font.Face
	Color paint.Color
	// LineSpacing is the gap between lines in pixels.
	LineSpacing int
}

// SetText replaces the lines and schedules a resize and repaint of a.
func (t *TextBox) SetText(a *Area, lines ...string) {
	if equalLines(t.Lines, lines) {
		return
	}
	t.Lines = lines
	a.MarkResize()
	a.ScheduleRedraw()
}

func equalLines(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (t *TextBox) face(i int) font.Face {
	if i < len(t.Faces) && t.Faces[i] != nil {
		return t.Faces[i]
	}
	for j := len(t.Faces) - 1; j >= 0; j-- {
		if t.Faces[j] != nil {
			return t.Faces[j]
		}
	}
	return basicfont.Face7x13
}

// Measure returns the width of the widest line and the height of the block.
func (t *TextBox) Measure() (w, h int) {
	for i, line := range t.Lines {
		f := t.face(i)
		if lw := font.MeasureString(f, line).Ceil(); lw > w {
			w = lw
		}
		h += f.Metrics().Height.Ceil()
		if i > 0 {
			h += t.LineSpacing
		}
	}
	return w, h
}

// DesiredSize implements DesiredSizer.
func (t *TextBox) DesiredSize(a *Area) int {
	tw, th := t.Measure()
	s, e := a.primaryBorders()
	if a.horizontal() {
		return tw + 2*a.Padding + s + e
	}
	return th + 2*a.Padding + s + e
}

// Resize implements Resizer. Fixed text boxes grow at once but only shrink
// once the text got noticeably shorter.
func (t *TextBox) Resize(a *Area) {
	FillTransverse(a)
	if a.SizeMode == SizeDynamic {
		return
	}
	size := t.DesiredSize(a)
	if !a.horizontal() {
		a.Height = size
		return
	}
	if size > a.Width || size < a.Width-shrinkSlack {
		a.Width = size
	}
}

// DrawForeground implements ForegroundDrawer.
func (t *TextBox) DrawForeground(a *Area, dst *image.RGBA) {
	if len(t.Lines) == 0 {
		return
	}
	b := a.background.Border
	left := b.Left() + a.Padding
	top := b.Top()
	width := a.Width - left - b.Right() - a.Padding
	height := a.Height - top - b.Bottom()
	if !a.horizontal() {
		left = b.Left() + a.PaddingTransverse
		top = b.Top() + a.Padding
		width = a.Width - left - b.Right() - a.PaddingTransverse
		height = a.Height - top - b.Bottom() - a.Padding
	}
	if width <= 0 || height <= 0 {
		return
	}

	_, th := t.Measure()
	y := top + (height-th)/2
	src := image.NewUniform(t.Color.NRGBA())
	for i, line := range t.Lines {
		f := t.face(i)
		line = Ellipsize(f, line, width)
		lw := font.MeasureString(f, line).Ceil()
		d := &font.Drawer{Dst: dst, Src: src, Face: f}
		d.Dot = fixed.P(left+(width-lw)/2, y+f.Metrics().Ascent.Ceil())
		d.DrawString(line)
		y += f.Metrics().Height.Ceil() + t.LineSpacing
	}
}

// ContentColor implements ContentColorer: backgrounds are tinted toward the
// text color.
func (t *TextBox) ContentColor(a *Area) paint.Color {
	return t.Color
}

// Tooltip implements Tooltipper.
func (t *TextBox) Tooltip(a *Area) string {
	return strings.Join(t.Lines, "\n")
}

// Ellipsize shortens s with a trailing ellipsis until it fits in limit pixels.
func Ellipsize(f font.Face, s string, limit int) string {
	if font.MeasureString(f, s).Ceil() <= limit {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		c := string(runes[:n]) + ellipsis
		if font.MeasureString(f, c).Ceil() <= limit {
			return c
		}
	}
	return ""
}
