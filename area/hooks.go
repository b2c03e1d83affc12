package area

import (
	"image"
	"io"

	"github.com/example/tintpanel/paint"
)

// Resizer recomputes the size of an area. Fixed areas derive it from their
// content; dynamic areas usually only fix their transverse size.
type Resizer interface {
	Resize(a *Area)
}

// DesiredSizer reports the primary-axis size an area would like to have.
type DesiredSizer interface {
	DesiredSize(a *Area) int
}

// ForegroundDrawer paints content that is not itself an area (text, icons)
// on top of the background.
type ForegroundDrawer interface {
	DrawForeground(a *Area, dst *image.RGBA)
}

// LayoutChanger is notified after the area moved or was resized.
type LayoutChanger interface {
	OnChangeLayout(a *Area)
}

// MouseTester replaces the rectangle hit-test.
type MouseTester interface {
	IsUnderMouse(a *Area, x, y int) bool
}

// ContentColorer reports the mean color of the area content, used to tint
// the background and border.
type ContentColorer interface {
	ContentColor(a *Area) paint.Color
}

// Tooltipper provides tooltip text.
type Tooltipper interface {
	Tooltip(a *Area) string
}

// TooltipImager provides a tooltip image.
type TooltipImager interface {
	TooltipImage(a *Area) image.Image
}

// GeometryDumper writes extra diagnostic lines for an area.
type GeometryDumper interface {
	DumpGeometry(a *Area, w io.Writer, indent int)
}

// Clearer seeds a new pixmap instead of copying the panel content under the
// area. Areas with a Clearer are composited with alpha onto the panel.
type Clearer interface {
	Clear(a *Area, dst *image.RGBA)
}

// Tooltip returns the tooltip text and image of a, either may be empty.
func Tooltip(a *Area) (string, image.Image) {
	var (
		text string
		img  image.Image
	)
	if t, ok := a.Widget.(Tooltipper); ok {
		text = t.Tooltip(a)
	}
	if t, ok := a.Widget.(TooltipImager); ok {
		img = t.TooltipImage(a)
	}
	return text, img
}

func (a *Area) contentColor() paint.Color {
	if c, ok := a.Widget.(ContentColorer); ok {
		return c.ContentColor(a)
	}
	return paint.Color{}
}
