package area

import (
	"fmt"
	"image"
	"log"

	"github.com/example/tintpanel/paint"
)

// SizeMode specifies who decides the size of an Area.
type SizeMode int

const (
	// SizeFixed areas compute their own size from their content. Children
	// are resized before their parent.
	SizeFixed SizeMode = iota

	// SizeDynamic areas are sized by their parent, which resizes before its
	// children and shares its remaining space between them.
	SizeDynamic
)

// Alignment controls how a container places its children along the primary
// axis of the panel.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Change flags recorded by the layout pass and consumed by the next paint.
const (
	ChangedMove = 1 << iota
	ChangedSize
)

// Area is a rectangular node of a panel layout tree. Positions are relative
// to the panel window.
type Area struct {
	Name string

	X, Y          int
	Width, Height int

	SizeMode  SizeMode
	Alignment Alignment

	// Padding is applied at both ends of the primary axis, Spacing between
	// children, PaddingTransverse at both ends of the other axis.
	Padding           int
	Spacing           int
	PaddingTransverse int

	// MaxChildSize caps the size handed to dynamic children; 0 means no cap.
	MaxChildSize int

	MouseOverEffect  bool
	MousePressEffect bool

	// Widget carries the per-kind behavior. It may implement any of the
	// hook interfaces in hooks.go.
	Widget any

	background *paint.Background

	parent   *Area
	children []*Area
	panel    *Panel

	onScreen     bool
	resizeNeeded bool
	redrawNeeded bool
	changed      int
	lastChanged  int
	pixStale     bool
	mouseState   paint.MouseState

	// ownTransverse is set when the last resize gave the area a transverse
	// size other than what its parent offers.
	ownTransverse bool

	pixByState [paint.MouseStateCount]*image.RGBA
	pix        *image.RGBA

	gradients          [paint.MouseStateCount][]*GradientInstance
	dependentGradients []*GradientInstance
}

// New creates an on-screen area that still needs layout and paint.
func New(name string, mode SizeMode, widget any) *Area {
	return &Area{
		Name:         name,
		SizeMode:     mode,
		Widget:       widget,
		background:   paint.Transparent,
		onScreen:     true,
		resizeNeeded: true,
		redrawNeeded: true,
	}
}

func (a *Area) String() string {
	return fmt.Sprintf("%s(%d,%d %dx%d)", a.Name, a.X, a.Y, a.Width, a.Height)
}

// Parent returns the parent area, nil for a root or detached area.
func (a *Area) Parent() *Area { return a.parent }

// Children returns the child list in paint order.
func (a *Area) Children() []*Area { return a.children }

// Panel returns the panel owning the tree, if any.
func (a *Area) Panel() *Panel { return a.panel }

// OnScreen reports whether the area takes part in layout and paint.
func (a *Area) OnScreen() bool { return a.onScreen }

// ResizeNeeded reports whether the area size must be recomputed.
func (a *Area) ResizeNeeded() bool { return a.resizeNeeded }

// RedrawNeeded reports whether the area pixmap must be repainted.
func (a *Area) RedrawNeeded() bool { return a.redrawNeeded }

// Changed returns the change flags recorded by the last layout pass.
func (a *Area) Changed() int { return a.lastChanged }

// MouseState returns the current pointer state of the area.
func (a *Area) MouseState() paint.MouseState { return a.mouseState }

// Background returns the area decoration.
func (a *Area) Background() *paint.Background { return a.background }

// Bounds returns the area rectangle in panel coordinates.
func (a *Area) Bounds() image.Rectangle {
	return image.Rect(a.X, a.Y, a.X+a.Width, a.Y+a.Height)
}

// SetBackground replaces the decoration and rebuilds the gradient instances
// of every mouse state.
func (a *Area) SetBackground(bg *paint.Background) {
	if bg == nil {
		bg = paint.Transparent
	}
	a.background = bg
	a.initGradients()
	a.ScheduleRedraw()
}

// MarkResize flags the area for resizing during the next layout pass.
func (a *Area) MarkResize() {
	a.resizeNeeded = true
	a.requestRefresh()
}

// AddChild appends child to a's children and marks a for resizing. Adding
// an area which already has a parent is a programming error.
func (a *Area) AddChild(child *Area) {
	if child.parent != nil {
		panic(fmt.Sprintf("area %s: already attached to %s", child.Name, child.parent.Name))
	}
	child.parent = a
	a.children = append(a.children, child)
	child.setPanel(a.panel)
	initTreeGradients(child)
	a.resizeNeeded = true
	a.ScheduleRedraw()
}

// RemoveFromParent detaches a from its parent. The area stops being the
// hover target and its subtree drops its gradient instances; AddChild
// rebuilds them.
func (a *Area) RemoveFromParent() {
	parent := a.parent
	if parent != nil {
		for i, c := range parent.children {
			if c == a {
				parent.children = append(parent.children[:i:i], parent.children[i+1:]...)
				break
			}
		}
		parent.resizeNeeded = true
		parent.ScheduleRedraw()
	}
	if p := a.panel; p != nil && p.mouseOver != nil && a.contains(p.mouseOver) {
		p.MouseOut()
	}
	freeTreeGradients(a)
	a.parent = nil
	a.setPanel(nil)
}

// Free releases a and its subtree: children, cached pixmaps and gradient
// instances. It does not detach a from its parent.
func (a *Area) Free() {
	for _, c := range a.children {
		c.Free()
	}
	a.children = nil
	a.freePixmaps()
	if p := a.panel; p != nil && p.mouseOver == a {
		log.Printf("area %s: freed while hovered, clearing hover target", a.Name)
		p.mouseOver = nil
	}
	a.freeGradients()
}

// Show puts a back on screen. Both a and its parent get resized and a is
// repainted.
func (a *Area) Show() {
	a.onScreen = true
	if a.parent != nil {
		a.parent.resizeNeeded = true
	}
	a.resizeNeeded = true
	a.ScheduleRedraw()
}

// Hide removes a from layout and paint and collapses its primary size.
func (a *Area) Hide() {
	if !a.onScreen {
		return
	}
	a.onScreen = false
	if a.parent != nil {
		a.parent.resizeNeeded = true
	}
	a.setPrimarySize(0)
	a.requestRefresh()
}

func (a *Area) setPanel(p *Panel) {
	a.panel = p
	for _, c := range a.children {
		c.setPanel(p)
	}
}

// contains reports whether b is a or one of its descendants.
func (a *Area) contains(b *Area) bool {
	for ; b != nil; b = b.parent {
		if b == a {
			return true
		}
	}
	return false
}

func (a *Area) requestRefresh() {
	if a.panel != nil {
		a.panel.requestRefresh()
	}
}

func (a *Area) horizontal() bool {
	return a.panel == nil || a.panel.Horizontal
}

func (a *Area) primarySize() int {
	if a.horizontal() {
		return a.Width
	}
	return a.Height
}

func (a *Area) setPrimarySize(v int) {
	if a.horizontal() {
		a.Width = v
	} else {
		a.Height = v
	}
}

func (a *Area) transverseSize() int {
	if a.horizontal() {
		return a.Height
	}
	return a.Width
}

func (a *Area) setTransverseSize(v int) {
	if a.horizontal() {
		a.Height = v
	} else {
		a.Width = v
	}
}

func (a *Area) primaryPos() int {
	if a.horizontal() {
		return a.X
	}
	return a.Y
}

func (a *Area) transversePos() int {
	if a.horizontal() {
		return a.Y
	}
	return a.X
}

// primaryBorders returns the border widths at the start and end of the
// primary axis.
func (a *Area) primaryBorders() (start, end int) {
	b := a.background.Border
	if a.horizontal() {
		return b.Left(), b.Right()
	}
	return b.Top(), b.Bottom()
}

func (a *Area) transverseBorders() (start, end int) {
	b := a.background.Border
	if a.horizontal() {
		return b.Top(), b.Bottom()
	}
	return b.Left(), b.Right()
}

// InnerTransverseSize is the space a child gets across the primary axis.
// Areas filling their parent transversally derive it from the nearest
// ancestor with a size of its own (ultimately the root) and the paddings
// and borders in between, whatever order the areas are resized in.
func (a *Area) InnerTransverseSize() int {
	outer := a.transverseSize()
	if a.parent != nil && !a.ownTransverse {
		outer = a.parent.InnerTransverseSize()
	}
	s, e := a.transverseBorders()
	return clampSize(outer - 2*a.PaddingTransverse - s - e)
}

// InnerPrimarySize is the primary-axis space inside padding and borders.
func (a *Area) InnerPrimarySize() int {
	s, e := a.primaryBorders()
	return a.primarySize() - 2*a.Padding - s - e
}

func clampSize(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
