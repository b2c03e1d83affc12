package area

import "github.com/example/tintpanel/paint"

// IsUnderMouse reports whether (x, y) hits a, using the MouseTester hook if
// the widget has one.
func (a *Area) IsUnderMouse(x, y int) bool {
	if mt, ok := a.Widget.(MouseTester); ok {
		return mt.IsUnderMouse(a, x, y)
	}
	return x >= a.X && x < a.X+a.Width && y >= a.Y && y < a.Y+a.Height
}

// FindAreaUnderPoint descends from root into the first on-screen child hit
// by (x, y) until no child matches, and returns the deepest match.
func FindAreaUnderPoint(root *Area, x, y int) *Area {
	result := root
	for {
		next := result
		for _, c := range result.children {
			if c.onScreen && c.IsUnderMouse(x, y) {
				next = c
				break
			}
		}
		if next == result {
			return result
		}
		result = next
	}
}

// AreaAt returns the deepest area of the panel under (x, y).
func (p *Panel) AreaAt(x, y int) *Area {
	return FindAreaUnderPoint(p.Root, x, y)
}

// HoverArea returns the area currently shown in a hover or pressed state.
func (p *Panel) HoverArea() *Area { return p.mouseOver }

// targetState is the mouse state a shows for the pointer above it.
func targetState(a *Area, pressed bool) paint.MouseState {
	switch {
	case pressed && a.MousePressEffect:
		return paint.MouseDown
	case a.MouseOverEffect:
		return paint.MouseOver
	}
	return paint.MouseNormal
}

// MouseOver moves the hover state to a. A nil area behaves like MouseOut.
func (p *Panel) MouseOver(a *Area, pressed bool) {
	if a == nil {
		p.MouseOut()
		return
	}
	state := targetState(a, pressed)
	if p.mouseOver == a && a.mouseState == state {
		return
	}
	if p.mouseOver != nil && (p.mouseOver != a || state == paint.MouseNormal) {
		p.MouseOut()
	}
	if state == paint.MouseNormal {
		return
	}
	p.mouseOver = a
	a.mouseState = state
	a.swapPixmap()
	p.requestRefresh()
}

// MouseOut returns the hovered area, if any, to the normal state.
func (p *Panel) MouseOut() {
	a := p.mouseOver
	if a == nil {
		return
	}
	p.mouseOver = nil
	a.mouseState = paint.MouseNormal
	a.swapPixmap()
	p.requestRefresh()
}

// swapPixmap shows the cached pixmap of the current state, scheduling a
// repaint of a when the slot is empty.
func (a *Area) swapPixmap() {
	a.pix = a.pixByState[a.slot()]
	if a.pix == nil {
		a.redrawNeeded = true
	}
	a.markChildrenRedraw()
}
