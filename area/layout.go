package area

import "log"

// Two-pass layout:
//
// Fixed pass (bottom→up): fixed areas resize from their content, children
// first; a size change flags the parent for resizing.
// Dynamic pass (top→down): dynamic areas take the size handed down by their
// parent, containers share the space left by fixed children among dynamic
// ones and position every child along the primary axis.

// Relayout runs both layout passes over the panel tree.
func (p *Panel) Relayout() {
	relayoutFixed(p.Root)
	relayoutDynamic(p.Root, 1)
}

func relayoutFixed(a *Area) {
	if !a.onScreen {
		return
	}
	for _, c := range a.children {
		relayoutFixed(c)
	}
	if a.SizeMode != SizeFixed || !a.resizeNeeded {
		return
	}
	a.resizeNeeded = false
	if resize(a) {
		if a.parent != nil {
			a.parent.resizeNeeded = true
		}
		if a.ownTransverse {
			// children were sized against the space the parent offered
			for _, c := range a.children {
				markResizeTree(c)
				relayoutFixed(c)
			}
			a.resizeNeeded = false
		}
	}
}

func relayoutDynamic(a *Area, level int) {
	if !a.onScreen {
		return
	}
	if a.SizeMode == SizeDynamic && a.resizeNeeded {
		a.resizeNeeded = false
		if resize(a) {
			if a.parent != nil {
				place(a.parent, a, a.primaryPos())
			}
			for _, c := range a.children {
				if c.SizeMode == SizeDynamic && len(c.children) > 0 {
					c.resizeNeeded = true
				}
			}
		}
	}

	distribute(a)
	positionChildren(a, level)

	a.lastChanged = a.changed
	if a.changed != 0 {
		a.changed = 0
		a.pixStale = true
		a.ScheduleRedraw()
		if lc, ok := a.Widget.(LayoutChanger); ok {
			lc.OnChangeLayout(a)
		}
	}
}

// resize runs the size hook of a and reports whether its size changed.
func resize(a *Area) bool {
	w, h := a.Width, a.Height
	if r, ok := a.Widget.(Resizer); ok {
		r.Resize(a)
	} else if a.SizeMode == SizeFixed {
		log.Printf("area %s: fixed size mode without Resize hook, using zero size", a.Name)
		a.Width, a.Height = 0, 0
	} else {
		FillTransverse(a)
	}
	a.Width, a.Height = clampSize(a.Width), clampSize(a.Height)
	a.ownTransverse = a.parent != nil && a.transverseSize() != a.parent.InnerTransverseSize()
	if a.Width == w && a.Height == h {
		return false
	}
	a.changed |= ChangedSize
	a.OnSizeChanged()
	return true
}

// FillTransverse gives a the transverse space of its parent.
func FillTransverse(a *Area) {
	if a.parent == nil {
		return
	}
	a.setTransverseSize(a.parent.InnerTransverseSize())
}

// distribute hands the primary-axis space left by fixed children and
// spacing to the dynamic children. The division floors and the first
// children in list order get one extra pixel each for the remainder.
func distribute(a *Area) {
	size := a.InnerPrimarySize()
	count, dynamic := 0, 0
	for _, c := range a.children {
		if !c.onScreen {
			continue
		}
		count++
		if c.SizeMode == SizeFixed {
			size -= c.primarySize()
		} else {
			dynamic++
		}
	}
	if dynamic == 0 {
		return
	}
	if count > 1 {
		size -= (count - 1) * a.Spacing
	}

	base, modulo := size/dynamic, size%dynamic
	if a.MaxChildSize > 0 && base > a.MaxChildSize {
		base, modulo = a.MaxChildSize, 0
	}
	for _, c := range a.children {
		if !c.onScreen || c.SizeMode != SizeDynamic {
			continue
		}
		s := base
		if modulo > 0 {
			s++
			modulo--
		}
		s = clampSize(s)
		if c.primarySize() != s {
			c.setPrimarySize(s)
			c.changed |= ChangedSize
			c.resizeNeeded = true
			c.OnSizeChanged()
		}
	}
}

func positionChildren(a *Area, level int) {
	if len(a.children) == 0 {
		return
	}
	start, end := a.primaryBorders()
	switch a.Alignment {
	case AlignRight:
		pos := a.primaryPos() + a.primarySize() - end - a.Padding
		for i := len(a.children) - 1; i >= 0; i-- {
			c := a.children[i]
			if !c.onScreen {
				continue
			}
			pos -= c.primarySize()
			place(a, c, pos)
			relayoutDynamic(c, level+1)
			pos -= a.Spacing
		}
		return
	case AlignCenter:
		total, n := 0, 0
		for _, c := range a.children {
			if c.onScreen {
				total += c.primarySize()
				n++
			}
		}
		if n > 1 {
			total += (n - 1) * a.Spacing
		}
		pos := a.primaryPos() + start + a.Padding + (a.InnerPrimarySize()-total)/2
		layoutForward(a, pos, level)
	default:
		layoutForward(a, a.primaryPos()+start+a.Padding, level)
	}
}

func layoutForward(a *Area, pos, level int) {
	for _, c := range a.children {
		if !c.onScreen {
			continue
		}
		place(a, c, pos)
		relayoutDynamic(c, level+1)
		pos += c.primarySize() + a.Spacing
	}
}

// place moves c to pos on the primary axis and centers it on the other.
func place(parent, c *Area, pos int) {
	t := parent.transversePos() + (parent.transverseSize()-c.transverseSize())/2
	x, y := pos, t
	if !c.horizontal() {
		x, y = t, pos
	}
	if c.X != x || c.Y != y {
		c.X, c.Y = x, y
		c.changed |= ChangedMove
	}
}

// DesiredSize returns the primary-axis size a wants: the DesiredSizer hook
// if present, otherwise the sum of its on-screen children plus spacing,
// padding and borders, or its current size for a leaf.
func DesiredSize(a *Area) int {
	if ds, ok := a.Widget.(DesiredSizer); ok {
		return ds.DesiredSize(a)
	}
	if len(a.children) == 0 {
		return a.primarySize()
	}
	start, end := a.primaryBorders()
	size, n := 2*a.Padding+start+end, 0
	for _, c := range a.children {
		if !c.onScreen {
			continue
		}
		size += DesiredSize(c)
		n++
	}
	if n > 1 {
		size += (n - 1) * a.Spacing
	}
	return size
}

// Flow is a Resizer for fixed containers: the area is as long as its
// children need and as thick as its parent allows.
type Flow struct{}

// Resize implements Resizer.
func (Flow) Resize(a *Area) {
	a.setPrimarySize(DesiredSize(a))
	FillTransverse(a)
}
