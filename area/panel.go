package area

import (
	"image"
)

// Panel owns one area tree and the surface it is composed onto. Every
// panel is independent; areas are never shared between panels.
type Panel struct {
	Root *Area

	// Horizontal selects the primary axis of the layout.
	Horizontal bool

	// Wallpaper, if set, is what the panel shows through transparent
	// areas. WallpaperOrigin is the wallpaper point under the panel origin.
	Wallpaper       image.Image
	WallpaperOrigin image.Point

	// OnRefresh is called whenever the panel needs to be composed again.
	OnRefresh func(p *Panel)

	surface   *image.RGBA
	mouseOver *Area
	refresh   bool
}

// NewPanel makes root the dynamic root area of a new panel of size w x h.
func NewPanel(root *Area, w, h int, horizontal bool) *Panel {
	p := &Panel{Root: root, Horizontal: horizontal}
	root.SizeMode = SizeDynamic
	root.setPanel(p)
	root.Width, root.Height = w, h
	root.X, root.Y = 0, 0
	initTreeGradients(root)
	root.resizeNeeded = true
	root.ScheduleRedraw()
	return p
}

// Resize changes the panel size; the whole tree is resized on the next
// layout pass.
func (p *Panel) Resize(w, h int) {
	r := p.Root
	if r.Width == w && r.Height == h {
		return
	}
	r.Width, r.Height = w, h
	r.changed |= ChangedSize
	r.OnSizeChanged()
	markResizeTree(r)
	r.ScheduleRedraw()
}

func markResizeTree(a *Area) {
	a.resizeNeeded = true
	for _, c := range a.children {
		markResizeTree(c)
	}
}

// RefreshNeeded reports whether something changed since the last Draw.
func (p *Panel) RefreshNeeded() bool { return p.refresh }

func (p *Panel) requestRefresh() {
	p.refresh = true
	if p.OnRefresh != nil {
		p.OnRefresh(p)
	}
}

// PanelSet holds the panels of every monitor. Panels share the theme (and
// with it the gradient classes) but nothing else.
type PanelSet struct {
	Panels []*Panel
}

// Add appends a panel to the set.
func (ps *PanelSet) Add(p *Panel) {
	ps.Panels = append(ps.Panels, p)
}

// Relayout runs the layout passes of every panel.
func (ps *PanelSet) Relayout() {
	for _, p := range ps.Panels {
		p.Relayout()
	}
}

// RefreshNeeded reports whether any panel needs to be composed again.
func (ps *PanelSet) RefreshNeeded() bool {
	for _, p := range ps.Panels {
		if p.refresh {
			return true
		}
	}
	return false
}

// Free releases every panel tree.
func (ps *PanelSet) Free() {
	for _, p := range ps.Panels {
		p.MouseOut()
		p.Root.Free()
	}
	ps.Panels = nil
}
