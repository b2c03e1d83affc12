package area

import (
	"image"
	"image/draw"

	"github.com/example/tintpanel/paint"
)

// ScheduleRedraw marks a and its whole subtree for repainting and asks the
// panel for a refresh. Areas with mouse effects drop every cached state
// pixmap, since all of them show the old content.
func (a *Area) ScheduleRedraw() {
	a.redrawNeeded = true
	if a.MouseOverEffect || a.MousePressEffect {
		a.freePixmaps()
	}
	for _, c := range a.children {
		c.ScheduleRedraw()
	}
	a.requestRefresh()
}

// markChildrenRedraw repaints the subtree below a without dropping caches.
// Children are seeded from the pixels of a, so they follow any swap of its
// pixmap.
func (a *Area) markChildrenRedraw() {
	for _, c := range a.children {
		c.redrawNeeded = true
		c.markChildrenRedraw()
	}
}

// Pixmap returns the pixmap currently shown for a, nil if none is cached.
func (a *Area) Pixmap() *image.RGBA { return a.pix }

// StatePixmap returns the cached pixmap of a mouse state slot.
func (a *Area) StatePixmap(state paint.MouseState) *image.RGBA {
	return a.pixByState[state]
}

// slot is the cache slot used for the current mouse state. Areas without
// mouse effects look the same in every state and share slot 0.
func (a *Area) slot() paint.MouseState {
	if a.MouseOverEffect || a.MousePressEffect {
		return a.mouseState
	}
	return paint.MouseNormal
}

func (a *Area) freePixmaps() {
	for i := range a.pixByState {
		a.pixByState[i] = nil
	}
	a.pix = nil
}

// Draw repaints the areas flagged for redraw and composes every on-screen
// area onto the panel surface, parents below children.
func (p *Panel) Draw() *image.RGBA {
	w, h := p.Root.Width, p.Root.Height
	if p.surface == nil || p.surface.Bounds().Dx() != w || p.surface.Bounds().Dy() != h {
		p.surface = image.NewRGBA(image.Rect(0, 0, w, h))
	}
	if p.Wallpaper != nil {
		draw.Draw(p.surface, p.surface.Bounds(), p.Wallpaper, p.WallpaperOrigin, draw.Src)
	} else {
		draw.Draw(p.surface, p.surface.Bounds(), image.Transparent, image.Point{}, draw.Src)
	}
	p.drawTree(p.Root)
	p.refresh = false
	return p.surface
}

// Surface returns the last composed panel image.
func (p *Panel) Surface() *image.RGBA { return p.surface }

func (p *Panel) drawTree(a *Area) {
	if !a.onScreen {
		return
	}
	if a.redrawNeeded {
		a.redrawNeeded = false
		p.paint(a)
	}
	if a.pix != nil {
		op := draw.Src
		if _, ok := a.Widget.(Clearer); ok {
			op = draw.Over
		}
		draw.Draw(p.surface, a.Bounds(), a.pix, image.Point{}, op)
	}
	for _, c := range a.children {
		p.drawTree(c)
	}
}

// paint renders a into the pixmap slot of its mouse state.
func (p *Panel) paint(a *Area) {
	if a.pixStale {
		a.freePixmaps()
		a.pixStale = false
	}
	slot := a.slot()
	if a.Width <= 0 || a.Height <= 0 {
		a.pixByState[slot] = nil
		a.pix = nil
		return
	}
	pix := image.NewRGBA(image.Rect(0, 0, a.Width, a.Height))
	if c, ok := a.Widget.(Clearer); ok {
		c.Clear(a, pix)
	} else {
		draw.Draw(pix, pix.Bounds(), p.surface, a.Bounds().Min, draw.Src)
	}
	a.drawBackground(pix)
	if fg, ok := a.Widget.(ForegroundDrawer); ok {
		fg.DrawForeground(a, pix)
	}
	a.pixByState[slot] = pix
	a.pix = pix
}

// drawBackground paints the fill, the gradients of the current mouse state
// and the border.
func (a *Area) drawBackground(dst *image.RGBA) {
	bg := a.background
	state := a.mouseState
	border := bg.BorderFor(state)
	content := a.contentColor()

	full := paint.Rect{W: float64(a.Width), H: float64(a.Height)}
	half := float64(border.Width) / 2
	inner := full.Inset(
		half*float64(sideBit(border, paint.BorderLeft)),
		half*float64(sideBit(border, paint.BorderTop)),
		half*float64(sideBit(border, paint.BorderRight)),
		half*float64(sideBit(border, paint.BorderBottom)),
	)
	radius := float64(border.Radius) - half
	if radius < 0 {
		radius = 0
	}

	fill := bg.Fill(state)
	if fill.A > 0 || a.MouseOverEffect || a.MousePressEffect {
		paint.FillRoundedRect(dst, inner, radius, border.Corners,
			paint.Tint(fill, content, bg.FillContentTintWeight))
	}

	if instances := a.gradients[state]; len(instances) > 0 && !inner.Empty() {
		mask := paint.Mask(a.Width, a.Height, paint.RoundedRect(inner, radius, border.Corners))
		group := paint.NewGroup(a.Width, a.Height)
		for _, gi := range instances {
			group.Add(mask, gi.EnsurePattern())
		}
		group.Composite(dst)
	}

	if border.Width > 0 {
		paint.StrokeBorder(dst, full, border,
			paint.Tint(border.Color, content, bg.BorderContentTintWeight))
	}
}

func sideBit(b paint.Border, bit int) int {
	if b.Sides&bit != 0 {
		return 1
	}
	return 0
}
