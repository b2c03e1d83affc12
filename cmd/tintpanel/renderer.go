package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/example/tintpanel/area"
)

// screenPanel places an area panel in the window and keeps the GPU copy of
// its surface.
type screenPanel struct {
	panel *area.Panel
	x, y  int
	img   *ebiten.Image
}

func newScreenPanel(p *area.Panel, x, y int) *screenPanel {
	return &screenPanel{panel: p, x: x, y: y}
}

// Move changes the window position of the panel.
func (sp *screenPanel) Move(x, y int) {
	sp.x, sp.y = x, y
}

// Contains reports whether the window point (x, y) is on the panel.
func (sp *screenPanel) Contains(x, y int) bool {
	r := sp.panel.Root
	return x >= sp.x && x < sp.x+r.Width && y >= sp.y && y < sp.y+r.Height
}

// Local converts window coordinates to panel coordinates.
func (sp *screenPanel) Local(x, y int) (int, int) {
	return x - sp.x, y - sp.y
}

// Draw composes the panel if anything changed and blits it at its position.
func (sp *screenPanel) Draw(screen *ebiten.Image) {
	r := sp.panel.Root
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	if sp.img == nil || sp.img.Bounds().Dx() != r.Width || sp.img.Bounds().Dy() != r.Height {
		if sp.img != nil {
			sp.img.Deallocate()
		}
		sp.img = ebiten.NewImage(r.Width, r.Height)
		sp.upload()
	} else if sp.panel.RefreshNeeded() {
		sp.upload()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(sp.x), float64(sp.y))
	screen.DrawImage(sp.img, op)
}

func (sp *screenPanel) upload() {
	surface := sp.panel.Draw()
	sp.img.WritePixels(surface.Pix)
}
