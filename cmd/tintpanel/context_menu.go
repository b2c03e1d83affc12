package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"github.com/example/tintpanel/area"
	"github.com/example/tintpanel/paint"
	"github.com/example/tintpanel/theme"
)

// MenuAction describes what action was selected in the popup menu
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionNewTask
	MenuActionCloseTask
	MenuActionToggleClock
	MenuActionLoadTheme
	MenuActionSaveTheme
	MenuActionDumpGeometry
)

const menuWidth = 200

var menuItems = []struct {
	label  string
	action MenuAction
}{
	{"New Task", MenuActionNewTask},
	{"Close Task", MenuActionCloseTask},
	{"Show/Hide Clock", MenuActionToggleClock},
	{"Load Theme...", MenuActionLoadTheme},
	{"Save Theme...", MenuActionSaveTheme},
	{"Dump Geometry", MenuActionDumpGeometry},
}

// menuItem is one row of the popup menu.
type menuItem struct {
	*area.TextBox
	action MenuAction
}

// PopupMenu is a vertical panel shown at the cursor. It keeps the task it
// was opened on so menu actions can act on it.
type PopupMenu struct {
	sp      *screenPanel
	root    *area.Area
	items   []*area.Area
	visible bool

	// task the menu was opened on, nil for none
	target *area.Area
}

func NewPopupMenu(ui *UI, t *theme.Theme) *PopupMenu {
	pm := &PopupMenu{}
	pm.root = area.New("menu", area.SizeDynamic, nil)
	pm.root.Padding = 4
	pm.root.PaddingTransverse = 4
	for _, it := range menuItems {
		tb := &area.TextBox{Lines: []string{it.label}, Faces: []font.Face{ui.face}, Color: paint.RGB(1, 1, 1)}
		a := area.New("menu-item", area.SizeFixed, &menuItem{TextBox: tb, action: it.action})
		a.Padding = 6
		a.MouseOverEffect = true
		a.MousePressEffect = true
		pm.root.AddChild(a)
		pm.items = append(pm.items, a)
	}
	pm.ApplyTheme(t)

	p := area.NewPanel(pm.root, menuWidth, 1, false)
	p.Resize(menuWidth, area.DesiredSize(pm.root))
	pm.sp = newScreenPanel(p, 0, 0)
	return pm
}

// ApplyTheme rebinds the menu backgrounds to t.
func (pm *PopupMenu) ApplyTheme(t *theme.Theme) {
	pm.root.SetBackground(t.Background(theme.Menu))
	for _, a := range pm.items {
		a.SetBackground(t.Background(theme.MenuItem))
	}
}

func (pm *PopupMenu) Visible() bool { return pm.visible }

// Show opens the menu at (x, y), kept inside a window of size w x h.
func (pm *PopupMenu) Show(x, y, w, h int, target *area.Area) {
	r := pm.sp.panel.Root
	if x+r.Width > w {
		x = w - r.Width
	}
	if y+r.Height > h {
		y = h - r.Height
	}
	pm.sp.Move(max(x, 0), max(y, 0))
	pm.visible = true
	pm.target = target
}

func (pm *PopupMenu) Hide() {
	pm.sp.panel.MouseOut()
	pm.visible = false
	pm.target = nil
}

// Action returns the action of a menu row, MenuActionNone for anything else.
func (pm *PopupMenu) Action(a *area.Area) MenuAction {
	if a == nil {
		return MenuActionNone
	}
	if mi, ok := a.Widget.(*menuItem); ok {
		return mi.action
	}
	return MenuActionNone
}

func (pm *PopupMenu) Draw(screen *ebiten.Image) {
	if !pm.visible {
		return
	}
	pm.sp.Draw(screen)
}
