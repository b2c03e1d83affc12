package main

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sqweek/dialog"

	"github.com/example/tintpanel/area"
	"github.com/example/tintpanel/theme"
)

// InputManager turns ebiten cursor and key state into panel mouse events
// and widget actions.
type InputManager struct {
	hovered    *area.Area
	hoverSince time.Time
}

func NewInputManager() *InputManager {
	return &InputManager{}
}

// Hovered returns the area under the cursor and since when it is.
func (im *InputManager) Hovered() (*area.Area, time.Time) {
	return im.hovered, im.hoverSince
}

func (im *InputManager) HandleMouse(g *Game) {
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	// a click outside the open menu only closes it
	if g.menu.Visible() && !g.menu.sp.Contains(mx, my) &&
		(inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)) {
		g.menu.Hide()
		return
	}

	sp := g.panelAt(mx, my)
	for _, other := range []*screenPanel{g.bar, g.dock, g.menu.sp} {
		if other != sp {
			other.panel.MouseOut()
		}
	}
	var a *area.Area
	if sp != nil {
		lx, ly := sp.Local(mx, my)
		a = sp.panel.AreaAt(lx, ly)
		sp.panel.MouseOver(a, pressed)
	}
	if a != im.hovered {
		im.hovered = a
		im.hoverSince = time.Now()
	}

	switch {
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		im.click(g, a)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonMiddle):
		if _, ok := widgetOf[*task](a); ok {
			g.widgets.CloseTask(a)
			im.hovered = nil
		}
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight):
		var target *area.Area
		if _, ok := widgetOf[*task](a); ok {
			target = a
		}
		g.menu.Show(mx, my, g.width, g.height, target)
	}
}

func widgetOf[T any](a *area.Area) (T, bool) {
	var zero T
	if a == nil {
		return zero, false
	}
	w, ok := a.Widget.(T)
	return w, ok
}

func (im *InputManager) click(g *Game, a *area.Area) {
	if a == nil {
		return
	}
	if action := g.menu.Action(a); action != MenuActionNone {
		target := g.menu.target
		g.menu.Hide()
		im.runAction(g, action, target)
		return
	}
	if a == g.widgets.MenuButton {
		g.menu.Show(a.X+a.Width, a.Y, g.width, g.height, nil)
		return
	}
	switch w := a.Widget.(type) {
	case *launcherIcon:
		g.widgets.AddTask(w.app, g.theme)
	case *task:
		g.widgets.Activate(a, g.theme)
	case *workspace:
		g.widgets.selectWorkspace(a, g.theme)
	}
}

func (im *InputManager) runAction(g *Game, action MenuAction, target *area.Area) {
	switch action {
	case MenuActionNewTask:
		g.widgets.AddTask(apps[0], g.theme)
	case MenuActionCloseTask:
		if target == nil {
			target = g.widgets.active
		}
		if target != nil {
			g.widgets.CloseTask(target)
			im.hovered = nil
		}
	case MenuActionToggleClock:
		g.widgets.ToggleClock()
	case MenuActionLoadTheme:
		im.loadTheme(g)
	case MenuActionSaveTheme:
		im.saveTheme(g)
	case MenuActionDumpGeometry:
		im.dump(g)
	}
}

func (im *InputManager) HandleKeys(g *Game) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		if g.menu.Visible() {
			g.menu.Hide()
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyD):
		im.dump(g)
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		im.loadTheme(g)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		im.saveTheme(g)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.widgets.ToggleClock()
	}
}

func (im *InputManager) dump(g *Game) {
	for _, p := range g.panels.Panels {
		area.Dump(os.Stdout, p.Root)
	}
}

func (im *InputManager) loadTheme(g *Game) {
	path, err := dialog.File().Filter("Theme", "yml", "yaml", "toml").Title("Load Theme").Load()
	if err != nil {
		if err != dialog.ErrCancelled {
			log.Printf("file open failed: %v", err)
		}
		return
	}
	if path == "" {
		return
	}
	t, err := theme.Load(path)
	if err != nil {
		log.Printf("load theme failed: %v", err)
		return
	}
	g.applyTheme(t)
	log.Printf("loaded theme: %s", filepath.Base(path))
}

func (im *InputManager) saveTheme(g *Game) {
	path, err := dialog.File().Filter("Theme", "yml", "yaml", "toml").Title("Save Theme As").Save()
	if err != nil {
		if err != dialog.ErrCancelled {
			log.Printf("file save failed: %v", err)
		}
		return
	}
	if path == "" {
		return
	}
	absPath, _ := filepath.Abs(path)
	if err := g.theme.Save(absPath); err != nil {
		log.Printf("save theme failed: %v", err)
		return
	}
	log.Printf("saved theme: %s", filepath.Base(absPath))
}
