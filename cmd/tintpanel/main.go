package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/example/tintpanel/area"
	"github.com/example/tintpanel/theme"
)

const (
	windowWidth  = 1280
	windowHeight = 720

	barHeight  = 36
	dockWidth  = 44
	themePath  = "theme.yml"
	taskMaxLen = 180
)

// Game drives the panels from the ebiten loop. Every area operation runs
// inside Update, so the area trees need no locking.
type Game struct {
	ui    *UI
	theme *theme.Theme

	panels area.PanelSet
	bar    *screenPanel
	dock   *screenPanel

	widgets *Widgets
	input   *InputManager
	menu    *PopupMenu

	lastTick time.Time
	width    int
	height   int
}

func NewGame() *Game {
	g := &Game{ui: NewUI(), width: windowWidth, height: windowHeight}

	g.theme = theme.Default()
	if t, err := theme.Load(themePath); err != nil {
		log.Printf("LoadTheme: %v; using the built-in theme", err)
	} else {
		g.theme = t
	}

	g.widgets = NewWidgets(g.ui, g.theme)
	g.bar = newScreenPanel(area.NewPanel(g.widgets.BarRoot, windowWidth, barHeight, true), 0, windowHeight-barHeight)
	g.dock = newScreenPanel(area.NewPanel(g.widgets.DockRoot, dockWidth, windowHeight-barHeight, false), 0, 0)
	g.panels.Add(g.bar.panel)
	g.panels.Add(g.dock.panel)

	g.menu = NewPopupMenu(g.ui, g.theme)
	g.input = NewInputManager()
	return g
}

func (g *Game) Update() error {
	if now := time.Now(); now.Sub(g.lastTick) >= time.Second {
		g.lastTick = now
		g.widgets.Tick(now)
	}

	g.input.HandleMouse(g)
	g.input.HandleKeys(g)

	g.panels.Relayout()
	if g.menu.Visible() {
		g.menu.sp.panel.Relayout()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ColorBackground)

	for _, sp := range []*screenPanel{g.bar, g.dock} {
		sp.Draw(screen)
	}
	g.menu.Draw(screen)
	g.ui.Draw(screen, g)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.bar.Move(0, outsideHeight-barHeight)
		g.bar.panel.Resize(outsideWidth, barHeight)
		g.dock.panel.Resize(dockWidth, outsideHeight-barHeight)
	}
	return outsideWidth, outsideHeight
}

// panelAt returns the on-screen panel under the cursor, the popup menu first.
func (g *Game) panelAt(x, y int) *screenPanel {
	if g.menu.Visible() && g.menu.sp.Contains(x, y) {
		return g.menu.sp
	}
	for _, sp := range []*screenPanel{g.bar, g.dock} {
		if sp.Contains(x, y) {
			return sp
		}
	}
	return nil
}

// applyTheme rebinds every themed area to t.
func (g *Game) applyTheme(t *theme.Theme) {
	g.theme = t
	g.widgets.ApplyTheme(t)
	g.menu.ApplyTheme(t)
}

func main() {
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("tintpanel")
	ebiten.SetWindowResizable(true)
	g := NewGame()
	defer g.panels.Free()
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
