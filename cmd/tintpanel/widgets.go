package main

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/example/tintpanel/area"
	"github.com/example/tintpanel/paint"
	"github.com/example/tintpanel/theme"
)

// Layout Constants
const (
	BarPadding       = 4
	BarSpacing       = 6
	BarPaddingY      = 3
	LauncherPadding  = 3
	TrayPadding      = 4
	TaskPadding      = 6
	DockPadding      = 6
	DockSpacing      = 8
	IconInset        = 4
	TrayIconDiameter = 10
)

// app is a launcher entry.
type app struct {
	Name  string
	Glyph string
	Color paint.Color
}

var apps = []app{
	{"Terminal", ">", paint.RGB(0.2, 0.8, 0.4)},
	{"Browser", "W", paint.RGB(0.3, 0.5, 1)},
	{"Editor", "E", paint.RGB(0.9, 0.6, 0.2)},
	{"Files", "F", paint.RGB(0.8, 0.3, 0.6)},
}

// Widgets owns the area trees of the bar and the dock.
type Widgets struct {
	ui *UI

	BarRoot  *area.Area
	Launcher *area.Area
	Taskbar  *area.Area
	Systray  *area.Area
	Clock    *area.Area

	DockRoot   *area.Area
	Workspaces *area.Area
	MenuButton *area.Area

	clock     *area.TextBox
	active    *area.Area
	workspace *area.Area
	taskSeq   int

	// background id of every themed area
	themed map[*area.Area]string
}

func NewWidgets(ui *UI, t *theme.Theme) *Widgets {
	w := &Widgets{ui: ui, themed: make(map[*area.Area]string)}

	w.BarRoot = area.New("bar", area.SizeDynamic, nil)
	w.BarRoot.Padding = BarPadding
	w.BarRoot.Spacing = BarSpacing
	w.BarRoot.PaddingTransverse = BarPaddingY
	w.style(w.BarRoot, t, theme.Panel)

	w.Launcher = area.New("launcher", area.SizeFixed, area.Flow{})
	w.Launcher.Padding = LauncherPadding
	w.Launcher.Spacing = LauncherPadding
	w.Launcher.PaddingTransverse = 1
	w.style(w.Launcher, t, theme.Launcher)
	for _, ap := range apps {
		icon := area.New("launcher-"+strings.ToLower(ap.Name), area.SizeFixed, &launcherIcon{app: ap, face: ui.face})
		icon.MouseOverEffect = true
		icon.MousePressEffect = true
		w.style(icon, t, theme.Icon)
		w.Launcher.AddChild(icon)
	}
	w.BarRoot.AddChild(w.Launcher)

	w.Taskbar = area.New("taskbar", area.SizeDynamic, nil)
	w.Taskbar.Spacing = BarSpacing
	w.Taskbar.MaxChildSize = taskMaxLen
	w.BarRoot.AddChild(w.Taskbar)

	w.Systray = area.New("systray", area.SizeFixed, area.Flow{})
	w.Systray.Padding = TrayPadding
	w.Systray.Spacing = TrayPadding
	w.Systray.PaddingTransverse = 2
	w.style(w.Systray, t, theme.Systray)
	for i, c := range []paint.Color{paint.RGB(0.9, 0.3, 0.3), paint.RGB(0.9, 0.8, 0.2), paint.RGB(0.3, 0.8, 0.9)} {
		w.Systray.AddChild(area.New(fmt.Sprintf("tray-%d", i+1), area.SizeFixed, &trayIcon{Color: c}))
	}
	w.BarRoot.AddChild(w.Systray)

	w.clock = &area.TextBox{Faces: []font.Face{ui.face, ui.small}, Color: paint.RGB(1, 1, 1)}
	w.Clock = area.New("clock", area.SizeFixed, w.clock)
	w.Clock.Padding = TaskPadding
	w.style(w.Clock, t, theme.Clock)
	w.BarRoot.AddChild(w.Clock)

	w.DockRoot = area.New("dock", area.SizeDynamic, nil)
	w.DockRoot.Padding = DockPadding
	w.DockRoot.Spacing = DockSpacing
	w.DockRoot.PaddingTransverse = 4
	w.style(w.DockRoot, t, theme.Panel)

	w.Workspaces = area.New("workspaces", area.SizeFixed, area.Flow{})
	w.Workspaces.Spacing = 4
	for i := 1; i <= 4; i++ {
		tb := &area.TextBox{Lines: []string{fmt.Sprint(i)}, Faces: []font.Face{ui.face}, Color: paint.RGB(1, 1, 1)}
		ws := area.New(fmt.Sprintf("workspace-%d", i), area.SizeFixed, &workspace{TextBox: tb, index: i})
		ws.Padding = 6
		ws.MouseOverEffect = true
		ws.MousePressEffect = true
		w.style(ws, t, theme.Task)
		w.Workspaces.AddChild(ws)
		if i == 1 {
			w.selectWorkspace(ws, t)
		}
	}
	w.DockRoot.AddChild(w.Workspaces)
	w.DockRoot.AddChild(area.New("dock-filler", area.SizeDynamic, nil))

	w.MenuButton = area.New("dock-menu", area.SizeFixed, &launcherIcon{app: app{Name: "Menu", Glyph: "=", Color: paint.RGB(0.6, 0.6, 0.7)}, face: ui.face})
	w.MenuButton.MouseOverEffect = true
	w.MenuButton.MousePressEffect = true
	w.style(w.MenuButton, t, theme.Icon)
	w.DockRoot.AddChild(w.MenuButton)

	w.Tick(time.Now())
	return w
}

func (w *Widgets) style(a *area.Area, t *theme.Theme, id string) {
	w.themed[a] = id
	a.SetBackground(t.Background(id))
}

// ApplyTheme rebinds every themed area to t.
func (w *Widgets) ApplyTheme(t *theme.Theme) {
	for a, id := range w.themed {
		a.SetBackground(t.Background(id))
	}
}

// Tick updates the clock.
func (w *Widgets) Tick(now time.Time) {
	w.clock.SetText(w.Clock, now.Format("15:04:05"), now.Format("Mon 02 Jan"))
}

// ToggleClock hides or shows the clock.
func (w *Widgets) ToggleClock() {
	if w.Clock.OnScreen() {
		w.Clock.Hide()
	} else {
		w.Clock.Show()
	}
}

// AddTask appends a task button for ap to the taskbar.
func (w *Widgets) AddTask(ap app, t *theme.Theme) *area.Area {
	w.taskSeq++
	tk := &task{
		TextBox: &area.TextBox{Lines: []string{fmt.Sprintf("%s %d", ap.Name, w.taskSeq)}, Faces: []font.Face{w.ui.face}, Color: paint.RGB(1, 1, 1)},
		app:     ap,
		id:      w.taskSeq,
	}
	a := area.New(fmt.Sprintf("task-%d", w.taskSeq), area.SizeDynamic, tk)
	a.Padding = TaskPadding
	a.MouseOverEffect = true
	a.MousePressEffect = true
	w.style(a, t, theme.Task)
	w.Taskbar.AddChild(a)
	w.Activate(a, t)
	return a
}

// CloseTask removes a task button.
func (w *Widgets) CloseTask(a *area.Area) {
	if a == w.active {
		w.active = nil
	}
	delete(w.themed, a)
	a.RemoveFromParent()
	a.Free()
}

// Activate marks a as the focused task.
func (w *Widgets) Activate(a *area.Area, t *theme.Theme) {
	if w.active == a {
		return
	}
	if w.active != nil {
		w.style(w.active, t, theme.Task)
	}
	w.active = a
	w.style(a, t, theme.Active)
}

func (w *Widgets) selectWorkspace(a *area.Area, t *theme.Theme) {
	if w.workspace != nil {
		w.style(w.workspace, t, theme.Task)
	}
	w.workspace = a
	w.style(a, t, theme.Active)
}

// launcherIcon is a square button drawn as a rounded tile with a glyph.
type launcherIcon struct {
	app  app
	face font.Face
}

func (li *launcherIcon) Resize(a *area.Area) {
	area.FillTransverse(a)
	if p := a.Panel(); p == nil || p.Horizontal {
		a.Width = a.Height
	} else {
		a.Height = a.Width
	}
}

func (li *launcherIcon) tile(a *area.Area) paint.Rect {
	return paint.Rect{W: float64(a.Width), H: float64(a.Height)}.Inset(IconInset, IconInset, IconInset, IconInset)
}

func (li *launcherIcon) DrawForeground(a *area.Area, dst *image.RGBA) {
	r := li.tile(a)
	if r.Empty() {
		return
	}
	paint.FillRoundedRect(dst, r, 4, paint.CornerAll, li.app.Color)
	d := &font.Drawer{Dst: dst, Src: image.White, Face: li.face}
	gw := d.MeasureString(li.app.Glyph).Ceil()
	m := li.face.Metrics()
	d.Dot = fixed.P((a.Width-gw)/2, (a.Height-m.Height.Ceil())/2+m.Ascent.Ceil())
	d.DrawString(li.app.Glyph)
}

// IsUnderMouse limits clicks to the tile, not the inset around it.
func (li *launcherIcon) IsUnderMouse(a *area.Area, x, y int) bool {
	r := li.tile(a)
	fx, fy := float64(x-a.X), float64(y-a.Y)
	return fx >= r.X && fx < r.X+r.W && fy >= r.Y && fy < r.Y+r.H
}

func (li *launcherIcon) ContentColor(a *area.Area) paint.Color { return li.app.Color }

func (li *launcherIcon) Tooltip(a *area.Area) string { return li.app.Name }

// TooltipImage returns the tile at a fixed size, shaded from the app color
// at the top to a darker tone at the bottom.
func (li *launcherIcon) TooltipImage(a *area.Area) image.Image {
	const size = 16
	c := li.app.Color
	shade := paint.NewLinearPattern(0, 0, 0, size)
	shade.AddColorStop(0, c)
	shade.AddColorStop(1, paint.Color{R: c.R * 0.6, G: c.G * 0.6, B: c.B * 0.6, A: c.A})

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	mask := paint.Mask(size, size, paint.RoundedRect(paint.Rect{W: size, H: size}, 3, paint.CornerAll))
	draw.DrawMask(img, img.Bounds(), shade.Image(img.Bounds(), image.Point{}), image.Point{}, mask, image.Point{}, draw.Over)
	return img
}

// trayIcon is a status dot composited over the tray background.
type trayIcon struct {
	Color paint.Color
}

func (ti *trayIcon) Resize(a *area.Area) {
	area.FillTransverse(a)
	a.Width = TrayIconDiameter + 4
}

func (ti *trayIcon) Clear(a *area.Area, dst *image.RGBA) {
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)
}

func (ti *trayIcon) DrawForeground(a *area.Area, dst *image.RGBA) {
	d := float64(TrayIconDiameter)
	r := paint.Rect{X: (float64(a.Width) - d) / 2, Y: (float64(a.Height) - d) / 2, W: d, H: d}
	paint.FillRoundedRect(dst, r, d/2, paint.CornerAll, ti.Color)
}

func (ti *trayIcon) Tooltip(a *area.Area) string { return a.Name }

// task is a taskbar button.
type task struct {
	*area.TextBox
	app app
	id  int
}

// ContentColor tints the button toward the application color rather than
// the text color.
func (tk *task) ContentColor(a *area.Area) paint.Color { return tk.app.Color }

func (tk *task) DumpGeometry(a *area.Area, w io.Writer, indent int) {
	fmt.Fprintf(w, "%sapp=%s id=%d\n", strings.Repeat("  ", indent), tk.app.Name, tk.id)
}

// workspace is a dock button selecting a virtual desktop.
type workspace struct {
	*area.TextBox
	index int
}
