// Package theme owns the gradient classes and backgrounds shared by every
// panel, and reads them from YAML or TOML theme files.
package theme

import (
	"sort"

	"github.com/example/tintpanel/paint"
)

// Theme is the table of named gradients and backgrounds. Areas only keep
// pointers into it, so a theme must outlive the panels using it.
type Theme struct {
	gradients   map[string]*paint.GradientClass
	backgrounds map[string]*paint.Background
}

// New returns an empty theme.
func New() *Theme {
	return &Theme{
		gradients:   make(map[string]*paint.GradientClass),
		backgrounds: make(map[string]*paint.Background),
	}
}

// AddGradient registers g under its ID.
func (t *Theme) AddGradient(g *paint.GradientClass) {
	t.gradients[g.ID] = g
}

// AddBackground registers bg under id.
func (t *Theme) AddBackground(id string, bg *paint.Background) {
	t.backgrounds[id] = bg
}

// Gradient returns the gradient with the given id.
func (t *Theme) Gradient(id string) (*paint.GradientClass, bool) {
	g, ok := t.gradients[id]
	return g, ok
}

// Background returns the background with the given id, or a transparent
// background when the theme does not define it.
func (t *Theme) Background(id string) *paint.Background {
	if bg, ok := t.backgrounds[id]; ok {
		return bg
	}
	return paint.Transparent
}

// GradientIDs returns the gradient ids in sorted order.
func (t *Theme) GradientIDs() []string {
	ids := make([]string, 0, len(t.gradients))
	for id := range t.gradients {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// BackgroundIDs returns the background ids in sorted order.
func (t *Theme) BackgroundIDs() []string {
	ids := make([]string, 0, len(t.backgrounds))
	for id := range t.backgrounds {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Background ids used by the built-in widgets.
const (
	Panel    = "panel"
	Task     = "task"
	Active   = "task_active"
	Clock    = "clock"
	Launcher = "launcher"
	Icon     = "icon"
	Systray  = "systray"
	Menu     = "menu"
	MenuItem = "menu_item"
)

func rgba(r, g, b, a uint8) paint.Color {
	return paint.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: float64(a) / 255}
}

// Default returns the built-in dark theme.
func Default() *Theme {
	t := New()

	sheen := paint.NewLinearGradient(paint.GradientVertical, rgba(0xff, 0xff, 0xff, 0x18), rgba(0xff, 0xff, 0xff, 0))
	sheen.ID = "sheen"
	sheen.ExtraStops = []paint.ColorStop{{Offset: 0.5, Color: rgba(0xff, 0xff, 0xff, 0x08)}}
	t.AddGradient(sheen)

	glow := paint.NewRadialGradient(rgba(0x66, 0x88, 0xff, 0x66), rgba(0x66, 0x88, 0xff, 0))
	glow.ID = "glow"
	t.AddGradient(glow)

	border := func(c paint.Color, w, r int) paint.Border {
		return paint.Border{Color: c, Width: w, Radius: r, Sides: paint.BorderAll, Corners: paint.CornerAll}
	}

	panelBorder := border(rgba(0x44, 0x44, 0x50, 0xff), 1, 0)
	panelBorder.Sides = paint.BorderTop
	t.AddBackground(Panel, &paint.Background{
		FillColor:        rgba(0x12, 0x12, 0x14, 0xee),
		FillColorHover:   rgba(0x12, 0x12, 0x14, 0xee),
		FillColorPressed: rgba(0x12, 0x12, 0x14, 0xee),
		Border:           panelBorder,
		BorderHover:      panelBorder,
		BorderPressed:    panelBorder,
	})

	taskBorder := border(rgba(0x44, 0x44, 0x50, 0xff), 1, 4)
	task := &paint.Background{
		FillColor:               rgba(0x22, 0x22, 0x2a, 0xff),
		FillColorHover:          rgba(0x33, 0x33, 0x3e, 0xff),
		FillColorPressed:        rgba(0x18, 0x18, 0x1c, 0xff),
		Border:                  taskBorder,
		BorderHover:             border(rgba(0x55, 0x55, 0x66, 0xff), 1, 4),
		BorderPressed:           taskBorder,
		FillContentTintWeight:   0.1,
		BorderContentTintWeight: 0.3,
	}
	task.Gradients[paint.MouseNormal] = []*paint.GradientClass{sheen}
	task.Gradients[paint.MouseOver] = []*paint.GradientClass{sheen, glow}
	t.AddBackground(Task, task)

	active := *task
	active.FillColor = rgba(0x33, 0x55, 0xff, 0xcc)
	active.FillColorHover = rgba(0x44, 0x66, 0xff, 0xdd)
	t.AddBackground(Active, &active)

	t.AddBackground(Clock, &paint.Background{})
	t.AddBackground(Launcher, &paint.Background{
		FillColor: rgba(0x11, 0x11, 0x16, 0xff),
		Border:    border(rgba(0x44, 0x44, 0x50, 0xff), 1, 6),
	})
	icon := &paint.Background{
		FillColorHover:   rgba(0xff, 0xff, 0xff, 0x22),
		FillColorPressed: rgba(0xff, 0xff, 0xff, 0x44),
		BorderHover:      border(rgba(0x66, 0x88, 0xff, 0xff), 1, 3),
		BorderPressed:    border(rgba(0x66, 0x88, 0xff, 0xff), 1, 3),
	}
	t.AddBackground(Icon, icon)
	t.AddBackground(Systray, &paint.Background{FillColor: rgba(0x0c, 0x0c, 0x0e, 0xee)})

	t.AddBackground(Menu, &paint.Background{
		FillColor: rgba(0x10, 0x10, 0x12, 0xff),
		Border:    border(rgba(0x44, 0x44, 0x50, 0xff), 2, 0),
	})
	t.AddBackground(MenuItem, &paint.Background{
		FillColorHover:   rgba(0x33, 0x55, 0xff, 0xff),
		FillColorPressed: rgba(0x22, 0x44, 0xdd, 0xff),
	})
	return t
}
