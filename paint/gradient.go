package paint

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GradientType selects the shape of a gradient.
type GradientType int

const (
	GradientVertical GradientType = iota
	GradientHorizontal
	GradientCentered
)

func (t GradientType) String() string {
	switch t {
	case GradientHorizontal:
		return "horizontal"
	case GradientCentered:
		return "radial"
	}
	return "vertical"
}

// ParseGradientType parses the names used in theme files.
func ParseGradientType(s string) (GradientType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical":
		return GradientVertical, nil
	case "horizontal":
		return GradientHorizontal, nil
	case "radial", "centered":
		return GradientCentered, nil
	}
	return 0, fmt.Errorf("unknown gradient type %q", s)
}

// Element names the box whose size an offset reads.
type Element int

const (
	ElementSelf Element = iota
	ElementParent
	ElementPanel
)

// SizeVariable is a size-derived quantity of an element.
type SizeVariable int

const (
	SizeWidth SizeVariable = iota
	SizeHeight
	SizeRadius
	SizeLeft
	SizeRight
	SizeTop
	SizeBottom
	SizeCenterX
	SizeCenterY
)

var sizeVariableNames = map[string]SizeVariable{
	"width":   SizeWidth,
	"height":  SizeHeight,
	"radius":  SizeRadius,
	"left":    SizeLeft,
	"right":   SizeRight,
	"top":     SizeTop,
	"bottom":  SizeBottom,
	"centerx": SizeCenterX,
	"centery": SizeCenterY,
}

// Size is the width and height of a box.
type Size struct {
	W, H int
}

// Offset is either a constant or Multiplier times a size variable of an
// element.
type Offset struct {
	Constant   bool
	Value      float64
	Element    Element
	Variable   SizeVariable
	Multiplier float64
}

// Const returns a constant offset.
func Const(v float64) Offset {
	return Offset{Constant: true, Value: v}
}

// Var returns an offset of m times the variable of the box itself.
func Var(v SizeVariable, m float64) Offset {
	return Offset{Element: ElementSelf, Variable: v, Multiplier: m}
}

// Eval evaluates the offset for an element of the given size.
func (o Offset) Eval(s Size) float64 {
	if o.Constant {
		return o.Value
	}
	w, h := float64(s.W), float64(s.H)
	var v float64
	switch o.Variable {
	case SizeWidth, SizeRight:
		v = w
	case SizeHeight, SizeBottom:
		v = h
	case SizeRadius:
		v = math.Sqrt(w*w+h*h) / 2
	case SizeLeft, SizeTop:
		v = 0
	case SizeCenterX:
		v = w / 2
	case SizeCenterY:
		v = h / 2
	}
	return v * o.Multiplier
}

// ParseOffset parses "12.5", "width", "0.5*height" or "parent.width*2".
func ParseOffset(s string) (Offset, error) {
	s = strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if s == "" {
		return Offset{}, fmt.Errorf("empty offset")
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return Const(v), nil
	}
	o := Offset{Multiplier: 1}
	hasVar := false
	for _, term := range strings.Split(s, "*") {
		if v, err := strconv.ParseFloat(term, 64); err == nil {
			o.Multiplier *= v
			continue
		}
		name := term
		if i := strings.IndexByte(term, '.'); i >= 0 {
			switch term[:i] {
			case "self":
				o.Element = ElementSelf
			case "parent":
				o.Element = ElementParent
			case "panel":
				o.Element = ElementPanel
			default:
				return Offset{}, fmt.Errorf("unknown element in offset %q", s)
			}
			name = term[i+1:]
		}
		v, ok := sizeVariableNames[name]
		if !ok {
			return Offset{}, fmt.Errorf("unknown size variable in offset %q", s)
		}
		if hasVar {
			return Offset{}, fmt.Errorf("more than one size variable in offset %q", s)
		}
		o.Variable = v
		hasVar = true
	}
	if !hasVar {
		return Const(o.Multiplier), nil
	}
	return o, nil
}

// ControlPoint is a gradient control point. Every coordinate is the sum of
// its offsets; R is only used by radial gradients.
type ControlPoint struct {
	X, Y, R []Offset
}

// Dependent reports whether any offset of the point reads a box size.
func (p ControlPoint) Dependent() bool {
	for _, list := range [][]Offset{p.X, p.Y, p.R} {
		for _, o := range list {
			if !o.Constant {
				return true
			}
		}
	}
	return false
}

// Elements returns the distinct elements the point reads.
func (p ControlPoint) Elements() []Element {
	var seen [3]bool
	var out []Element
	for _, list := range [][]Offset{p.X, p.Y, p.R} {
		for _, o := range list {
			if o.Constant || seen[o.Element] {
				continue
			}
			seen[o.Element] = true
			out = append(out, o.Element)
		}
	}
	return out
}

// Eval resolves the point. size returns the size of an element.
func (p ControlPoint) Eval(size func(Element) Size) (x, y, r float64) {
	sum := func(list []Offset) float64 {
		var v float64
		for _, o := range list {
			if o.Constant {
				v += o.Value
				continue
			}
			v += o.Eval(size(o.Element))
		}
		return v
	}
	return sum(p.X), sum(p.Y), sum(p.R)
}

// ColorStop is a gradient color at a position along the gradient.
type ColorStop struct {
	Offset float64
	Color  Color
}

// GradientClass is a reusable gradient definition shared by every box that
// uses it.
type GradientClass struct {
	ID         string
	Type       GradientType
	StartColor Color
	EndColor   Color
	ExtraStops []ColorStop
	From, To   ControlPoint
}

// NewLinearGradient returns a vertical or horizontal gradient running across
// the whole box.
func NewLinearGradient(t GradientType, start, end Color) *GradientClass {
	g := &GradientClass{Type: t, StartColor: start, EndColor: end}
	switch t {
	case GradientHorizontal:
		g.From.X = []Offset{Var(SizeLeft, 1)}
		g.To.X = []Offset{Var(SizeRight, 1)}
	default:
		g.From.Y = []Offset{Var(SizeTop, 1)}
		g.To.Y = []Offset{Var(SizeBottom, 1)}
	}
	return g
}

// NewRadialGradient returns a gradient from the box center out to the
// half-diagonal.
func NewRadialGradient(start, end Color) *GradientClass {
	center := ControlPoint{
		X: []Offset{Var(SizeCenterX, 1)},
		Y: []Offset{Var(SizeCenterY, 1)},
		R: []Offset{Const(0)},
	}
	outer := center
	outer.R = []Offset{Var(SizeRadius, 1)}
	return &GradientClass{
		Type:       GradientCentered,
		StartColor: start,
		EndColor:   end,
		From:       center,
		To:         outer,
	}
}

// Dependent reports whether the gradient geometry follows a box size.
func (g *GradientClass) Dependent() bool {
	return g.From.Dependent() || g.To.Dependent()
}

// Stops returns the full ordered stop list: start at 0, the extra stops at
// their recorded offsets, end at 1.
func (g *GradientClass) Stops() []ColorStop {
	stops := make([]ColorStop, 0, len(g.ExtraStops)+2)
	stops = append(stops, ColorStop{Offset: 0, Color: g.StartColor})
	stops = append(stops, g.ExtraStops...)
	stops = append(stops, ColorStop{Offset: 1, Color: g.EndColor})
	return stops
}

// Validate checks that the control points define the coordinates the
// gradient type needs.
func (g *GradientClass) Validate() error {
	if g.Type != GradientCentered {
		return nil
	}
	for _, p := range []ControlPoint{g.From, g.To} {
		if len(p.X) == 0 || len(p.Y) == 0 || len(p.R) == 0 {
			return fmt.Errorf("gradient %q: radial control points need x, y and r", g.ID)
		}
	}
	return nil
}

// Build evaluates the control points and returns the paint pattern.
func (g *GradientClass) Build(size func(Element) Size) *Pattern {
	x0, y0, r0 := g.From.Eval(size)
	x1, y1, r1 := g.To.Eval(size)
	var p *Pattern
	if g.Type == GradientCentered {
		p = NewRadialPattern(x0, y0, r0, x1, y1, r1)
	} else {
		p = NewLinearPattern(x0, y0, x1, y1)
	}
	for _, s := range g.Stops() {
		p.AddColorStop(s.Offset, s.Color)
	}
	return p
}

// String formats the offset the way ParseOffset reads it.
func (o Offset) String() string {
	if o.Constant {
		return strconv.FormatFloat(o.Value, 'g', -1, 64)
	}
	name := ""
	for k, v := range sizeVariableNames {
		if v == o.Variable {
			name = k
			break
		}
	}
	switch o.Element {
	case ElementParent:
		name = "parent." + name
	case ElementPanel:
		name = "panel." + name
	}
	if o.Multiplier == 1 {
		return name
	}
	return strconv.FormatFloat(o.Multiplier, 'g', -1, 64) + "*" + name
}
