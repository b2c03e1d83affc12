package area

import (
	"github.com/example/tintpanel/paint"
)

// GradientInstance binds a gradient class to one area and caches the
// pattern built for the area's current geometry.
type GradientInstance struct {
	class   *paint.GradientClass
	area    *Area
	pattern *paint.Pattern

	// areas whose dependent list holds this instance
	registered []*Area
}

// Attach creates an instance of g for a. If the gradient reads the size of
// a box, the instance is registered with that box so it gets rebuilt when
// the size changes.
func Attach(a *Area, g *paint.GradientClass) *GradientInstance {
	gi := &GradientInstance{class: g, area: a}
	for _, p := range []paint.ControlPoint{g.From, g.To} {
		for _, el := range p.Elements() {
			target := a.element(el)
			if target == nil || gi.isRegistered(target) {
				continue
			}
			target.dependentGradients = append(target.dependentGradients, gi)
			gi.registered = append(gi.registered, target)
		}
	}
	return gi
}

// Class returns the gradient definition.
func (gi *GradientInstance) Class() *paint.GradientClass { return gi.class }

// Area returns the owning area.
func (gi *GradientInstance) Area() *Area { return gi.area }

// Pattern returns the cached pattern, nil if none is built.
func (gi *GradientInstance) Pattern() *paint.Pattern { return gi.pattern }

// EnsurePattern builds the pattern from the current geometry if needed.
func (gi *GradientInstance) EnsurePattern() *paint.Pattern {
	if gi.pattern == nil {
		gi.pattern = gi.class.Build(gi.elementSize)
	}
	return gi.pattern
}

// Invalidate drops the cached pattern.
func (gi *GradientInstance) Invalidate() {
	gi.pattern = nil
}

func (gi *GradientInstance) isRegistered(a *Area) bool {
	for _, r := range gi.registered {
		if r == a {
			return true
		}
	}
	return false
}

func (gi *GradientInstance) elementSize(el paint.Element) paint.Size {
	t := gi.area.element(el)
	if t == nil {
		t = gi.area
	}
	return paint.Size{W: t.Width, H: t.Height}
}

func (gi *GradientInstance) release() {
	gi.pattern = nil
	for _, r := range gi.registered {
		for i, d := range r.dependentGradients {
			if d == gi {
				r.dependentGradients = append(r.dependentGradients[:i:i], r.dependentGradients[i+1:]...)
				break
			}
		}
	}
	gi.registered = nil
}

// element resolves an offset element relative to a.
func (a *Area) element(el paint.Element) *Area {
	switch el {
	case paint.ElementParent:
		return a.parent
	case paint.ElementPanel:
		if a.panel != nil {
			return a.panel.Root
		}
		return nil
	}
	return a
}

// GradientInstances returns the instances painted for a mouse state.
func (a *Area) GradientInstances(state paint.MouseState) []*GradientInstance {
	return a.gradients[state]
}

// DependentGradients returns the instances rebuilt when a changes size.
func (a *Area) DependentGradients() []*GradientInstance {
	return a.dependentGradients
}

// OnSizeChanged rebuilds every gradient that depends on the size of a.
// Gradients owned by another area get that area repainted.
func (a *Area) OnSizeChanged() {
	for _, gi := range a.dependentGradients {
		gi.Invalidate()
		gi.EnsurePattern()
		if gi.area != a {
			gi.area.ScheduleRedraw()
		}
	}
}

func (a *Area) initGradients() {
	a.freeGradients()
	for state := range a.background.Gradients {
		for _, g := range a.background.Gradients[state] {
			a.gradients[state] = append(a.gradients[state], Attach(a, g))
		}
	}
}

func initTreeGradients(a *Area) {
	a.initGradients()
	for _, c := range a.children {
		initTreeGradients(c)
	}
}

func freeTreeGradients(a *Area) {
	a.freeGradients()
	for _, c := range a.children {
		freeTreeGradients(c)
	}
}

func (a *Area) freeGradients() {
	for state := range a.gradients {
		for _, gi := range a.gradients[state] {
			gi.release()
		}
		a.gradients[state] = nil
	}
}
