package area

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/tintpanel/paint"
)

// fixedBox is a content-sized widget with a constant size. A zero height
// fills the parent transversally.
type fixedBox struct {
	w, h int
}

func (f *fixedBox) Resize(a *Area) {
	FillTransverse(a)
	a.setPrimarySize(f.w)
	if f.h > 0 {
		a.setTransverseSize(f.h)
	}
}

func newPanel(w, h int, horizontal bool, children ...*Area) (*Panel, *Area) {
	root := New("panel", SizeDynamic, nil)
	for _, c := range children {
		root.AddChild(c)
	}
	return NewPanel(root, w, h, horizontal), root
}

func dynamicChildren(n int) []*Area {
	out := make([]*Area, n)
	for i := range out {
		out[i] = New("child", SizeDynamic, nil)
	}
	return out
}

func widths(areas []*Area) []int {
	var out []int
	for _, a := range areas {
		out = append(out, a.Width)
	}
	return out
}

func xs(areas []*Area) []int {
	var out []int
	for _, a := range areas {
		out = append(out, a.X)
	}
	return out
}

func TestDistribute(t *testing.T) {
	tests := []struct {
		name      string
		width     int
		maxChild  int
		wantSizes []int
		wantX     []int
	}{
		{"even split", 100, 0, []int{32, 32, 32}, []int{0, 34, 68}},
		{"first child takes the remainder", 101, 0, []int{33, 32, 32}, []int{0, 35, 69}},
		{"two extra pixels", 102, 0, []int{33, 33, 32}, []int{0, 35, 70}},
		{"capped", 100, 20, []int{20, 20, 20}, []int{0, 22, 44}},
		{"cap drops the remainder", 101, 31, []int{31, 31, 31}, []int{0, 33, 66}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			children := dynamicChildren(3)
			p, root := newPanel(tt.width, 20, true, children...)
			root.Spacing = 2
			root.MaxChildSize = tt.maxChild
			p.Relayout()

			if diff := cmp.Diff(tt.wantSizes, widths(children)); diff != "" {
				t.Errorf("widths mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantX, xs(children)); diff != "" {
				t.Errorf("positions mismatch (-want +got):\n%s", diff)
			}
			for _, c := range children {
				if c.Height != 20 || c.Y != 0 {
					t.Errorf("%s: y=%d h=%d, want y=0 h=20", c, c.Y, c.Height)
				}
			}
		})
	}
}

func TestDistributeSumsExactly(t *testing.T) {
	for n := 1; n <= 7; n++ {
		for width := 50; width < 60; width++ {
			children := dynamicChildren(n)
			p, root := newPanel(width, 10, true, children...)
			root.Spacing = 1
			p.Relayout()

			sum := 0
			for _, c := range children {
				sum += c.Width
			}
			if want := width - (n - 1); sum != want {
				t.Errorf("n=%d width=%d: children sum to %d, want %d", n, width, sum, want)
			}
		}
	}
}

func TestAlignment(t *testing.T) {
	tests := []struct {
		align Alignment
		want  []int
	}{
		{AlignLeft, []int{0, 22, 44}},
		{AlignCenter, []int{18, 40, 62}},
		{AlignRight, []int{36, 58, 80}},
	}
	for _, tt := range tests {
		children := dynamicChildren(3)
		p, root := newPanel(100, 20, true, children...)
		root.Spacing = 2
		root.MaxChildSize = 20
		root.Alignment = tt.align
		p.Relayout()

		if diff := cmp.Diff(tt.want, xs(children)); diff != "" {
			t.Errorf("alignment %d: positions mismatch (-want +got):\n%s", tt.align, diff)
		}
		for i := 1; i < len(children); i++ {
			prev, c := children[i-1], children[i]
			if prev.X+prev.Width > c.X {
				t.Errorf("alignment %d: %s overlaps %s", tt.align, prev, c)
			}
		}
		last := children[len(children)-1]
		if children[0].X < 0 || last.X+last.Width > 100 {
			t.Errorf("alignment %d: children leave the panel", tt.align)
		}
	}
}

func TestFixedChildren(t *testing.T) {
	box := &fixedBox{w: 30}
	fixed := New("fixed", SizeFixed, box)
	dyn := New("dynamic", SizeDynamic, nil)
	p, root := newPanel(100, 20, true, fixed, dyn)
	root.Spacing = 2
	p.Relayout()

	if fixed.Width != 30 || dyn.Width != 68 || dyn.X != 32 {
		t.Fatalf("got fixed %s dynamic %s", fixed, dyn)
	}

	box.w = 40
	fixed.MarkResize()
	p.Relayout()
	if fixed.Width != 40 || dyn.Width != 58 || dyn.X != 42 {
		t.Errorf("after growth got fixed %s dynamic %s", fixed, dyn)
	}
	if fixed.Changed()&ChangedSize == 0 {
		t.Error("fixed child should be flagged as resized")
	}
	if dyn.Changed() != ChangedMove|ChangedSize {
		t.Errorf("dynamic child changes = %b, want move and size", dyn.Changed())
	}
}

func TestFixedWithoutResizeHook(t *testing.T) {
	fixed := New("bare", SizeFixed, nil)
	fixed.Width = 12
	p, _ := newPanel(100, 20, true, fixed)
	p.Relayout()
	if fixed.Width != 0 || fixed.Height != 0 {
		t.Errorf("got %s, want zero size", fixed)
	}
}

func TestPaddingAndBorders(t *testing.T) {
	children := dynamicChildren(3)
	p, root := newPanel(100, 20, true, children...)
	root.Padding = 5
	root.Spacing = 2
	root.PaddingTransverse = 3
	root.SetBackground(&paint.Background{Border: paint.Border{Width: 1, Sides: paint.BorderAll}})
	p.Relayout()

	if diff := cmp.Diff([]int{28, 28, 28}, widths(children)); diff != "" {
		t.Errorf("widths mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{6, 36, 66}, xs(children)); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
	// 20 - 2*3 padding - 2*1 border
	if c := children[0]; c.Height != 12 || c.Y != 4 {
		t.Errorf("transverse: y=%d h=%d, want y=4 h=12", c.Y, c.Height)
	}
}

func TestTransverseCentering(t *testing.T) {
	icon := New("icon", SizeFixed, &fixedBox{w: 10, h: 10})
	p, _ := newPanel(100, 20, true, icon)
	p.Relayout()
	if icon.X != 0 || icon.Y != 5 {
		t.Errorf("icon at (%d,%d), want (0,5)", icon.X, icon.Y)
	}
}

func TestVerticalPanel(t *testing.T) {
	children := dynamicChildren(2)
	p, root := newPanel(20, 100, false, children...)
	root.Spacing = 2
	p.Relayout()

	for i, c := range children {
		if c.Width != 20 || c.Height != 49 || c.X != 0 {
			t.Errorf("child %d = %s, want 20x49 at x=0", i, c)
		}
	}
	if children[0].Y != 0 || children[1].Y != 51 {
		t.Errorf("y = %d, %d; want 0, 51", children[0].Y, children[1].Y)
	}
}

func TestNestedContainers(t *testing.T) {
	inner := dynamicChildren(2)
	group := New("group", SizeDynamic, nil)
	group.Padding = 1
	for _, c := range inner {
		group.AddChild(c)
	}
	fixed := New("fixed", SizeFixed, &fixedBox{w: 40})
	p, _ := newPanel(100, 20, true, fixed, group)
	p.Relayout()

	if group.X != 40 || group.Width != 60 {
		t.Fatalf("group = %s, want 60 wide at x=40", group)
	}
	if diff := cmp.Diff([]int{29, 29}, widths(inner)); diff != "" {
		t.Errorf("inner widths mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{41, 70}, xs(inner)); diff != "" {
		t.Errorf("inner positions mismatch (-want +got):\n%s", diff)
	}

	p.Resize(120, 20)
	p.Relayout()
	if diff := cmp.Diff([]int{39, 39}, widths(inner)); diff != "" {
		t.Errorf("after panel resize (-want +got):\n%s", diff)
	}
}

func TestFlow(t *testing.T) {
	launcher := New("launcher", SizeFixed, Flow{})
	launcher.Padding = 2
	launcher.Spacing = 3
	for _, w := range []int{10, 20} {
		launcher.AddChild(New("icon", SizeFixed, &fixedBox{w: w}))
	}
	hidden := New("hidden", SizeFixed, &fixedBox{w: 50})
	launcher.AddChild(hidden)
	hidden.Hide()

	p, _ := newPanel(100, 20, true, launcher)
	p.Relayout()
	if launcher.Width != 37 {
		t.Errorf("launcher width = %d, want 37", launcher.Width)
	}
	if got := DesiredSize(launcher); got != 37 {
		t.Errorf("DesiredSize = %d, want 37", got)
	}
}

func TestHideShow(t *testing.T) {
	children := dynamicChildren(3)
	p, root := newPanel(100, 20, true, children...)
	root.Spacing = 2
	p.Relayout()

	mid := children[1]
	mid.Hide()
	if mid.Width != 0 || mid.OnScreen() {
		t.Fatalf("hidden child = %s, on screen %v", mid, mid.OnScreen())
	}
	if !root.ResizeNeeded() {
		t.Error("hiding a child should mark the parent for resize")
	}
	p.Relayout()
	if children[0].Width != 49 || children[2].Width != 49 || children[2].X != 51 {
		t.Errorf("after hide: %v", children)
	}

	mid.Show()
	if !mid.OnScreen() || !mid.ResizeNeeded() || !mid.RedrawNeeded() || !root.ResizeNeeded() {
		t.Error("show should schedule a resize and a repaint")
	}
	p.Relayout()
	if diff := cmp.Diff([]int{32, 32, 32}, widths(children)); diff != "" {
		t.Errorf("after show (-want +got):\n%s", diff)
	}
}

type layoutCounter struct{ calls int }

func (lc *layoutCounter) OnChangeLayout(a *Area) { lc.calls++ }

func TestOnChangeLayout(t *testing.T) {
	lc := &layoutCounter{}
	child := New("child", SizeDynamic, lc)
	p, _ := newPanel(100, 20, true, child)
	p.Relayout()
	if lc.calls != 1 {
		t.Fatalf("calls = %d after first layout, want 1", lc.calls)
	}
	p.Draw()
	p.Relayout()
	if lc.calls != 1 {
		t.Errorf("calls = %d after an idle layout, want 1", lc.calls)
	}
	p.Resize(50, 20)
	p.Relayout()
	if lc.calls != 2 {
		t.Errorf("calls = %d after a resize, want 2", lc.calls)
	}
}

func TestChangesConsumedByOnePass(t *testing.T) {
	lc := &layoutCounter{}
	child := New("child", SizeDynamic, lc)
	child.MouseOverEffect = true
	p, _ := newPanel(100, 20, true, child)
	p.Relayout()
	if child.Changed()&ChangedSize == 0 {
		t.Errorf("changes after first layout = %b, want size", child.Changed())
	}

	p.Relayout()
	p.Relayout()
	if lc.calls != 1 {
		t.Errorf("calls = %d after two idle passes without a draw, want 1", lc.calls)
	}
	if child.Changed() != 0 {
		t.Errorf("changes after an idle pass = %b, want 0", child.Changed())
	}

	p.Draw()
	p.MouseOver(child, false)
	p.Draw()
	p.Relayout()
	if child.StatePixmap(paint.MouseNormal) == nil || child.StatePixmap(paint.MouseOver) == nil {
		t.Error("an idle pass should keep the cached state pixmaps")
	}
}

func TestOwnTransverseSizeBoundsChildren(t *testing.T) {
	icon := New("icon", SizeFixed, &fixedBox{w: 10})
	fill := New("fill", SizeDynamic, nil)
	box := New("box", SizeFixed, &fixedBox{w: 30, h: 6})
	box.AddChild(icon)
	box.AddChild(fill)
	p, _ := newPanel(100, 20, true, box)
	p.Relayout()

	if box.Height != 6 || box.Y != 7 {
		t.Fatalf("box = %s, want 6 high at y=7", box)
	}
	for _, c := range []*Area{icon, fill} {
		if c.Height != 6 || c.Y != 7 {
			t.Errorf("%s: y=%d h=%d, want y=7 h=6", c.Name, c.Y, c.Height)
		}
	}
	if fill.Width != 20 || fill.X != 10 {
		t.Errorf("fill = %s, want 20 wide at x=10", fill)
	}

	p.Resize(100, 30)
	p.Relayout()
	if icon.Height != 6 || icon.Y != 12 || fill.Y != 12 {
		t.Errorf("after panel growth: icon %s fill %s, want 6 high at y=12", icon, fill)
	}
}

func TestAddChildTwicePanics(t *testing.T) {
	a, b := New("a", SizeDynamic, nil), New("b", SizeDynamic, nil)
	child := New("child", SizeDynamic, nil)
	a.AddChild(child)
	defer func() {
		if recover() == nil {
			t.Error("expected a panic")
		}
	}()
	b.AddChild(child)
}
