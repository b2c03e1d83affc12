package area

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type labeled struct {
	fixedBox
	label string
}

func (l *labeled) DumpGeometry(a *Area, w io.Writer, indent int) {
	fmt.Fprintf(w, "%slabel=%q\n", strings.Repeat("  ", indent), l.label)
}

func TestDump(t *testing.T) {
	icon := New("icon", SizeFixed, &labeled{fixedBox: fixedBox{w: 30}, label: "term"})
	icon.MouseOverEffect = true
	task := New("task", SizeDynamic, nil)
	gone := New("gone", SizeDynamic, nil)
	p, _ := newPanel(100, 20, true, icon, task, gone)
	gone.Hide()
	p.Relayout()
	p.MouseOver(icon, false)

	var sb strings.Builder
	Dump(&sb, p.Root)
	want := strings.Join([]string{
		"panel: x=0 y=0 w=100 h=20 dynamic",
		"  icon: x=0 y=0 w=30 h=20 fixed mouse=over",
		`    label="term"`,
		"  task: x=30 y=0 w=70 h=20 dynamic",
		"  gone: x=0 y=0 w=0 h=0 dynamic hidden",
		"",
	}, "\n")
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("Dump mismatch (-want +got):\n%s", diff)
	}
}
