package area

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes the geometry of a and its subtree, one area per line.
func Dump(w io.Writer, a *Area) {
	dump(w, a, 0)
}

func dump(w io.Writer, a *Area, indent int) {
	pad := strings.Repeat("  ", indent)
	mode := "fixed"
	if a.SizeMode == SizeDynamic {
		mode = "dynamic"
	}
	fmt.Fprintf(w, "%s%s: x=%d y=%d w=%d h=%d %s", pad, a.Name, a.X, a.Y, a.Width, a.Height, mode)
	if !a.onScreen {
		fmt.Fprint(w, " hidden")
	}
	if a.mouseState != 0 {
		fmt.Fprintf(w, " mouse=%s", a.mouseState)
	}
	fmt.Fprintln(w)
	if d, ok := a.Widget.(GeometryDumper); ok {
		d.DumpGeometry(a, w, indent+1)
	}
	for _, c := range a.children {
		dump(w, c, indent+1)
	}
}
