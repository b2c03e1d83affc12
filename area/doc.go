// Package area implements the layout and compositing engine of a panel: a
// retained tree of rectangular areas that is sized and positioned along
// the panel's primary axis, painted into per-area pixmaps cached for every
// mouse state, and composed onto the panel surface.
//
// A frame runs in three steps, all on the event loop goroutine:
//
//	panel.Relayout()          // fixed areas bottom-up, dynamic areas top-down
//	img := panel.Draw()       // repaint dirty areas, compose the surface
//	panel.MouseOver(a, down)  // on pointer motion, swaps cached pixmaps
//
// Widgets customize an area through the optional hook interfaces (Resizer,
// ForegroundDrawer, ...) implemented by the value stored in Area.Widget.
package area
