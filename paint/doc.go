// Package paint holds the value types used to decorate panel boxes (colors,
// borders, backgrounds, gradient classes) and a small software rasterizer
// that paints them into image.RGBA pixmaps.
//
// Tint implements the content tinting of backgrounds and borders: a color
// is pulled toward the mean color of what is drawn on top of it while
// keeping its own brightness and opacity.
package paint
