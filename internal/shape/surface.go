// Package shape rasterizes flat-colored triangles and sweeps them into discs.
//
// Geometry is value-typed: points, triangles, and discs are copied freely and
// every transform returns a new value. Drawing goes through a Surface, which
// only needs to accept a color and a connected poly-line.
package shape

import "image/color"

// Surface is a drawing target. DrawLines connects consecutive points with
// straight line segments in the current draw color; a single point draws one
// pixel.
type Surface interface {
	SetDrawColor(c color.RGBA)
	DrawLines(points []Point) error
}

// Shape is anything that can draw itself onto a Surface.
type Shape interface {
	Render(s Surface) error
}
