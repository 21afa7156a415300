package shape

import (
	"cmp"
	"fmt"
	"image/color"
	"math"
	"slices"
)

// Triangle is a flat-colored triangle in pixel space.
type Triangle struct {
	Color      color.RGBA
	P1, P2, P3 Point
}

// Rotate returns a copy of t rotated about pivot by degrees. Rotated
// coordinates are rounded half away from zero on both axes.
func (t Triangle) Rotate(pivot Point, degrees float64) Triangle {
	rad := degrees * math.Pi / 180.0
	sin, cos := math.Sincos(rad)
	t.P1 = rotatePoint(t.P1, pivot, sin, cos)
	t.P2 = rotatePoint(t.P2, pivot, sin, cos)
	t.P3 = rotatePoint(t.P3, pivot, sin, cos)
	return t
}

// rotatePoint rotates p about pivot using only p's own relative position.
func rotatePoint(p, pivot Point, sin, cos float64) Point {
	rel := p.Sub(pivot)
	x := float64(rel.X)
	y := float64(rel.Y)
	return Point{
		X: saturate(int64(pivot.X) + int64(math.Round(x*cos-y*sin))),
		Y: saturate(int64(pivot.Y) + int64(math.Round(x*sin+y*cos))),
	}
}

// Rasterize samples each non-horizontal edge once per scanline, from the
// upper endpoint (inclusive) to the lower endpoint (exclusive), and returns
// the samples ordered by y. Samples on the same scanline keep edge order
// p1-p2, p2-p3, p3-p1.
func (t Triangle) Rasterize() []Point {
	var points []Point
	for _, e := range [3][2]Point{{t.P1, t.P2}, {t.P2, t.P3}, {t.P3, t.P1}} {
		points = appendEdge(points, e[0], e[1])
	}
	slices.SortStableFunc(points, func(a, b Point) int {
		return cmp.Compare(a.Y, b.Y)
	})
	return points
}

func appendEdge(dst []Point, a, b Point) []Point {
	if a.Y == b.Y {
		return dst
	}
	if a.Y > b.Y {
		a, b = b, a
	}
	m := float64(int64(b.X)-int64(a.X)) / float64(int64(b.Y)-int64(a.Y))
	c := float64(a.X)
	for y := a.Y; y < b.Y; y++ {
		i := float64(int64(y) - int64(a.Y))
		dst = append(dst, Point{X: saturate(int64(math.Round(m*i + c))), Y: y})
	}
	return dst
}

// Render draws the outline samples of t as one poly-line in t.Color.
// A triangle without samples draws nothing.
func (t Triangle) Render(s Surface) error {
	points := t.Rasterize()
	if len(points) == 0 {
		return nil
	}
	s.SetDrawColor(t.Color)
	if err := s.DrawLines(points); err != nil {
		return fmt.Errorf("drawing triangle %v %v %v: %w", t.P1, t.P2, t.P3, err)
	}
	return nil
}
