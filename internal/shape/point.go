package shape

import "math"

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int32
}

// Pt is a convenience function to create a Point.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q, saturating at the int32 range.
func (p Point) Add(q Point) Point {
	return Point{
		X: saturate(int64(p.X) + int64(q.X)),
		Y: saturate(int64(p.Y) + int64(q.Y)),
	}
}

// Sub returns p - q, i.e. p expressed relative to q, saturating at the int32
// range.
func (p Point) Sub(q Point) Point {
	return Point{
		X: saturate(int64(p.X) - int64(q.X)),
		Y: saturate(int64(p.Y) - int64(q.Y)),
	}
}

// saturate narrows v to int32, clamping instead of wrapping.
func saturate(v int64) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
