package canvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"kafatopu/internal/shape"
)

// Vector is a surface backed by a gg drawing context. Lines are stroked
// through pixel centers at width 1, so output is anti-aliased by gg.
type Vector struct {
	dc *gg.Context
}

// NewVector allocates a transparent vector surface of the given size.
func NewVector(width, height int) *Vector {
	dc := gg.NewContext(width, height)
	dc.SetLineWidth(1)
	dc.SetLineCap(gg.LineCapSquare)
	return &Vector{dc: dc}
}

// Clear fills the whole surface with clr.
func (v *Vector) Clear(clr color.RGBA) {
	v.dc.SetColor(clr)
	v.dc.Clear()
}

// SetDrawColor sets the stroke color.
func (v *Vector) SetDrawColor(clr color.RGBA) {
	v.dc.SetColor(clr)
}

// DrawLines strokes a connected poly-line through points.
func (v *Vector) DrawLines(points []shape.Point) error {
	switch len(points) {
	case 0:
		return nil
	case 1:
		v.dc.SetPixel(int(points[0].X), int(points[0].Y))
		return nil
	}
	v.dc.NewSubPath()
	for i, p := range points {
		x, y := float64(p.X)+0.5, float64(p.Y)+0.5
		if i == 0 {
			v.dc.MoveTo(x, y)
			continue
		}
		v.dc.LineTo(x, y)
	}
	v.dc.Stroke()
	return nil
}

// Image returns the rendered image.
func (v *Vector) Image() image.Image {
	return v.dc.Image()
}

// SavePNG encodes img as a PNG file at path.
func SavePNG(path string, img image.Image) error {
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("saving %q: %w", path, err)
	}
	return nil
}
