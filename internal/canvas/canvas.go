// Package canvas provides in-memory drawing surfaces for the shape package:
// a pixel-exact RGBA raster and a gg-backed vector surface.
package canvas

import (
	"image"
	"image/color"

	"kafatopu/internal/shape"
)

// Canvas is an RGBA pixel buffer that draws aliased one pixel wide lines.
// Pixels outside the buffer are clipped.
type Canvas struct {
	img   *image.RGBA
	color color.RGBA
}

// New allocates a transparent canvas of the given size.
func New(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// Clear fills every pixel with clr.
func (c *Canvas) Clear(clr color.RGBA) {
	pix := c.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = clr.R
		pix[i+1] = clr.G
		pix[i+2] = clr.B
		pix[i+3] = clr.A
	}
}

// SetDrawColor sets the color used by DrawLines.
func (c *Canvas) SetDrawColor(clr color.RGBA) {
	c.color = clr
}

// DrawLines plots a connected poly-line through points.
func (c *Canvas) DrawLines(points []shape.Point) error {
	switch len(points) {
	case 0:
		return nil
	case 1:
		c.plot(int(points[0].X), int(points[0].Y))
		return nil
	}
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		c.drawLine(int(a.X), int(a.Y), int(b.X), int(b.Y))
	}
	return nil
}

// drawLine plots a line segment using Bresenham's integer algorithm.
func (c *Canvas) drawLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) plot(x, y int) {
	if !(image.Point{X: x, Y: y}).In(c.img.Rect) {
		return
	}
	c.img.SetRGBA(x, y, c.color)
}

// At returns the color of the pixel at (x, y), or transparent black outside
// the canvas.
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Pix returns the raw RGBA bytes in row-major order, suitable for
// ebiten.Image.WritePixels.
func (c *Canvas) Pix() []byte {
	return c.img.Pix
}

// Image returns the backing image.
func (c *Canvas) Image() image.Image {
	return c.img
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
