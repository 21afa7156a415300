package main

import (
	"image"

	"kafatopu/internal/canvas"
)

// imageSurface is a frame surface whose result can be saved.
type imageSurface interface {
	frameSurface
	Image() image.Image
}

// writeSnapshot renders the current frame offscreen and saves it as a PNG.
func (g *Game) writeSnapshot(path string, vector bool) error {
	var s imageSurface = canvas.New(w, h)
	if vector {
		s = canvas.NewVector(w, h)
	}
	if err := g.renderFrame(s); err != nil {
		return err
	}
	return canvas.SavePNG(path, s.Image())
}
