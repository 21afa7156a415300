// Package entity holds the things the game loop updates and draws each tick.
package entity

import "kafatopu/internal/shape"

// Entity is anything the game loop advances and renders once per tick.
type Entity interface {
	Update(dt float64)
	Render(s shape.Surface) error
}

// Velocity is measured in pixels per second.
type Velocity struct {
	X, Y int32
}

// Bounds is the playfield size in pixels.
type Bounds struct {
	Width, Height int32
}
