package entity

import (
	"fmt"

	"kafatopu/internal/shape"
)

// Player is a keyboard-driven disc that bounces off the playfield edges.
type Player struct {
	Disc     shape.Disc
	Velocity Velocity
	Bounds   Bounds
}

// NewPlayer places a stationary player disc inside bounds.
func NewPlayer(disc shape.Disc, bounds Bounds) *Player {
	return &Player{Disc: disc, Bounds: bounds}
}

// Update keeps the disc inside the playfield, reflecting the velocity on
// any axis where the disc crossed an edge, and then moves the center by
// the whole pixels covered in dt seconds.
func (p *Player) Update(dt float64) {
	r := int32(p.Disc.Radius)
	c := &p.Disc.Center

	if c.Y > p.Bounds.Height-r {
		c.Y = p.Bounds.Height - r
		p.Velocity.Y = -p.Velocity.Y
	} else if c.Y < r {
		c.Y = r
		p.Velocity.Y = -p.Velocity.Y
	}

	if c.X > p.Bounds.Width-r {
		c.X = p.Bounds.Width - r
		p.Velocity.X = -p.Velocity.X
	} else if c.X < r {
		c.X = r
		p.Velocity.X = -p.Velocity.X
	}

	c.Y += int32(dt * float64(p.Velocity.Y))
	c.X += int32(dt * float64(p.Velocity.X))
}

// Render draws the player's disc.
func (p *Player) Render(s shape.Surface) error {
	if err := p.Disc.Render(s); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	return nil
}
