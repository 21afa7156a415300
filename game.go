package main

import (
	"fmt"
	"image/color"
	"log"

	"kafatopu/internal/canvas"
	"kafatopu/internal/entity"
	"kafatopu/internal/palette"
	"kafatopu/internal/shape"
)

// Game owns the entities, the frame canvas, and the pause state.
type Game struct {
	player   *entity.Player
	entities []entity.Entity

	frame      *canvas.Canvas
	background color.RGBA

	paused bool

	// frameErr holds the first render failure; Update returns it to stop
	// the run loop.
	frameErr error
}

// gameOptions are the user-tunable parts of a Game.
type gameOptions struct {
	radius     uint
	discColor  string
	background string
}

// newGame constructs a Game with a single stationary player disc.
func newGame(opts gameOptions) (*Game, error) {
	if opts.radius < minRadius || opts.radius > maxRadius {
		return nil, fmt.Errorf("radius %d out of range [%d, %d]", opts.radius, minRadius, maxRadius)
	}
	discColor, err := palette.Parse(opts.discColor)
	if err != nil {
		return nil, fmt.Errorf("disc color: %w", err)
	}
	background, err := palette.Parse(opts.background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	player := entity.NewPlayer(shape.Disc{
		Center: shape.Pt(playerStartX, playerStartY),
		Radius: uint32(opts.radius),
		Color:  discColor,
	}, entity.Bounds{Width: w, Height: h})

	log.Printf("Player disc: radius %d, color %v, background %v", opts.radius, discColor, background)
	return &Game{
		player:     player,
		entities:   []entity.Entity{player},
		frame:      canvas.New(w, h),
		background: background,
	}, nil
}

// Update applies keyboard input and advances every entity by one tick.
func (g *Game) Update() error {
	if g.frameErr != nil {
		return g.frameErr
	}
	if quitRequested() {
		return errQuit
	}
	g.handlePauseToggle()
	g.applyMovementKeys()
	if g.paused {
		return nil
	}
	g.step(tickSeconds())
	return nil
}

// step advances every entity by dt seconds.
func (g *Game) step(dt float64) {
	for _, e := range g.entities {
		e.Update(dt)
	}
}

// renderFrame clears s to the background color and draws every entity.
// Rendering stops at the first failing entity.
func (g *Game) renderFrame(s frameSurface) error {
	s.Clear(g.background)
	for _, e := range g.entities {
		if err := e.Render(s); err != nil {
			return fmt.Errorf("rendering frame: %w", err)
		}
	}
	return nil
}

// frameSurface is a shape.Surface that can also be cleared between frames.
type frameSurface interface {
	shape.Surface
	Clear(c color.RGBA)
}
