package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// errQuit ends the run loop without reporting an error.
var errQuit = ebiten.Termination

// quitRequested reports whether the player asked to leave.
func quitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// handlePauseToggle flips the pause state when P is pressed.
func (g *Game) handlePauseToggle() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
}

// applyMovementKeys sets the player's velocity from the arrow keys. A press
// starts movement on that axis at playerSpeed and a release stops it, so the
// most recent key event wins.
func (g *Game) applyMovementKeys() {
	v := &g.player.Velocity
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		v.Y = playerSpeed
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		v.Y = -playerSpeed
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.X = playerSpeed
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.X = -playerSpeed
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyArrowDown) || inpututil.IsKeyJustReleased(ebiten.KeyArrowUp) {
		v.Y = 0
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyArrowRight) || inpututil.IsKeyJustReleased(ebiten.KeyArrowLeft) {
		v.X = 0
	}
}

// tickSeconds returns the fixed duration of one Update call.
func tickSeconds() float64 {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = defaultTPS
	}
	return 1.0 / float64(tps)
}
