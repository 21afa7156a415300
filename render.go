package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw renders every entity into the frame canvas and uploads it to the
// screen. A render failure is kept for the next Update to report.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.frameErr != nil {
		return
	}
	if err := g.renderFrame(g.frame); err != nil {
		g.frameErr = err
		return
	}
	screen.WritePixels(g.frame.Pix())

	if *debugFlag {
		c := g.player.Disc.Center
		v := g.player.Velocity
		state := "running"
		if g.paused {
			state = "paused"
		}
		debugMsg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nPlayer: (%d, %d) v=(%d, %d)\n%s (P to toggle)",
			ebiten.ActualFPS(), ebiten.ActualTPS(), c.X, c.Y, v.X, v.Y, state)
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return w, h }
