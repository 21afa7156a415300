package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"kafatopu/internal/entity"
)

// profileFrames runs the given number of ticks offscreen while writing a CPU
// profile to path. The player drifts diagonally at playerSpeed so every frame
// sweeps the disc at a fresh position and bounces off the edges. It returns
// the mean time spent per frame.
func (g *Game) profileFrames(path string, frames int) (time.Duration, error) {
	if frames < 1 {
		return 0, fmt.Errorf("profile frames %d, want at least 1", frames)
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating CPU profile: %w", err)
	}
	defer f.Close()
	if err := pprof.StartCPUProfile(f); err != nil {
		return 0, fmt.Errorf("starting CPU profile: %w", err)
	}

	g.player.Velocity = entity.Velocity{X: playerSpeed, Y: playerSpeed}
	start := time.Now()
	for i := 0; i < frames; i++ {
		g.step(1.0 / defaultTPS)
		if err := g.renderFrame(g.frame); err != nil {
			pprof.StopCPUProfile()
			return 0, fmt.Errorf("profiling frame %d: %w", i, err)
		}
	}
	elapsed := time.Since(start)
	pprof.StopCPUProfile()

	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("closing CPU profile: %w", err)
	}
	return elapsed / time.Duration(frames), nil
}
