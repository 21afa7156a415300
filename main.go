package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run builds the game and then writes a snapshot, profiles offscreen
// frames, or opens the game window until the player quits.
func run() error {
	g, err := newGame(gameOptions{
		radius:     *radiusFlag,
		discColor:  *discColorFlag,
		background: *backgroundFlag,
	})
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if *snapshotFlag != "" {
		if err := g.writeSnapshot(*snapshotFlag, *snapshotVectorFlag); err != nil {
			return fmt.Errorf("snapshot: %w", err)
		}
		log.Printf("Wrote snapshot to %s", *snapshotFlag)
		return nil
	}

	if *cpuProfileFlag != "" {
		perFrame, err := g.profileFrames(*cpuProfileFlag, *profileFramesFlag)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		log.Printf("Profiled %d frames (%v per frame) to %s", *profileFramesFlag, perFrame, *cpuProfileFlag)
		return nil
	}

	ebiten.SetTPS(defaultTPS)
	ebiten.SetWindowSize(w*windowScale, h*windowScale)
	ebiten.SetWindowTitle(windowTitle)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game stopped: %w", err)
	}
	return nil
}
