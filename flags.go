package main

import "flag"

// Command-line flags that control the player disc, colors, and offscreen
// output.
var (
	// radiusFlag sets the player disc radius in pixels.
	radiusFlag = flag.Uint("radius", defaultRadius, "player disc radius in pixels")

	// discColorFlag names the player disc color (SVG keyword or #rrggbb[aa]).
	discColorFlag = flag.String("disc-color", "lime", "player disc color (SVG color name or #rrggbb[aa])")

	// backgroundFlag names the color the screen is cleared to each frame.
	backgroundFlag = flag.String("background", "blue", "background color (SVG color name or #rrggbb[aa])")

	// debugFlag enables the FPS and player overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and player state overlay")

	// snapshotFlag renders a single frame to a PNG file instead of opening a window.
	snapshotFlag = flag.String("snapshot", "", "render one frame to this PNG file and exit")

	snapshotVectorFlag = flag.Bool("snapshot-vector", false, "use the anti-aliased vector surface for -snapshot")

	// cpuProfileFlag profiles offscreen frames instead of opening a window.
	cpuProfileFlag = flag.String("cpuprofile", "", "render -profile-frames frames offscreen, write a CPU profile to this file, and exit")

	profileFramesFlag = flag.Int("profile-frames", defaultProfileFrames, "number of frames rendered for -cpuprofile")
)
