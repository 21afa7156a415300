package main

// Window, timing, and player configuration constants. These define the
// playfield size, the fixed update rate, and how the player disc starts.
const (
	w, h          = 800, 600
	windowScale   = 1
	windowTitle   = "kafatopu"
	defaultTPS    = 60
	playerSpeed   = 100
	playerStartX  = 100
	playerStartY  = 100
	defaultRadius = 30
	minRadius     = 1
	maxRadius     = h / 2

	defaultProfileFrames = 600
)
