package config

import (
	"image/color"

	"github.com/iburimskiy/standing-waves/internal/wave"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "Standing Waves"
	TargetTPS    = 60

	// String
	StringLength  = 800
	StringDensity = 0.00013

	// Driving wave
	Amplitude = 200
	Loops     = 2
	Tension   = 275

	// Rendering
	PointStep   = 0.25
	Amplifier   = 5.5
	ShowOverlay = true
)

var (
	Background = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	RestLine   = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	WaveLine   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// String returns the string stretched across the window.
func String() wave.String {
	return wave.NewString(StringLength, StringDensity, WindowWidth, WindowHeight)
}

// Inputs returns the driving parameters. They are fixed; nothing is read from
// the user.
func Inputs() wave.Driving {
	return wave.Driving{
		Amplitude: Amplitude,
		Loops:     Loops,
		Tension:   Tension,
	}
}
