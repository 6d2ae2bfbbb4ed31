// Package wave derives the constants of a standing wave on a fixed string and
// samples its displacement for drawing.
//
// The string is described by String (length, linear density and its two
// fixed endpoints on screen) and excited by Driving (amplitude, number of
// loops and tension). Derive turns both into a Standing value:
//
//   - Velocity   = sqrt(Tension / Density)
//   - Frequency  = (Loops / 2 * Length) * Velocity, integer Loops / 2
//   - Omega      = 2π · Frequency
//   - Wavelength = 2 · Length / Loops
//   - WaveNumber = 2π / Wavelength
//
// Sampler evaluates y(x, t) = A(x)·cos(Omega·t)·Amplifier + Height/2 with
// A(x) = trunc((2·Amplitude − Height/2)·sin(WaveNumber·x)) and produces the
// connected line segments of one frame. Nothing here touches a window.
//
// Errors:
//
//   - ErrDomain: a length, density, tension, amplitude or loop count is not positive.
package wave
