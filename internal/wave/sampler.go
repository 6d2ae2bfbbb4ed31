package wave

import "math"

// Segment is a straight line between two sampled points.
type Segment struct {
	From, To Point
}

// Sampler evaluates the displacement of a standing wave across the window.
type Sampler struct {
	Wave      Standing
	Amplitude float64 // driving amplitude
	Amplifier float64 // visual gain applied after the envelope
	Step      float64 // horizontal distance between samples
	Width     int
	Height    int
}

func (s Sampler) rest() float64 { return float64(s.Height) / 2 }

// Envelope returns the spatial amplitude A(x), truncated toward zero.
func (s Sampler) Envelope(x float64) float64 {
	return math.Trunc((2*s.Amplitude - s.rest()) * math.Sin(s.Wave.WaveNumber*x))
}

// Displacement returns the screen y of the string at x after t seconds.
func (s Sampler) Displacement(x, t float64) float64 {
	return s.Envelope(x)*math.Cos(s.Wave.Omega*t)*s.Amplifier + s.rest()
}

// SampleCount returns how many samples a frame takes: x = 0, Step, 2·Step, ...
// while x < Width.
func (s Sampler) SampleCount() int {
	if s.Step <= 0 || s.Width <= 0 {
		return 0
	}
	n := 0
	for x := 0.0; x < float64(s.Width); x = float64(n) * s.Step {
		n++
	}
	return n
}

// Segments appends the segments of the frame at time t to dst[:0] and returns
// the result. The first segment starts at (0, Height/2).
func (s Sampler) Segments(t float64, dst []Segment) []Segment {
	dst = dst[:0]
	if s.Step <= 0 {
		return dst
	}

	phase := math.Cos(s.Wave.Omega * t)
	past := Point{X: 0, Y: s.rest()}
	width := float64(s.Width)
	for i := 0; ; i++ {
		x := float64(i) * s.Step
		if x >= width {
			break
		}
		cur := Point{X: x, Y: s.Envelope(x)*phase*s.Amplifier + s.rest()}
		dst = append(dst, Segment{From: past, To: cur})
		past = cur
	}
	return dst
}
