package wave

// Point is a screen coordinate.
type Point struct {
	X, Y float64
}

// String is a stretched string fixed at both ends, centered in the window.
type String struct {
	Length  float64
	Density float64
	Left    Point
	Right   Point
}

// NewString centers a string of the given length horizontally in a window of
// windowWidth × windowHeight and places both endpoints at half height.
func NewString(length, density float64, windowWidth, windowHeight int) String {
	border := (float64(windowWidth) - length) / 2
	midY := float64(windowHeight) / 2
	return String{
		Length:  length,
		Density: density,
		Left:    Point{X: border, Y: midY},
		Right:   Point{X: float64(windowWidth) - border, Y: midY},
	}
}

// Validate reports a *DomainError if the length or density is not positive.
func (s String) Validate() error {
	if err := positive("length", s.Length); err != nil {
		return err
	}
	return positive("density", s.Density)
}
