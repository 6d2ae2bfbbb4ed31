package wave

// Driving holds the excitation applied to the string.
type Driving struct {
	Amplitude float64
	Loops     int // harmonic number, one antinode per loop
	Tension   float64
}

// Validate reports a *DomainError for any non-positive parameter.
func (d Driving) Validate() error {
	if err := positive("amplitude", d.Amplitude); err != nil {
		return err
	}
	if err := positive("loops", float64(d.Loops)); err != nil {
		return err
	}
	return positive("tension", d.Tension)
}
