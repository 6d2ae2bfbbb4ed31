package wave

import "math"

// Standing holds the constants derived from a String and its Driving.
type Standing struct {
	Velocity   float64
	Frequency  float64
	Omega      float64
	Wavelength float64
	WaveNumber float64
}

// Derive computes the standing wave constants.
//
// Frequency keeps the integer arithmetic of the formula the visualization was
// tuned with: Loops/2 is integer division and Length is taken as an integer.
// PhysicalFrequency gives the textbook Velocity/Wavelength instead.
func Derive(s String, d Driving) (Standing, error) {
	if err := s.Validate(); err != nil {
		return Standing{}, err
	}
	if err := d.Validate(); err != nil {
		return Standing{}, err
	}

	var st Standing
	st.Velocity = math.Sqrt(d.Tension / s.Density)
	st.Frequency = float64(d.Loops/2*int(s.Length)) * st.Velocity
	st.Omega = 2 * math.Pi * st.Frequency
	st.Wavelength = 2 * s.Length / float64(d.Loops)
	st.WaveNumber = 2 * math.Pi / st.Wavelength
	return st, nil
}

// Period returns the temporal period 2π/Omega, or +Inf when Omega is zero.
func (st Standing) Period() float64 {
	if st.Omega == 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi / st.Omega
}

// PhysicalFrequency returns Velocity/Wavelength for the same inputs.
func PhysicalFrequency(s String, d Driving) (float64, error) {
	st, err := Derive(s, d)
	if err != nil {
		return 0, err
	}
	return st.Velocity / st.Wavelength, nil
}
