package wave_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/standing-waves/internal/wave"
)

const tol = 1e-9

func defaults() (wave.String, wave.Driving) {
	return wave.NewString(800, 0.00013, 1280, 720),
		wave.Driving{Amplitude: 200, Loops: 2, Tension: 275}
}

// TestDerive_Scenario checks the constants for the default string at 1280×720.
func TestDerive_Scenario(t *testing.T) {
	s, d := defaults()
	st, err := wave.Derive(s, d)
	require.NoError(t, err)

	assert.InDelta(t, 1454.4, st.Velocity, 0.1)
	assert.InDelta(t, math.Sqrt(275/0.00013), st.Velocity, tol)
	assert.Equal(t, 800.0, st.Wavelength)
	assert.InDelta(t, 0.007854, st.WaveNumber, 1e-6)
	assert.InDelta(t, 800*st.Velocity, st.Frequency, tol)
	assert.Equal(t, 2*math.Pi*st.Frequency, st.Omega)
}

// TestDerive_IntegerLoops pins the integer division in the frequency formula.
func TestDerive_IntegerLoops(t *testing.T) {
	s, d := defaults()
	cases := []struct {
		loops int
		mult  float64
	}{
		{1, 0},
		{2, 800},
		{3, 800},
		{4, 1600},
		{5, 1600},
	}
	for _, tc := range cases {
		d.Loops = tc.loops
		st, err := wave.Derive(s, d)
		require.NoError(t, err)
		assert.InDelta(t, tc.mult*st.Velocity, st.Frequency, 1e-6, "loops=%d", tc.loops)
		assert.InDelta(t, 1600/float64(tc.loops), st.Wavelength, tol, "loops=%d", tc.loops)
	}
}

// TestDerive_Properties sweeps positive inputs and checks the identities that
// hold for every valid string.
func TestDerive_Properties(t *testing.T) {
	for _, tension := range []float64{0.5, 1, 275, 1e4} {
		for _, density := range []float64{1e-5, 0.00013, 0.3, 2} {
			for _, length := range []float64{1, 50, 800, 1280} {
				for loops := 1; loops <= 6; loops++ {
					s := wave.NewString(length, density, 1280, 720)
					d := wave.Driving{Amplitude: 1, Loops: loops, Tension: tension}
					st, err := wave.Derive(s, d)
					require.NoError(t, err)

					require.Greater(t, st.Velocity, 0.0)
					require.InEpsilon(t, tension, st.Velocity*st.Velocity*density, 1e-12)
					require.InDelta(t, 2*length/float64(loops), st.Wavelength, tol)
					require.InDelta(t, 2*math.Pi, st.WaveNumber*st.Wavelength, tol)
					require.Equal(t, 2*math.Pi*st.Frequency, st.Omega)
				}
			}
		}
	}
}

// TestDerive_Errors verifies that non-positive inputs are rejected.
func TestDerive_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*wave.String, *wave.Driving)
		field  string
	}{
		{"ZeroDensity", func(s *wave.String, _ *wave.Driving) { s.Density = 0 }, "density"},
		{"NegativeDensity", func(s *wave.String, _ *wave.Driving) { s.Density = -1 }, "density"},
		{"ZeroLength", func(s *wave.String, _ *wave.Driving) { s.Length = 0 }, "length"},
		{"ZeroTension", func(_ *wave.String, d *wave.Driving) { d.Tension = 0 }, "tension"},
		{"NegativeTension", func(_ *wave.String, d *wave.Driving) { d.Tension = -275 }, "tension"},
		{"ZeroLoops", func(_ *wave.String, d *wave.Driving) { d.Loops = 0 }, "loops"},
		{"NegativeLoops", func(_ *wave.String, d *wave.Driving) { d.Loops = -2 }, "loops"},
		{"ZeroAmplitude", func(_ *wave.String, d *wave.Driving) { d.Amplitude = 0 }, "amplitude"},
		{"NaNDensity", func(s *wave.String, _ *wave.Driving) { s.Density = math.NaN() }, "density"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, d := defaults()
			tc.mutate(&s, &d)
			_, err := wave.Derive(s, d)
			require.Error(t, err)
			assert.True(t, errors.Is(err, wave.ErrDomain), "error %v should match ErrDomain", err)

			var de *wave.DomainError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tc.field, de.Field)
		})
	}
}

func TestStanding_Period(t *testing.T) {
	s, d := defaults()
	st, err := wave.Derive(s, d)
	require.NoError(t, err)
	assert.InEpsilon(t, 1/st.Frequency, st.Period(), 1e-12)

	assert.True(t, math.IsInf(wave.Standing{}.Period(), 1))
}

func TestPhysicalFrequency(t *testing.T) {
	s, d := defaults()
	f, err := wave.PhysicalFrequency(s, d)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(275/0.00013)/800, f, tol)

	d.Loops = 0
	_, err = wave.PhysicalFrequency(s, d)
	assert.ErrorIs(t, err, wave.ErrDomain)
}
