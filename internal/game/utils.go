package game

import (
	"fmt"
	"time"

	"github.com/iburimskiy/standing-waves/internal/wave"
)

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// statusText is the overlay printed over the wave.
func statusText(st wave.Standing, physical float64, elapsed time.Duration) string {
	return fmt.Sprintf("v = %.1f  f = %.0f Hz (v/λ = %.2f Hz)  λ = %.0f  k = %.6f\nt = %s  Esc/Q: Quit",
		st.Velocity, st.Frequency, physical, st.Wavelength, st.WaveNumber, formatDuration(elapsed))
}
