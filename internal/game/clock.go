package game

import "time"

// clock measures time since the game was created.
type clock struct {
	start time.Time
	now   func() time.Time
}

func newClock(now func() time.Time) *clock {
	return &clock{start: now(), now: now}
}

func (c *clock) Elapsed() time.Duration { return c.now().Sub(c.start) }

// Seconds returns the elapsed time in seconds.
func (c *clock) Seconds() float64 { return c.Elapsed().Seconds() }
