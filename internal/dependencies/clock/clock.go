package clock

import "time"

// Clock abstracts the wall clock so the coin-reset and leaderboard
// rollover logic can be tested at fixed instants.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock.
type RealClock struct{}

func New() *RealClock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}
