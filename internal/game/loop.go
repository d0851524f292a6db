package game

import (
	"context"
	"time"
)

// DefaultTickRate is the simulation step used by RunLoop
const DefaultTickRate = 16 * time.Millisecond

// RunLoop drives a session from a wall-clock ticker until the context
// is cancelled. Each tick advances the session by the real elapsed
// time, so a stalled host catches up instead of slowing the game down.
// The engine itself never sees the clock; hosts that want full control
// call Session.Advance directly instead.
func RunLoop(ctx context.Context, s *Session, tick time.Duration) {
	if tick <= 0 {
		tick = DefaultTickRate
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Advance(now.Sub(last))
			last = now
		}
	}
}
