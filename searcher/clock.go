package searcher

import "time"

// clock is a soft deadline. It is polled, never enforced: a search that
// notices expiry finishes its current step before returning.
type clock struct {
	start    time.Time
	limit    time.Duration
	reserved time.Duration
}

func startClock(limit, reserved time.Duration) clock {
	return clock{start: time.Now(), limit: limit, reserved: reserved}
}

func (c clock) expired() bool {
	return c.limit < time.Since(c.start)+c.reserved
}
