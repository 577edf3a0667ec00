package core

import "time"

// DefaultCadence is the step size of a Countdown.
const DefaultCadence = 100 * time.Millisecond

// Countdown is a host-driven timer. The host feeds it wall-clock time via
// Advance and the countdown consumes it in whole cadence steps, so expiry
// happens on the same goroutine as the rest of the game.
//
// Before every step isCompleted is consulted; once it reports true the
// countdown stops for good without firing. onExpired runs at most once
// per Restart.
type Countdown struct {
	duration time.Duration
	cadence  time.Duration
	elapsed  time.Duration
	pending  time.Duration // Host time not yet consumed by a step
	stopped  bool

	isCompleted func() bool
	onExpired   func()
}

// NewCountdown creates a running countdown. A non-positive cadence falls
// back to DefaultCadence. Either callback may be nil.
func NewCountdown(duration, cadence time.Duration, isCompleted func() bool, onExpired func()) *Countdown {
	if cadence <= 0 {
		cadence = DefaultCadence
	}
	c := &Countdown{
		cadence:     cadence,
		isCompleted: isCompleted,
		onExpired:   onExpired,
	}
	c.Restart(duration)
	return c
}

// Restart rewinds the countdown to zero with a new duration and starts it.
func (c *Countdown) Restart(duration time.Duration) {
	c.duration = duration
	c.elapsed = 0
	c.pending = 0
	c.stopped = false
}

// Advance feeds dt of host time into the countdown and runs every whole
// cadence step it covers.
func (c *Countdown) Advance(dt time.Duration) {
	if c.stopped || dt <= 0 {
		return
	}
	c.pending += dt
	for c.pending >= c.cadence && !c.stopped {
		c.pending -= c.cadence
		c.step()
	}
}

// step is one cadence tick.
func (c *Countdown) step() {
	if c.isCompleted != nil && c.isCompleted() {
		c.stopped = true
		return
	}

	c.elapsed += c.cadence
	if c.elapsed < c.duration {
		return
	}

	c.elapsed = c.duration
	c.stopped = true
	if c.onExpired != nil {
		c.onExpired()
	}
}

// Duration returns the configured duration.
func (c *Countdown) Duration() time.Duration {
	return c.duration
}

// Elapsed returns the time counted so far, never more than the duration.
func (c *Countdown) Elapsed() time.Duration {
	return c.elapsed
}

// Remaining returns the time left before expiry.
func (c *Countdown) Remaining() time.Duration {
	return max(c.duration-c.elapsed, 0)
}

// FractionRemaining returns the remaining share of the duration in [0, 1].
func (c *Countdown) FractionRemaining() float64 {
	if c.duration <= 0 {
		return 0
	}
	return ClampF(1-float64(c.elapsed)/float64(c.duration), 0, 1)
}

// Stopped reports whether the countdown has expired or been halted by
// its completion check.
func (c *Countdown) Stopped() bool {
	return c.stopped
}
