package core

import (
	"testing"
	"time"
)

func TestCountdownFiresOnce(t *testing.T) {
	fired := 0
	c := NewCountdown(time.Second, 0, nil, func() { fired++ })

	c.Advance(900 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired early after 900ms")
	}
	if c.Remaining() != 100*time.Millisecond {
		t.Errorf("Remaining() = %v, expected 100ms", c.Remaining())
	}

	c.Advance(100 * time.Millisecond)
	if fired != 1 {
		t.Fatalf("expected one expiry, got %d", fired)
	}
	if !c.Stopped() {
		t.Error("countdown should stop after expiry")
	}

	c.Advance(5 * time.Second)
	if fired != 1 {
		t.Errorf("expiry fired again: %d", fired)
	}
	if c.Elapsed() != time.Second {
		t.Errorf("Elapsed() = %v, expected clamp to 1s", c.Elapsed())
	}
}

func TestCountdownLargeStepFiresOnce(t *testing.T) {
	fired := 0
	c := NewCountdown(300*time.Millisecond, 100*time.Millisecond, nil, func() { fired++ })

	c.Advance(time.Minute)
	if fired != 1 {
		t.Errorf("expected one expiry, got %d", fired)
	}
}

func TestCountdownAccumulatesPartialSteps(t *testing.T) {
	c := NewCountdown(time.Second, 100*time.Millisecond, nil, nil)

	for range 3 {
		c.Advance(40 * time.Millisecond)
	}
	// 120ms fed, one whole step consumed
	if c.Elapsed() != 100*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected 100ms", c.Elapsed())
	}
}

func TestCountdownStopsWhenCompleted(t *testing.T) {
	done := false
	fired := false
	c := NewCountdown(time.Second, 0, func() bool { return done }, func() { fired = true })

	c.Advance(500 * time.Millisecond)
	done = true
	c.Advance(10 * time.Second)

	if fired {
		t.Error("completed countdown must not fire")
	}
	if !c.Stopped() {
		t.Error("countdown should stop once completed")
	}
	if c.Elapsed() != 500*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected 500ms", c.Elapsed())
	}
}

func TestCountdownRestart(t *testing.T) {
	fired := 0
	c := NewCountdown(200*time.Millisecond, 0, nil, func() { fired++ })

	c.Advance(time.Second)
	c.Restart(400 * time.Millisecond)

	if c.Stopped() || c.Elapsed() != 0 {
		t.Fatalf("restart should rewind, got stopped=%v elapsed=%v", c.Stopped(), c.Elapsed())
	}
	if c.Duration() != 400*time.Millisecond {
		t.Errorf("Duration() = %v, expected 400ms", c.Duration())
	}

	c.Advance(time.Second)
	if fired != 2 {
		t.Errorf("expected one expiry per run, got %d", fired)
	}
}

func TestCountdownFractionRemaining(t *testing.T) {
	tests := []struct {
		advance  time.Duration
		expected float64
	}{
		{0, 1},
		{250 * time.Millisecond, 0.75},
		{500 * time.Millisecond, 0.5},
		{2 * time.Second, 0},
	}

	for _, tc := range tests {
		c := NewCountdown(time.Second, 50*time.Millisecond, nil, nil)
		c.Advance(tc.advance)
		if got := c.FractionRemaining(); got != tc.expected {
			t.Errorf("after %v: FractionRemaining() = %v, expected %v", tc.advance, got, tc.expected)
		}
	}
}
