package game

import "time"

// Timer counts down a fixed duration fed by tick deltas
// Excess delta past zero is discarded, a ready timer stays ready until Reset
type Timer struct {
	duration time.Duration
	left     time.Duration
}

// NewTimer returns an armed timer
func NewTimer(d time.Duration) Timer {
	return Timer{duration: d, left: d}
}

// Update consumes delta, saturating at zero
func (t *Timer) Update(delta time.Duration) {
	if delta <= 0 {
		return
	}
	t.left -= delta
	if t.left < 0 {
		t.left = 0
	}
}

// Ready reports whether the full duration has elapsed
func (t *Timer) Ready() bool {
	return t.left == 0
}

// Reset re-arms the timer with its duration
func (t *Timer) Reset() {
	t.left = t.duration
}

// Duration returns the configured duration
func (t *Timer) Duration() time.Duration {
	return t.duration
}

// Remaining returns the time left before Ready
func (t *Timer) Remaining() time.Duration {
	return t.left
}

// Fraction returns remaining/duration in [0, 1]
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 0
	}
	return float64(t.left) / float64(t.duration)
}
