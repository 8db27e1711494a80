package engine

import "time"

// TimeProvider supplies the loop's notion of now
type TimeProvider interface {
	Now() time.Time
}

// SystemTime provides the real system time with monotonic clock readings
type SystemTime struct{}

// NewTimeProvider creates a new monotonic time provider
func NewTimeProvider() *SystemTime {
	return &SystemTime{}
}

// Now returns the current time with monotonic clock reading
func (p *SystemTime) Now() time.Time {
	return time.Now()
}
