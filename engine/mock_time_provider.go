package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
	step        time.Duration
}

// NewMockTimeProvider creates a mock clock that advances by step on every Now
// A zero step leaves time frozen until Advance
func NewMockTimeProvider(startTime time.Time, step time.Duration) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
		step:        step,
	}
}

// Now returns the current mocked time, then advances it by the step
func (m *MockTimeProvider) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.currentTime
	m.currentTime = m.currentTime.Add(m.step)
	return now
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}
