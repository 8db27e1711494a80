package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap names the metrics of one kind for a session, created on first use
// Counters like "cue.pew" are bumped from the loop goroutine while the summary
// may read them from main, so lookups are guarded and values are atomic
type MetricMap[T any] struct {
	mu     sync.RWMutex
	byName map[string]*T
}

// NewMetricMap returns an empty map
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{byName: make(map[string]*T)}
}

// Get returns the metric called name, registering a zero value the first time
// The pointer stays valid for the session and may be kept by the caller
func (m *MetricMap[T]) Get(name string) *T {
	m.mu.RLock()
	v, ok := m.byName[name]
	m.mu.RUnlock()
	if ok {
		return v
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok = m.byName[name]; !ok {
		v = new(T)
		m.byName[name] = v
	}
	return v
}

// Has reports whether anything recorded under name this session
func (m *MetricMap[T]) Has(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.byName[name]
	return ok
}

// Each visits metrics sorted by name, so summaries are stable between runs
func (m *MetricMap[T]) Each(fn func(name string, v *T)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, name := range slices.Sorted(maps.Keys(m.byName)) {
		fn(name, m.byName[name])
	}
}

// Count returns how many names are registered
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byName)
}
