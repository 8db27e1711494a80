package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float session reading, such as ticks per second, safe to set from
// any goroutine while the summary is being listed; the zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

// Set replaces the reading
func (g *Gauge) Set(v float64) { g.bits.Store(math.Float64bits(v)) }

// Get returns the last reading
func (g *Gauge) Get() float64 { return math.Float64frombits(g.bits.Load()) }

// Add accumulates into the reading and returns the result
func (g *Gauge) Add(delta float64) float64 {
	for {
		cur := g.bits.Load()
		sum := math.Float64frombits(cur) + delta
		if g.bits.CompareAndSwap(cur, math.Float64bits(sum)) {
			return sum
		}
	}
}
