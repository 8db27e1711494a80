// Package status collects named session counters and gauges.
package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Registry holds the counters and gauges of one game session, summarised at exit
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[Gauge](),
	}
}

// TotalCount returns the number of registered metrics
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Lines renders every metric as "name=value", integers first, each group in key order
func (r *Registry) Lines() []string {
	out := make([]string, 0, r.TotalCount())
	r.Ints.Each(func(k string, v *atomic.Int64) {
		out = append(out, k+"="+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Each(func(k string, v *Gauge) {
		out = append(out, fmt.Sprintf("%s=%.2f", k, v.Get()))
	})
	return out
}
