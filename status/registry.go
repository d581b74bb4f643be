package status

import (
	"sync/atomic"
)

// Registry is the central metrics facade
// Systems cache pointers at construction; frame updates write directly to atomics
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count()
}

// IntSnapshot copies all integer metrics, for debug overlays and logs
func (r *Registry) IntSnapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, ptr *atomic.Int64) {
		out[key] = ptr.Load()
	})
	return out
}

// StoreMax raises the metric to v if v is larger
func StoreMax(m *atomic.Int64, v int64) {
	for {
		cur := m.Load()
		if v <= cur || m.CompareAndSwap(cur, v) {
			return
		}
	}
}
