package status

import (
	"slices"
	"sync"
)

// MetricMap is a named set of metrics of type T
// Get allocates on first use; callers keep the pointer and update it directly
type MetricMap[T any] struct {
	mu    sync.Mutex
	items map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric named key
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()
	ptr, ok := m.items[key]
	if !ok {
		ptr = new(T)
		m.items[key] = ptr
	}
	return ptr
}

// Keys returns the registered names, sorted
func (m *MetricMap[T]) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.items))
	for k := range m.items {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Range calls fn for each metric in key order
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	for _, k := range m.Keys() {
		m.mu.Lock()
		ptr := m.items[k]
		m.mu.Unlock()
		fn(k, ptr)
	}
}

// Count returns the number of metrics
func (m *MetricMap[T]) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}
