package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMap_GetCachesPointer(t *testing.T) {
	r := NewRegistry()

	a := r.Ints.Get("frames")
	b := r.Ints.Get("frames")
	if a != b {
		t.Fatal("Get should return the same pointer for the same key")
	}

	a.Add(3)
	if got := r.IntSnapshot()["frames"]; got != 3 {
		t.Errorf("snapshot frames = %d, want 3", got)
	}
	if keys := r.Ints.Keys(); len(keys) != 1 || keys[0] != "frames" {
		t.Errorf("keys = %v, want [frames]", keys)
	}
}

func TestMetricMap_RangeSorted(t *testing.T) {
	r := NewRegistry()
	for _, k := range []string{"c", "a", "b"} {
		r.Ints.Get(k)
	}
	r.Bools.Get("flag")

	var keys []string
	r.Ints.Range(func(key string, _ *atomic.Int64) {
		keys = append(keys, key)
	})
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("Range order = %v, want [a b c]", keys)
	}
	if r.TotalCount() != 4 {
		t.Errorf("TotalCount = %d, want 4", r.TotalCount())
	}
}

func TestStoreMax_Concurrent(t *testing.T) {
	r := NewRegistry()
	peak := r.Ints.Get("peak")

	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(v int64) {
			defer wg.Done()
			StoreMax(peak, v)
		}(int64(i))
	}
	wg.Wait()

	if peak.Load() != 100 {
		t.Errorf("peak = %d, want 100", peak.Load())
	}

	StoreMax(peak, 5)
	if peak.Load() != 100 {
		t.Error("StoreMax lowered the metric")
	}
}
