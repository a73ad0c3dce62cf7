// Package leaktest provides goroutine and heap growth checks for tests.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	// DefaultSettle is how long Check waits for goroutines to wind down
	DefaultSettle = time.Second
	pollInterval  = 5 * time.Millisecond
	bytesPerMB    = 1024 * 1024
)

// Goroutines records a goroutine baseline and reports growth past it.
type Goroutines struct {
	t        testing.TB
	baseline int
	settle   time.Duration
}

// Track records the current goroutine count as the baseline.
func Track(t testing.TB) *Goroutines {
	t.Helper()
	runtime.Gosched()
	return &Goroutines{t: t, baseline: runtime.NumGoroutine(), settle: DefaultSettle}
}

// Settle overrides how long Check polls before failing.
func (g *Goroutines) Settle(d time.Duration) *Goroutines {
	g.settle = d
	return g
}

// Check polls until the goroutine count is back within tolerance of the
// baseline, failing the test if the settle deadline passes first.
func (g *Goroutines) Check(tolerance int) {
	g.t.Helper()
	if n, ok := waitAtMost(g.baseline+tolerance, g.settle); !ok {
		g.t.Errorf("goroutine leak: baseline=%d now=%d tolerance=%d", g.baseline, n, tolerance)
	}
}

// NoGoroutineLeak runs fn and fails the test if it leaves goroutines behind.
func NoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	g := Track(t)
	fn()
	g.Check(0)
}

// Heap records live heap usage and reports growth past a limit.
type Heap struct {
	t      testing.TB
	before uint64
}

// TrackHeap records the live heap after a forced collection.
func TrackHeap(t testing.TB) *Heap {
	t.Helper()
	return &Heap{t: t, before: liveHeap()}
}

// Check fails the test when the live heap grew by more than maxGrowthMB.
func (h *Heap) Check(maxGrowthMB float64) {
	h.t.Helper()
	after := liveHeap()
	if after <= h.before {
		return
	}
	growth := float64(after-h.before) / bytesPerMB
	if growth > maxGrowthMB {
		h.t.Errorf("heap growth: before=%.2fMB after=%.2fMB growth=%.2fMB max=%.2fMB",
			float64(h.before)/bytesPerMB, float64(after)/bytesPerMB, growth, maxGrowthMB)
	}
}

// NoHeapGrowth runs fn and fails the test if the live heap grew past maxGrowthMB.
func NoHeapGrowth(t testing.TB, maxGrowthMB float64, fn func()) {
	t.Helper()
	h := TrackHeap(t)
	fn()
	h.Check(maxGrowthMB)
}

func waitAtMost(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(pollInterval)
	}
}

func liveHeap() uint64 {
	// Two cycles so finalizers queued by the first one get collected too
	runtime.GC()
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}
