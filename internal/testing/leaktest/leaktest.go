// Package leaktest asserts that tests leave no goroutines behind.
// The database pool tests use it to prove connections and their
// watchers are torn down.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// Snapshot captures the goroutine count at the start of a test.
type Snapshot struct {
	t     testing.TB
	count int
}

// Take settles the scheduler and records the current goroutine count.
func Take(t testing.TB) *Snapshot {
	t.Helper()

	runtime.Gosched()
	time.Sleep(10 * time.Millisecond)

	return &Snapshot{t: t, count: runtime.NumGoroutine()}
}

// Assert fails the test when more than extra goroutines outlive the
// snapshot. Stragglers get a short grace period to exit first.
func (s *Snapshot) Assert(extra int) {
	s.t.Helper()

	deadline := time.Now().Add(500 * time.Millisecond)
	var now int
	for {
		runtime.Gosched()
		now = runtime.NumGoroutine()
		if now-s.count <= extra || time.Now().After(deadline) {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	if leaked := now - s.count; leaked > extra {
		s.t.Errorf("goroutine leak: %d before, %d after, %d over the allowed %d",
			s.count, now, leaked, extra)
	}
}

// AssertNone runs fn and fails the test if it leaves any goroutine
// behind.
func AssertNone(t *testing.T, fn func()) {
	t.Helper()

	snap := Take(t)
	fn()
	snap.Assert(0)
}
