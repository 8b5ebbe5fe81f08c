// Package leaktest checks that background goroutines started by a test are gone when it ends.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleInterval = 10 * time.Millisecond
	defaultTimeout = time.Second
)

// GoroutineChecker records the goroutine count at creation and compares against it later
type GoroutineChecker struct {
	t      testing.TB
	before int
}

// NewGoroutineChecker snapshots the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, before: runtime.NumGoroutine()}
}

// Check fails the test if more than tolerance goroutines outlive the checker.
// Goroutines get up to a second to wind down.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	if leaked, ok := settle(g.before+tolerance, defaultTimeout); !ok {
		g.t.Errorf("goroutine leak: before=%d after=%d tolerance=%d", g.before, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and fails the test if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// settle waits until the goroutine count is at most target, returning the last count seen
func settle(target int, timeout time.Duration) (int, bool) {
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
		time.Sleep(settleInterval)
	}
}
