package testkit

import (
	"sync"
	"testing"
)

// serialMu is held by every test that called Serial
var serialMu sync.Mutex

// Swap points target at replacement until the test ends.
// Use it for package-level seams such as id generators and clocks.
func Swap[T any](t *testing.T, target *T, replacement T) {
	t.Helper()
	prev := *target
	*target = replacement
	t.Cleanup(func() { *target = prev })
}

// Serial holds a process wide lock until the test ends. Tests that swap a seam or
// touch the module registry call it so parallel tests never observe each other.
func Serial(t *testing.T) {
	t.Helper()
	serialMu.Lock()
	t.Cleanup(serialMu.Unlock)
}
