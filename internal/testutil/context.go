package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds a merge or export in tests.
const DefaultTimeout = 10 * time.Second

// deadliner is implemented by *testing.T; benchmarks have no deadline.
type deadliner interface {
	Deadline() (time.Time, bool)
}

// Context returns a context cancelled when the test ends. The timeout is
// clipped so it fires a second before the test binary's own deadline.
func Context(tb testing.TB, timeout time.Duration) context.Context {
	tb.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if t, ok := tb.(deadliner); ok {
		if deadline, set := t.Deadline(); set {
			if remaining := time.Until(deadline) - time.Second; remaining > 0 && remaining < timeout {
				timeout = remaining
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	tb.Cleanup(cancel)
	return ctx
}
