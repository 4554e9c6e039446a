package testutil

import (
	"testing"
	"time"
)

// noDeadline hides Deadline the way *testing.B does.
type noDeadline struct {
	testing.TB
}

// TestContextUsesTimeout verifies the requested timeout bounds the context.
func TestContextUsesTimeout(t *testing.T) {
	start := time.Now()
	ctx := Context(t, 2*time.Second)
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("expected a deadline")
	}
	if deadline.Sub(start) > 2*time.Second+time.Second/2 {
		t.Fatalf("expected deadline within timeout, got %v", deadline.Sub(start))
	}
}

// TestContextWithoutTestDeadline verifies a TB without Deadline gets the default timeout.
func TestContextWithoutTestDeadline(t *testing.T) {
	start := time.Now()
	ctx := Context(noDeadline{t}, 0)
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatalf("expected a deadline")
	}
	if got := deadline.Sub(start); got > DefaultTimeout+time.Second || got <= 0 {
		t.Fatalf("expected default timeout, got %v", got)
	}
}

// TestContextCancelledOnCleanup verifies the context ends with the test.
func TestContextCancelledOnCleanup(t *testing.T) {
	var done <-chan struct{}
	t.Run("inner", func(t *testing.T) {
		done = Context(t, time.Minute).Done()
	})
	select {
	case <-done:
	default:
		t.Fatalf("expected context cancelled after subtest cleanup")
	}
}
