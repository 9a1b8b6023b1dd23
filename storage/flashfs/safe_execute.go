package flashfs

import (
	"context"
	"sync"
	"time"
)

// safeExecutor is the Go stand-in for original_source's flash_safe_execute
// dispatch: on real hardware it parks every other core and IRQ, runs a
// RAM-resident callback with no XIP access, then restores state, all
// within a timeout. Here it serializes program/erase/format calls behind
// a mutex and bounds each with a deadline, the same shape minus the
// multicore parking -- the natural seam where that dispatch would plug
// in on a port targeting real flash.
type safeExecutor struct {
	mu sync.Mutex
}

// run executes fn exclusively, failing with context.DeadlineExceeded if
// it does not return within timeout.
func (s *safeExecutor) run(timeout time.Duration, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- fn() }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
