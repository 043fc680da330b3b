// Package goroutine runs background work under a shared concurrency cap so a
// burst of requests cannot spawn unbounded goroutines.
package goroutine

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync"

	"github.com/anshy0304/veggiefinder/internal/pkg/stacktrace"
)

// DefaultMaxGoroutine is the per-CPU slot count used when NewManager gets a
// non-positive limit.
const DefaultMaxGoroutine = 100

// Manager schedules functions onto goroutines, capped by a semaphore.
// Returned errors are collected and surfaced from Wait. A full semaphore
// drops the task with a warning rather than blocking the caller.
type Manager struct {
	slots chan struct{}
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
	errs   []error
}

// NewManager builds a Manager allowing at most limit concurrent tasks.
func NewManager(limit int) *Manager {
	if limit < 1 {
		limit = runtime.NumCPU() * DefaultMaxGoroutine
	}
	return &Manager{slots: make(chan struct{}, limit)}
}

// Go runs f on a new goroutine if a slot is free and the manager has not been
// waited on yet. A canceled ctx skips the task.
func (m *Manager) Go(ctx context.Context, f func(ctx context.Context) error) {
	if m == nil {
		return
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		slog.WarnContext(ctx, "goroutine manager is closed, skipping new goroutine")
		return
	}

	select {
	case m.slots <- struct{}{}:
	default:
		m.mu.Unlock()
		slog.WarnContext(ctx, "goroutine limit reached, task dropped")
		return
	}
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer func() {
			<-m.slots
			m.wg.Done()

			if rvr := recover(); rvr != nil {
				stack := debug.Stack()
				if paths := stacktrace.InternalPaths(stack); len(paths) > 0 {
					slog.ErrorContext(ctx, "panic in goroutine", "panic", rvr, "stack", paths)
				} else {
					slog.ErrorContext(ctx, "panic in goroutine", "panic", rvr, "stack", string(stack))
				}
			}
		}()

		if err := ctx.Err(); err != nil {
			slog.WarnContext(ctx, "goroutine canceled", "because", err)
			return
		}
		if err := f(ctx); err != nil {
			m.mu.Lock()
			m.errs = append(m.errs, err)
			m.mu.Unlock()
		}
	}()
}

// Wait closes the manager to new tasks, blocks until running tasks finish
// and returns their errors joined.
func (m *Manager) Wait() error {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()

	m.wg.Wait()

	m.mu.Lock()
	defer m.mu.Unlock()
	return errors.Join(m.errs...)
}
