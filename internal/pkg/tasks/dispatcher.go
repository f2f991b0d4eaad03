// Package tasks provides a small fire-and-forget dispatcher for post-commit
// side effects. Workflows submit tasks after their transaction has committed;
// the dispatcher runs each task on its own goroutine so a slow mail or broker
// call can never stall the caller, and observes outcomes only for logging.
package tasks

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// defaultTaskTimeout bounds a single task so a hung side-effect call cannot
// leak goroutines forever.
const defaultTaskTimeout = 30 * time.Second

// Dispatcher runs submitted tasks in the background. The zero value is not
// usable; create one with NewDispatcher. Close drains in-flight tasks on
// shutdown so committed side effects are not silently dropped.
type Dispatcher struct {
	logger  *slog.Logger
	timeout time.Duration
	wg      sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewDispatcher creates a dispatcher logging task outcomes through the given logger.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		logger:  logger.With("component", "task_dispatcher"),
		timeout: defaultTaskTimeout,
	}
}

// Submit schedules fn to run in the background and returns immediately.
// The task receives a context detached from the caller's (the caller's
// request may complete long before the task does) but bounded by the
// dispatcher timeout. Panics are recovered and logged; a task submitted
// after Close is dropped with a warning.
func (d *Dispatcher) Submit(name string, fn func(ctx context.Context)) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.logger.Warn("task dropped: dispatcher closed", "task", name)
		return
	}
	d.wg.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				d.logger.Error("task panicked", "task", name, "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		fn(ctx)
	}()
}

// Close stops accepting new tasks and waits for in-flight tasks to finish.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	d.wg.Wait()
}
