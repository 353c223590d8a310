package presenter

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync/atomic"
)

// Precondition failures reported as warnings before an operation starts.
var (
	ErrNoImage  = errors.New("no line art yet: load an image first")
	ErrNoRegion = errors.New("no target region: select a region first")
	ErrBusy     = errors.New("another operation is still running")
)

// Notifier shows blocking messages to the user.
type Notifier interface {
	Warn(title, msg string)
	Error(title, msg string)
}

// Worker runs at most one background job. A job returns a completion that
// Drain applies on the UI thread, so widgets are never touched off-thread.
type Worker struct {
	logger  *slog.Logger
	busy    atomic.Bool
	results chan func()
}

func NewWorker(logger *slog.Logger) *Worker {
	return &Worker{logger: logger, results: make(chan func(), 1)}
}

// Busy reports whether a job is running or its completion is still pending.
func (w *Worker) Busy() bool { return w != nil && w.busy.Load() }

// Go starts job on a new goroutine. If job panics, onPanic's completion runs
// instead. Returns ErrBusy when a job is already in flight.
func (w *Worker) Go(name string, job func() func(), onPanic func(error)) error {
	if !w.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	go func() {
		var done func()
		defer func() {
			if r := recover(); r != nil {
				if w.logger != nil {
					w.logger.Error("worker panic", "job", name, "error", r, "stack", string(debug.Stack()))
				}
				err := fmt.Errorf("%s: unexpected failure: %v", name, r)
				done = func() {
					if onPanic != nil {
						onPanic(err)
					}
				}
			}
			w.results <- done
		}()
		done = job()
	}()
	return nil
}

// Drain applies a finished job's completion, if any, and frees the worker.
// Call from the UI thread.
func (w *Worker) Drain() {
	select {
	case done := <-w.results:
		w.busy.Store(false)
		if done != nil {
			done()
		}
	default:
	}
}
