package stroke

import "sync/atomic"

// RunState is the flag pair shared between the UI and the draw worker.
// The zero value is idle with no stop pending.
type RunState struct {
	drawing       atomic.Bool
	stopRequested atomic.Bool
}

// TryBegin marks a pass as started and clears any stale stop request.
// It returns false when a pass is already running.
func (s *RunState) TryBegin() bool {
	if !s.drawing.CompareAndSwap(false, true) {
		return false
	}
	s.stopRequested.Store(false)
	return true
}

// End clears both flags.
func (s *RunState) End() {
	s.drawing.Store(false)
	s.stopRequested.Store(false)
}

// RequestStop asks a running pass to unwind at its next check.
func (s *RunState) RequestStop() { s.stopRequested.Store(true) }

// StopRequested reports whether a stop is pending.
func (s *RunState) StopRequested() bool { return s.stopRequested.Load() }

// Drawing reports whether a pass is in progress.
func (s *RunState) Drawing() bool { return s.drawing.Load() }
