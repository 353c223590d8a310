package model

import (
	"time"
)

// SessionModel tracks the duration of the current draw pass, the accumulated
// drawing time and how many passes ran or were stopped. Presenters poll
// Stats() and update views.
// The zero value is ready to use.
type SessionModel struct {
	active      bool
	stopping    bool
	passStart   time.Time
	lastPass    time.Duration
	accumulated time.Duration
	passes      int
	stopped     int
}

// SessionStats is a display snapshot of a SessionModel.
type SessionStats struct {
	Pass     time.Duration // current or last pass
	Total    time.Duration // all passes, the running one included
	Passes   int
	Stopped  int  // passes that ended on a stop request
	Stopping bool // the running pass is unwinding
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick updates the model from the pass flags and the current time.
// Call periodically (for example, from a presenter tick).
func (m *SessionModel) OnTick(drawing, stopRequested bool, now time.Time) {
	if m == nil {
		return
	}
	if drawing {
		if !m.active { // idle -> drawing
			m.active = true
			m.stopping = false
			m.passStart = now
			m.lastPass = 0
			m.passes++
		}
		if stopRequested {
			m.stopping = true
		}
		m.lastPass = now.Sub(m.passStart)
	} else if m.active { // drawing -> idle
		m.lastPass = now.Sub(m.passStart)
		m.accumulated += m.lastPass
		m.active = false
		if m.stopping {
			m.stopped++
			m.stopping = false
		}
	}
}

// Values returns the current pass duration and the total drawing time.
// The total includes the ongoing pass when active.
func (m *SessionModel) Values() (pass, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	pass = m.lastPass
	total = m.accumulated
	if m.active {
		total += pass
	}
	return
}

// Stats returns durations and pass counters together.
func (m *SessionModel) Stats() SessionStats {
	if m == nil {
		return SessionStats{}
	}
	pass, total := m.Values()
	return SessionStats{
		Pass:     pass,
		Total:    total,
		Passes:   m.passes,
		Stopped:  m.stopped,
		Stopping: m.active && m.stopping,
	}
}

// Passes returns how many draw passes have started.
func (m *SessionModel) Passes() int {
	if m == nil {
		return 0
	}
	return m.passes
}
