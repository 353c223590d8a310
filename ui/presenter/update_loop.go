package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates on the UI
// thread. It drains worker results, collects region selections, refreshes
// labels and then invokes a scheduler callback. The zero value is usable
// (methods are nil-safe).
type Loop struct {
	Session  *SessionPresenter
	FSM      *FSMPresenter
	Region   *RegionPresenter
	Worker   *Worker
	Schedule func()
}

func NewLoop(sess *SessionPresenter, fsm *FSMPresenter, region *RegionPresenter, worker *Worker, schedule func()) *Loop {
	return &Loop{Session: sess, FSM: fsm, Region: region, Worker: worker, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Worker != nil {
		l.Worker.Drain()
	}
	if l.Region != nil {
		l.Region.Process()
	}
	// Flush pending state changes after the completions above queued theirs.
	if l.FSM != nil {
		l.FSM.Tick(now)
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
