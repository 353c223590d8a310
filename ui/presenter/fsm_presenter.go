package presenter

import (
	"sync"
	"time"

	"github.com/soocke/autodraw-go/domain/session"
)

// StateView reflects the session phase in the view.
type StateView interface {
	SetStateLabel(string)
	SetControls(session.State)
}

// FSMPresenter receives session transitions from the FSM goroutine and applies
// the latest one to the view on the next Tick.
type FSMPresenter struct {
	view    StateView
	mu      sync.Mutex
	latest  session.State // last reflected state
	shown   bool
	pending []session.State
}

func NewFSMPresenter(view StateView) *FSMPresenter {
	return &FSMPresenter{view: view}
}

// OnState queues a transitioned state from the FSM listener.
func (p *FSMPresenter) OnState(prev, next session.State) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.pending = append(p.pending, next)
	p.mu.Unlock()
}

// Tick updates the view with the most recent queued state.
func (p *FSMPresenter) Tick(now time.Time) {
	if p == nil || p.view == nil {
		return
	}
	p.mu.Lock()
	if len(p.pending) == 0 {
		p.mu.Unlock()
		return
	}
	last := p.pending[len(p.pending)-1]
	p.pending = p.pending[:0]
	p.mu.Unlock()
	if p.shown && last == p.latest {
		return
	}
	p.latest, p.shown = last, true
	p.view.SetStateLabel("State: " + last.String())
	p.view.SetControls(last)
}
