package presenter

import (
	"time"

	"github.com/soocke/autodraw-go/ui/model"
)

// PassFlags reports the lifecycle of the running draw pass.
type PassFlags interface {
	Drawing() bool
	StopRequested() bool
}

// SessionView displays pass timing and counters.
type SessionView interface {
	SetSession(st model.SessionStats)
}

// SessionPresenter samples the pass flags into the session model and pushes
// the result to the view when it changes.
type SessionPresenter struct {
	sess  *model.SessionModel
	flags PassFlags
	view  SessionView
	last  model.SessionStats
	shown bool
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, flags PassFlags, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, flags: flags, view: view}
}

// Tick advances the session model and refreshes the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.flags == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.flags.Drawing(), p.flags.StopRequested(), now)
	st := p.sess.Stats()
	if p.shown && st == p.last {
		return
	}
	p.last, p.shown = st, true
	p.view.SetSession(st)
}
