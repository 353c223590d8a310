package session

import (
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

// FSM serialises session events on its own goroutine. Current may be read
// from any goroutine.
type FSM struct {
	state     atomic.Int32
	logger    *slog.Logger
	hasImage  bool
	hasRegion bool
	events    chan interface{}
	done      chan struct{}
	closeOnce sync.Once
	listeners []Listener
}

// NewFSM constructs the machine in StateEmpty and starts its event loop.
func NewFSM(logger *slog.Logger) *FSM {
	f := &FSM{logger: logger, events: make(chan interface{}, 64), done: make(chan struct{})}
	f.state.Store(int32(StateEmpty))
	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				if logger != nil {
					logger.Error("session fsm panic", "error", r, "stack", stack)
				}
			}
		}()
		f.loop()
	}()
	return f
}

// events
type (
	evtAddListener      struct{ l Listener }
	evtImageLoaded      struct{}
	evtSelectionStarted struct{}
	evtSelectionDone    struct{ ok bool }
	evtRegionReset      struct{}
	evtDrawStarted      struct{}
	evtStopRequested    struct{}
	evtDrawFinished     struct{}
)

func (f *FSM) loop() {
	for {
		select {
		case <-f.done:
			return
		case ev := <-f.events:
			f.handle(ev)
		}
	}
}

func (f *FSM) handle(ev interface{}) {
	cur := f.Current()
	switch e := ev.(type) {
	case evtAddListener:
		f.listeners = append(f.listeners, e.l)
	case evtImageLoaded:
		if cur.Busy() {
			return
		}
		f.hasImage = true
		// The selection outcome decides the next resting state.
		if cur != StateSelecting {
			f.transition(f.idle())
		}
	case evtSelectionStarted:
		if cur.Busy() {
			return
		}
		f.transition(StateSelecting)
	case evtSelectionDone:
		if cur != StateSelecting {
			return
		}
		if e.ok {
			f.hasRegion = true
		}
		f.transition(f.idle())
	case evtRegionReset:
		if cur.Busy() {
			return
		}
		f.hasRegion = false
		if cur != StateSelecting {
			f.transition(f.idle())
		}
	case evtDrawStarted:
		if cur == StateReady {
			f.transition(StateDrawing)
		}
	case evtStopRequested:
		if cur == StateDrawing {
			f.transition(StateStopping)
		}
	case evtDrawFinished:
		if cur.Busy() {
			f.transition(f.idle())
		}
	}
}

// idle returns the resting state implied by what has been collected so far.
func (f *FSM) idle() State {
	switch {
	case f.hasImage && f.hasRegion:
		return StateReady
	case f.hasImage:
		return StateLoaded
	default:
		return StateEmpty
	}
}

func (f *FSM) transition(next State) {
	prev := f.Current()
	if prev == next {
		return
	}
	f.state.Store(int32(next))
	if f.logger != nil {
		f.logger.Debug("session state transition", "from", prev.String(), "to", next.String())
	}
	for _, l := range f.listeners {
		f.notify(l, prev, next)
	}
}

func (f *FSM) notify(l Listener, prev, next State) {
	defer recoverLog(f.logger, "session listener panic")
	l(prev, next)
}

// send drops ev once the machine is closed. It never touches a closed channel,
// so callers on other goroutines may race with Close.
func (f *FSM) send(ev interface{}) {
	select {
	case <-f.done:
		return
	default:
	}
	select {
	case f.events <- ev:
	case <-f.done:
	}
}

// Public API implements contracts
func (f *FSM) AddListener(l Listener)          { f.send(evtAddListener{l: l}) }
func (f *FSM) Current() State                  { return State(f.state.Load()) }
func (f *FSM) EventImageLoaded()               { f.send(evtImageLoaded{}) }
func (f *FSM) EventSelectionStarted()          { f.send(evtSelectionStarted{}) }
func (f *FSM) EventSelectionFinished(ok bool)  { f.send(evtSelectionDone{ok: ok}) }
func (f *FSM) EventRegionReset()               { f.send(evtRegionReset{}) }
func (f *FSM) EventDrawStarted()               { f.send(evtDrawStarted{}) }
func (f *FSM) EventStopRequested()             { f.send(evtStopRequested{}) }
func (f *FSM) EventDrawFinished()              { f.send(evtDrawFinished{}) }
func (f *FSM) Close() {
	f.closeOnce.Do(func() { close(f.done) })
}

func recoverLog(logger *slog.Logger, msg string) {
	if r := recover(); r != nil {
		if logger != nil {
			logger.Error(msg, "error", r)
		}
	}
}

// Ensure contract satisfaction
var _ Contract = (*FSM)(nil)
