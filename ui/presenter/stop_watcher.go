package presenter

import (
	"log/slog"
	"runtime/debug"
	"sync/atomic"
	"time"

	"github.com/soocke/autodraw-go/domain/action"
	"github.com/soocke/autodraw-go/domain/session"
)

// StopWatcher polls the global stop key while a draw pass runs and fires
// OnStop once per pass on a fresh key press.
type StopWatcher struct {
	Logger   *slog.Logger
	KeyDown  func(vk byte) bool
	OnStop   func()
	Key      string
	vk       byte
	interval time.Duration
	running  atomic.Bool
	done     chan struct{}
}

// NewStopWatcher constructs a watcher for the named key (see action.ParseVK).
// A nil keyDown uses action.KeyDown.
func NewStopWatcher(key string, onStop func(), keyDown func(byte) bool, logger *slog.Logger) *StopWatcher {
	if keyDown == nil {
		keyDown = action.KeyDown
	}
	return &StopWatcher{
		Logger:   logger,
		KeyDown:  keyDown,
		OnStop:   onStop,
		Key:      key,
		vk:       action.ParseVK(key),
		interval: 20 * time.Millisecond,
	}
}

// OnState should be called from a session listener; polling runs from the
// start of a pass until the session is idle again.
func (w *StopWatcher) OnState(prev, next session.State) {
	if w == nil {
		return
	}
	if next == session.StateDrawing {
		w.start()
		return
	}
	if !next.Busy() {
		w.stop()
	}
}

func (w *StopWatcher) start() {
	if w.running.Load() {
		return
	}
	w.done = make(chan struct{})
	w.running.Store(true)
	go w.loop(w.done)
}

func (w *StopWatcher) stop() {
	if !w.running.Load() {
		return
	}
	close(w.done)
	w.running.Store(false)
}

// loop polls for one pass and owns that pass's key edge state.
func (w *StopWatcher) loop(done chan struct{}) {
	defer recoverLog(w.Logger, "stop watcher panic")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	// A key already held when the pass starts must be released first.
	wasDown := true
	for {
		select {
		case <-ticker.C:
			if w.KeyDown == nil {
				continue
			}
			down := w.KeyDown(w.vk)
			pressed := down && !wasDown
			wasDown = down
			if pressed {
				w.fire()
				return
			}
		case <-done:
			return
		}
	}
}

func (w *StopWatcher) fire() {
	if w.Logger != nil {
		w.Logger.Debug("stop key pressed", "key", w.Key)
	}
	if w.OnStop != nil {
		w.OnStop()
	}
}

func recoverLog(logger *slog.Logger, msg string) {
	if r := recover(); r != nil {
		if logger != nil {
			logger.Error(msg, "error", r, "stack", string(debug.Stack()))
		}
	}
}
