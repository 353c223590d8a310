package presenter

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/soocke/autodraw-go/domain/session"
)

type fakeKey struct{ down atomic.Bool }

func (k *fakeKey) pressed(vk byte) bool { return k.down.Load() }

// Test that the watcher fires once on a fresh press while drawing.
func TestStopWatcher_FiresOnPress(t *testing.T) {
	key := &fakeKey{}
	var fired atomic.Int32
	w := NewStopWatcher("SPACE", func() { fired.Add(1) }, key.pressed, nil)

	w.OnState(session.StateReady, session.StateDrawing)
	time.Sleep(100 * time.Millisecond)
	if fired.Load() != 0 {
		t.Fatalf("expected no fire, got %d", fired.Load())
	}
	key.down.Store(true)
	time.Sleep(100 * time.Millisecond)
	if fired.Load() != 1 {
		t.Fatalf("expected fire on press, got %d", fired.Load())
	}
	// Holding or re-pressing within the same pass does not fire again.
	key.down.Store(false)
	time.Sleep(60 * time.Millisecond)
	key.down.Store(true)
	time.Sleep(60 * time.Millisecond)
	if fired.Load() != 1 {
		t.Fatalf("unexpected repeat fire")
	}
	w.OnState(session.StateStopping, session.StateReady)
}

// Test that a key held when the pass starts is ignored until released.
func TestStopWatcher_IgnoresHeldKeyAtStart(t *testing.T) {
	key := &fakeKey{}
	key.down.Store(true)
	var fired atomic.Int32
	w := NewStopWatcher("F8", func() { fired.Add(1) }, key.pressed, nil)
	w.OnState(session.StateReady, session.StateDrawing)
	time.Sleep(100 * time.Millisecond)
	if fired.Load() != 0 {
		t.Fatalf("held key should not fire")
	}
	key.down.Store(false)
	time.Sleep(60 * time.Millisecond)
	key.down.Store(true)
	time.Sleep(100 * time.Millisecond)
	if fired.Load() != 1 {
		t.Fatalf("expected fire after release and press, got %d", fired.Load())
	}
	w.OnState(session.StateDrawing, session.StateReady)
}

// Test that leaving the busy states stops polling and a new pass re-arms.
func TestStopWatcher_ResetOnNewPass(t *testing.T) {
	key := &fakeKey{}
	var fired atomic.Int32
	w := NewStopWatcher("SPACE", func() { fired.Add(1) }, key.pressed, nil)
	w.OnState(session.StateReady, session.StateDrawing)
	time.Sleep(40 * time.Millisecond)
	key.down.Store(true)
	time.Sleep(100 * time.Millisecond)
	w.OnState(session.StateDrawing, session.StateStopping)
	w.OnState(session.StateStopping, session.StateReady)
	key.down.Store(false)
	time.Sleep(60 * time.Millisecond)
	if fired.Load() != 1 {
		t.Fatalf("expected first fire, got %d", fired.Load())
	}
	// Idle: presses are ignored.
	key.down.Store(true)
	time.Sleep(60 * time.Millisecond)
	key.down.Store(false)
	if fired.Load() != 1 {
		t.Fatalf("fired while idle")
	}
	w.OnState(session.StateReady, session.StateDrawing)
	time.Sleep(60 * time.Millisecond)
	key.down.Store(true)
	time.Sleep(100 * time.Millisecond)
	if fired.Load() != 2 {
		t.Fatalf("expected second fire after re-arm, got %d", fired.Load())
	}
	w.OnState(session.StateDrawing, session.StateReady)
}

// Test that quick restarts do not share key state with a winding-down loop.
func TestStopWatcher_RapidRestart(t *testing.T) {
	key := &fakeKey{}
	var fired atomic.Int32
	w := NewStopWatcher("SPACE", func() { fired.Add(1) }, key.pressed, nil)
	w.interval = time.Millisecond

	toggling := make(chan struct{})
	go func() {
		defer close(toggling)
		for i := 0; i < 500; i++ {
			key.down.Store(i%2 == 0)
			time.Sleep(50 * time.Microsecond)
		}
	}()
	for i := 0; i < 200; i++ {
		w.OnState(session.StateReady, session.StateDrawing)
		w.OnState(session.StateDrawing, session.StateReady)
	}
	<-toggling

	key.down.Store(false)
	fired.Store(0)
	w.OnState(session.StateReady, session.StateDrawing)
	time.Sleep(20 * time.Millisecond)
	key.down.Store(true)
	time.Sleep(50 * time.Millisecond)
	if fired.Load() != 1 {
		t.Fatalf("expected one fire after restarts, got %d", fired.Load())
	}
	w.OnState(session.StateDrawing, session.StateReady)
}
