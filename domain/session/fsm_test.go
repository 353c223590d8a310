package session

import (
	"log/slog"
	"sync"
	"testing"
	"time"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// waitForState waits up to timeout for the FSM to reach expected state.
func waitForState(t *testing.T, m *FSM, expected State, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if m.Current() == expected {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timeout waiting for state %v (got %v)", expected, m.Current())
}

type transitionRecorder struct {
	mu  sync.Mutex
	seq []State
}

func (r *transitionRecorder) listener(prev, next State) {
	r.mu.Lock()
	r.seq = append(r.seq, next)
	r.mu.Unlock()
}

func (r *transitionRecorder) snapshot() []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]State(nil), r.seq...)
}

func TestSessionFSM_FullFlow(t *testing.T) {
	m := NewFSM(discardLogger)
	defer m.Close()
	r := &transitionRecorder{}
	m.AddListener(r.listener)

	m.EventImageLoaded()
	waitForState(t, m, StateLoaded, 200*time.Millisecond)
	m.EventSelectionStarted()
	waitForState(t, m, StateSelecting, 200*time.Millisecond)
	m.EventSelectionFinished(true)
	waitForState(t, m, StateReady, 200*time.Millisecond)
	m.EventDrawStarted()
	waitForState(t, m, StateDrawing, 200*time.Millisecond)
	m.EventStopRequested()
	waitForState(t, m, StateStopping, 200*time.Millisecond)
	m.EventDrawFinished()
	waitForState(t, m, StateReady, 200*time.Millisecond)

	want := []State{StateLoaded, StateSelecting, StateReady, StateDrawing, StateStopping, StateReady}
	got := r.snapshot()
	if len(got) != len(want) {
		t.Fatalf("transitions %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("transitions %v want %v", got, want)
		}
	}
}

func TestSessionFSM_CanceledSelectionKeepsPhase(t *testing.T) {
	m := NewFSM(discardLogger)
	defer m.Close()
	m.EventImageLoaded()
	waitForState(t, m, StateLoaded, 200*time.Millisecond)
	m.EventSelectionStarted()
	waitForState(t, m, StateSelecting, 200*time.Millisecond)
	m.EventSelectionFinished(false)
	waitForState(t, m, StateLoaded, 200*time.Millisecond)
}

func TestSessionFSM_DrawRequiresReady(t *testing.T) {
	m := NewFSM(discardLogger)
	defer m.Close()
	m.EventDrawStarted()
	m.EventImageLoaded()
	waitForState(t, m, StateLoaded, 200*time.Millisecond)
	m.EventDrawStarted()
	time.Sleep(20 * time.Millisecond)
	if m.Current() != StateLoaded {
		t.Fatalf("draw started without a region: %v", m.Current())
	}
}

func TestSessionFSM_RegionResetAndBusyGuards(t *testing.T) {
	m := NewFSM(discardLogger)
	defer m.Close()
	m.EventSelectionStarted()
	m.EventSelectionFinished(true)
	waitForState(t, m, StateEmpty, 200*time.Millisecond)
	m.EventImageLoaded()
	waitForState(t, m, StateReady, 200*time.Millisecond)
	m.EventDrawStarted()
	waitForState(t, m, StateDrawing, 200*time.Millisecond)
	// Ignored while drawing.
	m.EventRegionReset()
	m.EventSelectionStarted()
	m.EventImageLoaded()
	time.Sleep(20 * time.Millisecond)
	if m.Current() != StateDrawing {
		t.Fatalf("busy session changed to %v", m.Current())
	}
	m.EventDrawFinished()
	waitForState(t, m, StateReady, 200*time.Millisecond)
	m.EventRegionReset()
	waitForState(t, m, StateLoaded, 200*time.Millisecond)
}

func TestSessionFSM_ListenerPanicIsContained(t *testing.T) {
	m := NewFSM(discardLogger)
	defer m.Close()
	m.AddListener(func(prev, next State) { panic("boom") })
	m.EventImageLoaded()
	waitForState(t, m, StateLoaded, 200*time.Millisecond)
	m.EventSelectionStarted()
	waitForState(t, m, StateSelecting, 200*time.Millisecond)
}

func TestSessionFSM_ImageLoadedDuringSelection(t *testing.T) {
	m := NewFSM(discardLogger)
	defer m.Close()
	m.EventSelectionStarted()
	waitForState(t, m, StateSelecting, 200*time.Millisecond)
	m.EventImageLoaded()
	time.Sleep(20 * time.Millisecond)
	if m.Current() != StateSelecting {
		t.Fatalf("load should not end the selection: %v", m.Current())
	}
	m.EventSelectionFinished(true)
	waitForState(t, m, StateReady, 200*time.Millisecond)
	m.EventDrawStarted()
	waitForState(t, m, StateDrawing, 200*time.Millisecond)
}

func TestSessionFSM_EventsAfterCloseAreDropped(t *testing.T) {
	m := NewFSM(discardLogger)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				m.EventStopRequested()
			}
		}()
	}
	m.Close()
	m.Close()
	wg.Wait()
	m.EventImageLoaded()
	if m.Current() != StateEmpty {
		t.Fatalf("closed machine changed state: %v", m.Current())
	}
}
