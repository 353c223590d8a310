package presenter

import (
	"image"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/soocke/autodraw-go/domain/region"
	"github.com/soocke/autodraw-go/domain/session"
	"github.com/soocke/autodraw-go/domain/stroke"
)

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

type mockNotifier struct {
	warns  []string
	errors []string
}

func (n *mockNotifier) Warn(title, msg string)  { n.warns = append(n.warns, title+": "+msg) }
func (n *mockNotifier) Error(title, msg string) { n.errors = append(n.errors, title+": "+msg) }

// mockSession records events and applies the obvious transitions synchronously.
type mockSession struct {
	mu     sync.Mutex
	state  session.State
	events []string
}

func (s *mockSession) record(name string, next session.State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, name)
	s.state = next
}

func (s *mockSession) Current() session.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *mockSession) has(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if e == name {
			return true
		}
	}
	return false
}

func (s *mockSession) EventImageLoaded()      { s.record("image", session.StateLoaded) }
func (s *mockSession) EventSelectionStarted() { s.record("select", session.StateSelecting) }
func (s *mockSession) EventSelectionFinished(ok bool) {
	if ok {
		s.record("selected", session.StateReady)
		return
	}
	s.record("canceled", session.StateLoaded)
}
func (s *mockSession) EventRegionReset()   { s.record("reset", session.StateLoaded) }
func (s *mockSession) EventDrawStarted()   { s.record("draw", session.StateDrawing) }
func (s *mockSession) EventStopRequested() { s.record("stop", session.StateStopping) }
func (s *mockSession) EventDrawFinished()  { s.record("finished", session.StateReady) }

type mockImageView struct {
	original, lineArt image.Image
	label             string
}

func (v *mockImageView) ShowOriginal(img image.Image) { v.original = img }
func (v *mockImageView) ShowLineArt(img image.Image)  { v.lineArt = img }
func (v *mockImageView) SetImageLabel(text string)    { v.label = text }

type mockRegionView struct {
	hidden, shown int
	label         string
}

func (v *mockRegionView) HideMain()                  { v.hidden++ }
func (v *mockRegionView) ShowMain()                  { v.shown++ }
func (v *mockRegionView) SetRegionLabel(text string) { v.label = text }

type mockOverlay struct {
	ch     chan region.Result
	thumb  image.Image
	opened int
}

func (o *mockOverlay) Open(thumb image.Image) <-chan region.Result {
	o.opened++
	o.thumb = thumb
	o.ch = make(chan region.Result, 1)
	return o.ch
}

type mockDrawView struct {
	lineArt image.Image
	stats   []string
}

func (v *mockDrawView) ShowLineArt(img image.Image) { v.lineArt = img }
func (v *mockDrawView) SetStats(text string)        { v.stats = append(v.stats, text) }

func (v *mockDrawView) lastStats() string {
	if len(v.stats) == 0 {
		return ""
	}
	return v.stats[len(v.stats)-1]
}

type fixedParams stroke.Params

func (p fixedParams) Params() stroke.Params { return stroke.Params(p) }

// drainUntil pumps the worker like the UI tick until cond holds.
func drainUntil(t *testing.T, w *Worker, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		w.Drain()
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timeout waiting for worker completion")
}
