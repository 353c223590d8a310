package action

import (
	"errors"
	"image"
	"testing"
	"time"
)

func TestParseVK(t *testing.T) {
	cases := map[string]byte{
		"SPACE": 0x20,
		"space": 0x20,
		"Esc":   0x1B,
		"F1":    0x70,
		"f9":    0x78,
		"F10":   0x79,
		"F12":   0x7B,
		"q":     'Q',
		" Z ":   'Z',
		"F13":   0x20,
		"F1x":   0x20,
		"":      0x20,
		"ENTER": 0x20,
	}
	for in, want := range cases {
		if got := ParseVK(in); got != want {
			t.Fatalf("ParseVK(%q)=%#x want %#x", in, got, want)
		}
	}
}

func TestKeysym(t *testing.T) {
	cases := map[string]string{"SPACE": "space", "esc": "Escape", "F3": "F3", "F11": "F11", "S": "s", "bogus": "space"}
	for in, want := range cases {
		if got := Keysym(in); got != want {
			t.Fatalf("Keysym(%q)=%q want %q", in, got, want)
		}
	}
}

type fakeBackend struct {
	at      image.Point
	moves   []image.Point
	sleeps  []time.Duration
	posErr  error
	pressed bool
}

func (f *fakeBackend) mouse() *Mouse {
	return &Mouse{
		move: func(x, y int) error {
			f.at = image.Pt(x, y)
			f.moves = append(f.moves, f.at)
			return nil
		},
		pos:   func() (image.Point, error) { return f.at, f.posErr },
		down:  func() error { f.pressed = true; return nil },
		up:    func() error { f.pressed = false; return nil },
		sleep: func(d time.Duration) { f.sleeps = append(f.sleeps, d) },
		step:  10 * time.Millisecond,
	}
}

func TestMouse_ShortMoveJumps(t *testing.T) {
	f := &fakeBackend{}
	m := f.mouse()
	if err := m.MoveTo(image.Pt(30, 40), 15*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if len(f.moves) != 1 || f.moves[0] != image.Pt(30, 40) {
		t.Fatalf("expected single jump, got %v", f.moves)
	}
	if len(f.sleeps) != 1 || f.sleeps[0] != 15*time.Millisecond {
		t.Fatalf("expected one pause of the full duration, got %v", f.sleeps)
	}
	f.sleeps = nil
	if err := m.MoveTo(image.Pt(1, 1), 0); err != nil {
		t.Fatal(err)
	}
	if len(f.sleeps) != 0 {
		t.Fatalf("zero duration should not sleep")
	}
}

func TestMouse_GlideIsLinearAndEndsOnTarget(t *testing.T) {
	f := &fakeBackend{at: image.Pt(0, 100)}
	m := f.mouse()
	if err := m.MoveTo(image.Pt(100, 0), 100*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if len(f.moves) != 10 {
		t.Fatalf("expected 10 steps, got %d", len(f.moves))
	}
	if f.moves[4] != image.Pt(50, 50) {
		t.Fatalf("midpoint %v", f.moves[4])
	}
	if f.moves[9] != image.Pt(100, 0) {
		t.Fatalf("glide ended at %v", f.moves[9])
	}
	for i := 1; i < len(f.moves); i++ {
		if f.moves[i].X < f.moves[i-1].X || f.moves[i].Y > f.moves[i-1].Y {
			t.Fatalf("glide not monotonic at %d: %v", i, f.moves)
		}
	}
}

func TestMouse_GlideWithoutPositionJumps(t *testing.T) {
	f := &fakeBackend{posErr: errors.New("no cursor")}
	m := f.mouse()
	if err := m.MoveTo(image.Pt(9, 9), 50*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	for _, p := range f.moves {
		if p != image.Pt(9, 9) {
			t.Fatalf("expected to hold the target, got %v", f.moves)
		}
	}
}

func TestMouse_PressRelease(t *testing.T) {
	f := &fakeBackend{}
	m := f.mouse()
	_ = m.Press()
	if !f.pressed {
		t.Fatalf("press not forwarded")
	}
	_ = m.Release()
	if f.pressed {
		t.Fatalf("release not forwarded")
	}
}
