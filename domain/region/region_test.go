package region

import (
	"image"
	"testing"
)

func TestDrag_RectIndependentOfDirection(t *testing.T) {
	a, b := image.Pt(120, 80), image.Pt(20, 300)
	cases := [][2]image.Point{{a, b}, {b, a}, {image.Pt(20, 80), image.Pt(120, 300)}, {image.Pt(120, 300), image.Pt(20, 80)}}
	want := image.Rect(20, 80, 120, 300)
	for i, c := range cases {
		var d Drag
		d.Press(c[0])
		d.Move(image.Pt(500, 500))
		r, ok := d.Release(c[1])
		if !ok {
			t.Fatalf("case %d: release not accepted", i)
		}
		if r != want {
			t.Fatalf("case %d: got %v want %v", i, r, want)
		}
		if r.Dx() < 0 || r.Dy() < 0 {
			t.Fatalf("case %d: negative size %v", i, r)
		}
	}
}

func TestDrag_Phases(t *testing.T) {
	var d Drag
	if _, ok := d.Release(image.Pt(1, 1)); ok {
		t.Fatalf("release without press should be rejected")
	}
	d.Move(image.Pt(3, 3))
	if d.Phase() != Idle {
		t.Fatalf("move before press changed phase to %v", d.Phase())
	}
	d.Press(image.Pt(10, 10))
	if d.Phase() != Pressed {
		t.Fatalf("expected pressed, got %v", d.Phase())
	}
	d.Move(image.Pt(5, 20))
	if d.Phase() != Dragging || d.Rect() != image.Rect(5, 10, 10, 20) {
		t.Fatalf("unexpected %v %v", d.Phase(), d.Rect())
	}
	d.Cancel()
	if d.Phase() != Canceled {
		t.Fatalf("expected canceled, got %v", d.Phase())
	}
	if _, ok := d.Release(image.Pt(0, 0)); ok {
		t.Fatalf("release after cancel should be rejected")
	}
	d.Reset()
	if d.Phase() != Idle {
		t.Fatalf("reset should return to idle")
	}
}

func TestDrag_ClickWithoutMoveIsEmpty(t *testing.T) {
	var d Drag
	d.Press(image.Pt(7, 7))
	r, ok := d.Release(image.Pt(7, 7))
	if !ok || !r.Empty() {
		t.Fatalf("expected empty rect, got %v ok=%v", r, ok)
	}
}

func TestNormalizeRoundTrip(t *testing.T) {
	screens := []image.Point{{1920, 1080}, {2560, 1440}, {1366, 768}, {3840, 2160}, {1, 1}}
	rects := []image.Rectangle{
		image.Rect(0, 0, 1, 1),
		image.Rect(17, 33, 401, 299),
		image.Rect(100, 200, 101, 767),
		image.Rect(0, 0, 1366, 768),
		image.Rect(1365, 767, 1366, 768),
	}
	for _, s := range screens {
		for _, r := range rects {
			r = r.Intersect(image.Rect(0, 0, s.X, s.Y))
			a := Normalize(r, s)
			if a.X < 0 || a.Y < 0 || a.X+a.W > 1.0000001 || a.Y+a.H > 1.0000001 {
				t.Fatalf("area out of range: %v on %v", a, s)
			}
			if got := Denormalize(a, s); got != r {
				t.Fatalf("round trip on %v: %v -> %v -> %v", s, r, a, got)
			}
		}
	}
}

func TestNormalize_ZeroScreen(t *testing.T) {
	if a := Normalize(image.Rect(0, 0, 10, 10), image.Point{}); !a.Empty() {
		t.Fatalf("expected empty area, got %v", a)
	}
}
