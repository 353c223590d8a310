package contour

import (
	"image"
	"testing"
)

func maskWith(w, h int, on ...image.Rectangle) *image.Gray {
	m := image.NewGray(image.Rect(0, 0, w, h))
	for _, r := range on {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				m.Pix[y*m.Stride+x] = 0xFF
			}
		}
	}
	return m
}

func TestFind_EmptyMask(t *testing.T) {
	if got := Find(maskWith(100, 100), ApproxSimple); len(got) != 0 {
		t.Fatalf("expected no contours, got %d", len(got))
	}
	if got := Find(nil, ApproxNone); got != nil {
		t.Fatalf("nil mask should give nil")
	}
}

func TestFind_FilledSquare(t *testing.T) {
	sq := image.Rect(10, 15, 30, 35)
	for _, mode := range []Approx{ApproxNone, ApproxSimple} {
		got := Find(maskWith(50, 50, sq), mode)
		if len(got) != 1 {
			t.Fatalf("%v: expected 1 contour, got %d", mode, len(got))
		}
		c := got[0]
		if c.Hole {
			t.Fatalf("%v: outer border flagged as hole", mode)
		}
		if c.Bounds() != sq {
			t.Fatalf("%v: bounds %v want %v", mode, c.Bounds(), sq)
		}
		if a := c.Area(); a != 361 {
			t.Fatalf("%v: area %v want 361", mode, a)
		}
	}
	none := Find(maskWith(50, 50, sq), ApproxNone)[0]
	simple := Find(maskWith(50, 50, sq), ApproxSimple)[0]
	if none.Len() != 76 {
		t.Fatalf("expected every boundary pixel (76), got %d", none.Len())
	}
	if simple.Len() != 4 {
		t.Fatalf("expected 4 corners, got %d: %v", simple.Len(), simple.Points)
	}
}

func TestFind_RingHasOuterAndHoleBorders(t *testing.T) {
	m := maskWith(20, 20, image.Rect(2, 2, 12, 12))
	for y := 5; y < 9; y++ {
		for x := 5; x < 9; x++ {
			m.Pix[y*m.Stride+x] = 0
		}
	}
	got := Find(m, ApproxSimple)
	if len(got) != 2 {
		t.Fatalf("expected outer + hole, got %d", len(got))
	}
	if got[0].Hole || !got[1].Hole {
		t.Fatalf("unexpected hole flags: %v %v", got[0].Hole, got[1].Hole)
	}
	if got[1].Bounds() != image.Rect(4, 4, 10, 10) {
		t.Fatalf("hole border bounds %v", got[1].Bounds())
	}
}

func TestFind_SinglePixelAndLine(t *testing.T) {
	got := Find(maskWith(10, 10, image.Rect(3, 3, 4, 4), image.Rect(1, 7, 6, 8)), ApproxSimple)
	if len(got) != 2 {
		t.Fatalf("expected 2 contours, got %d", len(got))
	}
	if got[0].Len() != 1 || got[0].Points[0] != image.Pt(3, 3) {
		t.Fatalf("single pixel contour: %v", got[0].Points)
	}
	line := got[1]
	if line.Len() != 2 || line.Points[0] != image.Pt(1, 7) || line.Points[1] != image.Pt(5, 7) {
		t.Fatalf("line endpoints: %v", line.Points)
	}
	if line.Area() != 0 {
		t.Fatalf("line area should be 0")
	}
}

func TestFind_SeparateComponentsInRasterOrder(t *testing.T) {
	got := Find(maskWith(40, 40, image.Rect(20, 2, 25, 7), image.Rect(2, 10, 8, 16)), ApproxSimple)
	if len(got) != 2 {
		t.Fatalf("expected 2 contours, got %d", len(got))
	}
	if got[0].Bounds().Min != image.Pt(20, 2) || got[1].Bounds().Min != image.Pt(2, 10) {
		t.Fatalf("unexpected order %v %v", got[0].Bounds(), got[1].Bounds())
	}
}

func TestDecimate(t *testing.T) {
	c := Contour{Points: []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}}
	if got := c.Decimate(2); len(got) != 3 || got[2] != image.Pt(4, 0) {
		t.Fatalf("stride 2: %v", got)
	}
	if got := c.Decimate(10); len(got) != 1 {
		t.Fatalf("stride 10: %v", got)
	}
	if got := c.Decimate(0); len(got) != 5 {
		t.Fatalf("stride 0 should keep all points: %v", got)
	}
}

func TestFindIsolines_Square(t *testing.T) {
	if got := FindIsolines(maskWith(20, 20)); len(got) != 0 {
		t.Fatalf("blank mask should yield nothing, got %d", len(got))
	}
	got := FindIsolines(maskWith(30, 30, image.Rect(5, 5, 15, 15)))
	if len(got) != 1 {
		t.Fatalf("expected one iso-line, got %d", len(got))
	}
	b := got[0].Bounds()
	if b.Min.X < 3 || b.Min.Y < 3 || b.Max.X > 17 || b.Max.Y > 17 {
		t.Fatalf("iso-line strays from the square: %v", b)
	}
}
