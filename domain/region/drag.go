package region

import "image"

// Phase is the stage of a rubber-band drag.
type Phase int

const (
	Idle Phase = iota
	Pressed
	Dragging
	Complete
	Canceled
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Pressed:
		return "pressed"
	case Dragging:
		return "dragging"
	case Complete:
		return "complete"
	case Canceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Drag tracks one rubber-band selection in screen pixels. It is not safe for
// concurrent use; the overlay drives it from the UI thread.
type Drag struct {
	phase Phase
	start image.Point
	end   image.Point
}

// Phase returns the current stage.
func (d *Drag) Phase() Phase { return d.phase }

// Press records the anchor corner. Ignored unless idle.
func (d *Drag) Press(p image.Point) {
	if d.phase != Idle {
		return
	}
	d.start, d.end = p, p
	d.phase = Pressed
}

// Move updates the free corner while the button is held.
func (d *Drag) Move(p image.Point) {
	if d.phase != Pressed && d.phase != Dragging {
		return
	}
	d.end = p
	d.phase = Dragging
}

// Release finishes the drag at p and returns the selected rectangle.
// ok is false when no press was recorded.
func (d *Drag) Release(p image.Point) (r image.Rectangle, ok bool) {
	if d.phase != Pressed && d.phase != Dragging {
		return image.Rectangle{}, false
	}
	d.end = p
	d.phase = Complete
	return d.Rect(), true
}

// Cancel abandons the drag from any unfinished stage.
func (d *Drag) Cancel() {
	if d.phase == Complete {
		return
	}
	d.phase = Canceled
}

// Reset returns the drag to Idle.
func (d *Drag) Reset() { *d = Drag{} }

// Rect returns the rectangle spanned so far: the min corner plus the absolute
// width and height, whatever the drag direction.
func (d *Drag) Rect() image.Rectangle {
	return Span(d.start, d.end)
}

// Span returns the rectangle with a and b as opposite corners.
func Span(a, b image.Point) image.Rectangle {
	x, y := min(a.X, b.X), min(a.Y, b.Y)
	w, h := abs(a.X-b.X), abs(a.Y-b.Y)
	return image.Rect(x, y, x+w, y+h)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
