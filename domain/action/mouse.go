package action

import (
	"image"
	"time"
)

// Mouse drives the OS pointer for the stroke executor: linear glides between
// points, left-button press and release.
type Mouse struct {
	move  func(x, y int) error
	pos   func() (image.Point, error)
	down  func() error
	up    func() error
	sleep func(time.Duration)
	step  time.Duration
}

// NewMouse returns a Mouse bound to the platform backend. Glides advance in
// 10ms steps.
func NewMouse() *Mouse {
	return &Mouse{
		move:  moveCursor,
		pos:   CursorPos,
		down:  leftDown,
		up:    leftUp,
		sleep: time.Sleep,
		step:  10 * time.Millisecond,
	}
}

// MoveTo glides from the current position to p over roughly d. Durations
// shorter than two steps jump straight to p and then wait out d.
func (m *Mouse) MoveTo(p image.Point, d time.Duration) error {
	n := int(d / m.step)
	if n < 2 {
		if err := m.move(p.X, p.Y); err != nil {
			return err
		}
		if d > 0 {
			m.sleep(d)
		}
		return nil
	}
	from, err := m.pos()
	if err != nil {
		from = p
	}
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		x := from.X + int(float64(p.X-from.X)*t+0.5*sign(p.X-from.X))
		y := from.Y + int(float64(p.Y-from.Y)*t+0.5*sign(p.Y-from.Y))
		if i == n {
			x, y = p.X, p.Y
		}
		if err := m.move(x, y); err != nil {
			return err
		}
		m.sleep(m.step)
	}
	return nil
}

// Press holds the left button down.
func (m *Mouse) Press() error { return m.down() }

// Release lets the left button go.
func (m *Mouse) Release() error { return m.up() }

func sign(v int) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
