package region

import (
	"fmt"
	"image"
	"math"
)

// Area is a rectangle expressed as fractions of the screen size.
type Area struct {
	X, Y, W, H float64
}

func (a Area) String() string {
	return fmt.Sprintf("(%.3f,%.3f %.3fx%.3f)", a.X, a.Y, a.W, a.H)
}

// Empty reports whether the area has no extent.
func (a Area) Empty() bool { return a.W <= 0 || a.H <= 0 }

// Result is what a selection session hands back to its caller.
type Result struct {
	Area Area
	Rect image.Rectangle // screen pixels at the time of selection
	OK   bool            // false when the user canceled
}

// Normalize expresses r as fractions of screen. A zero screen yields a zero Area.
func Normalize(r image.Rectangle, screen image.Point) Area {
	if screen.X <= 0 || screen.Y <= 0 {
		return Area{}
	}
	sw, sh := float64(screen.X), float64(screen.Y)
	return Area{
		X: float64(r.Min.X) / sw,
		Y: float64(r.Min.Y) / sh,
		W: float64(r.Dx()) / sw,
		H: float64(r.Dy()) / sh,
	}
}

// Denormalize maps a back to screen pixels, rounding each component to the
// nearest pixel so Denormalize(Normalize(r, s), s) == r.
func Denormalize(a Area, screen image.Point) image.Rectangle {
	sw, sh := float64(screen.X), float64(screen.Y)
	x := int(math.Round(a.X * sw))
	y := int(math.Round(a.Y * sh))
	w := int(math.Round(a.W * sw))
	h := int(math.Round(a.H * sh))
	return image.Rect(x, y, x+w, y+h)
}
