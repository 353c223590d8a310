package contour

import (
	"image"
	"math"
	"sort"
)

// Approx selects how many boundary points a traced border keeps.
type Approx int

const (
	// ApproxNone keeps every boundary pixel.
	ApproxNone Approx = iota
	// ApproxSimple compresses horizontal, vertical and diagonal runs to their endpoints.
	ApproxSimple
)

func (a Approx) String() string {
	switch a {
	case ApproxNone:
		return "none"
	case ApproxSimple:
		return "simple"
	default:
		return "unknown"
	}
}

// Contour is one connected edge curve in mask pixel coordinates.
type Contour struct {
	Points []image.Point
	Hole   bool // traced along the inside of a background hole

	// Set by the tracer; literals fall back to computing from Points.
	measured bool
	area     float64
	box      image.Rectangle
}

// Len returns the number of points.
func (c Contour) Len() int { return len(c.Points) }

// Area returns the absolute shoelace area of the closed polygon through Points.
// Degenerate contours (fewer than three points) have zero area.
func (c Contour) Area() float64 {
	if c.measured {
		return c.area
	}
	if len(c.Points) < 3 {
		return 0
	}
	return math.Abs(float64(signedArea(c.Points))) / 2
}

// Bounds returns the smallest rectangle containing every point, with Max exclusive.
func (c Contour) Bounds() image.Rectangle {
	if c.measured {
		return c.box
	}
	if len(c.Points) == 0 {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: c.Points[0], Max: c.Points[0]}
	for _, p := range c.Points[1:] {
		if p.X < r.Min.X {
			r.Min.X = p.X
		}
		if p.Y < r.Min.Y {
			r.Min.Y = p.Y
		}
		if p.X > r.Max.X {
			r.Max.X = p.X
		}
		if p.Y > r.Max.Y {
			r.Max.Y = p.Y
		}
	}
	r.Max = r.Max.Add(image.Pt(1, 1))
	return r
}

// Decimate returns every stride-th point starting with the first.
// A stride below one is treated as one. The receiver is not modified.
func (c Contour) Decimate(stride int) []image.Point {
	if stride <= 1 {
		out := make([]image.Point, len(c.Points))
		copy(out, c.Points)
		return out
	}
	out := make([]image.Point, 0, len(c.Points)/stride+1)
	for i := 0; i < len(c.Points); i += stride {
		out = append(out, c.Points[i])
	}
	return out
}

// signedArea is twice the oriented shoelace area. Outer borders come out
// negative and hole borders positive in image coordinates.
func signedArea(pts []image.Point) int {
	n := len(pts)
	var sum int
	for i := 0; i < n; i++ {
		p, q := pts[i], pts[(i+1)%n]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}

// rasterOrder sorts contours by the row, then column, of their first point.
func rasterOrder(cs []Contour) {
	sort.SliceStable(cs, func(i, j int) bool {
		a, b := cs[i].Points[0], cs[j].Points[0]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
}

// Translate returns a copy of the points shifted by off.
func Translate(pts []image.Point, off image.Point) []image.Point {
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Add(off)
	}
	return out
}
