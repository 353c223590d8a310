package contour

import (
	"image"
	"math"

	"github.com/fogleman/contourmap"
)

// FindIsolines extracts closed marching-squares iso-lines at the mid level of
// mask. Points are rounded to the nearest pixel and consecutive duplicates are
// removed. A blank mask yields no contours.
func FindIsolines(mask *image.Gray) []Contour {
	if mask == nil || mask.Bounds().Empty() {
		return nil
	}
	m := contourmap.FromImage(mask).Closed()
	if m.Max <= m.Min {
		return nil
	}
	z := m.Min + (m.Max-m.Min)/2
	lines := m.Contours(z)
	out := make([]Contour, 0, len(lines))
	for _, line := range lines {
		pts := make([]image.Point, 0, len(line))
		for _, p := range line {
			// Closed() pads the grid by one cell on each side.
			q := image.Pt(int(math.Round(p.X))-1, int(math.Round(p.Y))-1)
			if n := len(pts); n > 0 && pts[n-1] == q {
				continue
			}
			pts = append(pts, q)
		}
		if n := len(pts); n > 1 && pts[0] == pts[n-1] {
			pts = pts[:n-1]
		}
		if len(pts) == 0 {
			continue
		}
		out = append(out, Contour{Points: pts})
	}
	return out
}
