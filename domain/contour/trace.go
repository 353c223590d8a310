//go:build purego

package contour

import "image"

// Neighbour directions, counter-clockwise on screen (y grows downward).
// Decreasing index walks clockwise.
var dirs = [8]image.Point{
	{1, 0},   // E
	{1, -1},  // NE
	{0, -1},  // N
	{-1, -1}, // NW
	{-1, 0},  // W
	{-1, 1},  // SW
	{0, 1},   // S
	{1, 1},   // SE
}

const (
	dirE = 0
	dirW = 4
)

// Find traces every border of the non-zero regions of mask, outer borders and
// hole borders alike, without building a hierarchy. Borders are followed with
// 8-connectivity using Suzuki–Abe border following, so each border is reported
// exactly once and in raster order of its starting pixel.
func Find(mask *image.Gray, approx Approx) []Contour {
	if mask == nil {
		return nil
	}
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	// Label grid with a one-pixel zero frame.
	pw := w + 2
	f := make([]int32, pw*(h+2))
	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, v := range row {
			if v != 0 {
				f[(y+1)*pw+x+1] = 1
			}
		}
	}
	offs := [8]int{}
	for d, p := range dirs {
		offs[d] = p.Y*pw + p.X
	}
	dirOf := func(from, to int) int {
		delta := to - from
		for d, o := range offs {
			if o == delta {
				return d
			}
		}
		return dirE
	}
	toPoint := func(i int) image.Point {
		return image.Pt(i%pw-1, i/pw-1)
	}

	var out []Contour
	var nbd int32 = 1
	for y := 1; y <= h; y++ {
		for x := 1; x <= w; x++ {
			start := y*pw + x
			v := f[start]
			if v == 0 {
				continue
			}
			var from int
			var hole bool
			switch {
			case v == 1 && f[start-1] == 0:
				from = dirW
			case v >= 1 && f[start+1] == 0:
				from = dirE
				hole = true
			default:
				continue
			}
			nbd++

			// Look clockwise around start for the first non-zero neighbour.
			first := -1
			for k := 0; k < 8; k++ {
				d := (from - k + 8) % 8
				if f[start+offs[d]] != 0 {
					first = start + offs[d]
					break
				}
			}
			if first < 0 {
				f[start] = -nbd
				out = append(out, Contour{Points: []image.Point{toPoint(start)}, Hole: hole})
				continue
			}

			pts := make([]image.Point, 0, 16)
			prev, cur := first, start
			for {
				// Counter-clockwise around cur, starting just after prev.
				d0 := dirOf(cur, prev)
				eastZero := false
				next := -1
				for k := 1; k <= 8; k++ {
					d := (d0 + k) % 8
					q := cur + offs[d]
					if f[q] != 0 {
						next = q
						break
					}
					if d == dirE {
						eastZero = true
					}
				}
				if eastZero {
					f[cur] = -nbd
				} else if f[cur] == 1 {
					f[cur] = nbd
				}
				pts = append(pts, toPoint(cur))
				if next == start && cur == first {
					break
				}
				prev, cur = cur, next
			}
			if approx == ApproxSimple {
				pts = compress(pts)
			}
			out = append(out, Contour{Points: pts, Hole: hole})
		}
	}
	return out
}

// compress drops points that continue the previous step in the same direction,
// treating the point list as a closed loop.
func compress(pts []image.Point) []image.Point {
	n := len(pts)
	if n < 3 {
		return pts
	}
	out := make([]image.Point, 0, n/2+1)
	for i := 0; i < n; i++ {
		prev := pts[(i-1+n)%n]
		next := pts[(i+1)%n]
		if pts[i].Sub(prev) != next.Sub(pts[i]) {
			out = append(out, pts[i])
		}
	}
	if len(out) == 0 {
		out = append(out, pts[0])
	}
	return out
}
