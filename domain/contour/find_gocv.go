//go:build !purego

package contour

import (
	"image"

	"gocv.io/x/gocv"
)

// Find traces every border of the non-zero regions of mask, outer borders and
// hole borders alike, without building a hierarchy. OpenCV follows borders
// with 8-connectivity; the result is in raster order of each starting pixel.
func Find(mask *image.Gray, approx Approx) []Contour {
	if mask == nil {
		return nil
	}
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	src, err := gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC1, packed(mask))
	if err != nil {
		return nil
	}
	defer src.Close()

	method := gocv.ChainApproxSimple
	if approx == ApproxNone {
		method = gocv.ChainApproxNone
	}
	found := gocv.FindContours(src, gocv.RetrievalList, method)
	defer found.Close()

	out := make([]Contour, 0, found.Size())
	for i := 0; i < found.Size(); i++ {
		pv := found.At(i)
		pts := pv.ToPoints()
		if len(pts) == 0 {
			continue
		}
		out = append(out, Contour{
			Points:   pts,
			Hole:     signedArea(pts) > 0,
			measured: true,
			area:     gocv.ContourArea(pv),
			box:      gocv.BoundingRect(pv),
		})
	}
	rasterOrder(out)
	return out
}

// packed copies mask rows into one contiguous 0/255 buffer.
func packed(mask *image.Gray) []byte {
	b := mask.Bounds()
	w, h := b.Dx(), b.Dy()
	buf := make([]byte, w*h)
	for y := 0; y < h; y++ {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x, v := range row {
			if v != 0 {
				buf[y*w+x] = 0xFF
			}
		}
	}
	return buf
}
