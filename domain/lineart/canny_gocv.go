//go:build !purego

package lineart

import (
	"image"

	"gocv.io/x/gocv"
)

// Canny runs OpenCV's Canny detector on the first channel of a grayscale
// image. The gradient magnitude is the L1 norm on 0..255 intensities, so
// thresholds use the same scale. Pixels above high are strong edges; pixels
// above low survive only when connected to a strong edge.
// The result is a 0/255 mask anchored at (0,0).
func Canny(src image.Image, low, high float64) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(image.Rect(0, 0, w, h))
	if w == 0 || h == 0 {
		return out
	}
	in, err := gocv.NewMatFromBytes(h, w, gocv.MatTypeCV8UC1, firstChannel(src))
	if err != nil {
		return out
	}
	defer in.Close()
	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(in, &edges, float32(low), float32(high))
	copy(out.Pix, edges.ToBytes())
	return out
}

// firstChannel packs the first channel of src into a w*h byte buffer.
func firstChannel(src image.Image) []byte {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	buf := make([]byte, w*h)
	switch s := src.(type) {
	case *image.Gray:
		for y := 0; y < h; y++ {
			copy(buf[y*w:(y+1)*w], s.Pix[y*s.Stride:y*s.Stride+w])
		}
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			row := s.Pix[y*s.Stride : y*s.Stride+w*4]
			for x := 0; x < w; x++ {
				buf[y*w+x] = row[x*4]
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, _, _, _ := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
				buf[y*w+x] = byte(r >> 8)
			}
		}
	}
	return buf
}
