package images

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Tint renders a 0/255 mask as coloured lines on white. lineHex is a
// "#rrggbb" colour; an unparsable value falls back to black.
func Tint(mask *image.Gray, lineHex string) *image.NRGBA {
	if mask == nil {
		return nil
	}
	ink := color.NRGBA{A: 0xFF}
	if c, err := colorful.Hex(lineHex); err == nil {
		r, g, b := c.Clamped().RGB255()
		ink = color.NRGBA{R: r, G: g, B: b, A: 0xFF}
	}
	paper := color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	bnd := mask.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bnd.Dx(), bnd.Dy()))
	for y := 0; y < bnd.Dy(); y++ {
		for x := 0; x < bnd.Dx(); x++ {
			c := paper
			if mask.Pix[y*mask.Stride+x] != 0 {
				c = ink
			}
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}
