package stroke

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// RenderPlan draws the strokes a pass at precision would drag through, as
// open polylines on a white canvas of plan.Size, using the hex colour lineHex.
// Skipped contours are left out. The first stroke is drawn thicker so the
// starting point stands out.
func RenderPlan(plan Plan, precision int, lineHex string) (image.Image, error) {
	if plan.Size.X <= 0 || plan.Size.Y <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyRegion, plan.Size.X, plan.Size.Y)
	}
	line, err := colorful.Hex(lineHex)
	if err != nil {
		return nil, fmt.Errorf("stroke: preview colour %q: %w", lineHex, err)
	}
	dc := gg.NewContext(plan.Size.X, plan.Size.Y)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetColor(line)
	strokes, _ := plan.Strokes(precision)
	for i, pts := range strokes {
		dc.NewSubPath()
		for j, p := range pts {
			// Pixel centres.
			x, y := float64(p.X)+0.5, float64(p.Y)+0.5
			if j == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		if i == 0 {
			dc.SetLineWidth(2)
		} else {
			dc.SetLineWidth(1)
		}
		dc.Stroke()
	}
	return dc.Image(), nil
}
