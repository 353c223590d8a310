package stroke

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sort"
	"time"

	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"

	"github.com/soocke/autodraw-go/config"
	"github.com/soocke/autodraw-go/domain/contour"
)

var (
	// ErrNoMask reports a missing line-art mask.
	ErrNoMask = errors.New("stroke: no line-art mask")
	// ErrEmptyRegion reports a target rectangle with zero width or height.
	ErrEmptyRegion = errors.New("stroke: empty target region")
)

// Plan is an ordered list of contours in target-rectangle pixel coordinates.
type Plan struct {
	Contours []contour.Contour
	Size     image.Point
}

// Points returns the total number of contour points in the plan.
func (p Plan) Points() int {
	n := 0
	for _, c := range p.Contours {
		n += c.Len()
	}
	return n
}

// Strokes returns the polylines a pass drags through at precision, in draw
// order, and how many contours are skipped.
func (p Plan) Strokes(precision int) (strokes [][]image.Point, skipped int) {
	for _, c := range p.Contours {
		pts, ok := Path(c, precision)
		if !ok {
			skipped++
			continue
		}
		strokes = append(strokes, pts)
	}
	return strokes, skipped
}

// Path returns the points dragged through for c at precision. ok is false
// when fewer than two points remain; such a contour is never drawn.
func Path(c contour.Contour, precision int) (pts []image.Point, ok bool) {
	pts = c.Decimate(config.ClampPrecision(precision))
	return pts, len(pts) >= 2
}

// Planner turns a line-art mask into an ordered draw sequence.
type Planner struct {
	trace   string
	approx  contour.Approx
	minArea float64
	order   string
	logger  *slog.Logger
}

// NewPlanner builds a planner from the planning fields of cfg.
func NewPlanner(cfg *config.Config, logger *slog.Logger) *Planner {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	approx := contour.ApproxSimple
	if cfg.Approx == config.ApproxNone {
		approx = contour.ApproxNone
	}
	return &Planner{
		trace:   cfg.Trace,
		approx:  approx,
		minArea: cfg.MinContourArea,
		order:   cfg.Order,
		logger:  logger,
	}
}

// Plan resizes mask to size, extracts contours, drops the ones below the
// minimum area and orders the rest.
func (p *Planner) Plan(mask *image.Gray, size image.Point) (Plan, error) {
	if mask == nil || mask.Bounds().Empty() {
		return Plan{}, ErrNoMask
	}
	if size.X <= 0 || size.Y <= 0 {
		return Plan{}, fmt.Errorf("%w: %dx%d", ErrEmptyRegion, size.X, size.Y)
	}
	start := time.Now()
	fitted := Fit(mask, size)
	var found []contour.Contour
	if p.trace == config.TraceIsoline {
		found = contour.FindIsolines(fitted)
	} else {
		found = contour.Find(fitted, p.approx)
	}
	kept := Filter(found, p.minArea)
	Order(kept, p.order)
	if p.logger != nil {
		p.logger.Debug("stroke plan built",
			"size", size,
			"trace", p.trace,
			"found", len(found),
			"kept", len(kept),
			"elapsed", time.Since(start),
		)
	}
	return Plan{Contours: kept, Size: size}, nil
}

// Fit scales mask to size and re-binarises it so any non-zero sample is foreground.
func Fit(mask *image.Gray, size image.Point) *image.Gray {
	b := mask.Bounds()
	if b.Dx() == size.X && b.Dy() == size.Y && b.Min == (image.Point{}) {
		return mask
	}
	return segment.Threshold(imaging.Resize(mask, size.X, size.Y, imaging.Linear), 1)
}

// Filter returns the contours whose area is at least minArea.
// A threshold of zero or less keeps everything.
func Filter(cs []contour.Contour, minArea float64) []contour.Contour {
	if minArea <= 0 {
		out := make([]contour.Contour, len(cs))
		copy(out, cs)
		return out
	}
	out := make([]contour.Contour, 0, len(cs))
	for _, c := range cs {
		if c.Area() >= minArea {
			out = append(out, c)
		}
	}
	return out
}

// Order sorts cs in place: config.OrderTopDown sorts by bounding box top then
// left, anything else puts the largest area first. The sort is stable.
func Order(cs []contour.Contour, order string) {
	if order == config.OrderTopDown {
		sort.SliceStable(cs, func(i, j int) bool {
			a, b := cs[i].Bounds().Min, cs[j].Bounds().Min
			if a.Y != b.Y {
				return a.Y < b.Y
			}
			return a.X < b.X
		})
		return
	}
	type keyed struct {
		c    contour.Contour
		area float64
	}
	ks := make([]keyed, len(cs))
	for i, c := range cs {
		ks[i] = keyed{c: c, area: c.Area()}
	}
	sort.SliceStable(ks, func(i, j int) bool { return ks[i].area > ks[j].area })
	for i := range ks {
		cs[i] = ks[i].c
	}
}
