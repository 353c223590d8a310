package stroke

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/soocke/autodraw-go/config"
	"github.com/soocke/autodraw-go/domain/contour"
)

// Pointer is the OS pointer as seen by the executor.
type Pointer interface {
	// MoveTo glides to p in screen pixels, taking roughly d.
	MoveTo(p image.Point, d time.Duration) error
	Press() error
	Release() error
}

// Params are the user-adjustable draw parameters, read once per pass.
type Params struct {
	Speed     float64 // duration divisor, 0.1..10
	Precision int     // point stride, 1..10
}

// ParamsFromConfig returns the configured initial parameters.
func ParamsFromConfig(cfg *config.Config) Params {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return Params{Speed: cfg.Speed, Precision: cfg.Precision}
}

// ParseParams reads speed and precision as typed by the user. Unparsable
// input keeps the fallback value; parsed values are clamped to the allowed
// ranges.
func ParseParams(speed, precision string, fallback Params) Params {
	p := fallback
	if f, err := strconv.ParseFloat(strings.TrimSpace(speed), 64); err == nil {
		p.Speed = config.ClampSpeed(f)
	}
	if i, err := strconv.Atoi(strings.TrimSpace(precision)); err == nil {
		p.Precision = config.ClampPrecision(i)
	}
	return p
}

// Stats summarises one draw pass.
type Stats struct {
	Drawn   int // contours stroked to completion
	Skipped int // contours with fewer than two points after decimation
	Points  int // pointer moves issued while the button was down, first point included
	Stopped bool
	Elapsed time.Duration
}

// Executor replays a Plan through a Pointer.
type Executor struct {
	ptr    Pointer
	state  *RunState
	settle time.Duration
	step   time.Duration
	logger *slog.Logger
}

// NewExecutor wires an executor. Base durations come from cfg and are divided
// by the speed of each pass.
func NewExecutor(ptr Pointer, state *RunState, cfg *config.Config, logger *slog.Logger) *Executor {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if state == nil {
		state = &RunState{}
	}
	return &Executor{
		ptr:    ptr,
		state:  state,
		settle: time.Duration(cfg.SettleMs) * time.Millisecond,
		step:   time.Duration(cfg.StepMs) * time.Millisecond,
		logger: logger,
	}
}

// Run draws plan with its top-left corner at origin. The pointer is first moved
// to origin and released. The stop flag is checked before every contour and
// every point; a stop releases the pointer and returns without error. The
// drawing flag is cleared on every return path.
func (e *Executor) Run(plan Plan, origin image.Point, params Params) (stats Stats, err error) {
	start := time.Now()
	defer func() {
		stats.Elapsed = time.Since(start)
		e.state.End()
	}()
	if e.ptr == nil {
		return stats, errors.New("stroke: no pointer driver")
	}
	speed := config.ClampSpeed(params.Speed)
	settle := scale(e.settle, speed)
	step := scale(e.step, speed)

	if err := e.ptr.MoveTo(origin, 0); err != nil {
		return stats, fmt.Errorf("move to origin: %w", err)
	}
	if err := e.ptr.Release(); err != nil {
		return stats, fmt.Errorf("release: %w", err)
	}

	for i, c := range plan.Contours {
		if e.state.StopRequested() {
			stats.Stopped = true
			break
		}
		pts, ok := Path(c, params.Precision)
		if !ok {
			stats.Skipped++
			continue
		}
		stopped, moved, err := e.stroke(contour.Translate(pts, origin), settle, step)
		stats.Points += moved
		if err != nil {
			return stats, fmt.Errorf("contour %d: %w", i, err)
		}
		if stopped {
			stats.Stopped = true
			break
		}
		stats.Drawn++
	}
	if e.logger != nil {
		e.logger.Debug("draw pass finished",
			"drawn", stats.Drawn,
			"skipped", stats.Skipped,
			"points", stats.Points,
			"stopped", stats.Stopped,
		)
	}
	return stats, nil
}

// stroke drags through pts, in screen pixels, once. The button is always
// released after a press.
func (e *Executor) stroke(pts []image.Point, settle, step time.Duration) (stopped bool, moved int, err error) {
	if err := e.ptr.MoveTo(pts[0], settle); err != nil {
		return false, 0, err
	}
	if err := e.ptr.Press(); err != nil {
		return false, 0, err
	}
	moved = 1
	defer func() {
		if rerr := e.ptr.Release(); rerr != nil && err == nil {
			err = rerr
		}
	}()
	for _, p := range pts[1:] {
		if e.state.StopRequested() {
			return true, moved, nil
		}
		if err := e.ptr.MoveTo(p, step); err != nil {
			return false, moved, err
		}
		moved++
	}
	return false, moved, nil
}

func scale(d time.Duration, speed float64) time.Duration {
	return time.Duration(float64(d) / speed)
}
