package presenter

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/soocke/autodraw-go/domain/session"
	"github.com/soocke/autodraw-go/domain/stroke"
	"github.com/soocke/autodraw-go/ui/model"
)

// PlanBuilder turns a mask into an ordered stroke plan for a target size.
type PlanBuilder interface {
	Plan(mask *image.Gray, size image.Point) (stroke.Plan, error)
}

// PlanRunner replays a plan on screen.
type PlanRunner interface {
	Run(plan stroke.Plan, origin image.Point, params stroke.Params) (stroke.Stats, error)
}

// ParamsSource supplies the draw parameters at the start of a pass.
type ParamsSource interface {
	Params() stroke.Params
}

// DrawSession exposes the session operations used by drawing.
type DrawSession interface {
	Current() session.State
	EventDrawStarted()
	EventStopRequested()
	EventDrawFinished()
}

// DrawView shows previews and pass results.
type DrawView interface {
	ShowLineArt(img image.Image)
	SetStats(text string)
}

// DrawPresenter plans and runs draw passes on the shared worker.
type DrawPresenter struct {
	images   *model.ImageModel
	region   *model.RegionModel
	fsm      DrawSession
	view     DrawView
	notify   Notifier
	params   ParamsSource
	planner  PlanBuilder
	executor PlanRunner
	state    *stroke.RunState
	worker   *Worker
	logger   *slog.Logger

	// Screen returns the current screen size.
	Screen func() (image.Point, error)
	// PreviewColor is the ink used by Preview.
	PreviewColor string
}

// DrawDeps groups the collaborators of a DrawPresenter.
type DrawDeps struct {
	Images   *model.ImageModel
	Region   *model.RegionModel
	FSM      DrawSession
	View     DrawView
	Notify   Notifier
	Params   ParamsSource
	Planner  PlanBuilder
	Executor PlanRunner
	State    *stroke.RunState
	Worker   *Worker
	Screen   func() (image.Point, error)
	Logger   *slog.Logger
}

func NewDrawPresenter(d DrawDeps) *DrawPresenter {
	state := d.State
	if state == nil {
		state = &stroke.RunState{}
	}
	return &DrawPresenter{
		images:       d.Images,
		region:       d.Region,
		fsm:          d.FSM,
		view:         d.View,
		notify:       d.Notify,
		params:       d.Params,
		planner:      d.Planner,
		executor:     d.Executor,
		state:        state,
		worker:       d.Worker,
		logger:       d.Logger,
		Screen:       d.Screen,
		PreviewColor: "#d62828",
	}
}

// Start checks preconditions and launches a draw pass. Failed preconditions
// are shown as warnings and returned.
func (p *DrawPresenter) Start() error {
	const title = "Start Drawing"
	if p.state.Drawing() || p.worker.Busy() || p.fsm.Current() == session.StateSelecting {
		return p.warn(title, ErrBusy)
	}
	mask := p.images.Mask()
	if mask == nil {
		return p.warn(title, ErrNoImage)
	}
	if _, ok := p.region.Area(); !ok {
		return p.warn(title, ErrNoRegion)
	}
	screen, err := p.Screen()
	if err != nil {
		p.fail(title, fmt.Errorf("read screen size: %w", err))
		return err
	}
	rect, ok := p.region.Rect(screen)
	if !ok {
		return p.warn(title, ErrNoRegion)
	}
	params := p.drawParams()
	if !p.state.TryBegin() {
		return p.warn(title, ErrBusy)
	}
	err = p.worker.Go("draw", func() func() {
		plan, err := p.planner.Plan(mask, rect.Size())
		if err != nil {
			p.state.End()
			return func() { p.finish(stroke.Stats{}, 0, err) }
		}
		stats, err := p.executor.Run(plan, rect.Min, params)
		return func() { p.finish(stats, len(plan.Contours), err) }
	}, func(err error) {
		p.state.End()
		p.finish(stroke.Stats{}, 0, err)
	})
	if err != nil {
		p.state.End()
		return p.warn(title, err)
	}
	p.fsm.EventDrawStarted()
	p.view.SetStats("Drawing... press the stop key to abort")
	if p.logger != nil {
		p.logger.Info("draw pass started", "rect", rect.String(), "speed", params.Speed, "precision", params.Precision)
	}
	return nil
}

// Stop requests a running pass to unwind. Safe to call from any goroutine.
func (p *DrawPresenter) Stop() {
	if p == nil || !p.state.Drawing() || p.state.StopRequested() {
		return
	}
	p.state.RequestStop()
	p.fsm.EventStopRequested()
	if p.logger != nil {
		p.logger.Info("stop requested")
	}
}

// Preview plans strokes for the selected region, or the mask's own size when
// no region is set, and shows them in the line-art pane.
func (p *DrawPresenter) Preview() error {
	const title = "Preview Strokes"
	if p.state.Drawing() || p.worker.Busy() {
		return p.warn(title, ErrBusy)
	}
	mask := p.images.Mask()
	if mask == nil {
		return p.warn(title, ErrNoImage)
	}
	size := mask.Bounds().Size()
	if _, ok := p.region.Area(); ok && p.Screen != nil {
		if screen, err := p.Screen(); err == nil {
			if r, ok := p.region.Rect(screen); ok {
				size = r.Size()
			}
		}
	}
	colour := p.PreviewColor
	precision := p.drawParams().Precision
	err := p.worker.Go("preview", func() func() {
		plan, err := p.planner.Plan(mask, size)
		if err != nil {
			return func() { p.fail(title, err) }
		}
		img, err := stroke.RenderPlan(plan, precision, colour)
		if err != nil {
			return func() { p.fail(title, err) }
		}
		strokes, skipped := plan.Strokes(precision)
		points := 0
		for _, s := range strokes {
			points += len(s)
		}
		return func() {
			p.view.ShowLineArt(img)
			p.view.SetStats(fmt.Sprintf("Planned %d strokes, %d skipped, %d points at %dx%d", len(strokes), skipped, points, size.X, size.Y))
		}
	}, func(err error) { p.fail(title, err) })
	if err != nil {
		return p.warn(title, err)
	}
	return nil
}

func (p *DrawPresenter) drawParams() stroke.Params {
	if p.params == nil {
		return stroke.Params{Speed: 1, Precision: 1}
	}
	return p.params.Params()
}

func (p *DrawPresenter) finish(stats stroke.Stats, planned int, err error) {
	p.fsm.EventDrawFinished()
	if err != nil {
		p.view.SetStats("Drawing failed")
		p.fail("Draw", err)
		return
	}
	status := "Finished"
	if stats.Stopped {
		status = "Stopped"
	}
	p.view.SetStats(fmt.Sprintf("%s: %d/%d strokes, %d skipped, %d points in %s",
		status, stats.Drawn, planned, stats.Skipped, stats.Points, stats.Elapsed.Round(100*time.Millisecond)))
	if p.logger != nil {
		p.logger.Info("draw pass finished",
			"planned", planned,
			"drawn", stats.Drawn,
			"skipped", stats.Skipped,
			"points", stats.Points,
			"stopped", stats.Stopped,
			"elapsed", stats.Elapsed,
		)
	}
}

func (p *DrawPresenter) fail(title string, err error) {
	if p.logger != nil {
		p.logger.Error("operation failed", "operation", title, "error", err)
	}
	if p.notify != nil {
		p.notify.Error(title, err.Error())
	}
}

func (p *DrawPresenter) warn(title string, err error) error {
	if p.notify != nil {
		p.notify.Warn(title, err.Error())
	}
	return err
}
