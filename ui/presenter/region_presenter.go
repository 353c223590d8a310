package presenter

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/autodraw-go/domain/region"
	"github.com/soocke/autodraw-go/domain/session"
	"github.com/soocke/autodraw-go/ui/images"
	"github.com/soocke/autodraw-go/ui/model"
)

// Overlay opens the interactive region selector. The returned channel yields
// exactly one Result and is then closed.
type Overlay interface {
	Open(thumb image.Image) <-chan region.Result
}

// RegionSession exposes the session operations used by region selection.
type RegionSession interface {
	Current() session.State
	EventSelectionStarted()
	EventSelectionFinished(ok bool)
	EventRegionReset()
}

// RegionView hides the main window during selection and shows the outcome.
type RegionView interface {
	HideMain()
	ShowMain()
	SetRegionLabel(text string)
}

// RegionPresenter runs a selection session and stores its result.
type RegionPresenter struct {
	model   *model.RegionModel
	images  *model.ImageModel
	fsm     RegionSession
	view    RegionView
	overlay Overlay
	notify  Notifier
	worker  *Worker
	logger  *slog.Logger
	pending <-chan region.Result

	// LineColor is the ink used for the live thumbnail.
	LineColor string
}

func NewRegionPresenter(m *model.RegionModel, imgs *model.ImageModel, fsm RegionSession, view RegionView, overlay Overlay, notify Notifier, worker *Worker, logger *slog.Logger) *RegionPresenter {
	return &RegionPresenter{model: m, images: imgs, fsm: fsm, view: view, overlay: overlay, notify: notify, worker: worker, logger: logger, LineColor: "#000000"}
}

// Selecting reports whether an overlay is open.
func (p *RegionPresenter) Selecting() bool { return p != nil && p.pending != nil }

// Begin opens the overlay over converted line art. The main window is hidden
// until Process sees the result.
func (p *RegionPresenter) Begin() error {
	if p == nil || p.overlay == nil {
		return nil
	}
	if p.pending != nil || p.fsm.Current().Busy() || p.worker.Busy() {
		return p.warn("Select Region", ErrBusy)
	}
	mask := p.images.Mask()
	if mask == nil {
		return p.warn("Select Region", ErrNoImage)
	}
	p.fsm.EventSelectionStarted()
	p.view.HideMain()
	p.pending = p.overlay.Open(images.Tint(mask, p.LineColor))
	return nil
}

// Process collects a finished selection. Call from the UI tick.
func (p *RegionPresenter) Process() {
	if p == nil || p.pending == nil {
		return
	}
	var res region.Result
	var ok bool
	select {
	case res, ok = <-p.pending:
	default:
		return
	}
	p.pending = nil
	p.view.ShowMain()
	if !ok || !res.OK || res.Area.Empty() {
		p.fsm.EventSelectionFinished(false)
		if p.logger != nil {
			p.logger.Debug("region selection canceled")
		}
		return
	}
	p.model.Set(res.Area)
	p.fsm.EventSelectionFinished(true)
	p.view.SetRegionLabel(fmt.Sprintf("Region: %dx%d at (%d,%d)", res.Rect.Dx(), res.Rect.Dy(), res.Rect.Min.X, res.Rect.Min.Y))
	if p.logger != nil {
		p.logger.Info("region selected", "rect", res.Rect.String(), "area", res.Area.String())
	}
}

// Reset clears the stored selection.
func (p *RegionPresenter) Reset() error {
	if p == nil {
		return nil
	}
	if p.pending != nil || p.fsm.Current().Busy() {
		return p.warn("Reset Region", ErrBusy)
	}
	p.model.Clear()
	p.fsm.EventRegionReset()
	p.view.SetRegionLabel("Region: <none>")
	return nil
}

func (p *RegionPresenter) warn(title string, err error) error {
	if p.notify != nil {
		p.notify.Warn(title, err.Error())
	}
	return err
}
