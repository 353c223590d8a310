package presenter

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/soocke/autodraw-go/domain/lineart"
	"github.com/soocke/autodraw-go/domain/session"
	"github.com/soocke/autodraw-go/ui/images"
	"github.com/soocke/autodraw-go/ui/model"
)

// MaskExtractor converts a bitmap into a line-art mask.
type MaskExtractor interface {
	Extract(img image.Image) (*image.Gray, error)
}

// ImageSession exposes the session operations used when loading images.
type ImageSession interface {
	Current() session.State
	EventImageLoaded()
}

// ImageView updates the image panes.
type ImageView interface {
	ShowOriginal(img image.Image)
	ShowLineArt(img image.Image)
	SetImageLabel(text string)
}

// ImagePresenter loads a picture and converts it to line art off the UI thread.
type ImagePresenter struct {
	model     *model.ImageModel
	fsm       ImageSession
	view      ImageView
	notify    Notifier
	worker    *Worker
	extractor MaskExtractor
	logger    *slog.Logger

	// Load reads an image file; defaults to lineart.Load.
	Load func(path string) (image.Image, error)
	// LineColor is the ink used to show the mask.
	LineColor string
}

func NewImagePresenter(m *model.ImageModel, fsm ImageSession, view ImageView, notify Notifier, worker *Worker, extractor MaskExtractor, logger *slog.Logger) *ImagePresenter {
	return &ImagePresenter{
		model:     m,
		fsm:       fsm,
		view:      view,
		notify:    notify,
		worker:    worker,
		extractor: extractor,
		logger:    logger,
		Load:      lineart.Load,
		LineColor: "#000000",
	}
}

// Open starts converting the file at path. An empty path (dialog canceled) is
// a no-op. Preconditions are reported to the user and returned.
func (p *ImagePresenter) Open(path string) error {
	if p == nil || path == "" {
		return nil
	}
	if p.fsm != nil && p.fsm.Current().Busy() {
		return p.warn(ErrBusy)
	}
	err := p.worker.Go("convert", func() func() {
		start := time.Now()
		img, err := p.Load(path)
		var mask *image.Gray
		if err == nil {
			mask, err = p.extractor.Extract(img)
		}
		elapsed := time.Since(start)
		return func() { p.finish(path, img, mask, err, elapsed) }
	}, func(err error) { p.finish(path, nil, nil, err, 0) })
	if err != nil {
		return p.warn(err)
	}
	p.view.SetImageLabel("Converting " + filepath.Base(path) + "...")
	return nil
}

func (p *ImagePresenter) finish(path string, img image.Image, mask *image.Gray, err error, elapsed time.Duration) {
	if err != nil {
		if p.logger != nil {
			p.logger.Error("image conversion failed", "path", path, "error", err)
		}
		p.view.SetImageLabel(p.label())
		if p.notify != nil {
			p.notify.Error("Load Image", fmt.Sprintf("Could not convert %s:\n%v", filepath.Base(path), err))
		}
		return
	}
	p.model.Set(path, img, mask)
	p.view.ShowOriginal(img)
	p.view.ShowLineArt(images.Tint(mask, p.LineColor))
	p.view.SetImageLabel(p.label())
	if p.fsm != nil {
		p.fsm.EventImageLoaded()
	}
	if p.logger != nil {
		b := mask.Bounds()
		p.logger.Info("image converted",
			"path", path,
			"width", b.Dx(),
			"height", b.Dy(),
			"on_pixels", lineart.CountOn(mask),
			"elapsed", elapsed,
		)
	}
}

func (p *ImagePresenter) label() string {
	if !p.model.Loaded() {
		return "Image: <none>"
	}
	b := p.model.Mask().Bounds()
	return fmt.Sprintf("Image: %s (%dx%d)", filepath.Base(p.model.Path()), b.Dx(), b.Dy())
}

func (p *ImagePresenter) warn(err error) error {
	if p.notify != nil {
		p.notify.Warn("Load Image", err.Error())
	}
	return err
}
