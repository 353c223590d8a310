package view

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/soocke/autodraw-go/domain/action"
	"github.com/soocke/autodraw-go/domain/region"
	"github.com/soocke/autodraw-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// RegionOverlay covers the screen with a translucent window and lets the user
// drag out the target rectangle. A rubber band follows the drag and shows the
// line art stretched to the current size.
type RegionOverlay struct {
	logger *slog.Logger
	ttl    time.Duration
	color  string

	// Screen and Cursor report screen size and pointer position in screen
	// pixels; they default to the action package.
	Screen func() (image.Point, error)
	Cursor func() (image.Point, error)

	win       *ToplevelWidget
	band      *ToplevelWidget
	bandLabel *LabelWidget
	photo     *Img
	thumb     image.Image
	thumbSize image.Point
	expireID  string

	drag   region.Drag
	screen image.Point
	out    chan region.Result
}

// NewRegionOverlay returns an overlay whose live thumbnail is dropped when
// the drag pauses for longer than ttl. color tints the rubber band.
func NewRegionOverlay(ttl time.Duration, color string, logger *slog.Logger) *RegionOverlay {
	if ttl <= 0 {
		ttl = 100 * time.Millisecond
	}
	return &RegionOverlay{
		logger: logger,
		ttl:    ttl,
		color:  color,
		Screen: action.ScreenSize,
		Cursor: action.CursorPos,
	}
}

// Open shows the overlay. The returned channel receives one Result and is
// closed. thumb may be nil.
func (o *RegionOverlay) Open(thumb image.Image) <-chan region.Result {
	out := make(chan region.Result, 1)
	if o.win != nil {
		out <- region.Result{}
		close(out)
		return out
	}
	size, err := o.Screen()
	if err != nil {
		if o.logger != nil {
			o.logger.Error("region overlay: screen size", "error", err)
		}
		out <- region.Result{}
		close(out)
		return out
	}
	o.screen, o.thumb, o.out = size, thumb, out
	o.drag.Reset()

	win := App.Toplevel(Background("#000000"), Cursor("crosshair"))
	win.WmTitle("Select Region")
	WmGeometry(win.Window, fmt.Sprintf("%dx%d+0+0", size.X, size.Y))
	WmAttributes(win.Window, "-fullscreen", 1)
	WmAttributes(win.Window, "-alpha", 0.3)
	WmAttributes(win.Window, "-topmost", 1)
	hint := win.Label(Txt("Drag to select the drawing area. Esc or right click cancels."), Background("#000000"), Foreground("white"))
	Pack(hint, Pady("4m"))
	Bind(win, "<ButtonPress-1>", Command(o.press))
	Bind(win, "<B1-Motion>", Command(o.motion))
	Bind(win, "<ButtonRelease-1>", Command(o.release))
	Bind(win, "<ButtonPress-3>", Command(o.cancel))
	Bind(win, "<Escape>", Command(o.cancel))
	o.win = win
	if o.logger != nil {
		o.logger.Debug("region overlay opened", "screen", size)
	}
	return out
}

func (o *RegionOverlay) cursor() (image.Point, bool) {
	p, err := o.Cursor()
	if err != nil {
		if o.logger != nil {
			o.logger.Warn("region overlay: cursor position", "error", err)
		}
		return image.Point{}, false
	}
	return p, true
}

func (o *RegionOverlay) press() {
	p, ok := o.cursor()
	if !ok {
		return
	}
	o.drag.Press(p)
}

func (o *RegionOverlay) motion() {
	p, ok := o.cursor()
	if !ok || o.drag.Phase() == region.Idle {
		return
	}
	o.drag.Move(p)
	o.showBand(o.drag.Rect())
}

func (o *RegionOverlay) release() {
	p, ok := o.cursor()
	if !ok {
		o.cancel()
		return
	}
	rect, done := o.drag.Release(p)
	if !done {
		return
	}
	o.finish(rect, !rect.Empty())
}

func (o *RegionOverlay) cancel() {
	o.drag.Cancel()
	o.finish(image.Rectangle{}, false)
}

func (o *RegionOverlay) finish(rect image.Rectangle, ok bool) {
	if o.out == nil {
		return
	}
	res := region.Result{OK: ok}
	if ok {
		res.Rect = rect
		res.Area = region.Normalize(rect, o.screen)
	}
	o.close()
	o.out <- res
	close(o.out)
	o.out = nil
	if o.logger != nil {
		o.logger.Debug("region overlay closed", "ok", ok, "rect", rect.String())
	}
}

// showBand moves the rubber band over r and refreshes the thumbnail when the
// size changed.
func (o *RegionOverlay) showBand(r image.Rectangle) {
	if r.Dx() < 2 || r.Dy() < 2 {
		return
	}
	if o.band == nil {
		o.band = App.Toplevel(Background(o.color), Borderwidth(2), Relief("solid"))
		WmAttributes(o.band.Window, "-topmost", 1)
		WmAttributes(o.band.Window, "-toolwindow", true)
		WmAttributes(o.band.Window, "-alpha", 0.6)
		o.bandLabel = o.band.Label(Background(o.color), Borderwidth(0))
		Pack(o.bandLabel, Fill("both"), Expand(true))
	}
	WmGeometry(o.band.Window, fmt.Sprintf("%dx%d+%d+%d", r.Dx(), r.Dy(), r.Min.X, r.Min.Y))
	if o.thumb == nil || r.Size() == o.thumbSize {
		return
	}
	o.setThumb(images.Stretch(o.thumb, r.Dx(), r.Dy()))
	o.thumbSize = r.Size()
	if o.expireID != "" {
		TclAfterCancel(o.expireID)
	}
	o.expireID = TclAfter(o.ttl, o.expire)
}

// expire drops the thumbnail after the drag paused.
func (o *RegionOverlay) expire() {
	o.expireID = ""
	o.setThumb(nil)
	o.thumbSize = image.Point{}
}

func (o *RegionOverlay) setThumb(img image.Image) {
	if o.bandLabel == nil {
		return
	}
	if o.photo != nil {
		o.photo.Delete()
		o.photo = nil
	}
	if img == nil {
		blank := image.NewGray(image.Rect(0, 0, 1, 1))
		o.photo = NewPhoto(Data(images.EncodePNG(images.Tint(blank, ""))))
	} else {
		o.photo = NewPhoto(Data(images.EncodePNG(img)))
	}
	o.bandLabel.Configure(Image(o.photo))
}

func (o *RegionOverlay) close() {
	if o.expireID != "" {
		TclAfterCancel(o.expireID)
		o.expireID = ""
	}
	if o.photo != nil {
		o.photo.Delete()
		o.photo = nil
	}
	if o.band != nil {
		Destroy(o.band)
		o.band, o.bandLabel = nil, nil
	}
	if o.win != nil {
		Destroy(o.win)
		o.win = nil
	}
	o.thumb, o.thumbSize = nil, image.Point{}
}
