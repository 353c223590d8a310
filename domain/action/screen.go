package action

import (
	"errors"
	"image"

	"github.com/vova616/screenshot"
)

// ScreenSize returns the size of the primary screen in pixels. The capture
// backend is asked first; GetSystemMetrics is the fallback.
func ScreenSize() (image.Point, error) {
	r, err := screenshot.ScreenRect()
	if err == nil && !r.Empty() {
		return r.Size(), nil
	}
	if p := primaryScreen(); p.X > 0 && p.Y > 0 {
		return p, nil
	}
	if err == nil {
		err = errors.New("action: empty screen rectangle")
	}
	return image.Point{}, err
}
