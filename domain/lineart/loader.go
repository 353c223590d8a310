package lineart

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"

	// WebP decoding for image.Decode; JPEG and PNG are registered by imaging.
	_ "golang.org/x/image/webp"
)

var (
	// ErrDecode reports that an image could not be opened or decoded.
	ErrDecode = errors.New("lineart: load image")
	// ErrEmptyImage reports a nil or zero-sized bitmap.
	ErrEmptyImage = errors.New("lineart: empty image")
)

// Load opens the image at path, honouring EXIF orientation.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecode, path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: %s", ErrEmptyImage, path)
	}
	return img, nil
}

// Decode reads an image from r.
func Decode(r io.Reader) (image.Image, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return img, nil
}
