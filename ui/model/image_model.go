package model

import "image"

// ImageModel holds the loaded picture and its line-art mask. Both are replaced
// together on every successful load.
// No synchronization needed: updates occur on the UI thread tick.
type ImageModel struct {
	path     string
	original image.Image
	mask     *image.Gray
}

func NewImageModel() *ImageModel { return &ImageModel{} }

// Set replaces the current image and mask.
func (m *ImageModel) Set(path string, original image.Image, mask *image.Gray) {
	if m == nil {
		return
	}
	m.path, m.original, m.mask = path, original, mask
}

func (m *ImageModel) Path() string {
	if m == nil {
		return ""
	}
	return m.path
}

func (m *ImageModel) Original() image.Image {
	if m == nil {
		return nil
	}
	return m.original
}

// Mask returns the line-art mask or nil when nothing was converted yet.
func (m *ImageModel) Mask() *image.Gray {
	if m == nil {
		return nil
	}
	return m.mask
}

// Loaded reports whether a mask is available.
func (m *ImageModel) Loaded() bool { return m.Mask() != nil }
