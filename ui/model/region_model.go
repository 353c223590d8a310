package model

import (
	"image"

	"github.com/soocke/autodraw-go/domain/region"
)

// RegionModel holds the selected target area as screen fractions. Zero value
// means no selection and is usable.
// No synchronization needed: updates occur on the UI thread tick.
type RegionModel struct {
	area region.Area
	set  bool
}

func NewRegionModel() *RegionModel { return &RegionModel{} }

// Set stores the area. An empty area clears the selection.
func (m *RegionModel) Set(a region.Area) {
	if m == nil {
		return
	}
	if a.Empty() {
		m.Clear()
		return
	}
	m.area, m.set = a, true
}

// Clear drops the selection.
func (m *RegionModel) Clear() {
	if m == nil {
		return
	}
	m.area, m.set = region.Area{}, false
}

// Area returns the stored area and whether one is set.
func (m *RegionModel) Area() (region.Area, bool) {
	if m == nil {
		return region.Area{}, false
	}
	return m.area, m.set
}

// Rect maps the selection onto a screen of the given size.
func (m *RegionModel) Rect(screen image.Point) (image.Rectangle, bool) {
	a, ok := m.Area()
	if !ok {
		return image.Rectangle{}, false
	}
	r := region.Denormalize(a, screen)
	if r.Empty() {
		return image.Rectangle{}, false
	}
	return r, true
}
