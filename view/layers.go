package view

import (
	"github.com/mastercactapus/gcview/coord"
	"github.com/mastercactapus/gcview/path"
)

// layerStep is the threshold change per adjust event.
const layerStep = 0.5

// LayerFilter is the "peel down" visibility predicate: when enabled,
// only segments at or below the threshold are drawn. It never touches
// the stored geometry.
type LayerFilter struct {
	Enabled bool
	Z       float64

	minZ, maxZ float64
}

// NewLayerFilter builds a disabled filter spanning the model's Z
// range, with the threshold at the top so nothing is hidden when it is
// first enabled.
func NewLayerFilter(b coord.Box) LayerFilter {
	if b.Empty() {
		return LayerFilter{}
	}
	return LayerFilter{Z: b.Max.Z, minZ: b.Min.Z, maxZ: b.Max.Z}
}

func (f *LayerFilter) Toggle() {
	f.Enabled = !f.Enabled
}

// Step moves the threshold one increment up or down, clamped to the
// model's Z range.
func (f *LayerFilter) Step(up bool) {
	if up {
		f.Z += layerStep
	} else {
		f.Z -= layerStep
	}
	if f.Z > f.maxZ {
		f.Z = f.maxZ
	}
	if f.Z < f.minZ {
		f.Z = f.minZ
	}
}

// Visible reports whether the segment passes the filter.
func (f LayerFilter) Visible(seg path.Segment) bool {
	if !f.Enabled {
		return true
	}
	return seg.LayerZ <= f.Z
}
