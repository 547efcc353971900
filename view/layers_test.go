package view

import (
	"testing"

	"github.com/mastercactapus/gcview/coord"
	"github.com/mastercactapus/gcview/path"
	"github.com/stretchr/testify/assert"
)

func zbox(minZ, maxZ float64) coord.Box {
	b := coord.NewBox()
	b.Extend(coord.Point{Z: minZ})
	b.Extend(coord.Point{X: 1, Y: 1, Z: maxZ})
	return b
}

func TestLayerFilter_Disabled(t *testing.T) {
	f := NewLayerFilter(zbox(0, 10))

	assert.False(t, f.Enabled)
	assert.True(t, f.Visible(path.Segment{LayerZ: 999}))
}

func TestLayerFilter_PeelDown(t *testing.T) {
	f := NewLayerFilter(zbox(0, 10))
	f.Toggle()

	// threshold starts at the top, nothing hidden yet
	assert.True(t, f.Visible(path.Segment{LayerZ: 10}))

	f.Step(false)
	assert.Equal(t, 9.5, f.Z)
	assert.False(t, f.Visible(path.Segment{LayerZ: 10}))
	assert.True(t, f.Visible(path.Segment{LayerZ: 9.5}))
	assert.True(t, f.Visible(path.Segment{LayerZ: 2}))
}

func TestLayerFilter_StepClamp(t *testing.T) {
	f := NewLayerFilter(zbox(0, 1))
	f.Toggle()

	for i := 0; i < 100; i++ {
		f.Step(false)
	}
	assert.Equal(t, 0.0, f.Z)

	for i := 0; i < 100; i++ {
		f.Step(true)
	}
	assert.Equal(t, 1.0, f.Z)
}

func TestLayerFilter_EmptyBounds(t *testing.T) {
	f := NewLayerFilter(coord.NewBox())
	f.Toggle()
	f.Step(true)

	assert.Equal(t, 0.0, f.Z)
}
