package view

import (
	"testing"

	"github.com/mastercactapus/gcview/coord"
	"github.com/stretchr/testify/assert"
)

func box(min, max coord.Point) coord.Box {
	b := coord.NewBox()
	b.Extend(min)
	b.Extend(max)
	return b
}

func TestFit(t *testing.T) {
	f := Fit(box(coord.Point{}, coord.Point{X: 100, Y: 50, Z: 20}))

	assert.Equal(t, 0.02, f.Scale)
	assert.Equal(t, coord.Point{X: 50, Y: 25, Z: 10}, f.Center)
	assert.True(t, f.Finite())
}

func TestFit_FlatModel(t *testing.T) {
	// 2D model: Z span is zero but XY still dominates
	f := Fit(box(coord.Point{}, coord.Point{X: 10, Y: 10}))

	assert.Equal(t, 0.2, f.Scale)
	assert.True(t, f.Finite())
}

func TestFit_SinglePoint(t *testing.T) {
	f := Fit(box(coord.Point{X: 5, Y: 5, Z: 5}, coord.Point{X: 5, Y: 5, Z: 5}))

	assert.True(t, f.Finite())
	assert.True(t, f.Scale > 0)
}

func TestFit_EmptyBounds(t *testing.T) {
	f := Fit(coord.NewBox())

	assert.True(t, f.Finite())
	assert.Equal(t, coord.Point{}, f.Center)
}

func TestTransform_Apply(t *testing.T) {
	f := Fit(box(coord.Point{}, coord.Point{X: 10, Y: 10, Z: 10}))

	// the model center lands on the origin
	assert.Equal(t, coord.Point{}, f.Apply(coord.Point{X: 5, Y: 5, Z: 5}))

	// model Z maps to render Y (up), model Y to render Z
	p := f.Apply(coord.Point{X: 5, Y: 5, Z: 10})
	assert.Equal(t, coord.Point{Y: 1}, p)

	p = f.Apply(coord.Point{X: 5, Y: 10, Z: 5})
	assert.Equal(t, coord.Point{Z: 1}, p)
}
