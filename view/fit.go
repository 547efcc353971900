package view

import (
	"math"

	"github.com/mastercactapus/gcview/coord"
)

const (
	// targetExtent is the edge length of the normalized viewing
	// volume the model is scaled into.
	targetExtent = 2.0

	// fitEpsilon stands in for any zero span so flat or single-point
	// models still produce a finite scale.
	fitEpsilon = 1e-6
)

// Transform recenters and uniformly scales model coordinates into the
// normalized viewing volume. The same factor applies to every axis;
// there is no per-axis stretch.
type Transform struct {
	Scale  float64
	Center coord.Point
}

// Fit computes the transform for a model's bounds. The scale is always
// positive and finite, even for degenerate geometry.
func Fit(b coord.Box) Transform {
	span := b.MaxSpan()
	if span < fitEpsilon {
		span = fitEpsilon
	}
	return Transform{Scale: targetExtent / span, Center: b.Center()}
}

// Apply maps a model-space point into render space. Model Z (layer
// height) becomes the render "up" axis Y, and model Y becomes render
// Z, so the plate lies in the render XZ plane.
func (t Transform) Apply(p coord.Point) coord.Point {
	return coord.Point{
		X: (p.X - t.Center.X) * t.Scale,
		Y: (p.Z - t.Center.Z) * t.Scale,
		Z: (p.Y - t.Center.Y) * t.Scale,
	}
}

// Finite reports whether the transform is usable for rendering.
func (t Transform) Finite() bool {
	return t.Scale > 0 && !math.IsInf(t.Scale, 0) && !math.IsNaN(t.Scale)
}
