package coord

import (
	"math"
)

// Box is an axis-aligned bounding box. The zero value from NewBox is
// empty; Extend grows it to include points.
type Box struct {
	Min, Max Point
}

func NewBox() Box {
	return Box{
		Min: Point{X: math.Inf(1), Y: math.Inf(1), Z: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1), Z: math.Inf(-1)},
	}
}

// Empty reports whether the box has never been extended.
func (b Box) Empty() bool {
	return b.Min.X > b.Max.X
}

// Extend grows the box to include p.
func (b *Box) Extend(p Point) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Span returns the size of the box per axis, zero when empty.
func (b Box) Span() Point {
	if b.Empty() {
		return Point{}
	}
	return b.Max.Sub(b.Min)
}

// MaxSpan returns the largest single-axis span, zero when empty.
func (b Box) MaxSpan() float64 {
	s := b.Span()
	return math.Max(s.X, math.Max(s.Y, s.Z))
}

// Center returns the midpoint of the box, the origin when empty.
func (b Box) Center() Point {
	if b.Empty() {
		return Point{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}
