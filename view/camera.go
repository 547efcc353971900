package view

import (
	"math"

	"github.com/mastercactapus/gcview/coord"
)

const (
	DefaultYaw      = 45 * math.Pi / 180
	DefaultPitch    = 30 * math.Pi / 180
	DefaultDistance = 3.0

	dragSensitivity = 0.01
	scrollStep      = 0.1
	maxPitch        = 1.5
	minDistance     = 0.5
)

// Camera orbits a target fixed at the origin; the geometry is already
// recentered there by Fit. Positive pitch puts the eye above the
// target, looking down.
type Camera struct {
	Yaw, Pitch, Distance float64
}

func NewCamera() Camera {
	return Camera{Yaw: DefaultYaw, Pitch: DefaultPitch, Distance: DefaultDistance}
}

// Eye returns the camera position via spherical conversion around the
// target.
func (c Camera) Eye() coord.Point {
	return coord.Point{
		X: c.Distance * math.Cos(c.Pitch) * math.Sin(c.Yaw),
		Y: c.Distance * math.Sin(c.Pitch),
		Z: c.Distance * math.Cos(c.Pitch) * math.Cos(c.Yaw),
	}
}

// Target returns the fixed look-at point.
func (c Camera) Target() coord.Point { return coord.Point{} }

// Up returns the world up vector.
func (c Camera) Up() coord.Point { return coord.Point{Y: 1} }

// Basis returns the normalized forward, right and up vectors of the
// view, for renderers building their own look-at matrix.
func (c Camera) Basis() (forward, right, up coord.Point) {
	forward = c.Target().Sub(c.Eye()).Normalize()
	right = forward.Cross(c.Up()).Normalize()
	up = right.Cross(forward)
	return forward, right, up
}

// Drag applies a screen-space drag delta. Dragging right increases
// yaw; dragging down lowers the eye. Pitch is clamped on every update
// so the up vector can never flip.
func (c *Camera) Drag(dx, dy float64) {
	c.Yaw += dx * dragSensitivity
	c.Pitch -= dy * dragSensitivity
	if c.Pitch > maxPitch {
		c.Pitch = maxPitch
	}
	if c.Pitch < -maxPitch {
		c.Pitch = -maxPitch
	}
}

// Zoom applies a scroll delta; positive deltas zoom in, stopping short
// of the target.
func (c *Camera) Zoom(dy float64) {
	c.Distance -= dy * scrollStep
	if c.Distance < minDistance {
		c.Distance = minDistance
	}
}

// Reset restores the default orientation in a single assignment.
func (c *Camera) Reset() {
	*c = NewCamera()
}
