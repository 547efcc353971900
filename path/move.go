package path

import (
	"github.com/mastercactapus/gcview/coord"
)

// Position is a resolved absolute tool location plus the extrusion
// accumulator.
type Position struct {
	coord.Point
	E float64
}

// Move is one interpreted motion command with resolved endpoints.
type Move struct {
	From, To Position
}

// Extruding reports whether the move deposits material. The extrusion
// accumulator must strictly increase; equal or decreasing E
// (retraction) is travel.
func (m Move) Extruding() bool {
	return m.To.E > m.From.E
}
