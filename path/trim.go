package path

import (
	"math"

	"github.com/mastercactapus/gcview/coord"
)

// Priming detection: a run of primeWindow segments counts as the start
// of the real print when most of them extrude, none touch the plate
// edges and none are long positioning strokes.
const (
	primeWindow     = 5
	primeExtrusions = 3
	primeEdgeX      = 10.0
	primeEdgeY      = 20.0
	primeStroke     = 100.0
)

// TrimPriming drops priming, homing and parking moves from the
// renderable window: everything before the first cluster of on-plate
// extrusions and everything after the last extrusion. Bounds and layer
// stats are recomputed over the kept range. A model with no extrusions
// is left untouched.
func (m *Model) TrimPriming() {
	if len(m.Segments) == 0 {
		return
	}

	start := 0
	for i := 0; i+primeWindow <= len(m.Segments); i++ {
		if m.printStartsAt(i) {
			start = i
			break
		}
	}

	end := len(m.Segments)
	for i := len(m.Segments) - 1; i >= 0; i-- {
		if m.Segments[i].Extrude {
			end = i + 1
			break
		}
	}

	if start == 0 && end == len(m.Segments) {
		return
	}
	m.rebuild(m.Segments[start:end])
}

func (m *Model) printStartsAt(i int) bool {
	var n int
	for _, s := range m.Segments[i : i+primeWindow] {
		if s.Extrude {
			n++
		}
	}
	if n < primeExtrusions {
		return false
	}

	for _, s := range m.Segments[i : i+primeWindow] {
		atEdge := s.Start.X < primeEdgeX || s.End.X < primeEdgeX ||
			s.Start.Y < primeEdgeY || s.End.Y < primeEdgeY
		longMove := math.Abs(s.End.X-s.Start.X) > primeStroke ||
			math.Abs(s.End.Y-s.Start.Y) > primeStroke
		if atEdge || longMove {
			return false
		}
	}
	return true
}

func (m *Model) rebuild(keep []Segment) {
	segs := append([]Segment(nil), keep...)
	m.Segments = m.Segments[:0]
	m.Bounds = coord.NewBox()
	m.extrusions = 0
	m.layers = make(map[float64]struct{})
	for _, s := range segs {
		m.index(s)
	}
}
