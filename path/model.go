package path

import (
	"io"
	"sort"

	"github.com/mastercactapus/gcview/coord"
	"github.com/mastercactapus/gcview/gcode"
)

// Segment is one renderable line of the toolpath. Immutable once
// built; layer filtering happens at draw time, not here.
type Segment struct {
	Start, End coord.Point
	Extrude    bool

	// LayerZ is the Z the head ends the move at, used for layer
	// filtering and height shading.
	LayerZ float64
}

// Model is the fully built toolpath: every interpreted move becomes
// exactly one segment, zero-length moves included, so segment count
// always matches move count.
type Model struct {
	Segments []Segment
	Bounds   coord.Box

	extrusions int
	skipped    int
	layers     map[float64]struct{}
}

// Build eagerly consumes the reader and precomputes all segments,
// bounds and layer stats so per-frame work stays read-only. The only
// fatal error is a failing source; bad lines are skipped by the
// interpreter.
func Build(gr gcode.Reader) (*Model, error) {
	in := NewInterpreter(gr)
	m := &Model{
		Bounds: coord.NewBox(),
		layers: make(map[float64]struct{}),
	}

	for {
		mv, err := in.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		m.add(mv)
	}
	m.skipped = in.Skipped()

	return m, nil
}

func (m *Model) add(mv Move) {
	seg := Segment{
		Start:   mv.From.Point,
		End:     mv.To.Point,
		Extrude: mv.Extruding(),
		LayerZ:  mv.To.Z,
	}
	m.index(seg)
}

func (m *Model) index(seg Segment) {
	m.Segments = append(m.Segments, seg)
	m.Bounds.Extend(seg.Start)
	m.Bounds.Extend(seg.End)
	m.layers[seg.Start.Z] = struct{}{}
	m.layers[seg.End.Z] = struct{}{}
	if seg.Extrude {
		m.extrusions++
	}
}

// SegmentCount returns the total number of segments.
func (m *Model) SegmentCount() int { return len(m.Segments) }

// ExtrusionCount returns the number of depositing segments.
func (m *Model) ExtrusionCount() int { return m.extrusions }

// Skipped returns the number of unparseable input lines dropped.
func (m *Model) Skipped() int { return m.skipped }

// LayerCount returns the number of distinct Z levels observed.
func (m *Model) LayerCount() int { return len(m.layers) }

// Layers returns the distinct Z levels in ascending order.
func (m *Model) Layers() []float64 {
	zs := make([]float64, 0, len(m.layers))
	for z := range m.layers {
		zs = append(zs, z)
	}
	sort.Float64s(zs)
	return zs
}

// MinZ returns the lowest Z of any endpoint, zero for an empty model.
func (m *Model) MinZ() float64 {
	if m.Bounds.Empty() {
		return 0
	}
	return m.Bounds.Min.Z
}

// MaxZ returns the highest Z of any endpoint, zero for an empty model.
func (m *Model) MaxZ() float64 {
	if m.Bounds.Empty() {
		return 0
	}
	return m.Bounds.Max.Z
}
