package footprint

import (
	"errors"

	"github.com/fogleman/delaunay"
	"github.com/mastercactapus/gcview/coord"
	"github.com/mastercactapus/gcview/path"
)

// Mesh is the triangulated build-plate footprint of a model's bottom
// extrusion layer, used for plate-shadow rendering and area reporting.
type Mesh struct {
	minX, minY, maxX, maxY float64
	triangles              []coord.Triangle
}

// ErrNoFootprint means the model has too few distinct bottom-layer
// points to triangulate.
var ErrNoFootprint = errors.New("not enough points for a footprint")

// FromModel collects the endpoints of the lowest extrusion layer and
// triangulates them.
func FromModel(m *path.Model) (*Mesh, error) {
	var baseZ float64
	var found bool
	for _, s := range m.Segments {
		if !s.Extrude {
			continue
		}
		if !found || s.LayerZ < baseZ {
			baseZ = s.LayerZ
			found = true
		}
	}
	if !found {
		return nil, ErrNoFootprint
	}

	var points []coord.Point
	for _, s := range m.Segments {
		if !s.Extrude || s.LayerZ > baseZ+coord.Epsilon {
			continue
		}
		points = append(points, s.Start, s.End)
	}
	return NewMesh(points)
}

// NewMesh triangulates the XY projection of the given points.
// Duplicate XY positions collapse to one vertex.
func NewMesh(points []coord.Point) (*Mesh, error) {
	byXY := make(map[delaunay.Point]coord.Point, len(points))
	for _, p := range points {
		byXY[delaunay.Point{X: p.X, Y: p.Y}] = p
	}
	if len(byXY) < 3 {
		return nil, ErrNoFootprint
	}

	mesh := &Mesh{minX: points[0].X, minY: points[0].Y, maxX: points[0].X, maxY: points[0].Y}
	points2d := make([]delaunay.Point, 0, len(byXY))
	for d, p := range byXY {
		if p.X < mesh.minX {
			mesh.minX = p.X
		}
		if p.Y < mesh.minY {
			mesh.minY = p.Y
		}
		if p.X > mesh.maxX {
			mesh.maxX = p.X
		}
		if p.Y > mesh.maxY {
			mesh.maxY = p.Y
		}
		points2d = append(points2d, d)
	}
	mesh.minX -= coord.Epsilon
	mesh.minY -= coord.Epsilon
	mesh.maxX += coord.Epsilon
	mesh.maxY += coord.Epsilon

	tri, err := delaunay.Triangulate(points2d)
	if err != nil {
		return nil, err
	}
	if len(tri.Triangles) == 0 {
		// collinear input triangulates to nothing
		return nil, ErrNoFootprint
	}

	mesh.triangles = make([]coord.Triangle, 0, len(tri.Triangles)/3)
	for i := 0; i < len(tri.Triangles); i += 3 {
		mesh.triangles = append(mesh.triangles, coord.Triangle{
			A: byXY[tri.Points[tri.Triangles[i]]],
			B: byXY[tri.Points[tri.Triangles[i+1]]],
			C: byXY[tri.Points[tri.Triangles[i+2]]],
		})
	}

	return mesh, nil
}

// Triangles returns the footprint triangles for rendering.
func (m *Mesh) Triangles() []coord.Triangle {
	return m.triangles
}

// ContainsXY reports whether the plate position x,y lies under the
// footprint.
func (m *Mesh) ContainsXY(x, y float64) bool {
	if x < m.minX || m.maxX < x || y < m.minY || m.maxY < y {
		return false
	}
	for _, t := range m.triangles {
		if t.ContainsXY(x, y) {
			return true
		}
	}
	return false
}

// Area returns the covered plate area.
func (m *Mesh) Area() float64 {
	var sum float64
	for _, t := range m.triangles {
		sum += t.AreaXY()
	}
	return sum
}
