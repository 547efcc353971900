package coord

import (
	"math"
)

type Point struct{ X, Y, Z float64 }

func (p Point) Equal(b Point) bool {
	return p.X == b.X && p.Y == b.Y && p.Z == b.Z
}
func (p Point) Cross(op Point) Point {
	return Point{
		p.Y*op.Z - p.Z*op.Y,
		p.Z*op.X - p.X*op.Z,
		p.X*op.Y - p.Y*op.X,
	}
}
func (p Point) Dot(op Point) float64 {
	return p.X*op.X + p.Y*op.Y + p.Z*op.Z
}
func (p Point) Mul(val float64) Point {
	p.X *= val
	p.Y *= val
	p.Z *= val
	return p
}

// Add will add the target values to p.
func (p Point) Add(target Point) Point {
	p.X += target.X
	p.Y += target.Y
	p.Z += target.Z
	return p
}

// Sub will subtract the target values from p.
func (p Point) Sub(target Point) Point {
	p.X -= target.X
	p.Y -= target.Y
	p.Z -= target.Z
	return p
}

// Min returns the component-wise minimum of p and the target.
func (p Point) Min(target Point) Point {
	p.X = math.Min(p.X, target.X)
	p.Y = math.Min(p.Y, target.Y)
	p.Z = math.Min(p.Z, target.Z)
	return p
}

// Max returns the component-wise maximum of p and the target.
func (p Point) Max(target Point) Point {
	p.X = math.Max(p.X, target.X)
	p.Y = math.Max(p.Y, target.Y)
	p.Z = math.Max(p.Z, target.Z)
	return p
}

// Length returns the magnitude of p.
func (p Point) Length() float64 {
	return math.Sqrt(p.Dot(p))
}

// Normalize returns a unit vector in the same direction, or the zero
// point for a zero input.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return p.Mul(1 / l)
}
