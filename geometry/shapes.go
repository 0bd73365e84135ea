package geometry

import "math"

// Ray is a half-line starting at Origin.
//
// Direction is expected to be unit length. NewRay guarantees it; a Ray built as
// a struct literal must be given a normalized direction by the caller.
type Ray struct {
	Origin    Vector
	Direction Vector
}

func NewRay(origin, direction Vector) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction.Normalize(),
	}
}

// PointAt returns Origin + Direction*t. Negative t lies behind the origin.
func (r Ray) PointAt(t float64) Vector {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Circle with a zero radius behaves as a point in every test.
type Circle struct {
	Center Vector
	Radius float64
}

func NewCircle(center Vector, radius float64) Circle {
	return Circle{Center: center, Radius: radius}
}

// AABB is an axis-aligned box. A well formed box has Min <= Max on both axes.
type AABB struct {
	Min Vector
	Max Vector
}

func NewAABB(min, max Vector) AABB {
	return AABB{Min: min, Max: max}
}

// EmptyAABB returns the inverted infinite box, which overlaps nothing.
func EmptyAABB() AABB {
	return AABB{
		Min: Vector{math.Inf(1), math.Inf(1)},
		Max: Vector{math.Inf(-1), math.Inf(-1)},
	}
}

func (b AABB) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

func (b AABB) Width() float64 {
	return b.Max.X - b.Min.X
}

func (b AABB) Height() float64 {
	return b.Max.Y - b.Min.Y
}
