package geometry

import (
	"math"
)

// NormalizeEpsilon is the smallest magnitude Normalize will divide by.
const NormalizeEpsilon = 1e-4

type Vector struct {
	X float64
	Y float64
}

func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// DotProduct calculates the dot product of two vectors
func (v Vector) DotProduct(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// reflected = incident - 2*(incident·normal)*normal
func (v Vector) Reflect(normal Vector) Vector {
	dotProduct := v.DotProduct(normal)

	reflectedX := v.X - 2*dotProduct*normal.X
	reflectedY := v.Y - 2*dotProduct*normal.Y

	return Vector{
		X: reflectedX,
		Y: reflectedY,
	}
}

// Magnitude calculates the magnitude (length) of a vector
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.MagnitudeSquared())
}

// MagnitudeSquared is the squared length, for comparisons that can skip the square root
func (v Vector) MagnitudeSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector in the same direction.
// Vectors no longer than NormalizeEpsilon normalize to (0, 0).
func (v Vector) Normalize() Vector {
	magnitude := v.Magnitude()
	if magnitude <= NormalizeEpsilon {
		return Vector{0, 0}
	}
	return v.Div(magnitude)
}

func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

func (v Vector) Scale(factor float64) Vector {
	return Vector{v.X * factor, v.Y * factor}
}

// Div divides both components by divisor. A zero divisor is not guarded.
func (v Vector) Div(divisor float64) Vector {
	return Vector{v.X / divisor, v.Y / divisor}
}
