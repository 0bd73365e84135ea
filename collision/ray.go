package collision

import (
	"math"

	"github.com/KratosDevT/geometry-collision-lib/geometry"
)

// RayCircle finds the nearest point in front of the ray where it meets the circle.
//
// The ray is solved against |origin + t*direction - center|² = radius², and the
// smallest non-negative root wins. A ray starting inside the circle therefore
// reports its exit point, and a ray starting on the boundary reports distance 0.
// A tangent ray is a hit.
//
// The direction must be non-zero. A zero direction divides by zero and yields
// NaN or Inf in the result.
func RayCircle(ray geometry.Ray, circle geometry.Circle) Result {
	var result Result

	oc := ray.Origin.Sub(circle.Center)

	// a is ~1 for a normalized direction but is never assumed to be
	a := ray.Direction.DotProduct(ray.Direction)
	b := 2 * oc.DotProduct(ray.Direction)
	c := oc.DotProduct(oc) - circle.Radius*circle.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return result
	}

	sqrtDiscriminant := math.Sqrt(discriminant)
	t1 := (-b - sqrtDiscriminant) / (2 * a)
	t2 := (-b + sqrtDiscriminant) / (2 * a)

	var t float64
	switch {
	case t1 >= 0:
		t = t1
	case t2 >= 0:
		t = t2
	default:
		// circle is entirely behind the origin
		return result
	}

	result.Hit = true
	result.Distance = t
	result.HitPoint = ray.PointAt(t)
	result.Normal = result.HitPoint.Sub(circle.Center).Normalize()

	return result
}

// RayHitsCircle reports whether RayCircle finds a hit.
func RayHitsCircle(ray geometry.Ray, circle geometry.Circle) bool {
	return RayCircle(ray, circle).Hit
}
