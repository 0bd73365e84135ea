package collision

import (
	"github.com/KratosDevT/geometry-collision-lib/geometry"
)

// CirclesOverlap checks if two circles overlap. Touching circles overlap.
func CirclesOverlap(c1, c2 geometry.Circle) bool {
	distanceSquared := c2.Center.Sub(c1.Center).MagnitudeSquared()
	radiusSum := c1.Radius + c2.Radius
	return distanceSquared <= radiusSum*radiusSum
}

// PointInCircle checks if a point lies inside the circle or on its edge.
func PointInCircle(point geometry.Vector, circle geometry.Circle) bool {
	return point.Sub(circle.Center).MagnitudeSquared() <= circle.Radius*circle.Radius
}

// AABBsOverlap tests both axis projections. Shared edges and corners overlap.
func AABBsOverlap(b1, b2 geometry.AABB) bool {
	overlapX := b1.Max.X >= b2.Min.X && b1.Min.X <= b2.Max.X
	overlapY := b1.Max.Y >= b2.Min.Y && b1.Min.Y <= b2.Max.Y
	return overlapX && overlapY
}

// AABBsOverlapEarlyExit gives the same answer as AABBsOverlap but returns as
// soon as one axis separates the boxes.
func AABBsOverlapEarlyExit(b1, b2 geometry.AABB) bool {
	if b1.Max.X < b2.Min.X || b1.Min.X > b2.Max.X {
		return false
	}
	if b1.Max.Y < b2.Min.Y || b1.Min.Y > b2.Max.Y {
		return false
	}
	return true
}

// ClosestPoint clamps point into the box, giving the nearest point of the box to it.
// A point inside the box is returned unchanged.
func ClosestPoint(box geometry.AABB, point geometry.Vector) geometry.Vector {
	return geometry.Vector{
		X: clampValue(point.X, box.Min.X, box.Max.X),
		Y: clampValue(point.Y, box.Min.Y, box.Max.Y),
	}
}

// AABBCircleOverlap checks whether the circle reaches the closest point of the box.
func AABBCircleOverlap(circle geometry.Circle, box geometry.AABB) bool {
	closest := ClosestPoint(box, circle.Center)
	return closest.Sub(circle.Center).MagnitudeSquared() <= circle.Radius*circle.Radius
}
