package scenario

import "github.com/KratosDevT/geometry-collision-lib/geometry"

func vec(x, y float64) geometry.Vector {
	return geometry.NewVector(x, y)
}

// Defaults returns the built-in demonstration cases.
func Defaults() []Scenario {
	return []Scenario{
		{
			Name:   "Ray-Circle Collision",
			Kind:   KindRayCircle,
			Ray:    geometry.NewRay(vec(0, 0), vec(1, 1)),
			Circle: geometry.NewCircle(vec(2, 2), 1),
		},
		{
			Name:   "Ray Miss Circle",
			Kind:   KindRayCircle,
			Ray:    geometry.NewRay(vec(0, 0), vec(1, 0)),
			Circle: geometry.NewCircle(vec(5, 5), 1),
		},
		{
			Name:   "Ray from Inside Circle",
			Kind:   KindRayCircle,
			Ray:    geometry.NewRay(vec(2, 2), vec(1, 0)),
			Circle: geometry.NewCircle(vec(2, 2), 1),
		},
		{
			Name:        "Circle-Circle Collision (Overlapping)",
			Kind:        KindCircleCircle,
			Circle:      geometry.NewCircle(vec(0, 0), 2),
			OtherCircle: geometry.NewCircle(vec(3, 0), 2),
		},
		{
			Name:        "Circle-Circle Collision (Separate)",
			Kind:        KindCircleCircle,
			Circle:      geometry.NewCircle(vec(0, 0), 1),
			OtherCircle: geometry.NewCircle(vec(5, 0), 1),
		},
		{
			Name:   "Point-Circle Collision (Inside)",
			Kind:   KindPointCircle,
			Point:  vec(1, 1),
			Circle: geometry.NewCircle(vec(0, 0), 2),
		},
		{
			Name:   "Point-Circle Collision (Outside)",
			Kind:   KindPointCircle,
			Point:  vec(5, 5),
			Circle: geometry.NewCircle(vec(0, 0), 2),
		},
		{
			Name:   "Ray Tangent to Circle",
			Kind:   KindRayCircle,
			Ray:    geometry.NewRay(vec(0, 0), vec(1, 0)),
			Circle: geometry.NewCircle(vec(5, 1), 1),
		},
		{
			Name:   "Ray Pointing Backwards",
			Kind:   KindRayCircle,
			Ray:    geometry.NewRay(vec(5, 5), vec(-1, 0)),
			Circle: geometry.NewCircle(vec(10, 5), 1),
		},
		{
			// literal on purpose: the direction is left unnormalized
			Name:   "Unnormalized Ray Direction",
			Kind:   KindRayCircle,
			Ray:    geometry.Ray{Origin: vec(0, 0), Direction: vec(1, 1)},
			Circle: geometry.NewCircle(vec(2, 2), 1),
		},
		{
			Name:     "AABB Touching Corner",
			Kind:     KindAABBAABB,
			Box:      geometry.NewAABB(vec(1, 1), vec(2, 2)),
			OtherBox: geometry.NewAABB(vec(2, 2), vec(4, 4)),
		},
		{
			Name:     "AABB Touching Corner (Swapped)",
			Kind:     KindAABBAABB,
			Box:      geometry.NewAABB(vec(2, 2), vec(4, 4)),
			OtherBox: geometry.NewAABB(vec(1, 1), vec(2, 2)),
		},
		{
			Name:     "AABB Separate",
			Kind:     KindAABBAABB,
			Box:      geometry.NewAABB(vec(1, 1), vec(2, 2)),
			OtherBox: geometry.NewAABB(vec(1, 3), vec(2, 4)),
		},
		{
			Name:     "AABB Against Empty Box",
			Kind:     KindAABBAABB,
			Box:      geometry.NewAABB(vec(-1, -1), vec(1, 1)),
			OtherBox: geometry.EmptyAABB(),
		},
		{
			Name:   "AABB-Circle Touching",
			Kind:   KindAABBCircle,
			Circle: geometry.NewCircle(vec(1, 2), 1),
			Box:    geometry.NewAABB(vec(1, 3), vec(2, 4)),
		},
	}
}
