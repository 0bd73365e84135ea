package collision

import "github.com/KratosDevT/geometry-collision-lib/geometry"

// Result describes a ray hit. When Hit is false the other fields are zero.
type Result struct {
	Hit      bool
	Distance float64         // distance from the ray origin to HitPoint
	HitPoint geometry.Vector // Origin + Direction*Distance
	Normal   geometry.Vector // unit surface normal pointing away from the circle center
}
