package viewer

import (
	"github.com/KratosDevT/geometry-collision-lib/geometry"
	"github.com/KratosDevT/geometry-collision-lib/scenario"
)

// camera maps world units (y up) to screen pixels (y down), centered on center.
type camera struct {
	center geometry.Vector
	scale  float64
	width  int
	height int
}

func (c camera) toScreen(p geometry.Vector) (float32, float32) {
	x := float64(c.width)/2 + (p.X-c.center.X)*c.scale
	y := float64(c.height)/2 - (p.Y-c.center.Y)*c.scale
	return float32(x), float32(y)
}

func (c camera) toWorld(x, y int) geometry.Vector {
	return geometry.Vector{
		X: c.center.X + (float64(x)-float64(c.width)/2)/c.scale,
		Y: c.center.Y - (float64(y)-float64(c.height)/2)/c.scale,
	}
}

// viewDistance is a length that reaches past the edge of the window from anywhere on it.
func (c camera) viewDistance() float64 {
	return geometry.Vector{X: float64(c.width), Y: float64(c.height)}.Magnitude() / c.scale * 2
}

// focus picks the point the camera centers on for a scenario.
func focus(s scenario.Scenario) geometry.Vector {
	points := make([]geometry.Vector, 0, 4)

	switch s.Kind {
	case scenario.KindRayCircle:
		points = append(points, s.Ray.Origin, s.Circle.Center)
	case scenario.KindCircleCircle:
		points = append(points, s.Circle.Center, s.OtherCircle.Center)
	case scenario.KindPointCircle:
		points = append(points, s.Point, s.Circle.Center)
	case scenario.KindAABBAABB:
		points = appendBoxCenter(points, s.Box)
		points = appendBoxCenter(points, s.OtherBox)
	case scenario.KindAABBCircle:
		points = appendBoxCenter(points, s.Box)
		points = append(points, s.Circle.Center)
	}

	if len(points) == 0 {
		return geometry.Vector{}
	}
	var sum geometry.Vector
	for _, p := range points {
		sum = sum.Add(p)
	}
	return sum.Div(float64(len(points)))
}

func appendBoxCenter(points []geometry.Vector, box geometry.AABB) []geometry.Vector {
	if box.IsEmpty() {
		return points
	}
	return append(points, box.Min.Add(box.Max).Scale(0.5))
}
