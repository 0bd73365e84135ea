package scenario

import (
	"fmt"

	"github.com/KratosDevT/geometry-collision-lib/config"
	"github.com/KratosDevT/geometry-collision-lib/geometry"
)

// FromConfig turns scenario entries from the config file into Scenarios.
// Every entry is checked for the shapes its kind needs.
func FromConfig(entries []config.ScenarioConfig) ([]Scenario, error) {
	scenarios := make([]Scenario, 0, len(entries))
	for i, entry := range entries {
		s, err := fromEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("scenario %d (%q): %w", i, entry.Name, err)
		}
		scenarios = append(scenarios, s)
	}

	return scenarios, nil
}

func fromEntry(entry config.ScenarioConfig) (Scenario, error) {
	s := Scenario{Name: entry.Name, Kind: Kind(entry.Kind)}
	if len(s.Name) == 0 {
		s.Name = entry.Kind
	}

	circles, err := toCircles(entry.Circles)
	if err != nil {
		return s, err
	}
	boxes, err := toBoxes(entry.Boxes)
	if err != nil {
		return s, err
	}

	switch s.Kind {
	case KindRayCircle:
		if entry.Ray == nil {
			return s, fmt.Errorf("missing ray")
		}
		direction := toVector(entry.Ray.Direction)
		if direction.Normalize() == (geometry.Vector{}) {
			return s, fmt.Errorf("ray direction %v is too short to normalize", direction)
		}
		if len(circles) != 1 {
			return s, fmt.Errorf("want 1 circle, got %d", len(circles))
		}
		s.Ray = geometry.NewRay(toVector(entry.Ray.Origin), direction)
		s.Circle = circles[0]
	case KindCircleCircle:
		if len(circles) != 2 {
			return s, fmt.Errorf("want 2 circles, got %d", len(circles))
		}
		s.Circle, s.OtherCircle = circles[0], circles[1]
	case KindPointCircle:
		if entry.Point == nil {
			return s, fmt.Errorf("missing point")
		}
		if len(circles) != 1 {
			return s, fmt.Errorf("want 1 circle, got %d", len(circles))
		}
		s.Point = toVector(*entry.Point)
		s.Circle = circles[0]
	case KindAABBAABB:
		if len(boxes) != 2 {
			return s, fmt.Errorf("want 2 boxes, got %d", len(boxes))
		}
		s.Box, s.OtherBox = boxes[0], boxes[1]
	case KindAABBCircle:
		if len(circles) != 1 || len(boxes) != 1 {
			return s, fmt.Errorf("want 1 circle and 1 box, got %d and %d", len(circles), len(boxes))
		}
		s.Circle, s.Box = circles[0], boxes[0]
	default:
		return s, fmt.Errorf("unknown kind %q", entry.Kind)
	}

	return s, nil
}

func toVector(p config.PointConfig) geometry.Vector {
	return geometry.NewVector(p.X, p.Y)
}

func toCircles(entries []config.CircleConfig) ([]geometry.Circle, error) {
	circles := make([]geometry.Circle, 0, len(entries))
	for _, c := range entries {
		if c.Radius < 0 {
			return nil, fmt.Errorf("negative radius %g", c.Radius)
		}
		circles = append(circles, geometry.NewCircle(toVector(c.Center), c.Radius))
	}
	return circles, nil
}

func toBoxes(entries []config.BoxConfig) ([]geometry.AABB, error) {
	boxes := make([]geometry.AABB, 0, len(entries))
	for _, b := range entries {
		box := geometry.NewAABB(toVector(b.Min), toVector(b.Max))
		if box.IsEmpty() {
			return nil, fmt.Errorf("box min %v exceeds max %v", box.Min, box.Max)
		}
		boxes = append(boxes, box)
	}
	return boxes, nil
}
