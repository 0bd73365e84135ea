package scenario

import (
	"testing"

	"github.com/KratosDevT/geometry-collision-lib/config"
	"github.com/KratosDevT/geometry-collision-lib/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(x, y float64) config.PointConfig {
	return config.PointConfig{X: x, Y: y}
}

func TestFromConfig(t *testing.T) {
	entries := []config.ScenarioConfig{
		{
			Name: "ray",
			Kind: "ray-circle",
			Ray:  &config.RayConfig{Origin: point(0, 0), Direction: point(3, 0)},
			Circles: []config.CircleConfig{
				{Center: point(5, 0), Radius: 1},
			},
		},
		{
			Kind:  "point-circle",
			Point: &config.PointConfig{X: 1, Y: 1},
			Circles: []config.CircleConfig{
				{Center: point(0, 0), Radius: 2},
			},
		},
		{
			Name: "boxes",
			Kind: "aabb-aabb",
			Boxes: []config.BoxConfig{
				{Min: point(0, 0), Max: point(1, 1)},
				{Min: point(1, 1), Max: point(2, 2)},
			},
		},
		{
			Name: "circles",
			Kind: "circle-circle",
			Circles: []config.CircleConfig{
				{Center: point(0, 0), Radius: 1},
				{Center: point(2, 0), Radius: 1},
			},
		},
		{
			Name:    "box and circle",
			Kind:    "aabb-circle",
			Circles: []config.CircleConfig{{Center: point(1, 2), Radius: 1}},
			Boxes:   []config.BoxConfig{{Min: point(1, 3), Max: point(2, 4)}},
		},
	}

	scenarios, err := FromConfig(entries)
	require.NoError(t, err)
	require.Len(t, scenarios, 5)

	assert.Equal(t, KindRayCircle, scenarios[0].Kind)
	assert.Equal(t, geometry.NewVector(1, 0), scenarios[0].Ray.Direction, "direction is normalized")
	assert.Equal(t, "point-circle", scenarios[1].Name, "kind is the fallback name")
	assert.Equal(t, geometry.NewVector(1, 1), scenarios[1].Point)
	assert.Equal(t, geometry.NewVector(1, 1), scenarios[2].OtherBox.Min)
	assert.Equal(t, 1.0, scenarios[3].OtherCircle.Radius)

	for _, s := range scenarios {
		outcome, err := Evaluate(s)
		require.NoError(t, err)
		assert.True(t, outcome.Collided, s.Name)
	}
}

func TestFromConfigRejectsBadEntries(t *testing.T) {
	oneCircle := []config.CircleConfig{{Center: point(0, 0), Radius: 1}}

	tests := []struct {
		name    string
		entry   config.ScenarioConfig
		wantErr string
	}{
		{"unknown kind", config.ScenarioConfig{Kind: "ray-box"}, "unknown kind"},
		{"missing ray", config.ScenarioConfig{Kind: "ray-circle", Circles: oneCircle}, "missing ray"},
		{
			"zero direction",
			config.ScenarioConfig{Kind: "ray-circle", Ray: &config.RayConfig{}, Circles: oneCircle},
			"too short",
		},
		{"missing point", config.ScenarioConfig{Kind: "point-circle", Circles: oneCircle}, "missing point"},
		{"one circle for circle-circle", config.ScenarioConfig{Kind: "circle-circle", Circles: oneCircle}, "want 2 circles"},
		{"no boxes", config.ScenarioConfig{Kind: "aabb-aabb"}, "want 2 boxes"},
		{"no box for aabb-circle", config.ScenarioConfig{Kind: "aabb-circle", Circles: oneCircle}, "want 1 circle and 1 box"},
		{
			"negative radius",
			config.ScenarioConfig{Kind: "circle-circle", Circles: []config.CircleConfig{{Radius: -1}, {Radius: 1}}},
			"negative radius",
		},
		{
			"inverted box",
			config.ScenarioConfig{Kind: "aabb-aabb", Boxes: []config.BoxConfig{{Min: point(2, 2), Max: point(1, 1)}, {}}},
			"exceeds max",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.entry.Name = tc.name
			_, err := FromConfig([]config.ScenarioConfig{tc.entry})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
			assert.Contains(t, err.Error(), tc.name)
		})
	}
}
