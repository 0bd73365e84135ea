package collision

import (
	"math/rand"
	"testing"

	"github.com/KratosDevT/geometry-collision-lib/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func box(minX, minY, maxX, maxY float64) geometry.AABB {
	return geometry.NewAABB(vec(minX, minY), vec(maxX, maxY))
}

func TestCirclesOverlap(t *testing.T) {
	t.Run("overlapping", func(t *testing.T) {
		assert.True(t, CirclesOverlap(geometry.NewCircle(vec(0, 0), 2), geometry.NewCircle(vec(3, 0), 2)))
	})

	t.Run("separate", func(t *testing.T) {
		assert.False(t, CirclesOverlap(geometry.NewCircle(vec(0, 0), 1), geometry.NewCircle(vec(5, 0), 1)))
	})

	t.Run("exactly touching", func(t *testing.T) {
		assert.True(t, CirclesOverlap(geometry.NewCircle(vec(0, 0), 1), geometry.NewCircle(vec(3, 0), 2)))
		assert.True(t, CirclesOverlap(geometry.NewCircle(vec(0, 0), 2), geometry.NewCircle(vec(3, 4), 3)))
	})

	t.Run("one inside the other", func(t *testing.T) {
		assert.True(t, CirclesOverlap(geometry.NewCircle(vec(0, 0), 10), geometry.NewCircle(vec(1, 1), 1)))
	})

	t.Run("two points", func(t *testing.T) {
		assert.True(t, CirclesOverlap(geometry.NewCircle(vec(1, 1), 0), geometry.NewCircle(vec(1, 1), 0)))
		assert.False(t, CirclesOverlap(geometry.NewCircle(vec(1, 1), 0), geometry.NewCircle(vec(1, 2), 0)))
	})

	t.Run("symmetric", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		for i := 0; i < 1000; i++ {
			c1 := geometry.NewCircle(vec(rng.Float64()*10, rng.Float64()*10), rng.Float64()*3)
			c2 := geometry.NewCircle(vec(rng.Float64()*10, rng.Float64()*10), rng.Float64()*3)
			require.Equal(t, CirclesOverlap(c1, c2), CirclesOverlap(c2, c1), "c1=%v c2=%v", c1, c2)
		}
	})
}

func TestPointInCircle(t *testing.T) {
	circle := geometry.NewCircle(vec(0, 0), 2)

	assert.True(t, PointInCircle(vec(1, 1), circle))
	assert.False(t, PointInCircle(vec(5, 5), circle))
	assert.True(t, PointInCircle(vec(2, 0), circle), "point on the edge is inside")
	assert.True(t, PointInCircle(vec(0, -2), circle), "point on the edge is inside")
	assert.True(t, PointInCircle(vec(3, 4), geometry.NewCircle(vec(0, 0), 5)))

	point := geometry.NewCircle(vec(1, 1), 0)
	assert.True(t, PointInCircle(vec(1, 1), point))
	assert.False(t, PointInCircle(vec(1, 1.0001), point))
}

var aabbCases = []struct {
	name string
	a, b geometry.AABB
	want bool
}{
	{"basic intersection", box(0, 0, 5, 5), box(3, 3, 7, 7), true},
	{"exact overlap", box(0, 0, 5, 5), box(0, 0, 5, 5), true},
	{"one inside the other", box(0, 0, 10, 10), box(3, 3, 7, 7), true},
	{"touching corner", box(1, 1, 2, 2), box(2, 2, 4, 4), true},
	{"touching corner swapped", box(2, 2, 4, 4), box(1, 1, 2, 2), true},
	{"shared vertical edge", box(0, 0, 5, 5), box(5, 0, 10, 5), true},
	{"shared horizontal edge", box(0, 5, 5, 10), box(0, 0, 5, 5), true},
	{"separate on y", box(1, 1, 2, 2), box(1, 3, 2, 4), false},
	{"separate on x", box(0, 0, 1, 1), box(2, 0, 3, 1), false},
	{"overlap on x only", box(0, 0, 5, 1), box(2, 3, 4, 4), false},
	{"cross shape", box(-5, -1, 5, 1), box(-1, -5, 1, 5), true},
	{"degenerate point boxes", geometry.AABB{}, geometry.AABB{}, true},
	{"empty against box", geometry.EmptyAABB(), box(-1, -1, 1, 1), false},
	{"box against empty", box(-1, -1, 1, 1), geometry.EmptyAABB(), false},
	{"empty against empty", geometry.EmptyAABB(), geometry.EmptyAABB(), false},
	{"empty against huge box", geometry.EmptyAABB(), box(-1e300, -1e300, 1e300, 1e300), false},
}

func TestAABBsOverlap(t *testing.T) {
	for _, tc := range aabbCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AABBsOverlap(tc.a, tc.b))
			assert.Equal(t, tc.want, AABBsOverlap(tc.b, tc.a))
		})
	}
}

func TestAABBsOverlapEarlyExit(t *testing.T) {
	for _, tc := range aabbCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AABBsOverlapEarlyExit(tc.a, tc.b))
			assert.Equal(t, AABBsOverlap(tc.a, tc.b), AABBsOverlapEarlyExit(tc.a, tc.b))
		})
	}
}

func TestAABBOverlapRoutinesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	// integer grid coordinates make shared edges common
	randomBox := func() geometry.AABB {
		if rng.Intn(10) == 0 {
			return geometry.EmptyAABB()
		}
		x, y := float64(rng.Intn(8)), float64(rng.Intn(8))
		return box(x, y, x+float64(rng.Intn(4)), y+float64(rng.Intn(4)))
	}

	for i := 0; i < 5000; i++ {
		a, b := randomBox(), randomBox()
		require.Equal(t, AABBsOverlap(a, b), AABBsOverlapEarlyExit(a, b), "a=%v b=%v", a, b)
	}
}

func TestClosestPoint(t *testing.T) {
	b := box(1, 3, 2, 4)

	assert.Equal(t, vec(1, 3), ClosestPoint(b, vec(1, 2)))
	assert.Equal(t, vec(2, 4), ClosestPoint(b, vec(9, 9)))
	assert.Equal(t, vec(1.5, 3.5), ClosestPoint(b, vec(1.5, 3.5)))
	assert.Equal(t, vec(2, 3.2), ClosestPoint(b, vec(5, 3.2)))
}

func TestAABBCircleOverlap(t *testing.T) {
	tests := []struct {
		name   string
		circle geometry.Circle
		box    geometry.AABB
		want   bool
	}{
		{"touching box corner", geometry.NewCircle(vec(1, 2), 1), box(1, 3, 2, 4), true},
		{"center inside box", geometry.NewCircle(vec(0, 0), 0.5), box(-1, -1, 1, 1), true},
		{"box inside circle", geometry.NewCircle(vec(0, 0), 10), box(-1, -1, 1, 1), true},
		{"near a face", geometry.NewCircle(vec(3, 0), 1.5), box(-1, -1, 2, 1), true},
		{"just outside a face", geometry.NewCircle(vec(3.5, 0), 1.4), box(-1, -1, 2, 1), false},
		{"outside the corner diagonal", geometry.NewCircle(vec(3, 3), 1.4), box(0, 0, 2, 2), false},
		{"zero radius on the edge", geometry.NewCircle(vec(2, 0.5), 0), box(0, 0, 2, 2), true},
		{"empty box", geometry.NewCircle(vec(0, 0), 100), geometry.EmptyAABB(), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AABBCircleOverlap(tc.circle, tc.box))
		})
	}
}
