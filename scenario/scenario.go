// Package scenario holds named collision cases, evaluates them with the
// collision package and renders a plain-text report.
package scenario

import (
	"fmt"

	"github.com/KratosDevT/geometry-collision-lib/collision"
	"github.com/KratosDevT/geometry-collision-lib/geometry"
	"github.com/KratosDevT/geometry-collision-lib/logger"
)

type Kind string

const (
	KindRayCircle    Kind = "ray-circle"
	KindCircleCircle Kind = "circle-circle"
	KindPointCircle  Kind = "point-circle"
	KindAABBAABB     Kind = "aabb-aabb"
	KindAABBCircle   Kind = "aabb-circle"
)

// Scenario is a tagged union: Kind decides which shape fields are meaningful.
type Scenario struct {
	Name        string
	Kind        Kind
	Ray         geometry.Ray
	Point       geometry.Vector
	Circle      geometry.Circle
	OtherCircle geometry.Circle
	Box         geometry.AABB
	OtherBox    geometry.AABB
}

type Outcome struct {
	Scenario Scenario
	Collided bool
	// Result is only filled for KindRayCircle.
	Result collision.Result
	// EarlyExit is the AABBsOverlapEarlyExit answer for KindAABBAABB.
	EarlyExit bool
}

// Mismatch reports an AABB case where the two overlap routines disagree.
func (o Outcome) Mismatch() bool {
	return o.Scenario.Kind == KindAABBAABB && o.Collided != o.EarlyExit
}

func Evaluate(s Scenario) (Outcome, error) {
	outcome := Outcome{Scenario: s}

	switch s.Kind {
	case KindRayCircle:
		outcome.Result = collision.RayCircle(s.Ray, s.Circle)
		outcome.Collided = outcome.Result.Hit
	case KindCircleCircle:
		outcome.Collided = collision.CirclesOverlap(s.Circle, s.OtherCircle)
	case KindPointCircle:
		outcome.Collided = collision.PointInCircle(s.Point, s.Circle)
	case KindAABBAABB:
		outcome.Collided = collision.AABBsOverlap(s.Box, s.OtherBox)
		outcome.EarlyExit = collision.AABBsOverlapEarlyExit(s.Box, s.OtherBox)
	case KindAABBCircle:
		outcome.Collided = collision.AABBCircleOverlap(s.Circle, s.Box)
	default:
		return outcome, fmt.Errorf("scenario %q: unknown kind %q", s.Name, s.Kind)
	}

	return outcome, nil
}

// EvaluateAll evaluates every scenario in order and stops at the first error.
func EvaluateAll(scenarios []Scenario, log logger.Logger) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(scenarios))
	for _, s := range scenarios {
		outcome, err := Evaluate(s)
		if err != nil {
			return nil, err
		}
		if outcome.Mismatch() {
			log.Warn("aabb overlap routines disagree", "scenario", s.Name, "overlap", outcome.Collided, "earlyExit", outcome.EarlyExit)
		}
		log.Debug("scenario evaluated", "scenario", s.Name, "kind", s.Kind, "collided", outcome.Collided)
		outcomes = append(outcomes, outcome)
	}

	return outcomes, nil
}
