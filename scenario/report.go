package scenario

import (
	"bytes"
	"fmt"
	"io"

	"github.com/KratosDevT/geometry-collision-lib/geometry"
)

const banner = "========================================"

// Report writes a human-readable summary of outcomes to w. The layout is for
// people and may change.
func Report(w io.Writer, outcomes []Outcome) error {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "\n%s\n   COLLISION DETECTION TEST SUITE\n%s\n\n", banner, banner)
	for i, outcome := range outcomes {
		fmt.Fprintf(&buf, "=== TEST %d: %s ===\n", i+1, outcome.Scenario.Name)
		writeOutcome(&buf, outcome)
		buf.WriteString("\n")
	}
	fmt.Fprintf(&buf, "%s\n   ALL TESTS COMPLETED\n%s\n", banner, banner)

	_, err := w.Write(buf.Bytes())
	return err
}

func writeOutcome(buf *bytes.Buffer, outcome Outcome) {
	s := outcome.Scenario

	switch s.Kind {
	case KindRayCircle:
		if !outcome.Result.Hit {
			buf.WriteString("No collision detected.\n")
			return
		}
		buf.WriteString("=== COLLISION DETECTED ===\n")
		fmt.Fprintf(buf, "Distance: %g\n", outcome.Result.Distance)
		fmt.Fprintf(buf, "Hit Point: %s\n", formatVector(outcome.Result.HitPoint))
		fmt.Fprintf(buf, "Normal: %s\n", formatVector(outcome.Result.Normal))
		buf.WriteString("========================\n")
	case KindCircleCircle:
		if outcome.Collided {
			buf.WriteString("Circles are overlapping!\n")
		} else {
			buf.WriteString("Circles are NOT overlapping.\n")
		}
	case KindPointCircle:
		if outcome.Collided {
			buf.WriteString("Point is inside circle!\n")
		} else {
			buf.WriteString("Point is outside circle.\n")
		}
	case KindAABBAABB:
		fmt.Fprintf(buf, "BOX 1:%s\n", formatBox(s.Box))
		fmt.Fprintf(buf, "BOX 2:%s\n", formatBox(s.OtherBox))
		fmt.Fprintf(buf, "collision BOX: %s\n", formatBool(outcome.Collided))
		fmt.Fprintf(buf, "collision BOX (early exit): %s\n", formatBool(outcome.EarlyExit))
	case KindAABBCircle:
		fmt.Fprintf(buf, "AABB-Circle collision: %s\n", formatBool(outcome.Collided))
	}
}

func formatVector(v geometry.Vector) string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

func formatBox(b geometry.AABB) string {
	return fmt.Sprintf("[%s;%s]", formatVector(b.Min), formatVector(b.Max))
}

func formatBool(b bool) string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}
