package viewer

import (
	"image/color"

	"github.com/KratosDevT/geometry-collision-lib/collision"
	"github.com/KratosDevT/geometry-collision-lib/geometry"
	"github.com/KratosDevT/geometry-collision-lib/scenario"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	strokeWidth  = 2
	pointRadius  = 4
	normalLength = 1.0 // world units
)

func (v *Viewer) drawAxes(screen *ebiten.Image) {
	x0, y0 := v.camera.toScreen(geometry.Vector{X: 0, Y: 0})
	w, h := float32(v.camera.width), float32(v.camera.height)
	vector.StrokeLine(screen, 0, y0, w, y0, 1, colorAxis, false)
	vector.StrokeLine(screen, x0, 0, x0, h, 1, colorAxis, false)
}

func (v *Viewer) drawRayCircle(screen *ebiten.Image) {
	ray := v.active.Ray
	result := v.outcome.Result

	v.drawCircle(screen, v.active.Circle, v.shapeColor(colorShape))
	v.drawPoint(screen, ray.Origin, colorRay)

	// Direction may be unnormalized when the ray came from a struct literal
	far := ray.Origin.Add(ray.Direction.Normalize().Scale(v.camera.viewDistance()))
	if !result.Hit {
		v.drawSegment(screen, ray.Origin, far, colorRay)
		return
	}

	v.drawSegment(screen, ray.Origin, result.HitPoint, colorRay)
	v.drawPoint(screen, result.HitPoint, colorHit)
	v.drawSegment(screen, result.HitPoint, result.HitPoint.Add(result.Normal.Scale(normalLength)), colorNormal)

	reflected := ray.Direction.Normalize().Reflect(result.Normal)
	v.drawSegment(screen, result.HitPoint, result.HitPoint.Add(reflected.Scale(v.camera.viewDistance())), colorReflected)
}

func (v *Viewer) drawSegment(screen *ebiten.Image, from, to geometry.Vector, col color.Color) {
	x0, y0 := v.camera.toScreen(from)
	x1, y1 := v.camera.toScreen(to)
	vector.StrokeLine(screen, x0, y0, x1, y1, strokeWidth, col, true)
}

func (v *Viewer) drawPoint(screen *ebiten.Image, p geometry.Vector, col color.Color) {
	x, y := v.camera.toScreen(p)
	vector.DrawFilledCircle(screen, x, y, pointRadius, col, true)
}

func (v *Viewer) drawCircle(screen *ebiten.Image, c geometry.Circle, col color.Color) {
	x, y := v.camera.toScreen(c.Center)
	if c.Radius == 0 {
		vector.DrawFilledCircle(screen, x, y, pointRadius, col, true)
		return
	}
	vector.StrokeCircle(screen, x, y, float32(c.Radius*v.camera.scale), strokeWidth, col, true)
}

func (v *Viewer) drawBox(screen *ebiten.Image, box geometry.AABB, col color.Color) {
	if box.IsEmpty() {
		return
	}
	// Max.Y is the top edge once y is flipped
	x, y := v.camera.toScreen(geometry.Vector{X: box.Min.X, Y: box.Max.Y})
	width := float32(box.Width() * v.camera.scale)
	height := float32(box.Height() * v.camera.scale)
	vector.StrokeRect(screen, x, y, width, height, strokeWidth, col, true)
}

func closestPoint(s scenario.Scenario) geometry.Vector {
	return collision.ClosestPoint(s.Box, s.Circle.Center)
}
