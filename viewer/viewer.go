package viewer

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/KratosDevT/geometry-collision-lib/assets"
	"github.com/KratosDevT/geometry-collision-lib/config"
	"github.com/KratosDevT/geometry-collision-lib/geometry"
	"github.com/KratosDevT/geometry-collision-lib/logger"
	"github.com/KratosDevT/geometry-collision-lib/scenario"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	colorBackground = color.RGBA{0, 0, 0, 255}
	colorAxis       = color.RGBA{40, 40, 40, 255}
	colorShape      = color.RGBA{0, 160, 255, 255}
	colorOther      = color.RGBA{0, 0, 255, 255}
	colorHit        = color.RGBA{255, 50, 50, 255}
	colorRay        = color.RGBA{0, 255, 0, 255}
	colorNormal     = color.RGBA{255, 255, 0, 255}
	colorReflected  = color.RGBA{255, 140, 0, 255}
)

// Viewer is an ebiten game that shows one scenario at a time.
type Viewer struct {
	cfg       *config.Config
	scenarios []scenario.Scenario
	current   int
	active    scenario.Scenario
	outcome   scenario.Outcome
	camera    camera
	logger    logger.Logger
}

func NewViewer(cfg *config.Config, scenarios []scenario.Scenario, log logger.Logger) (*Viewer, error) {
	if len(scenarios) == 0 {
		return nil, errors.New("no scenarios to show")
	}

	v := &Viewer{
		cfg:       cfg,
		scenarios: scenarios,
		logger:    log,
		camera: camera{
			scale:  cfg.GetViewScale(),
			width:  cfg.GetWindowWidth(),
			height: cfg.GetWindowHeight(),
		},
	}
	if err := v.selectScenario(0); err != nil {
		return nil, err
	}

	v.logger.Info("viewer initialized", "scenarios", len(scenarios), "scale", v.camera.scale)
	return v, nil
}

func (v *Viewer) Run() error {
	v.logger.Info("starting viewer")
	v.setupWindow()

	return ebiten.RunGame(v)
}

func (v *Viewer) setupWindow() {
	ebiten.SetWindowSize(v.cfg.GetWindowWidth(), v.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(v.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
}

func (v *Viewer) selectScenario(index int) error {
	n := len(v.scenarios)
	index = ((index % n) + n) % n

	v.current = index
	v.active = v.scenarios[index]
	v.camera.center = focus(v.active)

	outcome, err := scenario.Evaluate(v.active)
	if err != nil {
		return fmt.Errorf("failed to evaluate scenario: %w", err)
	}
	v.outcome = outcome

	v.logger.Debug("scenario selected", "index", index, "name", v.active.Name, "collided", outcome.Collided)
	return nil
}

func (v *Viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight), inpututil.IsKeyJustPressed(ebiten.KeyN):
		return v.selectScenario(v.current + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft), inpututil.IsKeyJustPressed(ebiten.KeyP):
		return v.selectScenario(v.current - 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		return v.selectScenario(v.current)
	}

	// Holding the left button aims the ray at the cursor
	if v.active.Kind == scenario.KindRayCircle && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		v.aimRay(v.getCursorWorldPosition())
	}

	return nil
}

func (v *Viewer) aimRay(target geometry.Vector) {
	direction := target.Sub(v.active.Ray.Origin)
	if direction.Normalize() == (geometry.Vector{}) {
		return
	}

	wasHit := v.outcome.Collided
	v.active.Ray = geometry.NewRay(v.active.Ray.Origin, direction)
	outcome, err := scenario.Evaluate(v.active)
	if err != nil {
		v.logger.Error("failed to evaluate aimed ray", "err", err)
		return
	}
	v.outcome = outcome

	if outcome.Collided != wasHit {
		v.logger.Debug("ray hit changed", "hit", outcome.Collided, "direction", v.active.Ray.Direction, "distance", outcome.Result.Distance)
	}
}

func (v *Viewer) getCursorWorldPosition() geometry.Vector {
	mouseX, mouseY := ebiten.CursorPosition()
	return v.camera.toWorld(mouseX, mouseY)
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	v.drawAxes(screen)

	s := v.active
	switch s.Kind {
	case scenario.KindRayCircle:
		v.drawRayCircle(screen)
	case scenario.KindCircleCircle:
		v.drawCircle(screen, s.Circle, v.shapeColor(colorShape))
		v.drawCircle(screen, s.OtherCircle, v.shapeColor(colorOther))
	case scenario.KindPointCircle:
		v.drawCircle(screen, s.Circle, v.shapeColor(colorShape))
		v.drawPoint(screen, s.Point, colorRay)
	case scenario.KindAABBAABB:
		v.drawBox(screen, s.Box, v.shapeColor(colorShape))
		v.drawBox(screen, s.OtherBox, v.shapeColor(colorOther))
	case scenario.KindAABBCircle:
		v.drawBox(screen, s.Box, v.shapeColor(colorOther))
		v.drawCircle(screen, s.Circle, v.shapeColor(colorShape))
		v.drawPoint(screen, closestPoint(s), colorNormal)
	}

	v.drawLabels(screen)
}

func (v *Viewer) shapeColor(base color.Color) color.Color {
	if v.outcome.Collided {
		return colorHit
	}
	return base
}

func (v *Viewer) drawLabels(screen *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("%d/%d  %s", v.current+1, len(v.scenarios), v.active.Name),
		fmt.Sprintf("collision: %t", v.outcome.Collided),
	}
	if v.active.Kind == scenario.KindRayCircle && v.outcome.Result.Hit {
		r := v.outcome.Result
		lines = append(lines,
			fmt.Sprintf("distance: %.4f", r.Distance),
			fmt.Sprintf("hit point: (%.4f, %.4f)", r.HitPoint.X, r.HitPoint.Y),
			fmt.Sprintf("normal: (%.4f, %.4f)", r.Normal.X, r.Normal.Y),
		)
	}
	if v.outcome.Mismatch() {
		lines = append(lines, "overlap routines disagree!")
	}

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(20, float64(20+i*24))
		op.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, assets.LabelFont, op)
	}

	instructionText := "Left/Right: change scenario   Hold mouse: aim ray   R: reset"
	op := &text.DrawOptions{}
	op.GeoM.Translate(20, float64(v.camera.height-30))
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, instructionText, assets.LabelFont, op)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return v.camera.width, v.camera.height
}
