package scenes

import (
	"image/color"
	"math"
	"time"

	"github.com/automoto/tickinterp/components"
	cfg "github.com/automoto/tickinterp/config"
	"github.com/automoto/tickinterp/core"
	"github.com/automoto/tickinterp/mathutil"
	"github.com/automoto/tickinterp/systems"
	"github.com/automoto/tickinterp/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InterpolationScene runs a small simulation at the configured tick rate and
// presents it at the display rate.
type InterpolationScene struct {
	app      *core.App
	lastDraw time.Time
}

// NewInterpolationScene builds the demo world and starts the app. It fails
// if the interpolation could not take over the presentation transforms.
func NewInterpolationScene() (*InterpolationScene, error) {
	app := core.NewApp(donburi.NewWorld())

	app.OnStartup(func(ecs *ecs.ECS) error {
		factory.CreatePhysicsWorld(ecs)
		spawnDemo(ecs)
		systems.PropagateTransforms(ecs)
		return nil
	})

	app.AddSimulationSystem(
		systems.UpdateKinematics,
		systems.StepPhysics,
		systems.UpdateObjects,
		systems.SyncPositionToTransform,
	)
	app.AddTickSystem(core.PhaseFirst, systems.SyncTransformToPosition)
	app.AddTickSystem(core.PhaseLast, systems.WrapBodies)
	app.AddFrameSystem(core.PhaseFirst, systems.UpdateDebugInput)

	app.ECS.AddRenderer(cfg.Default, systems.DrawBodies)
	app.ECS.AddRenderer(cfg.Default, systems.DrawHUD)

	if err := app.Startup(); err != nil {
		return nil, err
	}
	return &InterpolationScene{app: app}, nil
}

func spawnDemo(ecs *ecs.ECS) {
	w, h := float64(cfg.C.Width), float64(cfg.C.Height)

	// Spinning drifter with a prop orbiting it
	spinner := factory.CreateBody(ecs, factory.BodyConfig{
		Kind:     components.BodyDynamic,
		Position: mgl64.Vec3{w * 0.25, h * 0.5, 0},
		Velocity: components.VelocityData{
			Linear:  mgl64.Vec3{60, 0, 0},
			Angular: mgl64.Vec3{0, 0, math.Pi / 2},
		},
		Width:  48,
		Height: 24,
	})
	factory.CreateProp(ecs, spinner, mathutil.TRS{
		Translation: mgl64.Vec3{40, 0, 0},
		Rotation:    mgl64.QuatIdent(),
		Scale:       mgl64.Vec3{1, 1, 1},
	})

	// Fast body crossing the screen diagonally
	factory.CreateBody(ecs, factory.BodyConfig{
		Kind:     components.BodyDynamic,
		Position: mgl64.Vec3{w * 0.1, h * 0.1, 0},
		Velocity: components.VelocityData{Linear: mgl64.Vec3{180, 90, 0}},
		Width:    20,
		Height:   20,
	})

	// Eased kinematic mover whose collider also pulses
	mover := factory.CreateKinematicMover(ecs,
		mgl64.Vec3{w * 0.6, h * 0.2, 0},
		mgl64.Vec3{w * 0.6, h * 0.8, 0},
		32, 32,
	)
	factory.AddColliderPulse(mover, 0.5, 1.5)

	// Same motion presented at the last committed pose only
	stepped := factory.CreateBody(ecs, factory.BodyConfig{
		Kind:     components.BodyDynamic,
		Position: mgl64.Vec3{w * 0.1, h * 0.85, 0},
		Velocity: components.VelocityData{Linear: mgl64.Vec3{120, 0, 0}},
		Width:    24,
		Height:   24,
	})
	components.Interpolation.SetValue(stepped, components.InterpolationData{
		Translation: components.InterpolateLast,
		Rotation:    components.InterpolateLast,
		Scale:       components.InterpolateLast,
	})

	// Static floor, never interpolated
	factory.CreateBody(ecs, factory.BodyConfig{
		Kind:     components.BodyStatic,
		Position: mgl64.Vec3{w * 0.5, h - 8, 0},
		Width:    w,
		Height:   16,
	})
}

func (s *InterpolationScene) Update() {}

func (s *InterpolationScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	now := time.Now()
	var dt time.Duration
	if !s.lastDraw.IsZero() {
		dt = now.Sub(s.lastDraw)
	}
	s.lastDraw = now

	s.app.Frame(dt)
	s.app.ECS.Draw(screen)
}
