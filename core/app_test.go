package core

import (
	"errors"
	"testing"
	"time"

	"github.com/automoto/tickinterp/components"
	"github.com/automoto/tickinterp/mathutil"
	"github.com/automoto/tickinterp/systems"
	"github.com/automoto/tickinterp/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestApp() *App {
	app := NewApp(donburi.NewWorld())
	app.Clock = NewFixedClock(20, 250*time.Millisecond)
	app.OnStartup(func(e *ecs.ECS) error {
		factory.CreatePhysicsWorld(e)
		return nil
	})
	return app
}

func TestStartupFailsWithoutSyncConfig(t *testing.T) {
	app := NewApp(donburi.NewWorld())

	err := app.Startup()
	if !errors.Is(err, systems.ErrSyncConfigMissing) {
		t.Fatalf("Expected ErrSyncConfigMissing, got %v", err)
	}
	if again := app.Startup(); again != err {
		t.Errorf("Expected the same error on every call, got %v", again)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected Frame to panic after a failed startup")
		}
	}()
	app.Frame(time.Second)
}

func TestStartupHookErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")
	app := newTestApp()
	app.OnStartup(func(*ecs.ECS) error { return boom })

	if err := app.Startup(); !errors.Is(err, boom) {
		t.Errorf("Expected hook error, got %v", err)
	}
}

func TestStartupRunsOnce(t *testing.T) {
	app := newTestApp()
	calls := 0
	app.OnStartup(func(*ecs.ECS) error {
		calls++
		return nil
	})

	app.Frame(0)
	app.Frame(0)
	if err := app.Startup(); err != nil {
		t.Fatal(err)
	}

	if calls != 1 {
		t.Errorf("Expected startup hook to run once, got %d", calls)
	}
	entry, _ := components.SyncConfig.First(app.ECS.World)
	if sync := components.SyncConfig.Get(entry); sync.PositionToTransform || sync.TransformToPosition {
		t.Errorf("Expected transform sync disabled after startup, got %+v", *sync)
	}
}

func TestTickScheduleOrder(t *testing.T) {
	app := newTestApp()
	var order []string
	record := func(name string) ecs.System {
		return func(*ecs.ECS) { order = append(order, name) }
	}

	app.AddTickSystem(PhaseLast, record("tick last"))
	app.AddSimulationSystem(record("simulation"))
	app.AddTickSystem(PhaseFirst, record("tick first"))
	app.AddFrameSystem(PhaseFirst, record("frame first"))
	app.AddFrameSystem(PhaseLast, record("frame last"))

	if ticks := app.Frame(50 * time.Millisecond); ticks != 1 {
		t.Fatalf("Expected 1 tick, got %d", ticks)
	}

	want := []string{"tick first", "simulation", "tick last", "frame first", "frame last"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Expected step %d to be %q, got %q", i, want[i], order[i])
		}
	}
}

func TestFrameWithoutTickStillPresents(t *testing.T) {
	app := newTestApp()
	ticked := false
	app.AddSimulationSystem(func(*ecs.ECS) { ticked = true })
	presented := false
	app.AddFrameSystem(PhaseLast, func(*ecs.ECS) { presented = true })

	if ticks := app.Frame(10 * time.Millisecond); ticks != 0 {
		t.Errorf("Expected no tick, got %d", ticks)
	}
	if ticked {
		t.Error("Expected simulation not to run")
	}
	if !presented {
		t.Error("Expected frame systems to run")
	}
}

// A body moving at 10 units/s, ticked at 20Hz, is presented between its last
// two committed positions.
func TestFramesBlendBetweenTicks(t *testing.T) {
	app := newTestApp()
	app.AddSimulationSystem(systems.StepPhysics)

	var body *donburi.Entry
	app.OnStartup(func(e *ecs.ECS) error {
		body = factory.CreateBody(e, factory.BodyConfig{
			Kind:     components.BodyDynamic,
			Velocity: components.VelocityData{Linear: mgl64.Vec3{10, 0, 0}},
		})
		return nil
	})

	// One tick (0 -> 0.5) plus half of the next
	app.Frame(75 * time.Millisecond)
	assertTranslation(t, body, mgl64.Vec3{0.25, 0, 0})

	// Second tick (0.5 -> 1.0), exactly on the boundary
	app.Frame(25 * time.Millisecond)
	assertTranslation(t, body, mgl64.Vec3{0.5, 0, 0})

	// A quarter into the third tick
	app.Frame(12500 * time.Microsecond)
	assertTranslation(t, body, mgl64.Vec3{0.625, 0, 0})

	entry, _ := components.FixedTime.First(app.ECS.World)
	if tick := components.FixedTime.Get(entry).Tick; tick != 2 {
		t.Errorf("Expected 2 committed ticks, got %d", tick)
	}
}

func assertTranslation(t *testing.T, e *donburi.Entry, want mgl64.Vec3) {
	t.Helper()
	if got := components.Transform.Get(e).Translation; !mathutil.NearVec3(got, want, 1e-12) {
		t.Errorf("Expected translation %v, got %v", want, got)
	}
}
