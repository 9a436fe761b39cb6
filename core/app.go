package core

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/automoto/tickinterp/archetypes"
	"github.com/automoto/tickinterp/components"
	cfg "github.com/automoto/tickinterp/config"
	"github.com/automoto/tickinterp/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Phase picks which side of the built-in systems an added system runs on.
type Phase int

const (
	// PhaseFirst runs before the built-in systems of a schedule.
	PhaseFirst Phase = iota
	// PhaseLast runs after them.
	PhaseLast
)

// App owns the world, the fixed clock and the two schedules that run on it.
//
// The tick schedule runs zero or more times per frame:
//
//	first -> UpdateLifecycle -> CachePreviousTransforms -> simulation -> last
//
// The frame schedule runs once per frame after all ticks:
//
//	first -> InterpolateTransforms -> last
type App struct {
	ECS   *ecs.ECS
	Clock *FixedClock

	tickFirst  []ecs.System
	simulation []ecs.System
	tickLast   []ecs.System

	frameFirst []ecs.System
	frameLast  []ecs.System

	startup []func(*ecs.ECS) error

	once     sync.Once
	startErr error
}

// NewApp wraps world with a clock configured from config.Interpolation.
func NewApp(world donburi.World) *App {
	return &App{
		ECS:   ecs.NewECS(world),
		Clock: NewFixedClock(cfg.Interpolation.TickRate, cfg.Interpolation.MaxFrameTime),
	}
}

// AddTickSystem schedules s in the tick schedule. Systems added after
// Startup are ignored.
func (a *App) AddTickSystem(phase Phase, s ecs.System) *App {
	if phase == PhaseFirst {
		a.tickFirst = append(a.tickFirst, s)
	} else {
		a.tickLast = append(a.tickLast, s)
	}
	return a
}

// AddSimulationSystem schedules the systems that produce authoritative
// poses. They run after the snapshots are cached, in the order given.
func (a *App) AddSimulationSystem(s ...ecs.System) *App {
	a.simulation = append(a.simulation, s...)
	return a
}

// AddFrameSystem schedules s in the frame schedule.
func (a *App) AddFrameSystem(phase Phase, s ecs.System) *App {
	if phase == PhaseFirst {
		a.frameFirst = append(a.frameFirst, s)
	} else {
		a.frameLast = append(a.frameLast, s)
	}
	return a
}

// OnStartup registers fn to run once, before the transform sync is turned
// off. This is where the simulation world gets created.
func (a *App) OnStartup(fn func(*ecs.ECS) error) *App {
	a.startup = append(a.startup, fn)
	return a
}

// Startup prepares the world. It runs at most once and returns the same
// error on every call.
func (a *App) Startup() error {
	a.once.Do(func() {
		a.startErr = a.start()
	})
	return a.startErr
}

func (a *App) start() error {
	systems.RegisterLifecycle(a.ECS.World)

	for _, fn := range a.startup {
		if err := fn(a.ECS); err != nil {
			return fmt.Errorf("startup: %w", err)
		}
	}

	if _, ok := components.FixedTime.First(a.ECS.World); !ok {
		archetypes.FixedTime.Spawn(a.ECS)
	}
	a.publishTime()

	if err := systems.DisableTransformSync(a.ECS.World); err != nil {
		return err
	}

	for _, s := range a.tickFirst {
		a.ECS.AddSystem(s)
	}
	a.ECS.AddSystem(systems.UpdateLifecycle)
	a.ECS.AddSystem(systems.CachePreviousTransforms)
	for _, s := range a.simulation {
		a.ECS.AddSystem(s)
	}
	for _, s := range a.tickLast {
		a.ECS.AddSystem(s)
	}

	log.Printf("Interpolation started at %.0f ticks/second", float64(time.Second)/float64(a.Clock.Timestep()))
	return nil
}

// Frame advances the clock by frameTime, runs every tick that became due,
// then runs the frame schedule. It returns the number of ticks run and
// panics if Startup failed, since no frame can be presented correctly
// without it.
func (a *App) Frame(frameTime time.Duration) int {
	if err := a.Startup(); err != nil {
		panic(fmt.Sprintf("interpolation startup failed: %v", err))
	}

	a.Clock.Advance(frameTime)
	ticks := 0
	for a.Clock.Expend() {
		a.publishTime()
		a.ECS.Update()
		ticks++
	}
	a.publishTime()

	for _, s := range a.frameFirst {
		s(a.ECS)
	}
	systems.InterpolateTransforms(a.ECS)
	for _, s := range a.frameLast {
		s(a.ECS)
	}
	return ticks
}

func (a *App) publishTime() {
	entry, ok := components.FixedTime.First(a.ECS.World)
	if !ok {
		return
	}
	components.FixedTime.SetValue(entry, components.FixedTimeData{
		Timestep: a.Clock.Timestep(),
		Elapsed:  a.Clock.Elapsed(),
		Tick:     a.Clock.Ticks(),
		Overstep: a.Clock.Overstep(),
	})
}
