package systems_test

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/tickinterp/components"
	"github.com/automoto/tickinterp/mathutil"
	"github.com/automoto/tickinterp/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testEpsilon = 1e-9

func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreatePhysicsWorld(e)
	return e
}

func spawnDynamic(e *ecs.ECS, pos mgl64.Vec3) *donburi.Entry {
	return factory.CreateBody(e, factory.BodyConfig{
		Kind:     components.BodyDynamic,
		Position: pos,
	})
}

func setOverstep(e *ecs.ECS, alpha float64) {
	entry, _ := components.FixedTime.First(e.World)
	components.FixedTime.Get(entry).Overstep = alpha
}

func setTimestep(e *ecs.ECS, seconds float64) {
	entry, _ := components.FixedTime.First(e.World)
	components.FixedTime.Get(entry).Timestep = secondsToDuration(seconds)
}

func translationOf(e *donburi.Entry) mgl64.Vec3 {
	return components.Transform.Get(e).Translation
}

func assertVec3(t *testing.T, name string, got, want mgl64.Vec3) {
	t.Helper()
	if !mathutil.NearVec3(got, want, testEpsilon) {
		t.Errorf("Expected %s to be %v, got %v", name, want, got)
	}
}

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("Expected %s to be %v, got %v", name, want, got)
	}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
