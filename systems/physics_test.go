package systems_test

import (
	"math"
	"testing"

	"github.com/automoto/tickinterp/components"
	"github.com/automoto/tickinterp/mathutil"
	"github.com/automoto/tickinterp/systems"
	"github.com/automoto/tickinterp/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
)

func TestStepPhysics(t *testing.T) {
	e := newTestECS(t)
	setTimestep(e, 0.5)
	body := factory.CreateBody(e, factory.BodyConfig{
		Kind: components.BodyDynamic,
		Velocity: components.VelocityData{
			Linear:  mgl64.Vec3{10, 0, 0},
			Angular: mgl64.Vec3{0, 0, math.Pi / 2},
		},
	})

	systems.StepPhysics(e)

	assertVec3(t, "position", components.Position.Get(body).Vec3, mgl64.Vec3{5, 0, 0})
	assertNear(t, "heading", mathutil.Angle2D(components.Rotation.Get(body).Quat), math.Pi/4)
}

func TestStepPhysicsLeavesOtherKindsAlone(t *testing.T) {
	e := newTestECS(t)
	setTimestep(e, 0.5)
	for _, kind := range []components.BodyKind{components.BodyKinematic, components.BodyStatic} {
		body := factory.CreateBody(e, factory.BodyConfig{
			Kind:     kind,
			Velocity: components.VelocityData{Linear: mgl64.Vec3{10, 0, 0}},
		})
		systems.StepPhysics(e)
		assertVec3(t, kind.String()+" position", components.Position.Get(body).Vec3, mgl64.Vec3{})
	}
}

func TestUpdateKinematicsMovesAlongPath(t *testing.T) {
	e := newTestECS(t)
	setTimestep(e, 0.05)
	from, to := mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 100, 0}
	mover := factory.CreateKinematicMover(e, from, to, 8, 8)

	for i := 0; i < 10; i++ {
		systems.UpdateKinematics(e)
	}

	y := components.Position.Get(mover).Y()
	if y <= 0 || y >= 100 {
		t.Errorf("Expected mover between its endpoints, got y=%v", y)
	}
	if !mover.HasComponent(components.PreviousPosition) {
		t.Error("Expected kinematic mover to be interpolated")
	}
}

func TestColliderPulseChangesScale(t *testing.T) {
	e := newTestECS(t)
	setTimestep(e, 0.1)
	body := factory.CreateBody(e, factory.BodyConfig{Kind: components.BodyKinematic, Width: 10, Height: 10})
	factory.AddColliderPulse(body, 2, 3)

	systems.UpdateKinematics(e)

	scale := components.Collider.Get(body).Scale()
	if scale.X() < 2 || scale.X() > 3 || scale.X() != scale.Y() {
		t.Errorf("Expected uniform scale within [2, 3], got %v", scale)
	}
}

func TestUpdateObjectsCentersCollider(t *testing.T) {
	e := newTestECS(t)
	body := factory.CreateBody(e, factory.BodyConfig{Kind: components.BodyDynamic, Position: mgl64.Vec3{50, 60, 0}, Width: 10, Height: 20})
	components.Position.Get(body).Vec3 = mgl64.Vec3{100, 100, 0}

	systems.UpdateObjects(e)

	obj := components.Collider.Get(body)
	if obj.X != 95 || obj.Y != 90 {
		t.Errorf("Expected collider at (95,90), got (%v,%v)", obj.X, obj.Y)
	}
}
