package systems

import (
	"github.com/automoto/tickinterp/components"
	cfg "github.com/automoto/tickinterp/config"
	"github.com/automoto/tickinterp/mathutil"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var dynamicQuery = donburi.NewQuery(filter.Contains(
	components.RigidBody,
	components.Velocity,
	components.Position,
))

// TickDelta returns the length of one tick in seconds, or 0 without a clock.
func TickDelta(w donburi.World) float64 {
	entry, ok := components.FixedTime.First(w)
	if !ok {
		return 0
	}
	return components.FixedTime.Get(entry).Delta()
}

// StepPhysics integrates the velocity of every dynamic body over one tick.
func StepPhysics(ecs *ecs.ECS) {
	dt := TickDelta(ecs.World)
	if dt == 0 {
		return
	}

	dynamicQuery.Each(ecs.World, func(e *donburi.Entry) {
		if components.RigidBody.Get(e).Kind != components.BodyDynamic {
			return
		}
		vel := components.Velocity.Get(e)

		if vel.Linear != (mgl64.Vec3{}) {
			pos := components.Position.Get(e)
			pos.Vec3 = pos.Add(vel.Linear.Mul(dt))
		}

		// Angular velocity is axis * rate; skip bodies that are not spinning
		if speed := vel.Angular.Len(); speed > 0 && e.HasComponent(components.Rotation) {
			rot := components.Rotation.Get(e)
			step := mgl64.QuatRotate(speed*dt, vel.Angular.Mul(1/speed))
			rot.Quat = step.Mul(rot.Quat).Normalize()
		}
	})
}

// UpdateKinematics advances every tween by one tick and applies it to the
// kinematic path or collider pulse on the same entity.
func UpdateKinematics(ecs *ecs.ECS) {
	dt := TickDelta(ecs.World)
	if dt == 0 {
		return
	}

	components.Tween.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		if tw.Tween == nil {
			return
		}

		current, finished := tw.Tween.Update(float32(dt))
		tw.Value = float64(current)
		if tw.Reverse {
			tw.Value = 1 - tw.Value
		}
		if finished {
			tw.Tween.Reset()
			tw.Reverse = !tw.Reverse
		}

		if e.HasComponent(components.KinematicPath) && e.HasComponent(components.Position) &&
			e.HasComponent(components.RigidBody) && components.RigidBody.Get(e).Kind == components.BodyKinematic {
			path := components.KinematicPath.Get(e)
			components.Position.Get(e).Vec3 = mathutil.LerpVec3(path.From, path.To, tw.Value)
		}

		if e.HasComponent(components.ColliderPulse) && e.HasComponent(components.Collider) {
			pulse := components.ColliderPulse.Get(e)
			collider := components.Collider.Get(e)
			if collider.Object == nil {
				return
			}
			scale := mathutil.Lerp(pulse.MinScale, pulse.MaxScale, tw.Value)
			collider.W = collider.BaseWidth * scale
			collider.H = collider.BaseHeight * scale
		}
	})
}

// Teleport moves e to position without a visible slide. Only the position
// snapshot is moved along; rotation and scale keep blending.
func Teleport(e *donburi.Entry, position mgl64.Vec3) {
	if !e.Valid() || !e.HasComponent(components.Position) {
		return
	}
	components.Position.Get(e).Vec3 = position
	if e.HasComponent(components.PreviousPosition) {
		components.PreviousPosition.Get(e).Vec3 = position
	}
}

// WrapBodies moves dynamic bodies that left the screen to the opposite edge.
func WrapBodies(ecs *ecs.ECS) {
	width, height := float64(cfg.C.Width), float64(cfg.C.Height)

	var wrapped []*donburi.Entry
	var targets []mgl64.Vec3
	dynamicQuery.Each(ecs.World, func(e *donburi.Entry) {
		if components.RigidBody.Get(e).Kind != components.BodyDynamic {
			return
		}
		pos := components.Position.Get(e).Vec3
		next := mgl64.Vec3{wrap(pos.X(), width), wrap(pos.Y(), height), pos.Z()}
		if next != pos {
			wrapped = append(wrapped, e)
			targets = append(targets, next)
		}
	})
	for i, e := range wrapped {
		Teleport(e, targets[i])
	}
}

func wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	switch {
	case v < 0:
		return v + size
	case v >= size:
		return v - size
	}
	return v
}
