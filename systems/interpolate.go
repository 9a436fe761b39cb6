package systems

import (
	"github.com/automoto/tickinterp/components"
	cfg "github.com/automoto/tickinterp/config"
	"github.com/automoto/tickinterp/mathutil"
	"github.com/automoto/tickinterp/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InterpolateTransforms runs once per presentation frame, after the clock has
// published how far into the next tick the frame is. It writes the blended
// pose of every interpolated entity into its presentation transform and
// resolves world transforms parents-first.
func InterpolateTransforms(ecs *ecs.ECS) {
	runTransformPass(ecs.World, Overstep(ecs.World), true)
}

// PropagateTransforms resolves world transforms without blending anything.
// Setup code runs it once after spawning so the first frame starts from
// resolved parents.
func PropagateTransforms(ecs *ecs.ECS) {
	runTransformPass(ecs.World, 0, false)
}

// Overstep returns the clamped progress fraction published by the clock, or 0
// when there is no clock.
func Overstep(w donburi.World) float64 {
	entry, ok := components.FixedTime.First(w)
	if !ok {
		return 0
	}
	return mathutil.ClampAlpha(components.FixedTime.Get(entry).Overstep)
}

func runTransformPass(w donburi.World, alpha float64, blend bool) {
	nodes := TransformOrder(w)
	resolved := make(map[donburi.Entity]mathutil.TRS, len(nodes))

	for _, n := range nodes {
		var parent mathutil.TRS
		hasParent := false
		if n.HasParent {
			parent, hasParent = resolved[n.Parent]
		}

		if blend && isInterpolated(n.Entry) {
			if composed := interpolateEntry(n.Entry, parent, hasParent, alpha); !composed {
				hasParent = false
			}
		}

		global := components.Transform.Get(n.Entry).TRS
		if hasParent {
			global = parent.Mul(global)
		}
		components.GlobalTransform.Get(n.Entry).TRS = global
		resolved[n.Entry.Entity()] = global
	}
}

func isInterpolated(e *donburi.Entry) bool {
	return e.HasComponent(components.Interpolation) && !e.HasComponent(tags.DisableInterpolation)
}

// blendedPose holds the world-space values computed for one entity. A field
// is only written when its has flag is set.
type blendedPose struct {
	translation    mgl64.Vec3
	rotation       mgl64.Quat
	scale          mgl64.Vec3
	hasTranslation bool
	hasRotation    bool
	hasScale       bool
}

// interpolateEntry writes the blended pose of e into its transform. It
// returns false when the parent transform could not be inverted, in which
// case world-space values were written and e should be treated as unparented
// for this frame.
func interpolateEntry(e *donburi.Entry, parent mathutil.TRS, hasParent bool, alpha float64) bool {
	policy := components.Interpolation.Get(e)
	pose := blendPose(e, policy, alpha)

	composed := true
	if hasParent {
		local, ok := toLocal(parent, pose)
		if ok {
			pose = local
		} else {
			composed = false
		}
	}

	tf := components.Transform.Get(e)
	eps := cfg.Interpolation.WriteEpsilon
	if pose.hasTranslation && !mathutil.NearVec3(tf.Translation, pose.translation, eps) {
		tf.Translation = pose.translation
	}
	if pose.hasRotation && !mathutil.NearQuat(tf.Rotation, pose.rotation, eps) {
		tf.Rotation = pose.rotation
	}
	if pose.hasScale && !mathutil.NearVec3(tf.Scale, pose.scale, eps) {
		tf.Scale = pose.scale
	}
	return composed
}

func blendPose(e *donburi.Entry, policy *components.InterpolationData, alpha float64) blendedPose {
	var pose blendedPose

	if policy.Translation != components.InterpolateOff &&
		e.HasComponent(components.Position) && e.HasComponent(components.PreviousPosition) {
		current := components.Position.Get(e).Vec3
		switch policy.Translation {
		case components.InterpolateBlend:
			pose.translation = mathutil.LerpVec3(components.PreviousPosition.Get(e).Vec3, current, alpha)
		default:
			pose.translation = current
		}
		pose.hasTranslation = true
	}

	if policy.Rotation != components.InterpolateOff &&
		e.HasComponent(components.Rotation) && e.HasComponent(components.PreviousRotation) {
		current := components.Rotation.Get(e).Quat
		switch policy.Rotation {
		case components.InterpolateBlend:
			pose.rotation = mathutil.Slerp(components.PreviousRotation.Get(e).Quat, current, alpha)
		default:
			pose.rotation = current.Normalize()
		}
		pose.hasRotation = true
	}

	if policy.Scale != components.InterpolateOff &&
		e.HasComponent(components.Collider) && e.HasComponent(components.PreviousScale) {
		current := components.Collider.Get(e).Scale()
		switch policy.Scale {
		case components.InterpolateBlend:
			pose.scale = mathutil.LerpVec3(components.PreviousScale.Get(e).Vec3, current, alpha)
		default:
			pose.scale = current
		}
		pose.hasScale = true
	}

	return pose
}

// toLocal re-expresses the written fields of a world pose in parent space.
func toLocal(parent mathutil.TRS, world blendedPose) (blendedPose, bool) {
	local := world
	if world.hasTranslation {
		t, ok := parent.LocalTranslation(world.translation)
		if !ok {
			return world, false
		}
		local.translation = t
	}
	if world.hasRotation {
		local.rotation = parent.LocalRotation(world.rotation)
	}
	if world.hasScale {
		s, ok := parent.LocalScale(world.scale)
		if !ok {
			return world, false
		}
		local.scale = s
	}
	return local, true
}
