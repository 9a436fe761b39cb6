package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/tickinterp/components"
	"github.com/automoto/tickinterp/mathutil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// ErrSyncConfigMissing means the simulation was not set up before the
// interpolation started, so its pose/transform copy could not be turned off.
var ErrSyncConfigMissing = errors.New("transform sync config not found")

var syncQuery = donburi.NewQuery(filter.Contains(
	components.RigidBody,
	components.Position,
	components.Rotation,
	components.Transform,
))

// DisableTransformSync turns off the simulation's own copy between the
// authoritative pose and the presentation transform in both directions,
// leaving the interpolation as the only writer of the transform. It must run
// once before the first tick.
func DisableTransformSync(w donburi.World) error {
	entry, ok := components.SyncConfig.First(w)
	if !ok {
		return fmt.Errorf("%w: create the physics world before starting interpolation", ErrSyncConfigMissing)
	}
	sync := components.SyncConfig.Get(entry)
	sync.PositionToTransform = false
	sync.TransformToPosition = false
	log.Println("Transform sync disabled, interpolation owns presentation transforms")
	return nil
}

func syncConfig(w donburi.World) (*components.SyncConfigData, bool) {
	entry, ok := components.SyncConfig.First(w)
	if !ok {
		return nil, false
	}
	return components.SyncConfig.Get(entry), true
}

// SyncPositionToTransform copies each body's committed pose into its
// presentation transform. This is the simulation's default presentation and
// does nothing once DisableTransformSync has run.
func SyncPositionToTransform(ecs *ecs.ECS) {
	sync, ok := syncConfig(ecs.World)
	if !ok || !sync.PositionToTransform {
		return
	}
	syncQuery.Each(ecs.World, func(e *donburi.Entry) {
		world := mathutil.TRS{
			Translation: components.Position.Get(e).Vec3,
			Rotation:    components.Rotation.Get(e).Quat,
		}
		tf := components.Transform.Get(e)
		if parent, ok := parentGlobal(ecs.World, e); ok {
			if t, ok := parent.LocalTranslation(world.Translation); ok {
				world.Translation = t
				world.Rotation = parent.LocalRotation(world.Rotation)
			}
		}
		tf.Translation = world.Translation
		tf.Rotation = world.Rotation
	})
}

// SyncTransformToPosition copies each body's resolved world transform back
// into its pose, letting code move bodies by editing transforms. It does
// nothing once DisableTransformSync has run.
func SyncTransformToPosition(ecs *ecs.ECS) {
	sync, ok := syncConfig(ecs.World)
	if !ok || !sync.TransformToPosition {
		return
	}
	syncQuery.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.GlobalTransform) {
			return
		}
		global := components.GlobalTransform.Get(e)
		components.Position.Get(e).Vec3 = global.Translation
		components.Rotation.Get(e).Quat = global.Rotation
	})
}

func parentGlobal(w donburi.World, e *donburi.Entry) (mathutil.TRS, bool) {
	parent, ok := parentOf(w, e)
	if !ok {
		return mathutil.TRS{}, false
	}
	entry := w.Entry(parent)
	if !entry.HasComponent(components.GlobalTransform) {
		return mathutil.TRS{}, false
	}
	return components.GlobalTransform.Get(entry).TRS, true
}
