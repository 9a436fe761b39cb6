package systems

import (
	"github.com/automoto/tickinterp/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var snapshotQuery = donburi.NewQuery(filter.Or(
	filter.Contains(components.PreviousPosition),
	filter.Contains(components.PreviousRotation),
	filter.Contains(components.PreviousScale),
))

// CachePreviousTransforms runs at the tick boundary, before the simulation
// step. Every snapshot whose pose field moved during the last tick takes the
// committed value, so it trails the pose by exactly one tick.
func CachePreviousTransforms(ecs *ecs.ECS) {
	snapshotQuery.Each(ecs.World, func(e *donburi.Entry) {
		CommitSnapshot(e)
	})
}

// CommitSnapshot copies each changed pose field of e into its snapshot and
// reports whether anything was written. Fields without a snapshot are left
// for the lifecycle to set up.
func CommitSnapshot(e *donburi.Entry) bool {
	changed := false

	if e.HasComponent(components.PreviousPosition) && e.HasComponent(components.Position) {
		prev := components.PreviousPosition.Get(e)
		if pos := components.Position.Get(e); prev.Vec3 != pos.Vec3 {
			prev.Vec3 = pos.Vec3
			changed = true
		}
	}

	if e.HasComponent(components.PreviousRotation) && e.HasComponent(components.Rotation) {
		prev := components.PreviousRotation.Get(e)
		if rot := components.Rotation.Get(e); prev.Quat != rot.Quat {
			prev.Quat = rot.Quat
			changed = true
		}
	}

	if e.HasComponent(components.PreviousScale) && e.HasComponent(components.Collider) {
		prev := components.PreviousScale.Get(e)
		if scale := components.Collider.Get(e).Scale(); prev.Vec3 != scale {
			prev.Vec3 = scale
			changed = true
		}
	}

	return changed
}
