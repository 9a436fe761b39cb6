package systems

import (
	"log"

	"github.com/automoto/tickinterp/components"
	cfg "github.com/automoto/tickinterp/config"
	"github.com/automoto/tickinterp/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"
)

// LifecycleTrigger names the structural change that an entity went through.
type LifecycleTrigger int

const (
	TriggerPositionAdded LifecycleTrigger = iota
	TriggerPositionRemoved
	TriggerRotationAdded
	TriggerRotationRemoved
	TriggerColliderAdded
	TriggerColliderRemoved
	TriggerBodyKindChanged
	TriggerExcluded
	TriggerIncluded
)

func (t LifecycleTrigger) String() string {
	switch t {
	case TriggerPositionAdded:
		return "position added"
	case TriggerPositionRemoved:
		return "position removed"
	case TriggerRotationAdded:
		return "rotation added"
	case TriggerRotationRemoved:
		return "rotation removed"
	case TriggerColliderAdded:
		return "collider added"
	case TriggerColliderRemoved:
		return "collider removed"
	case TriggerBodyKindChanged:
		return "body kind changed"
	case TriggerExcluded:
		return "excluded"
	case TriggerIncluded:
		return "included"
	}
	return "unknown"
}

// LifecycleEvent is published whenever an entity gains or loses something the
// interpolation state depends on. It carries the entity rather than an entry
// so handlers can tell when the entity is already gone.
type LifecycleEvent struct {
	Entity  donburi.Entity
	Trigger LifecycleTrigger
}

// LifecycleEvents is the event stream the lifecycle handler listens on.
// Application code may subscribe to it as well.
var LifecycleEvents = events.NewEventType[LifecycleEvent]()

// lifecycleHook marks a world whose lifecycle handler is subscribed.
var lifecycleHook = donburi.NewTag().SetName("LifecycleHook")

var lifecycleQuery = donburi.NewQuery(filter.Or(
	filter.Contains(components.Position),
	filter.Contains(components.Rotation),
	filter.Contains(components.Collider),
	filter.Contains(components.PreviousPosition),
	filter.Contains(components.PreviousRotation),
	filter.Contains(components.PreviousScale),
))

// RegisterLifecycle subscribes the lifecycle handler to w. Calling it again on
// the same world does nothing.
func RegisterLifecycle(w donburi.World) {
	if _, ok := lifecycleHook.First(w); ok {
		return
	}
	w.Create(lifecycleHook)
	LifecycleEvents.Subscribe(w, OnLifecycleEvent)
}

// UpdateLifecycle is the lifecycle pass. It finds entities whose interpolation
// state no longer matches their components, which happens when code changes
// components directly instead of going through the helpers below, and
// dispatches the matching triggers.
func UpdateLifecycle(ecs *ecs.ECS) {
	RegisterLifecycle(ecs.World)

	var pending []LifecycleEvent
	lifecycleQuery.Each(ecs.World, func(e *donburi.Entry) {
		pending = appendDrift(pending, e)
	})
	for _, ev := range pending {
		LifecycleEvents.Publish(ecs.World, ev)
	}
	LifecycleEvents.ProcessEvents(ecs.World)
}

// appendDrift appends one trigger per field whose snapshot presence is wrong.
func appendDrift(pending []LifecycleEvent, e *donburi.Entry) []LifecycleEvent {
	excluded := e.HasComponent(tags.DisableInterpolation)
	fields := []struct {
		source, snapshot donburi.IComponentType
		want             bool
		added, removed   LifecycleTrigger
	}{
		{components.Position, components.PreviousPosition, wantsPoseSnapshot(e, components.Position), TriggerPositionAdded, TriggerPositionRemoved},
		{components.Rotation, components.PreviousRotation, wantsPoseSnapshot(e, components.Rotation), TriggerRotationAdded, TriggerRotationRemoved},
		{components.Collider, components.PreviousScale, wantsScaleSnapshot(e), TriggerColliderAdded, TriggerColliderRemoved},
	}
	for _, f := range fields {
		has := e.HasComponent(f.snapshot)
		switch {
		case f.want && !has:
			pending = append(pending, LifecycleEvent{Entity: e.Entity(), Trigger: f.added})
		case !f.want && has && excluded:
			pending = append(pending, LifecycleEvent{Entity: e.Entity(), Trigger: TriggerExcluded})
		case !f.want && has && !e.HasComponent(f.source):
			pending = append(pending, LifecycleEvent{Entity: e.Entity(), Trigger: f.removed})
		case !f.want && has:
			pending = append(pending, LifecycleEvent{Entity: e.Entity(), Trigger: TriggerBodyKindChanged})
		}
	}
	return pending
}

// OnLifecycleEvent brings an entity's snapshots and policy in line with its
// components. It is idempotent and ignores entities that no longer exist.
func OnLifecycleEvent(w donburi.World, ev LifecycleEvent) {
	if !w.Valid(ev.Entity) {
		return
	}
	entry := w.Entry(ev.Entity)
	if changed := refreshInterpolationState(entry); changed && cfg.Debug.LogLifecycle {
		log.Printf("interpolation lifecycle: entity %v %s", ev.Entity, ev.Trigger)
	}
}

// refreshInterpolationState creates missing snapshots from the current pose,
// drops snapshots that are no longer wanted, and keeps the policy alongside.
func refreshInterpolationState(e *donburi.Entry) bool {
	changed := false
	dropped := false

	if wantsPoseSnapshot(e, components.Position) {
		if !e.HasComponent(components.PreviousPosition) {
			pos := components.Position.Get(e)
			donburi.Add(e, components.PreviousPosition, &components.PreviousPositionData{Vec3: pos.Vec3})
			changed = true
		}
	} else if e.HasComponent(components.PreviousPosition) {
		e.RemoveComponent(components.PreviousPosition)
		changed, dropped = true, true
	}

	if wantsPoseSnapshot(e, components.Rotation) {
		if !e.HasComponent(components.PreviousRotation) {
			rot := components.Rotation.Get(e)
			donburi.Add(e, components.PreviousRotation, &components.PreviousRotationData{Quat: rot.Quat})
			changed = true
		}
	} else if e.HasComponent(components.PreviousRotation) {
		e.RemoveComponent(components.PreviousRotation)
		changed, dropped = true, true
	}

	if wantsScaleSnapshot(e) {
		if !e.HasComponent(components.PreviousScale) {
			scale := components.Collider.Get(e).Scale()
			donburi.Add(e, components.PreviousScale, &components.PreviousScaleData{Vec3: scale})
			changed = true
		}
	} else if e.HasComponent(components.PreviousScale) {
		e.RemoveComponent(components.PreviousScale)
		changed, dropped = true, true
	}

	hasSnapshot := e.HasComponent(components.PreviousPosition) ||
		e.HasComponent(components.PreviousRotation) ||
		e.HasComponent(components.PreviousScale)

	switch {
	case hasSnapshot && !e.HasComponent(components.Interpolation):
		donburi.Add(e, components.Interpolation, &components.InterpolationData{})
		changed = true
	case !hasSnapshot && e.HasComponent(components.Interpolation) &&
		(dropped || e.HasComponent(tags.DisableInterpolation)):
		e.RemoveComponent(components.Interpolation)
		changed = true
	}
	return changed
}

// wantsPoseSnapshot reports whether a position or rotation snapshot belongs on
// e: the pose field is present, the body can move, and e is not excluded.
func wantsPoseSnapshot(e *donburi.Entry, source donburi.IComponentType) bool {
	if !e.HasComponent(source) || e.HasComponent(tags.DisableInterpolation) {
		return false
	}
	if !e.HasComponent(components.RigidBody) {
		return false
	}
	return components.RigidBody.Get(e).CanMove()
}

// wantsScaleSnapshot is keyed on the collider alone, since a shape may exist
// without a body of its own. Static bodies are still left out.
func wantsScaleSnapshot(e *donburi.Entry) bool {
	if !e.HasComponent(components.Collider) || e.HasComponent(tags.DisableInterpolation) {
		return false
	}
	if e.HasComponent(components.RigidBody) && !components.RigidBody.Get(e).CanMove() {
		return false
	}
	return true
}

func dispatch(e *donburi.Entry, triggers ...LifecycleTrigger) {
	RegisterLifecycle(e.World)
	for _, t := range triggers {
		LifecycleEvents.Publish(e.World, LifecycleEvent{Entity: e.Entity(), Trigger: t})
	}
	LifecycleEvents.ProcessEvents(e.World)
}

// AttachPose gives e an authoritative pose. Snapshots are created right away,
// equal to the pose, so the first frame does not jump.
func AttachPose(e *donburi.Entry, position mgl64.Vec3, rotation mgl64.Quat) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Position) {
		components.Position.SetValue(e, components.PositionData{Vec3: position})
	} else {
		donburi.Add(e, components.Position, &components.PositionData{Vec3: position})
	}
	if e.HasComponent(components.Rotation) {
		components.Rotation.SetValue(e, components.RotationData{Quat: rotation})
	} else {
		donburi.Add(e, components.Rotation, &components.RotationData{Quat: rotation})
	}
	dispatch(e, TriggerPositionAdded, TriggerRotationAdded)
}

// DetachPose removes the authoritative pose along with its snapshots.
func DetachPose(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Position) {
		e.RemoveComponent(components.Position)
	}
	if e.HasComponent(components.Rotation) {
		e.RemoveComponent(components.Rotation)
	}
	dispatch(e, TriggerPositionRemoved, TriggerRotationRemoved)
}

// AttachCollider gives e a collision shape. Its current size becomes the
// unit scale.
func AttachCollider(e *donburi.Entry, obj *resolv.Object) {
	if !e.Valid() || obj == nil {
		return
	}
	obj.Data = e
	data := &components.ColliderData{Object: obj, BaseWidth: obj.W, BaseHeight: obj.H}
	if e.HasComponent(components.Collider) {
		components.Collider.Set(e, data)
	} else {
		donburi.Add(e, components.Collider, data)
	}
	dispatch(e, TriggerColliderAdded)
}

// DetachCollider removes the collision shape from e and from its space.
func DetachCollider(e *donburi.Entry) {
	if !e.Valid() || !e.HasComponent(components.Collider) {
		return
	}
	if obj := components.Collider.Get(e).Object; obj != nil && obj.Space != nil {
		obj.Space.Remove(obj)
	}
	e.RemoveComponent(components.Collider)
	dispatch(e, TriggerColliderRemoved)
}

// SetBodyKind changes how the simulation treats e. Turning a body static
// drops its interpolation state; turning it movable starts it from the
// current pose.
func SetBodyKind(e *donburi.Entry, kind components.BodyKind) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.RigidBody) {
		components.RigidBody.Get(e).Kind = kind
	} else {
		donburi.Add(e, components.RigidBody, &components.RigidBodyData{Kind: kind})
	}
	dispatch(e, TriggerBodyKindChanged)
}

// DisableInterpolation pauses interpolation for e without destroying it.
func DisableInterpolation(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if !e.HasComponent(tags.DisableInterpolation) {
		e.AddComponent(tags.DisableInterpolation)
	}
	dispatch(e, TriggerExcluded)
}

// EnableInterpolation resumes interpolation for e from its current pose.
func EnableInterpolation(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(tags.DisableInterpolation) {
		e.RemoveComponent(tags.DisableInterpolation)
	}
	dispatch(e, TriggerIncluded)
}
