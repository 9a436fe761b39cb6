package systems

import (
	"github.com/automoto/tickinterp/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects keeps each collider centered on its body's committed
// position and refreshes it in its space.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Collider.Iter(ecs.World) {
		obj := components.Collider.Get(e)
		if obj.Object == nil {
			continue
		}
		syncObject(e, obj)
	}
}

func syncObject(e *donburi.Entry, obj *components.ColliderData) {
	if e.HasComponent(components.Position) {
		pos := components.Position.Get(e)
		obj.X = pos.X() - obj.W/2
		obj.Y = pos.Y() - obj.H/2
	}
	if obj.Space != nil {
		obj.Update()
	}
}
