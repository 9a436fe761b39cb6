package factory

import (
	"github.com/automoto/tickinterp/archetypes"
	"github.com/automoto/tickinterp/components"
	"github.com/automoto/tickinterp/mathutil"
	"github.com/automoto/tickinterp/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProp spawns a presentation-only entity at local, relative to parent
// when parent is not nil. Its world transform is resolved by the next
// transform pass.
func CreateProp(ecs *ecs.ECS, parent *donburi.Entry, local mathutil.TRS) *donburi.Entry {
	prop := archetypes.Prop.Spawn(ecs)
	components.Transform.SetValue(prop, components.TransformData{TRS: local})
	components.GlobalTransform.SetValue(prop, components.GlobalTransformData{TRS: local})

	if parent != nil && parent.Valid() {
		systems.SetParent(prop, parent)
	}
	return prop
}
