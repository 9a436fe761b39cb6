package factory

import (
	"github.com/automoto/tickinterp/archetypes"
	"github.com/automoto/tickinterp/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, resolv.NewSpace(width, height, cellWidth, cellHeight))
	return space
}

// SpaceOf returns the collision space of ecs, if one was created.
func SpaceOf(ecs *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Space.Get(entry)
}
