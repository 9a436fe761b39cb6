package factory

import (
	"log"

	"github.com/automoto/tickinterp/archetypes"
	"github.com/automoto/tickinterp/components"
	cfg "github.com/automoto/tickinterp/config"
	"github.com/yohamta/donburi/ecs"
)

// CreatePhysicsWorld sets up the simulation singletons: the transform sync
// config with both directions on, the fixed clock and the collision space.
// Calling it twice leaves the existing singletons alone.
func CreatePhysicsWorld(ecs *ecs.ECS) {
	if _, ok := components.SyncConfig.First(ecs.World); !ok {
		sync := archetypes.SyncConfig.Spawn(ecs)
		components.SyncConfig.SetValue(sync, components.SyncConfigData{
			PositionToTransform: true,
			TransformToPosition: true,
		})
	}
	if _, ok := components.FixedTime.First(ecs.World); !ok {
		archetypes.FixedTime.Spawn(ecs)
	}
	if SpaceOf(ecs) == nil {
		p := cfg.Physics
		CreateSpace(ecs, p.SpaceWidth, p.SpaceHeight, p.CellWidth, p.CellHeight)
		log.Printf("Physics world created (%dx%d, %dx%d cells)", p.SpaceWidth, p.SpaceHeight, p.CellWidth, p.CellHeight)
	}
}
