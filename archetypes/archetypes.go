package archetypes

import (
	"github.com/automoto/tickinterp/components"
	cfg "github.com/automoto/tickinterp/config"
	"github.com/automoto/tickinterp/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Body carries everything the simulation reads and the presentation
	// writes. Pose components are attached separately by the factory so the
	// lifecycle sees them arrive.
	Body = newArchetype(
		tags.Body,
		components.RigidBody,
		components.Velocity,
		components.Transform,
		components.GlobalTransform,
	)
	// Prop is a presentation-only entity, usually parented to a body.
	Prop = newArchetype(
		tags.Prop,
		components.Transform,
		components.GlobalTransform,
	)
	Space = newArchetype(
		components.Space,
	)
	SyncConfig = newArchetype(
		components.SyncConfig,
	)
	FixedTime = newArchetype(
		components.FixedTime,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
