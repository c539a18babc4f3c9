package archetypes

import (
	"github.com/voidwalk/revenant/components"
	cfg "github.com/voidwalk/revenant/config"
	"github.com/voidwalk/revenant/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Motion,
		components.Actions,
		components.Combat,
		components.Pose,
		components.State,
	)
	Camera = newArchetype(
		components.Camera,
	)
	// Timekeeper carries the frame clock and the delayed-callback queue.
	Timekeeper = newArchetype(
		components.Time,
		components.Scheduler,
	)
	InputReader = newArchetype(
		components.Input,
	)
	Settings = newArchetype(
		components.Settings,
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
