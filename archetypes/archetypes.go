package archetypes

import (
	"github.com/automoto/quackdash/components"
	cfg "github.com/automoto/quackdash/config"
	"github.com/automoto/quackdash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		tags.WrapWithinWindow,
		tags.Playing,
		components.Object,
		components.Sprite,
		components.MovementController,
		components.MovementSettings,
		components.DashSettings,
		components.PlayerAnimation,
	)
	Ghost = newArchetype(
		tags.Ghost,
		components.Ghost,
		components.Object,
		components.Sprite,
	)
	Enemy = newArchetype(
		tags.Enemy,
		tags.WrapWithinWindow,
		tags.Playing,
		components.Enemy,
		components.Health,
		components.Object,
		components.Collider,
	)
	Bullet = newArchetype(
		tags.Bullet,
		tags.Playing,
		components.Bullet,
		components.TimeToLive,
		components.Object,
		components.Collider,
	)
	EnemySpawner = newArchetype(
		tags.Playing,
		components.EnemySpawner,
	)
	Space = newArchetype(
		components.Space,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Input = newArchetype(
		components.Input,
		components.DashRequest,
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
