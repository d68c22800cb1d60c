package factory

import (
	"time"

	"github.com/automoto/quackdash/archetypes"
	"github.com/automoto/quackdash/components"
	"github.com/automoto/quackdash/shared/gametime"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGhost spawns an after-image copying the source's current position and
// sprite. The ghost keeps no reference to the source. Returns nil if the source
// has nothing to copy.
func CreateGhost(ecs *ecs.ECS, source *donburi.Entry, lifetime time.Duration) *donburi.Entry {
	if !source.HasComponent(components.Object) || !source.HasComponent(components.Sprite) {
		return nil
	}
	src := *components.Object.Get(source)
	sprite := *components.Sprite.Get(source)

	ghost := archetypes.Ghost.Spawn(ecs)

	components.Object.SetValue(ghost, src)
	components.Sprite.SetValue(ghost, sprite)

	components.Ghost.SetValue(ghost, components.GhostData{
		StartingColor: sprite.Color,
		Timer:         gametime.NewTimer(lifetime, gametime.Once),
		Fade:          gween.New(1, 0, float32(lifetime.Seconds()), ease.Linear),
		Alpha:         1,
	})

	return ghost
}
