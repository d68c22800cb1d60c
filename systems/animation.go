package systems

import (
	"github.com/automoto/quackdash/components"
	cfg "github.com/automoto/quackdash/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	animated = donburi.NewQuery(filter.Contains(components.PlayerAnimation))

	animatedMovers = donburi.NewQuery(filter.Contains(
		components.PlayerAnimation,
		components.TranslationHistory,
	))

	animatedSprites = donburi.NewQuery(filter.Contains(
		components.PlayerAnimation,
		components.Sprite,
	))
)

// UpdateAnimationTimer advances every animation frame timer by this tick's
// delta.
func UpdateAnimationTimer(e *ecs.ECS) {
	delta := getOrCreateClock(e).Delta
	animated.Each(e.World, func(entry *donburi.Entry) {
		components.PlayerAnimation.Get(entry).UpdateTimer(delta)
	})
}

// UpdateAnimationMovement picks the animation state from the entity's dash
// and last translation, and faces the sprite along horizontal motion.
func UpdateAnimationMovement(e *ecs.ECS) {
	animatedMovers.Each(e.World, func(entry *donburi.Entry) {
		delta := components.TranslationHistory.Get(entry).Delta

		if delta.X != 0 && entry.HasComponent(components.Sprite) {
			components.Sprite.Get(entry).FlipX = delta.X < 0
		}

		state := components.Walking
		switch {
		case entry.HasComponent(components.Dash):
			state = components.Dashing
		case delta.X == 0 && delta.Y == 0:
			state = components.Idling
		}
		components.PlayerAnimation.Get(entry).UpdateState(state)
	})
}

// UpdateAnimationAtlas copies the current animation cell into the sprite.
func UpdateAnimationAtlas(e *ecs.ECS) {
	animatedSprites.Each(e.World, func(entry *donburi.Entry) {
		components.Sprite.Get(entry).Index = components.PlayerAnimation.Get(entry).AtlasIndex()
	})
}

// TriggerStepSFX queues a footstep whenever a walking animation lands on a
// foot-contact frame.
func TriggerStepSFX(e *ecs.ECS) {
	animated.Each(e.World, func(entry *donburi.Entry) {
		anim := components.PlayerAnimation.Get(entry)
		if anim.State() != components.Walking || !anim.Changed() {
			return
		}
		if cfg.Animation.IsStepFrame(anim.Frame()) {
			PlaySFX(e, cfg.SoundRandomStep)
		}
	})
}
