package systems

import (
	"github.com/automoto/quackdash/components"
	cfg "github.com/automoto/quackdash/config"
	"github.com/automoto/quackdash/shared/gamemath"
	"github.com/automoto/quackdash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var walkers = donburi.NewQuery(filter.And(
	filter.Contains(components.MovementController, components.MovementSettings, components.Object),
	filter.Not(filter.Contains(components.Dash)),
))

// ApplyMovement moves non-dashing entities along their intent at max speed.
func ApplyMovement(e *ecs.ECS) {
	dt := getOrCreateClock(e).DeltaSeconds()

	walkers.Each(e.World, func(entry *donburi.Entry) {
		controller := components.MovementController.Get(entry)
		settings := components.MovementSettings.Get(entry)
		velocity := controller.Intent.MulScalar(settings.MaxSpeed)
		components.Object.Get(entry).Translate(velocity.MulScalar(dt))
	})
}

// WrapWithinWindow keeps tagged entities on a torus the size of the window
// plus their own footprint, so they leave the screen completely before
// re-entering on the opposite side.
func WrapWithinWindow(e *ecs.ECS) {
	width := float64(cfg.C.Width)
	height := float64(cfg.C.Height)

	tags.WrapWithinWindow.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Object) {
			return
		}
		obj := components.Object.Get(entry)
		obj.X = gamemath.WrapCentered(obj.X, width+obj.W)
		obj.Y = gamemath.WrapCentered(obj.Y, height+obj.H)
	})
}
