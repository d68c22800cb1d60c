package factory

import (
	"github.com/automoto/quackdash/archetypes"
	"github.com/automoto/quackdash/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateClock spawns the tick clock singleton at time zero.
func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.SetValue(clock, components.ClockData{})
	return clock
}

// CreateInput spawns the input singleton holding button state and the dash
// request buffer.
func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}
