package systems

import (
	"time"

	"github.com/automoto/quackdash/components"
	"github.com/yohamta/donburi/ecs"
)

// AdvanceClock starts a new tick of length delta. It runs before ecs.Update so
// every system of the tick sees the same TickStart/TickEnd.
func AdvanceClock(e *ecs.ECS, delta time.Duration) {
	getOrCreateClock(e).Advance(delta)
}

// getOrCreateClock returns the singleton Clock component, creating if needed
func getOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	return components.Clock.Get(entry)
}
