package systems

import (
	"github.com/automoto/quackdash/events"
	"github.com/yohamta/donburi/ecs"
)

// ProcessEvents delivers the events published during this tick.
func ProcessEvents(e *ecs.ECS) {
	events.ProcessAll(e.World)
}
