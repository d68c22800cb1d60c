// Package events declares the gameplay notifications published by the
// locomotion and combat systems. They are queued on the world and delivered when
// systems.ProcessEvents runs.
package events

import (
	"github.com/yohamta/donburi"
	dbevents "github.com/yohamta/donburi/features/events"
	math2 "github.com/yohamta/donburi/features/math"
)

// GhostSpawned is published for every after-image created by a dashing entity.
type GhostSpawned struct {
	Ghost  donburi.Entity
	Source donburi.Entity
}

// DashStarted is published when an entity begins a dash.
type DashStarted struct {
	Entity    donburi.Entity
	Direction math2.Vec2
}

// DashStopped is published when a dash's duration is exhausted.
type DashStopped struct {
	Entity donburi.Entity
}

// Defeated is published when an entity's health runs out, just before it is
// removed.
type Defeated struct {
	Entity donburi.Entity
}

var (
	DefeatedEvent     = dbevents.NewEventType[Defeated]()
	GhostSpawnedEvent = dbevents.NewEventType[GhostSpawned]()
	DashStartedEvent  = dbevents.NewEventType[DashStarted]()
	DashStoppedEvent  = dbevents.NewEventType[DashStopped]()
)

// ProcessAll delivers every queued event to its subscribers.
func ProcessAll(w donburi.World) {
	dbevents.ProcessAllEvents(w)
}
