package systems

import (
	"time"

	"github.com/automoto/quackdash/components"
	cfg "github.com/automoto/quackdash/config"
	"github.com/automoto/quackdash/events"
	"github.com/automoto/quackdash/logger"
	"github.com/automoto/quackdash/shared/gametime"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

var (
	dashCandidates = donburi.NewQuery(filter.And(
		filter.Contains(components.DashSettings, components.MovementController),
		filter.Not(filter.Contains(components.Dash)),
	))
	dashing = donburi.NewQuery(filter.Contains(components.Dash, components.DashSettings))
)

type pendingDash struct {
	entry     *donburi.Entry
	direction math2.Vec2
}

// StartDash promotes a buffered dash press into a dash for every idle entity
// that is holding a direction. The press must fall within the entity's intent
// window measured back from the end of this tick.
func StartDash(e *ecs.ECS) {
	at, ok := getOrCreateDashRequest(e).Time()
	if !ok {
		return
	}
	clock := getOrCreateClock(e)

	var starts []pendingDash
	dashCandidates.Each(e.World, func(entry *donburi.Entry) {
		settings := components.DashSettings.Get(entry)
		direction, ok := components.MovementController.Get(entry).Direction()
		if !ok {
			return
		}
		if !withinIntentWindow(at, clock.TickEnd(), settings.IntentWindow) {
			return
		}
		starts = append(starts, pendingDash{entry: entry, direction: direction})
	})

	for _, s := range starts {
		// Start at the beginning of this tick so the tick's movement counts
		// toward the dash distance.
		donburi.Add(s.entry, components.Dash, &components.DashData{
			StartTime: clock.TickStart(),
			Direction: s.direction,
		})
		donburi.Add(s.entry, components.GhostSpawner, &components.GhostSpawnerData{
			Timer:         gametime.NewTimer(cfg.Ghost.SpawnInterval, gametime.Repeating),
			GhostLifetime: cfg.Ghost.Lifetime,
		})
		events.DashStartedEvent.Publish(e.World, events.DashStarted{
			Entity:    s.entry.Entity(),
			Direction: s.direction,
		})
		logger.WithSystem("dash").WithFields(logrus.Fields{
			"entity":    s.entry.Entity(),
			"start":     clock.TickStart(),
			"pressedAt": at,
			"direction": s.direction,
		}).Debug("dash started")
	}
}

// withinIntentWindow reports whether a press at time at lies in
// [tickEnd-window, tickEnd].
func withinIntentWindow(at, tickEnd, window time.Duration) bool {
	return at <= tickEnd && tickEnd-window <= at
}

// ApplyDash moves dashing entities by their share of the dash distance for
// this tick. Ordinary movement does not apply to them.
func ApplyDash(e *ecs.ECS) {
	clock := getOrCreateClock(e)

	dashing.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Object) {
			return
		}
		dash := components.Dash.Get(entry)
		settings := components.DashSettings.Get(entry)
		step := dash.Step(settings, clock.TickStart(), clock.Delta)
		components.Object.Get(entry).Translate(dash.Displacement(settings, step))
	})
}

// StopDash ends dashes whose duration has been exceeded, removing the dash and
// its ghost spawner together.
func StopDash(e *ecs.ECS) {
	clock := getOrCreateClock(e)

	var finished []*donburi.Entry
	dashing.Each(e.World, func(entry *donburi.Entry) {
		dash := components.Dash.Get(entry)
		settings := components.DashSettings.Get(entry)
		if clock.TickEnd()-dash.StartTime > settings.Duration {
			finished = append(finished, entry)
		}
	})

	for _, entry := range finished {
		entry.RemoveComponent(components.Dash)
		if entry.HasComponent(components.GhostSpawner) {
			entry.RemoveComponent(components.GhostSpawner)
		}
		events.DashStoppedEvent.Publish(e.World, events.DashStopped{Entity: entry.Entity()})
		logger.WithSystem("dash").WithField("entity", entry.Entity()).Debug("dash stopped")
	}
}
