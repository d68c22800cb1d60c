package systems

import (
	"time"

	"github.com/automoto/quackdash/components"
	"github.com/automoto/quackdash/events"
	"github.com/automoto/quackdash/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGhosts ages and fades existing after-images, removes expired ones,
// then lets active spawners emit new ones. It must run before ApplyDash so
// new ghosts sit where the dasher was before this tick's dash step.
func UpdateGhosts(e *ecs.ECS) {
	tickGhostTimers(e)
	fadeGhosts(e)
	despawnGhosts(e)
	spawnGhosts(e)
}

// tickGhostTimers ages every ghost. Ghosts spawned later in this tick are not
// aged until the next tick.
func tickGhostTimers(e *ecs.ECS) {
	delta := getOrCreateClock(e).Delta
	components.Ghost.Each(e.World, func(entry *donburi.Entry) {
		components.Ghost.Get(entry).Timer.Tick(delta)
	})
}

// fadeGhosts sets opacity to the remaining fraction of each ghost's lifetime.
func fadeGhosts(e *ecs.ECS) {
	components.Ghost.Each(e.World, applyGhostFade)
}

func applyGhostFade(entry *donburi.Entry) {
	ghost := components.Ghost.Get(entry)

	alpha := 0.0
	if !ghost.Timer.Finished() {
		if ghost.Fade != nil {
			v, _ := ghost.Fade.Set(float32(ghost.Timer.Elapsed().Seconds()))
			alpha = float64(v)
		} else {
			alpha = ghost.Timer.FractionRemaining()
		}
	}
	ghost.Alpha = max(0, min(1, alpha))

	if entry.HasComponent(components.Sprite) {
		sprite := components.Sprite.Get(entry)
		sprite.Color = ghost.StartingColor
		sprite.Color.ScaleAlpha(float32(ghost.Alpha))
	}
}

// despawnGhosts removes ghosts whose lifetime completed.
func despawnGhosts(e *ecs.ECS) {
	var toDestroy []*donburi.Entry
	components.Ghost.Each(e.World, func(entry *donburi.Entry) {
		if components.Ghost.Get(entry).Timer.Finished() {
			toDestroy = append(toDestroy, entry)
		}
	})
	for _, entry := range toDestroy {
		entry.Remove()
	}
}

type pendingGhost struct {
	source   *donburi.Entry
	lifetime time.Duration
	age      time.Duration // time since the interval boundary that emitted it
}

// spawnGhosts advances each spawner by the dash time consumed this tick and
// emits one ghost per interval boundary crossed. When a long tick crosses
// several boundaries, each ghost is aged by the time since its own boundary
// so it still expires one lifetime after it.
func spawnGhosts(e *ecs.ECS) {
	clock := getOrCreateClock(e)

	var spawns []pendingGhost
	components.GhostSpawner.Each(e.World, func(entry *donburi.Entry) {
		spawner := components.GhostSpawner.Get(entry)

		delta := clock.Delta
		if entry.HasComponent(components.Dash) && entry.HasComponent(components.DashSettings) {
			// An exhausted dash awaiting removal emits nothing.
			dash := components.Dash.Get(entry)
			delta = dash.Step(components.DashSettings.Get(entry), clock.TickStart(), clock.Delta)
		}

		spawner.Timer.Tick(delta)
		n := spawner.Timer.TimesFinished()
		remainder := spawner.Timer.Elapsed()
		interval := spawner.Timer.Duration()
		for i := range n {
			spawns = append(spawns, pendingGhost{
				source:   entry,
				lifetime: spawner.GhostLifetime,
				age:      remainder + time.Duration(n-1-i)*interval,
			})
		}
	})

	for _, s := range spawns {
		if s.age >= s.lifetime {
			continue
		}
		ghost := factory.CreateGhost(e, s.source, s.lifetime)
		if ghost == nil {
			continue
		}
		if s.age > 0 {
			components.Ghost.Get(ghost).Timer.Tick(s.age)
			applyGhostFade(ghost)
		}
		events.GhostSpawnedEvent.Publish(e.World, events.GhostSpawned{
			Ghost:  ghost.Entity(),
			Source: s.source.Entity(),
		})
	}
}
