package systems

import (
	"github.com/automoto/quackdash/components"
	cfg "github.com/automoto/quackdash/config"
	"github.com/automoto/quackdash/events"
	"github.com/automoto/quackdash/logger"
	"github.com/automoto/quackdash/shared/gamemath"
	"github.com/automoto/quackdash/shared/gametime"
	"github.com/automoto/quackdash/systems/factory"
	"github.com/automoto/quackdash/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

var (
	gunners   = donburi.NewQuery(filter.Contains(components.BulletSpawner, components.Object))
	bullets   = donburi.NewQuery(filter.Contains(components.Bullet, components.Object))
	targets   = donburi.NewQuery(filter.Contains(tags.Enemy, components.Object))
	colliders = donburi.NewQuery(filter.Contains(components.Collider, components.Object))
)

// RemoveEntity takes entry's collider out of the collision space, then
// removes the entry.
func RemoveEntity(entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Collider) {
		if c := components.Collider.Get(entry); c.Object != nil && c.Space != nil {
			c.Space.Remove(c.Object)
		}
	}
	entry.Remove()
}

// UpdateTimeToLive removes entities whose time to live ran out.
func UpdateTimeToLive(e *ecs.ECS) {
	delta := getOrCreateClock(e).Delta

	var expired []*donburi.Entry
	components.TimeToLive.Each(e.World, func(entry *donburi.Entry) {
		ttl := components.TimeToLive.Get(entry)
		ttl.Timer.Tick(delta)
		if ttl.Timer.Finished() {
			expired = append(expired, entry)
		}
	})
	for _, entry := range expired {
		RemoveEntity(entry)
	}
}

// ToggleGun hands the player a gun, or takes it away, on each press.
func ToggleGun(e *ecs.ECS) {
	if !getOrCreateInput(e).Action(cfg.ActionToggleGun).JustPressed {
		return
	}

	var players []*donburi.Entry
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		players = append(players, entry)
	})
	for _, entry := range players {
		if entry.HasComponent(components.BulletSpawner) {
			entry.RemoveComponent(components.BulletSpawner)
			logger.WithSystem("combat").WithField("entity", entry.Entity()).Debug("gun holstered")
			continue
		}
		gun := factory.NewGun()
		donburi.Add(entry, components.BulletSpawner, &gun)
		logger.WithSystem("combat").WithField("entity", entry.Entity()).Debug("gun drawn")
	}
}

type pendingShot struct {
	gun       components.BulletSpawnerData
	position  math2.Vec2
	direction math2.Vec2
}

// FireBullets fires one bullet per completed gun interval at the closest
// point of the nearest enemy. A gun with no enemy around holds its fire.
func FireBullets(e *ecs.ECS) {
	delta := getOrCreateClock(e).Delta

	var shots []pendingShot
	gunners.Each(e.World, func(entry *donburi.Entry) {
		gun := components.BulletSpawner.Get(entry)
		gun.Timer.Tick(delta)
		if !gun.Timer.JustFinished() {
			return
		}
		position := components.Object.Get(entry).Position()
		aim, ok := nearestEnemyPoint(e, position)
		if !ok {
			return
		}
		direction, ok := gamemath.Direction(aim.Sub(position))
		if !ok {
			direction = math2.Vec2{X: 0, Y: -1}
		}
		for range gun.Timer.TimesFinished() {
			shots = append(shots, pendingShot{gun: *gun, position: position, direction: direction})
		}
	})

	for _, s := range shots {
		factory.CreateBullet(e, &s.gun, s.position, s.direction)
	}
}

// nearestEnemyPoint returns the point on the closest enemy footprint to from.
func nearestEnemyPoint(e *ecs.ECS, from math2.Vec2) (math2.Vec2, bool) {
	var best math2.Vec2
	bestDist := -1.0
	targets.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		p := math2.Vec2{
			X: max(o.X-o.W/2, min(o.X+o.W/2, from.X)),
			Y: max(o.Y-o.H/2, min(o.Y+o.H/2, from.Y)),
		}
		if d := p.Sub(from).Magnitude(); bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
	})
	return best, bestDist >= 0
}

// SyncColliders moves every collider onto its object's current position.
func SyncColliders(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	colliders.Each(e.World, func(entry *donburi.Entry) {
		collider := components.Collider.Get(entry)
		if collider.Object == nil || collider.Space == nil {
			return
		}
		space.Place(collider, components.Object.Get(entry).Position())
	})
}

type bulletHit struct {
	bullet *donburi.Entry
	target *donburi.Entry
	damage float64
}

// HitTestBullets checks the path each bullet covers this tick against enemy
// colliders. A bullet that hits something is removed and damages the enemy
// nearest its start.
func HitTestBullets(e *ecs.ECS) {
	dt := getOrCreateClock(e).DeltaSeconds()

	var hits []bulletHit
	bullets.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Collider) {
			return
		}
		bullet := components.Bullet.Get(entry)
		target, ok := castBullet(e, components.Collider.Get(entry), bullet.Velocity.MulScalar(dt))
		if !ok {
			return
		}
		hits = append(hits, bulletHit{bullet: entry, target: target, damage: bullet.Damage})
	})

	for _, hit := range hits {
		RemoveEntity(hit.bullet)
		queueDamage(hit.target, hit.damage)
	}
}

// castBullet walks the collider along travel in steps no longer than half a
// grid cell and returns the first enemy it overlaps.
func castBullet(e *ecs.ECS, collider *components.ColliderData, travel math2.Vec2) (*donburi.Entry, bool) {
	if collider.Object == nil || collider.Space == nil {
		return nil, false
	}
	stepLen := float64(collider.Space.CellWidth) / 2
	steps := 1
	if l := travel.Magnitude(); l > stepLen {
		steps = int(l/stepLen) + 1
	}

	for i := 0; i <= steps; i++ {
		offset := travel.MulScalar(float64(i) / float64(steps))
		check := collider.Check(offset.X, offset.Y, tags.ResolvEnemy)
		if check == nil {
			continue
		}
		// Check only reports shared grid cells, Overlaps settles it.
		collider.X += offset.X
		collider.Y += offset.Y
		for _, obj := range check.Objects {
			if !collider.Overlaps(obj) {
				continue
			}
			entity, ok := obj.Data.(donburi.Entity)
			if !ok || !e.World.Valid(entity) {
				continue
			}
			collider.X -= offset.X
			collider.Y -= offset.Y
			return e.World.Entry(entity), true
		}
		collider.X -= offset.X
		collider.Y -= offset.Y
	}
	return nil, false
}

// queueDamage adds amount to target's pending damage for this tick.
func queueDamage(target *donburi.Entry, amount float64) {
	if !target.Valid() || !target.HasComponent(components.Health) {
		return
	}
	if target.HasComponent(components.DamageEvent) {
		components.DamageEvent.Get(target).Amount += amount
		return
	}
	donburi.Add(target, components.DamageEvent, &components.DamageEventData{Amount: amount})
}

// MoveBullets flies bullets along their velocity.
func MoveBullets(e *ecs.ECS) {
	dt := getOrCreateClock(e).DeltaSeconds()
	bullets.Each(e.World, func(entry *donburi.Entry) {
		velocity := components.Bullet.Get(entry).Velocity
		components.Object.Get(entry).Translate(velocity.MulScalar(dt))
	})
}

// UpdateCombat applies queued damage, shows the health bar of entities that
// were hit and removes those whose health ran out.
func UpdateCombat(e *ecs.ECS) {
	delta := getOrCreateClock(e).Delta

	var bars []*donburi.Entry
	components.HealthBar.Each(e.World, func(entry *donburi.Entry) {
		bar := components.HealthBar.Get(entry)
		bar.Timer.Tick(delta)
		if bar.Timer.Finished() {
			bars = append(bars, entry)
		}
	})
	for _, entry := range bars {
		entry.RemoveComponent(components.HealthBar)
	}

	var damaged []*donburi.Entry
	components.DamageEvent.Each(e.World, func(entry *donburi.Entry) {
		damaged = append(damaged, entry)
	})

	for _, entry := range damaged {
		amount := components.DamageEvent.Get(entry).Amount
		entry.RemoveComponent(components.DamageEvent)
		if !entry.HasComponent(components.Health) {
			continue
		}

		hp := components.Health.Get(entry)
		hp.Current -= amount
		if hp.Current <= 0 {
			events.DefeatedEvent.Publish(e.World, events.Defeated{Entity: entry.Entity()})
			logger.WithSystem("combat").WithFields(logrus.Fields{
				"entity": entry.Entity(),
				"damage": amount,
			}).Debug("defeated")
			RemoveEntity(entry)
			continue
		}

		bar := components.HealthBarData{Timer: gametime.NewTimer(cfg.Combat.HealthBarDuration, gametime.Once)}
		if entry.HasComponent(components.HealthBar) {
			components.HealthBar.SetValue(entry, bar)
		} else {
			donburi.Add(entry, components.HealthBar, &bar)
		}
	}
}
