package systems

import (
	"math/rand/v2"

	"github.com/automoto/quackdash/components"
	cfg "github.com/automoto/quackdash/config"
	"github.com/automoto/quackdash/logger"
	"github.com/automoto/quackdash/shared/gamemath"
	"github.com/automoto/quackdash/systems/factory"
	"github.com/automoto/quackdash/tags"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
	"github.com/yohamta/donburi/filter"
)

var chasers = donburi.NewQuery(filter.Contains(components.Enemy, components.Object))

// enemySpawnPoint picks where a new enemy appears: somewhere on the wrap seam,
// just out of sight.
var enemySpawnPoint = func() math2.Vec2 {
	size := cfg.Combat.Enemy.Size
	halfW := (float64(cfg.C.Width) + size) / 2
	halfH := (float64(cfg.C.Height) + size) / 2
	if rand.IntN(2) == 0 {
		return math2.Vec2{X: -halfW, Y: (rand.Float64()*2 - 1) * halfH}
	}
	return math2.Vec2{X: (rand.Float64()*2 - 1) * halfW, Y: -halfH}
}

// FollowPlayer moves every enemy straight at the player without overshooting.
func FollowPlayer(e *ecs.ECS) {
	player, ok := tags.Player.First(e.World)
	if !ok || !player.HasComponent(components.Object) {
		return
	}
	target := components.Object.Get(player).Position()
	dt := getOrCreateClock(e).DeltaSeconds()

	chasers.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		dir, length, ok := gamemath.DirectionAndLength(target.Sub(obj.Position()))
		if !ok {
			return
		}
		speed := components.Enemy.Get(entry).MaxSpeed
		obj.Translate(dir.MulScalar(min(speed*dt, length)))
	})
}

// SpawnEnemies drops a new enemy each spawner interval while fewer than the
// spawner's limit are alive.
func SpawnEnemies(e *ecs.ECS) {
	entry, ok := components.EnemySpawner.First(e.World)
	if !ok {
		return
	}
	spawner := components.EnemySpawner.Get(entry)
	spawner.Timer.Tick(getOrCreateClock(e).Delta)
	if !spawner.Timer.JustFinished() {
		return
	}

	alive := 0
	tags.Enemy.Each(e.World, func(*donburi.Entry) { alive++ })
	n := min(spawner.Timer.TimesFinished(), spawner.MaxAlive-alive)
	for range max(n, 0) {
		p := enemySpawnPoint()
		enemy := factory.CreateEnemy(e, p.X, p.Y)
		logger.WithSystem("combat").WithFields(logrus.Fields{
			"entity": enemy.Entity(),
			"x":      p.X,
			"y":      p.Y,
		}).Debug("enemy spawned")
	}
}
