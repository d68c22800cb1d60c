package factory

import (
	"github.com/automoto/quackdash/archetypes"
	"github.com/automoto/quackdash/components"
	cfg "github.com/automoto/quackdash/config"
	"github.com/automoto/quackdash/shared/gametime"
	"github.com/automoto/quackdash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"
)

// bulletHitSize is the side of a bullet's hit box. Bullets hit along the
// line their center travels, whatever their drawn size.
const bulletHitSize = 2

// CreateSpace spawns the collision grid covering the wrap area plus margin on
// every side, with the world origin at its center.
func CreateSpace(ecs *ecs.ECS, width, height, margin, cellSize int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	w, h := width+2*margin, height+2*margin
	components.Space.SetValue(space, components.SpaceData{
		Space:  resolv.NewSpace(w, h, cellSize, cellSize),
		Origin: math2.Vec2{X: float64(w) / 2, Y: float64(h) / 2},
	})
	return space
}

// CreateEnemy spawns a chasing square centered at (x, y).
func CreateEnemy(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	size := cfg.Combat.Enemy.Size

	components.Enemy.SetValue(enemy, components.EnemyData{MaxSpeed: cfg.Combat.Enemy.MaxSpeed})
	components.Health.SetValue(enemy, components.FullHealth(cfg.Combat.Enemy.Health))
	components.Object.SetValue(enemy, components.ObjectData{X: x, Y: y, W: size, H: size})
	attachCollider(ecs, enemy, size, size, tags.ResolvEnemy)
	return enemy
}

// CreateBullet spawns a bullet at position flying along direction.
func CreateBullet(ecs *ecs.ECS, gun *components.BulletSpawnerData, position, direction math2.Vec2) *donburi.Entry {
	bullet := archetypes.Bullet.Spawn(ecs)
	size := gun.Radius * 2

	components.Bullet.SetValue(bullet, components.BulletData{
		Damage:   gun.Damage,
		Velocity: direction.MulScalar(gun.Speed),
	})
	components.TimeToLive.SetValue(bullet, components.TimeToLiveData{
		Timer: gametime.NewTimer(gun.TimeToLive, gametime.Once),
	})
	components.Object.SetValue(bullet, components.ObjectData{X: position.X, Y: position.Y, W: size, H: size})
	attachCollider(ecs, bullet, bulletHitSize, bulletHitSize, tags.ResolvBullet)
	return bullet
}

// CreateEnemySpawner spawns the singleton that keeps enemies coming.
func CreateEnemySpawner(ecs *ecs.ECS) *donburi.Entry {
	spawner := archetypes.EnemySpawner.Spawn(ecs)
	components.EnemySpawner.SetValue(spawner, components.EnemySpawnerData{
		Timer:    gametime.NewTimer(cfg.Combat.Enemy.SpawnInterval, gametime.Repeating),
		MaxAlive: cfg.Combat.Enemy.MaxAlive,
	})
	return spawner
}

// NewGun returns the configured bullet spawner.
func NewGun() components.BulletSpawnerData {
	gun := cfg.Combat.Gun
	return components.BulletSpawnerData{
		Damage:     gun.Damage,
		Speed:      gun.Speed,
		TimeToLive: gun.TimeToLive,
		Radius:     gun.Radius,
		Timer:      gametime.NewTimer(gun.Interval, gametime.Repeating),
	}
}

// attachCollider gives entry a w by h hit box centered on its object and
// registers it in the collision space, if there is one.
func attachCollider(ecs *ecs.ECS, entry *donburi.Entry, w, h float64, tag string) {
	obj := resolv.NewObject(0, 0, w, h, tag)
	obj.Data = entry.Entity()
	collider := components.ColliderData{Object: obj}
	components.Collider.SetValue(entry, collider)

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	space.Add(obj)
	space.Place(&collider, components.Object.Get(entry).Position())
}
