package systems

import (
	"testing"

	"github.com/automoto/quackdash/components"
	cfg "github.com/automoto/quackdash/config"
	"github.com/automoto/quackdash/systems/factory"
	"github.com/automoto/quackdash/tags"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

func TestFollowPlayerNeverOvershoots(t *testing.T) {
	tests := []struct {
		name  string
		start math2.Vec2
		want  math2.Vec2
	}{
		{"closes in at max speed", math2.Vec2{X: 600, Y: 0}, math2.Vec2{X: 520, Y: 0}},
		{"stops on the player", math2.Vec2{X: 0, Y: 10}, math2.Vec2{}},
		{"already there", math2.Vec2{}, math2.Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.spawnPlayer()
			enemy := factory.CreateEnemy(h.ecs, tt.start.X, tt.start.Y)

			h.tick(100 * ms) // 80px at the default speed

			o := components.Object.Get(enemy)
			if !near(o.X, tt.want.X) || !near(o.Y, tt.want.Y) {
				t.Errorf("enemy at (%v, %v), want (%v, %v)", o.X, o.Y, tt.want.X, tt.want.Y)
			}
		})
	}
}

func TestSpawnEnemiesKeepsToTheLimit(t *testing.T) {
	h := newHarness(t)
	prev := enemySpawnPoint
	t.Cleanup(func() { enemySpawnPoint = prev })
	var spawned int
	enemySpawnPoint = func() math2.Vec2 {
		spawned++
		return math2.Vec2{X: float64(spawned) * 200, Y: 0}
	}

	spawner := factory.CreateEnemySpawner(h.ecs)
	components.EnemySpawner.Get(spawner).MaxAlive = 2

	interval := cfg.Combat.Enemy.SpawnInterval
	for h.clock().TickEnd() < interval-100*ms {
		h.tick(100 * ms)
	}
	if spawned != 0 {
		t.Fatalf("spawned %d enemies before the first interval", spawned)
	}
	for h.clock().TickEnd() < 4*interval {
		h.tick(100 * ms)
	}

	alive := 0
	tags.Enemy.Each(h.ecs.World, func(*donburi.Entry) { alive++ })
	if alive != 2 || spawned != 2 {
		t.Errorf("%d alive after %d spawns, want 2 and 2", alive, spawned)
	}
}

func TestSpawnPointIsOnTheWrapSeam(t *testing.T) {
	size := cfg.Combat.Enemy.Size
	halfW := (float64(cfg.C.Width) + size) / 2
	halfH := (float64(cfg.C.Height) + size) / 2
	for range 100 {
		p := enemySpawnPoint()
		onLeft := near(p.X, -halfW) && p.Y >= -halfH && p.Y <= halfH
		onTop := near(p.Y, -halfH) && p.X >= -halfW && p.X <= halfW
		if !onLeft && !onTop {
			t.Fatalf("spawn point %v is not on the seam", p)
		}
	}
}
