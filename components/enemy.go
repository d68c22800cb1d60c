package components

import (
	"github.com/automoto/quackdash/shared/gametime"
	"github.com/yohamta/donburi"
)

// EnemyData makes an entity chase the player.
type EnemyData struct {
	MaxSpeed float64 // pixels per second
}

var Enemy = donburi.NewComponentType[EnemyData]()

// EnemySpawnerData periodically drops enemies onto the screen edge while
// fewer than MaxAlive are around.
type EnemySpawnerData struct {
	Timer    gametime.Timer // repeating
	MaxAlive int
}

var EnemySpawner = donburi.NewComponentType[EnemySpawnerData]()
