package components

import (
	"time"

	"github.com/automoto/quackdash/shared/gametime"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// BulletSpawnerData is a gun. While attached it fires at the nearest enemy
// every time its timer completes.
type BulletSpawnerData struct {
	Damage     float64
	Speed      float64 // pixels per second
	TimeToLive time.Duration
	Radius     float64
	Timer      gametime.Timer // repeating fire interval
}

var BulletSpawner = donburi.NewComponentType[BulletSpawnerData]()

type BulletData struct {
	Damage   float64
	Velocity math2.Vec2 // pixels per second
}

var Bullet = donburi.NewComponentType[BulletData]()

// TimeToLiveData removes its entity once the timer completes.
type TimeToLiveData struct {
	Timer gametime.Timer // single-shot
}

var TimeToLive = donburi.NewComponentType[TimeToLiveData]()
