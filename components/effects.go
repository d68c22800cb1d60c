package components

import (
	"time"

	"github.com/automoto/quackdash/shared/gametime"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GhostSpawnerData emits after-images while its entity dashes. It is created
// and removed together with DashData.
type GhostSpawnerData struct {
	Timer         gametime.Timer // repeating spawn interval
	GhostLifetime time.Duration
}

var GhostSpawner = donburi.NewComponentType[GhostSpawnerData]()

// GhostData is a fading after-image. It holds no reference to the entity
// that spawned it.
type GhostData struct {
	StartingColor ebiten.ColorScale
	Timer         gametime.Timer // single-shot lifetime
	Fade          *gween.Tween   // opacity over the lifetime, 1 -> 0
	Alpha         float64        // current opacity
}

var Ghost = donburi.NewComponentType[GhostData]()
