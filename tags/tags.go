package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Ghost  = donburi.NewTag().SetName("Ghost")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Bullet = donburi.NewTag().SetName("Bullet")
	// WrapWithinWindow marks entities that re-enter from the opposite screen edge.
	WrapWithinWindow = donburi.NewTag().SetName("WrapWithinWindow")
	// Playing scopes an entity to the active play session.
	Playing = donburi.NewTag().SetName("Playing")
)

// Resolv tags for colliders in the collision space
const (
	ResolvEnemy  = "Enemy"
	ResolvBullet = "Bullet"
)
