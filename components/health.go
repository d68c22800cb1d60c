package components

import (
	"github.com/automoto/quackdash/shared/gametime"
	"github.com/yohamta/donburi"
)

type HealthData struct {
	Current float64
	Max     float64
}

// FullHealth returns a full health pool of the given size.
func FullHealth(pool float64) HealthData {
	return HealthData{Current: pool, Max: pool}
}

// Fraction returns the remaining share of the pool in [0, 1].
func (h *HealthData) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return max(0, min(1, h.Current/h.Max))
}

type HealthBarData struct {
	// Timer runs while the bar is visible after a hit.
	Timer gametime.Timer
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()

// DamageEventData is queued on an entity with Health and consumed by
// UpdateCombat. Hits landing in the same tick add up.
type DamageEventData struct {
	Amount float64
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
