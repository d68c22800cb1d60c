package components

import (
	"time"

	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// DashSettingsData is the immutable dash profile of an entity.
type DashSettingsData struct {
	IntentWindow time.Duration
	Distance     float64
	Duration     time.Duration
}

var DashSettings = donburi.NewComponentType[DashSettingsData]()

// DashData exists only while an entity is dashing.
type DashData struct {
	StartTime time.Duration // tick-clock time, not wall time
	Direction math2.Vec2    // unit vector fixed when the dash starts
}

// Step returns the portion of the dash duration consumed during a tick that
// started at tickStart and lasted delta. The sum over consecutive ticks never
// exceeds the dash duration.
func (d *DashData) Step(settings *DashSettingsData, tickStart, delta time.Duration) time.Duration {
	done := tickStart - d.StartTime
	if done < 0 {
		done = 0
	}
	todo := min(done+delta, settings.Duration) - done
	if todo < 0 {
		return 0
	}
	return todo
}

// Displacement returns how far the dash moves for a consumed step.
func (d *DashData) Displacement(settings *DashSettingsData, step time.Duration) math2.Vec2 {
	if settings.Duration <= 0 || step <= 0 {
		return math2.Vec2{}
	}
	distance := float64(step) / float64(settings.Duration) * settings.Distance
	return d.Direction.MulScalar(distance)
}

var Dash = donburi.NewComponentType[DashData]()
