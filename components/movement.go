package components

import (
	"github.com/automoto/quackdash/shared/gamemath"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// MovementControllerData holds the movement intent written by the input
// sampler each tick. Its length is 0 or 1.
type MovementControllerData struct {
	Intent math2.Vec2
}

// Direction returns the intent direction, or false when there is no intent.
func (m *MovementControllerData) Direction() (math2.Vec2, bool) {
	return gamemath.Direction(m.Intent)
}

var MovementController = donburi.NewComponentType[MovementControllerData]()

type MovementSettingsData struct {
	MaxSpeed float64 // pixels per second
}

var MovementSettings = donburi.NewComponentType[MovementSettingsData]()
