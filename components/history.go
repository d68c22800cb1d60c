package components

import (
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// TranslationHistoryData remembers where an entity was at the end of the
// previous tick and how far it moved during the current one.
type TranslationHistoryData struct {
	Previous math2.Vec2
	Delta    math2.Vec2
}

// Record sets Delta to the motion since the last record.
func (h *TranslationHistoryData) Record(current math2.Vec2) {
	h.Delta = current.Sub(h.Previous)
	h.Previous = current
}

var TranslationHistory = donburi.NewComponentType[TranslationHistoryData]()
