package components

import (
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// ObjectData is an entity's position attribute. X/Y is the sprite center,
// W/H is the on-screen sprite footprint.
type ObjectData struct {
	X, Y float64
	W, H float64
}

// Position returns the object center.
func (o *ObjectData) Position() math2.Vec2 {
	return math2.Vec2{X: o.X, Y: o.Y}
}

// SetPosition moves the object center.
func (o *ObjectData) SetPosition(p math2.Vec2) {
	o.X = p.X
	o.Y = p.Y
}

// Translate moves the object by d.
func (o *ObjectData) Translate(d math2.Vec2) {
	o.X += d.X
	o.Y += d.Y
}

var Object = donburi.NewComponentType[ObjectData]()
