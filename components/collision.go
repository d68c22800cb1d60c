package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

// ColliderData is an entity's hit box in the collision space. The resolv
// object lives in space coordinates: X/Y is its top-left corner. Data holds
// the owning donburi.Entity.
type ColliderData struct {
	*resolv.Object
}

var Collider = donburi.NewComponentType[ColliderData]()

// SpaceData is the broadphase grid every collider registers in. The grid
// starts at zero, so world positions are shifted by Origin, the space
// position of the world origin.
type SpaceData struct {
	*resolv.Space
	Origin math2.Vec2
}

// Place moves a collider so its center sits at the world position center and
// refreshes its grid cells. Outside the grid it simply touches no cells.
func (s *SpaceData) Place(c *ColliderData, center math2.Vec2) {
	c.X = center.X + s.Origin.X - c.W/2
	c.Y = center.Y + s.Origin.Y - c.H/2
	c.Update()
}

var Space = donburi.NewComponentType[SpaceData]()
