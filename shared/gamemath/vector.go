package gamemath

import (
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// NormalizeOrZero scales v to unit length. A zero or non-finite vector yields zero.
func NormalizeOrZero(v math2.Vec2) math2.Vec2 {
	dir, ok := Direction(v)
	if !ok {
		return math2.Vec2{}
	}
	return dir
}

// Direction returns the unit vector pointing along v. ok is false when v has
// no well-defined direction.
func Direction(v math2.Vec2) (dir math2.Vec2, ok bool) {
	length := math.Hypot(v.X, v.Y)
	if length == 0 || math.IsInf(length, 0) || math.IsNaN(length) {
		return math2.Vec2{}, false
	}
	return math2.Vec2{X: v.X / length, Y: v.Y / length}, true
}

// IsZero reports whether both components are exactly zero.
func IsZero(v math2.Vec2) bool {
	return v.X == 0 && v.Y == 0
}

// DirectionAndLength splits v into its unit direction and length. ok is false
// when v has no well-defined direction.
func DirectionAndLength(v math2.Vec2) (dir math2.Vec2, length float64, ok bool) {
	dir, ok = Direction(v)
	if !ok {
		return math2.Vec2{}, 0, false
	}
	return dir, math.Hypot(v.X, v.Y), true
}
