package gamemath

import (
	"math"
	"testing"

	math2 "github.com/yohamta/donburi/features/math"
)

const epsilon = 1e-9

func TestDirection(t *testing.T) {
	tests := []struct {
		name   string
		in     math2.Vec2
		want   math2.Vec2
		wantOK bool
	}{
		{"zero has no direction", math2.Vec2{}, math2.Vec2{}, false},
		{"axis aligned", math2.Vec2{X: 0, Y: -3}, math2.Vec2{X: 0, Y: -1}, true},
		{"diagonal", math2.Vec2{X: 1, Y: 1}, math2.Vec2{X: math.Sqrt2 / 2, Y: math.Sqrt2 / 2}, true},
		{"infinite", math2.Vec2{X: math.Inf(1), Y: 0}, math2.Vec2{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Direction(tt.in)
			if ok != tt.wantOK {
				t.Fatalf("Direction(%v) ok = %v, want %v", tt.in, ok, tt.wantOK)
			}
			if math.Abs(got.X-tt.want.X) > epsilon || math.Abs(got.Y-tt.want.Y) > epsilon {
				t.Errorf("Direction(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDirectionAndLength(t *testing.T) {
	dir, length, ok := DirectionAndLength(math2.Vec2{X: 3, Y: -4})
	if !ok || math.Abs(length-5) > epsilon {
		t.Fatalf("DirectionAndLength = %v, %v, %v, want length 5", dir, length, ok)
	}
	if math.Abs(dir.X-0.6) > epsilon || math.Abs(dir.Y+0.8) > epsilon {
		t.Errorf("direction = %v, want (0.6, -0.8)", dir)
	}
	if _, _, ok := DirectionAndLength(math2.Vec2{}); ok {
		t.Error("zero vector reported a direction")
	}
}

func TestNormalizeOrZeroDiagonalNotFaster(t *testing.T) {
	diag := NormalizeOrZero(math2.Vec2{X: -1, Y: 1})
	if l := math.Hypot(diag.X, diag.Y); math.Abs(l-1) > epsilon {
		t.Errorf("diagonal length = %v, want 1", l)
	}
	if z := NormalizeOrZero(math2.Vec2{}); !IsZero(z) {
		t.Errorf("NormalizeOrZero(0) = %v, want zero", z)
	}
}

func TestWrapCentered(t *testing.T) {
	const size = 1600.0
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"in range untouched", 123.25, 123.25},
		{"lower edge is in range", -800, -800},
		{"upper edge wraps to lower edge", 800, -800},
		{"past upper edge", 850, -750},
		{"past lower edge", -850, 750},
		{"several laps", 800 + 3*size + 10, -790},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapCentered(tt.in, size)
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("WrapCentered(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if again := WrapCentered(got, size); again != got {
				t.Errorf("wrap not idempotent: %v -> %v", got, again)
			}
		})
	}
}
