package systems

import (
	"math"
	"testing"

	"github.com/automoto/quackdash/components"
	cfg "github.com/automoto/quackdash/config"
	"github.com/automoto/quackdash/tags"
)

func TestMovementIntent(t *testing.T) {
	tests := []struct {
		name    string
		held    []cfg.ActionID
		wantX   float64
		wantY   float64
		wantDir bool
	}{
		{"nothing", nil, 0, 0, false},
		{"up is negative y", []cfg.ActionID{cfg.ActionMoveUp}, 0, -1, true},
		{"right", []cfg.ActionID{cfg.ActionMoveRight}, 1, 0, true},
		{"opposites cancel", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}, 0, 0, false},
		{"diagonal is normalized", []cfg.ActionID{cfg.ActionMoveDown, cfg.ActionMoveLeft}, -math.Sqrt2 / 2, math.Sqrt2 / 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			player := h.spawnPlayer()
			h.buttons.press(tt.held...)
			h.tick(10 * ms)

			controller := components.MovementController.Get(player)
			if !near(controller.Intent.X, tt.wantX) || !near(controller.Intent.Y, tt.wantY) {
				t.Errorf("intent = %v, want (%v, %v)", controller.Intent, tt.wantX, tt.wantY)
			}
			if _, ok := controller.Direction(); ok != tt.wantDir {
				t.Errorf("has direction = %v, want %v", ok, tt.wantDir)
			}
		})
	}
}

func TestDiagonalSpeedMatchesAxisSpeed(t *testing.T) {
	wideWindow(t)
	h := newHarness(t)
	player := h.spawnPlayer()

	h.buttons.press(cfg.ActionMoveUp, cfg.ActionMoveRight)
	h.tick(100 * ms)

	o := components.Object.Get(player)
	want := cfg.Movement.MaxSpeed * 0.1
	if got := math.Hypot(o.X, o.Y); !near(got, want) {
		t.Errorf("moved %v in 100ms, want %v", got, want)
	}
	if o.X <= 0 || o.Y >= 0 {
		t.Errorf("moved to (%v, %v), want up and right", o.X, o.Y)
	}
}

func TestDashPressIsEdgeTriggered(t *testing.T) {
	h := newHarness(t)

	h.buttons.press(cfg.ActionDash)
	h.run(5, 10*ms)

	at, ok := getOrCreateDashRequest(h.ecs).Time()
	if !ok || at != 10*ms {
		t.Fatalf("request = %v %v, want 10ms from the first press", at, ok)
	}

	h.buttons.release(cfg.ActionDash)
	h.tick(10 * ms)
	h.buttons.press(cfg.ActionDash)
	h.tick(10 * ms)
	if at, _ := getOrCreateDashRequest(h.ecs).Time(); at != 70*ms {
		t.Errorf("request after second press = %v, want 70ms", at)
	}
}

func TestWrapWithinWindow(t *testing.T) {
	// Default window is 1280x720 and the player footprint 128x128, so the
	// wrap area is 1408x848 centered on the origin.
	tests := []struct {
		name         string
		x, y         float64
		wantX, wantY float64
	}{
		{"inside", 100, -200, 100, -200},
		{"past right", 705, 0, -703, 0},
		{"past left", -705, 0, 703, 0},
		{"right boundary", 704, 0, -704, 0},
		{"left boundary", -704, 0, -704, 0},
		{"past bottom", 0, 430, 0, -418},
		{"far away", 3*1408 + 10, 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			player := h.spawnPlayer()
			o := components.Object.Get(player)
			o.X, o.Y = tt.x, tt.y

			WrapWithinWindow(h.ecs)
			if !near(o.X, tt.wantX) || !near(o.Y, tt.wantY) {
				t.Errorf("wrapped to (%v, %v), want (%v, %v)", o.X, o.Y, tt.wantX, tt.wantY)
			}

			// Wrapping is idempotent.
			WrapWithinWindow(h.ecs)
			if !near(o.X, tt.wantX) || !near(o.Y, tt.wantY) {
				t.Errorf("second wrap moved to (%v, %v)", o.X, o.Y)
			}
		})
	}
}

func TestWrapIgnoresUntagged(t *testing.T) {
	h := newHarness(t)
	player := h.spawnPlayer()
	player.RemoveComponent(tags.WrapWithinWindow)
	o := components.Object.Get(player)
	o.X = 5000

	WrapWithinWindow(h.ecs)
	if o.X != 5000 {
		t.Errorf("untagged entity wrapped to %v", o.X)
	}
}
