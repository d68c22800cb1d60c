package systems

import (
	"slices"
	"testing"

	"github.com/automoto/quackdash/components"
	cfg "github.com/automoto/quackdash/config"
)

func TestAnimationFollowsMotion(t *testing.T) {
	wideWindow(t)
	h := newHarness(t)
	player := h.spawnPlayer()
	anim := func() *components.PlayerAnimationData { return components.PlayerAnimation.Get(player) }
	sprite := func() *components.SpriteData { return components.Sprite.Get(player) }

	h.run(3, 10*ms)
	if anim().State() != components.Idling {
		t.Fatalf("standing still: state %v, want idling", anim().State())
	}

	h.buttons.press(cfg.ActionMoveLeft)
	h.tick(10 * ms)
	if anim().State() != components.Walking || !sprite().FlipX {
		t.Fatalf("walking left: state %v flip %v, want walking true", anim().State(), sprite().FlipX)
	}

	// Facing persists through vertical-only motion and standing still.
	h.buttons.release(cfg.ActionMoveLeft)
	h.buttons.press(cfg.ActionMoveDown)
	h.tick(10 * ms)
	if !sprite().FlipX {
		t.Error("vertical motion reset the facing")
	}
	h.buttons.release(cfg.ActionMoveDown)
	h.tick(10 * ms)
	if anim().State() != components.Idling || !sprite().FlipX {
		t.Errorf("stopped: state %v flip %v, want idling true", anim().State(), sprite().FlipX)
	}

	h.buttons.press(cfg.ActionMoveRight, cfg.ActionDash)
	h.tick(10 * ms)
	if anim().State() != components.Dashing || sprite().FlipX {
		t.Errorf("dashing right: state %v flip %v, want dashing false", anim().State(), sprite().FlipX)
	}
	if sprite().Index != anim().AtlasIndex() {
		t.Errorf("sprite index %d, animation index %d", sprite().Index, anim().AtlasIndex())
	}
}

func TestFootstepsOnContactFrames(t *testing.T) {
	wideWindow(t)
	h := newHarness(t)
	player := h.spawnPlayer()
	anim := func() *components.PlayerAnimationData { return components.PlayerAnimation.Get(player) }

	h.buttons.press(cfg.ActionMoveRight)
	want := 0
	for range 100 {
		h.tick(10 * ms)
		if anim().Changed() {
			if anim().State() != components.Walking {
				t.Fatalf("frame advanced in state %v", anim().State())
			}
			if cfg.Animation.IsStepFrame(anim().Frame()) {
				want++
			}
		}
	}

	// 99 walking ticks advance the cycle 19 times, landing on frame 2 or 5
	// six times.
	if want != 6 || len(h.sfx.played) != want {
		t.Fatalf("played %d footsteps, counted %d contact frames, want 6", len(h.sfx.played), want)
	}
	for _, p := range h.sfx.played {
		if !slices.Contains(cfg.Sound.StepSounds, p.sound) {
			t.Errorf("played %v, not a step variant", p.sound)
		}
	}
}

func TestNoFootstepsWhileDashing(t *testing.T) {
	h := newHarness(t)
	h.spawnPlayer()

	h.buttons.press(cfg.ActionMoveRight, cfg.ActionDash)
	for h.clock().TickEnd() < 250*ms {
		h.tick(10 * ms)
	}
	if len(h.sfx.played) != 0 {
		t.Errorf("played %d footsteps during a dash", len(h.sfx.played))
	}
}

func TestTranslationHistoryLifecycle(t *testing.T) {
	wideWindow(t)
	h := newHarness(t)
	player := h.spawnPlayer()

	h.tick(10 * ms)
	if !player.HasComponent(components.TranslationHistory) {
		t.Fatal("history not created for a positioned entity")
	}
	if d := components.TranslationHistory.Get(player).Delta; d.X != 0 || d.Y != 0 {
		t.Errorf("first delta = %v, want zero", d)
	}

	h.buttons.press(cfg.ActionMoveDown)
	h.tick(10 * ms)
	if d := components.TranslationHistory.Get(player).Delta; !near(d.Y, 8) || d.X != 0 {
		t.Errorf("delta after 10ms down = %v, want (0, 8)", d)
	}

	player.RemoveComponent(components.Object)
	h.tick(10 * ms)
	if player.HasComponent(components.TranslationHistory) {
		t.Error("history kept after the position was removed")
	}
}
