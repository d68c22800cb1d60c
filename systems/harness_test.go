package systems

import (
	"testing"
	"time"

	"github.com/automoto/quackdash/components"
	cfg "github.com/automoto/quackdash/config"
	"github.com/automoto/quackdash/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const ms = time.Millisecond

// heldButtons is a ButtonSource driven by the test.
type heldButtons struct {
	held [cfg.ActionCount]bool
}

func (h *heldButtons) Poll(input *components.InputData) {
	input.Current = h.held
}

func (h *heldButtons) press(ids ...cfg.ActionID) {
	for _, id := range ids {
		h.held[id] = true
	}
}

func (h *heldButtons) release(ids ...cfg.ActionID) {
	for _, id := range ids {
		h.held[id] = false
	}
}

type playedSFX struct {
	sound  cfg.SoundID
	volume float64
}

// recordingSFX captures what UpdateAudio plays.
type recordingSFX struct {
	played []playedSFX
}

func (r *recordingSFX) Play(sound cfg.SoundID, volume float64) {
	r.played = append(r.played, playedSFX{sound, volume})
}

type harness struct {
	ecs     *ecs.ECS
	buttons *heldButtons
	sfx     *recordingSFX
}

// newHarness builds a world running the locomotion and combat systems in
// game order. It has no collision space; tests that shoot add one.
func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		ecs:     ecs.NewECS(donburi.NewWorld()),
		buttons: &heldButtons{},
		sfx:     &recordingSFX{},
	}
	factory.CreateClock(h.ecs)
	factory.CreateInput(h.ecs)

	h.ecs.AddSystem(RemoveTranslationHistory)
	h.ecs.AddSystem(AddTranslationHistory)
	h.ecs.AddSystem(UpdateAnimationTimer)
	h.ecs.AddSystem(UpdateTimeToLive)
	h.ecs.AddSystem(UpdateInputFrom(h.buttons))
	h.ecs.AddSystem(RecordMovementController)
	h.ecs.AddSystem(RecordDashIntent)
	h.ecs.AddSystem(ToggleGun)
	h.ecs.AddSystem(UpdateAudioSettings)
	h.ecs.AddSystem(StartDash)
	h.ecs.AddSystem(ApplyMovement)
	h.ecs.AddSystem(FollowPlayer)
	h.ecs.AddSystem(UpdateGhosts)
	h.ecs.AddSystem(ApplyDash)
	h.ecs.AddSystem(StopDash)
	h.ecs.AddSystem(WrapWithinWindow)
	h.ecs.AddSystem(SpawnEnemies)
	h.ecs.AddSystem(FireBullets)
	h.ecs.AddSystem(SyncColliders)
	h.ecs.AddSystem(HitTestBullets)
	h.ecs.AddSystem(MoveBullets)
	h.ecs.AddSystem(UpdateCombat)
	h.ecs.AddSystem(RecordTranslationHistory)
	h.ecs.AddSystem(UpdateAnimationMovement)
	h.ecs.AddSystem(UpdateAnimationAtlas)
	h.ecs.AddSystem(TriggerStepSFX)
	h.ecs.AddSystem(UpdateAudio)
	h.ecs.AddSystem(ProcessEvents)

	SetSFXPlayer(h.sfx)
	volume, muted, storage := globalSFXVolume, globalMuted, gdataManager
	gdataManager = nil
	t.Cleanup(func() {
		SetSFXPlayer(nil)
		globalSFXVolume, globalMuted, gdataManager = volume, muted, storage
	})
	return h
}

func (h *harness) tick(delta time.Duration) {
	AdvanceClock(h.ecs, delta)
	h.ecs.Update()
}

func (h *harness) run(n int, delta time.Duration) {
	for range n {
		h.tick(delta)
	}
}

func (h *harness) clock() *components.ClockData {
	return getOrCreateClock(h.ecs)
}

func (h *harness) spawnPlayer() *donburi.Entry {
	return factory.CreatePlayer(h.ecs, 0, 0, nil)
}

// wideWindow makes the wrap area large enough that tests moving a few
// hundred pixels never wrap.
func wideWindow(t *testing.T) {
	t.Helper()
	prev := *cfg.C
	cfg.C.Width, cfg.C.Height = 10000, 10000
	t.Cleanup(func() { *cfg.C = prev })
}

// withSpace adds the collision space the playing scene creates.
func (h *harness) withSpace() *components.SpaceData {
	entry := factory.CreateSpace(h.ecs, cfg.C.Width, cfg.C.Height, cfg.Combat.SpaceMargin, cfg.Combat.CellSize)
	return components.Space.Get(entry)
}

func countGhosts(e *ecs.ECS) int {
	n := 0
	components.Ghost.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
