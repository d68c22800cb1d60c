package scenes

import (
	"sync"
	"time"

	"github.com/automoto/quackdash/assets"
	cfg "github.com/automoto/quackdash/config"
	"github.com/automoto/quackdash/events"
	"github.com/automoto/quackdash/logger"
	"github.com/automoto/quackdash/systems"
	"github.com/automoto/quackdash/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayingScene runs one play session of the duck.
type PlayingScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	input        systems.ButtonSource
	now          func() time.Time
	last         time.Time
	once         sync.Once
}

// NewPlayingScene creates a play session reading the real input devices.
func NewPlayingScene(sc SceneChanger) *PlayingScene {
	return &PlayingScene{
		sceneChanger: sc,
		input:        systems.DeviceInput{},
		now:          time.Now,
	}
}

func (ps *PlayingScene) Update() {
	ps.once.Do(ps.configure)

	systems.AdvanceClock(ps.ecs, ps.tickDelta())
	ps.ecs.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		ps.End()
		ps.sceneChanger.ChangeScene(NewPlayingScene(ps.sceneChanger))
	}
}

func (ps *PlayingScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Presentation.ClearColor)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// End removes everything the session spawned.
func (ps *PlayingScene) End() {
	if ps.ecs == nil {
		return
	}
	systems.EndSession(ps.ecs)
}

func (ps *PlayingScene) configure() {
	ps.ecs = newPlayingECS(ps.input)
	factory.CreatePlayer(ps.ecs, 0, 0, assets.NewPlayerAtlas())
	factory.CreateEnemySpawner(ps.ecs)
	logger.WithSystem("scene").Info("play session started")
}

// tickDelta measures wall time since the previous update, clamped to
// Clock.MaxDelta. The first update uses one nominal tick.
func (ps *PlayingScene) tickDelta() time.Duration {
	now := ps.now()
	delta := time.Second / time.Duration(ebiten.TPS())
	if !ps.last.IsZero() {
		delta = now.Sub(ps.last)
	}
	ps.last = now
	return min(max(delta, 0), cfg.Clock.MaxDelta)
}

// newPlayingECS builds the world and registers the locomotion and combat
// systems in their phase order.
func newPlayingECS(input systems.ButtonSource) *ecs.ECS {
	ecs := ecs.NewECS(donburi.NewWorld())

	factory.CreateClock(ecs)
	factory.CreateInput(ecs)
	factory.CreateSpace(ecs, cfg.C.Width, cfg.C.Height, cfg.Combat.SpaceMargin, cfg.Combat.CellSize)
	systems.GetOrCreateAudio(ecs)

	// Early: history bookkeeping and timers
	ecs.AddSystem(systems.RemoveTranslationHistory)
	ecs.AddSystem(systems.AddTranslationHistory)
	ecs.AddSystem(systems.UpdateAnimationTimer)
	ecs.AddSystem(systems.UpdateTimeToLive)

	// Input
	ecs.AddSystem(systems.UpdateInputFrom(input))
	ecs.AddSystem(systems.RecordMovementController)
	ecs.AddSystem(systems.RecordDashIntent)
	ecs.AddSystem(systems.ToggleGun)
	ecs.AddSystem(systems.UpdateAudioSettings)

	// Motion. Ghosts spawn before the dash step so they trail behind.
	ecs.AddSystem(systems.StartDash)
	ecs.AddSystem(systems.ApplyMovement)
	ecs.AddSystem(systems.FollowPlayer)
	ecs.AddSystem(systems.UpdateGhosts)
	ecs.AddSystem(systems.ApplyDash)
	ecs.AddSystem(systems.StopDash)
	ecs.AddSystem(systems.WrapWithinWindow)

	// Combat. Bullets are hit tested over the path they are about to fly.
	ecs.AddSystem(systems.SpawnEnemies)
	ecs.AddSystem(systems.FireBullets)
	ecs.AddSystem(systems.SyncColliders)
	ecs.AddSystem(systems.HitTestBullets)
	ecs.AddSystem(systems.MoveBullets)
	ecs.AddSystem(systems.UpdateCombat)
	ecs.AddSystem(systems.RecordTranslationHistory)

	// Presentation
	ecs.AddSystem(systems.UpdateAnimationMovement)
	ecs.AddSystem(systems.UpdateAnimationAtlas)
	ecs.AddSystem(systems.TriggerStepSFX)
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.ProcessEvents)

	ecs.AddRenderer(cfg.Default, systems.DrawEnemies)
	ecs.AddRenderer(cfg.Default, systems.DrawGhosts)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawBullets)
	ecs.AddRenderer(cfg.Default, systems.DrawVolumeReadout)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	events.GhostSpawnedEvent.Subscribe(ecs.World, func(w donburi.World, e events.GhostSpawned) {
		if w.Valid(e.Ghost) {
			systems.MarkPlaying(w.Entry(e.Ghost))
		}
	})

	return ecs
}
