package factory

import (
	"github.com/automoto/quackdash/archetypes"
	"github.com/automoto/quackdash/components"
	cfg "github.com/automoto/quackdash/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the controllable duck centered at (x, y). atlas may be
// nil when nothing is drawn (tests, headless runs).
func CreatePlayer(ecs *ecs.ECS, x, y float64, atlas *ebiten.Image) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Object.SetValue(player, components.ObjectData{
		X: x,
		Y: y,
		W: cfg.Player.FootprintWidth(),
		H: cfg.Player.FootprintHeight(),
	})

	components.MovementSettings.SetValue(player, components.MovementSettingsData{
		MaxSpeed: cfg.Movement.MaxSpeed,
	})
	components.DashSettings.SetValue(player, components.DashSettingsData{
		IntentWindow: cfg.Dash.IntentWindow,
		Distance:     cfg.Dash.Distance,
		Duration:     cfg.Dash.Duration,
	})

	anim := components.NewPlayerAnimation()
	components.PlayerAnimation.SetValue(player, anim)

	sprite := components.SpriteData{
		Atlas:       atlas,
		FrameWidth:  cfg.Player.FrameWidth,
		FrameHeight: cfg.Player.FrameHeight,
		Columns:     cfg.Player.AtlasCols,
		Index:       anim.AtlasIndex(),
	}
	sprite.Color.ScaleWithColor(cfg.Presentation.PlayerTint)
	components.Sprite.SetValue(player, sprite)

	return player
}
