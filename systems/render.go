package systems

import (
	"image"

	"github.com/automoto/quackdash/components"
	cfg "github.com/automoto/quackdash/config"
	"github.com/automoto/quackdash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

var (
	drawOp = &ebiten.DrawImageOptions{}

	ghostSprites = donburi.NewQuery(filter.Contains(
		tags.Ghost,
		components.Object,
		components.Sprite,
	))

	animatedBodies = donburi.NewQuery(filter.And(
		filter.Contains(components.Object, components.Sprite, components.PlayerAnimation),
		filter.Not(filter.Contains(tags.Ghost)),
	))
)

type frameKey struct {
	atlas *ebiten.Image
	index int
}

// frameCache avoids re-slicing the atlas every frame. Each session brings its
// own atlas, so EndSession empties it.
var frameCache = map[frameKey]*ebiten.Image{}

func clearFrameCache() {
	clear(frameCache)
}

// DrawGhosts renders after-images at their own opacity. Register it before
// DrawAnimated so the trail sits under the player.
func DrawGhosts(e *ecs.ECS, screen *ebiten.Image) {
	ghostSprites.Each(e.World, func(entry *donburi.Entry) {
		drawSprite(screen, entry)
	})
}

// DrawAnimated renders animated entities at their current atlas cell.
func DrawAnimated(e *ecs.ECS, screen *ebiten.Image) {
	animatedBodies.Each(e.World, func(entry *donburi.Entry) {
		drawSprite(screen, entry)
	})
}

// DrawEnemies renders enemies as filled squares with a health bar above the
// ones recently hit.
func DrawEnemies(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := screenOrigin(screen)
	targets.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		left, top := float32(ox+o.X-o.W/2), float32(oy+o.Y-o.H/2)
		vector.DrawFilledRect(screen, left, top, float32(o.W), float32(o.H), cfg.Presentation.EnemyColor, false)

		if !entry.HasComponent(components.HealthBar) || !entry.HasComponent(components.Health) {
			return
		}
		const barHeight, barGap = 8, 6
		fill := components.Health.Get(entry).Fraction()
		vector.DrawFilledRect(screen, left, top-barGap-barHeight, float32(o.W*fill), barHeight, cfg.Presentation.HealthBarColor, false)
	})
}

// DrawBullets renders bullets as discs of their drawn radius.
func DrawBullets(e *ecs.ECS, screen *ebiten.Image) {
	ox, oy := screenOrigin(screen)
	bullets.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		vector.DrawFilledCircle(screen, float32(ox+o.X), float32(oy+o.Y), float32(o.W/2), cfg.Presentation.BulletColor, true)
	})
}

// screenOrigin is where the world origin lands on screen.
func screenOrigin(screen *ebiten.Image) (float64, float64) {
	return float64(screen.Bounds().Dx()) / 2, float64(screen.Bounds().Dy()) / 2
}

// drawSprite draws the sprite's atlas cell scaled to the object footprint
// and centered on the object position, with the origin at the screen center.
func drawSprite(screen *ebiten.Image, entry *donburi.Entry) {
	sprite := components.Sprite.Get(entry)
	o := components.Object.Get(entry)

	img := atlasFrame(sprite)
	if img == nil {
		return
	}

	fw, fh := float64(sprite.FrameWidth), float64(sprite.FrameHeight)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	// Anchor at the center of the frame.
	drawOp.GeoM.Translate(-fw/2, -fh/2)
	if sprite.FlipX {
		drawOp.GeoM.Scale(-1, 1)
	}
	drawOp.GeoM.Scale(o.W/fw, o.H/fh)
	drawOp.GeoM.Translate(float64(width)/2+o.X, float64(height)/2+o.Y)

	drawOp.ColorScale.ScaleWithColorScale(sprite.Color)
	screen.DrawImage(img, drawOp)
}

func atlasFrame(sprite *components.SpriteData) *ebiten.Image {
	if sprite.Atlas == nil || sprite.FrameWidth <= 0 || sprite.FrameHeight <= 0 || sprite.Columns <= 0 {
		return nil
	}

	key := frameKey{atlas: sprite.Atlas, index: sprite.Index}
	if img, ok := frameCache[key]; ok {
		return img
	}

	sx := (sprite.Index % sprite.Columns) * sprite.FrameWidth
	sy := (sprite.Index / sprite.Columns) * sprite.FrameHeight
	rect := image.Rect(sx, sy, sx+sprite.FrameWidth, sy+sprite.FrameHeight)
	if !rect.In(sprite.Atlas.Bounds()) {
		return nil
	}

	img := sprite.Atlas.SubImage(rect).(*ebiten.Image)
	frameCache[key] = img
	return img
}
