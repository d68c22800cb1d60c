package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/quackdash/components"
	cfg "github.com/automoto/quackdash/config"
	"github.com/automoto/quackdash/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var footprintColor = color.RGBA{0, 255, 255, 255}

// DrawDebug outlines object footprints and prints the player's locomotion
// state when the debug overlay is enabled.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowOverlay {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	ox, oy := float64(width)/2, float64(height)/2

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(tags.Ghost) {
			return
		}
		o := components.Object.Get(entry)
		vector.StrokeRect(screen,
			float32(ox+o.X-o.W/2), float32(oy+o.Y-o.H/2),
			float32(o.W), float32(o.H),
			1, footprintColor, false)
	})

	ghosts := 0
	components.Ghost.Each(e.World, func(*donburi.Entry) { ghosts++ })

	msg := fmt.Sprintf("TPS: %0.1f\nGhosts: %d", ebiten.ActualTPS(), ghosts)
	if entry, ok := tags.Player.First(e.World); ok {
		o := components.Object.Get(entry)
		anim := components.PlayerAnimation.Get(entry)
		msg += fmt.Sprintf("\nPos: %.1f, %.1f\nState: %s frame %d",
			o.X, o.Y, anim.State(), anim.Frame())
		if entry.HasComponent(components.TranslationHistory) {
			d := components.TranslationHistory.Get(entry).Delta
			msg += fmt.Sprintf("\nDelta: %.2f, %.2f", d.X, d.Y)
		}
	}
	ebitenutil.DebugPrint(screen, msg)
}
