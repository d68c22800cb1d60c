package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// SpriteData is the presentation boundary of an entity: which atlas cell to
// draw, whether to mirror it, and the color scale to draw it with.
type SpriteData struct {
	Atlas       *ebiten.Image
	FrameWidth  int
	FrameHeight int
	Columns     int
	Index       int
	FlipX       bool
	Color       ebiten.ColorScale
}

var Sprite = donburi.NewComponentType[SpriteData]()
