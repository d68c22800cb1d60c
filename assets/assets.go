// Package assets builds the placeholder art and sound used by the game.
// Nothing is loaded from disk.
package assets

import (
	"image/color"

	cfg "github.com/automoto/quackdash/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
)

var (
	bodyColor = colornames.White
	beakColor = colornames.Orange
	footColor = colornames.Darkorange
	eyeColor  = colornames.Black
)

// walkFeet is the horizontal offset of each foot per walk frame. Frames 2
// and 5 are the contact poses where a foot is planted under the body.
var walkFeet = [][2]float32{
	{-4, 4}, {-2, 2}, {0, 0}, {4, -4}, {2, -2}, {0, 0},
}

// NewPlayerAtlas draws the player's sprite atlas: the idle frames on the
// first row starting at Animation.Idle.AtlasOffset, the walk cycle starting at
// Animation.Walk.AtlasOffset. Sprites face right; rendering mirrors them.
func NewPlayerAtlas() *ebiten.Image {
	p := cfg.Player
	atlas := ebiten.NewImage(p.FrameWidth*p.AtlasCols, p.FrameHeight*p.AtlasRows)

	for f := range cfg.Animation.Idle.Frames {
		bob := float32(f) // breathe by one pixel
		drawDuck(atlas, cfg.Animation.Idle.AtlasOffset+f, bob, 0, 0)
	}
	for f := range cfg.Animation.Walk.Frames {
		feet := walkFeet[f%len(walkFeet)]
		drawDuck(atlas, cfg.Animation.Walk.AtlasOffset+f, 0, feet[0], feet[1])
	}
	return atlas
}

func drawDuck(atlas *ebiten.Image, index int, bob, leftFoot, rightFoot float32) {
	p := cfg.Player
	if index < 0 || index >= p.AtlasCols*p.AtlasRows {
		return
	}
	w, h := float32(p.FrameWidth), float32(p.FrameHeight)
	ox := float32(index%p.AtlasCols) * w
	oy := float32(index/p.AtlasCols) * h

	cx, cy := ox+w/2, oy+h/2+bob

	fill(atlas, cx-4+leftFoot, oy+h-5, 4, 3, footColor)
	fill(atlas, cx+rightFoot, oy+h-5, 4, 3, footColor)
	vector.DrawFilledCircle(atlas, cx-1, cy+3, w*0.28, bodyColor, false)
	vector.DrawFilledCircle(atlas, cx+5, cy-7, w*0.18, bodyColor, false)
	fill(atlas, cx+9, cy-8, 5, 3, beakColor)
	fill(atlas, cx+6, cy-10, 2, 2, eyeColor)
}

func fill(dst *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.DrawFilledRect(dst, x, y, w, h, c, false)
}
