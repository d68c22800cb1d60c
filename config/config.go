package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	ShowOverlay bool `yaml:"showOverlay"` // Draw clock/dash/animation readout
}

// PresentationConfig contains colors used by the renderers
type PresentationConfig struct {
	ClearColor     color.RGBA
	PlayerTint     color.RGBA
	EnemyColor     color.RGBA
	BulletColor    color.RGBA
	HealthBarColor color.RGBA
}

// Default is the only render layer used by the playing scene.
const Default ecs.LayerID = 0

// Global configuration instances
var C *Config
var Debug DebugConfig
var Presentation PresentationConfig

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Presentation = PresentationConfig{
		ClearColor:     colornames.Darkslategray,
		PlayerTint:     colornames.White,
		EnemyColor:     colornames.White,
		BulletColor:    colornames.Gold,
		HealthBarColor: colornames.Crimson,
	}
}
