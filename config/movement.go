package config

import "time"

// MovementConfig contains ordinary walking configuration
type MovementConfig struct {
	MaxSpeed float64 `yaml:"maxSpeed"` // pixels per second at full intent
}

// DashConfig contains the dash profile attached to dash-capable entities
type DashConfig struct {
	// IntentWindow is how long a dash press stays eligible. A press recorded
	// while no direction is held still triggers if movement starts in time.
	IntentWindow time.Duration `yaml:"intentWindow"`
	Distance     float64       `yaml:"distance"` // total pixels covered by one dash
	Duration     time.Duration `yaml:"duration"`
}

// GhostConfig contains after-image trail configuration
type GhostConfig struct {
	SpawnInterval time.Duration `yaml:"spawnInterval"`
	Lifetime      time.Duration `yaml:"lifetime"`
}

// PlayerConfig contains player dimensions
type PlayerConfig struct {
	FrameWidth  int     `yaml:"frameWidth"`
	FrameHeight int     `yaml:"frameHeight"`
	Scale       float64 `yaml:"scale"` // on-screen pixels per atlas pixel
	AtlasCols   int     `yaml:"atlasCols"`
	AtlasRows   int     `yaml:"atlasRows"`
}

// ClockConfig bounds the per-frame tick delta
type ClockConfig struct {
	MaxDelta time.Duration `yaml:"maxDelta"` // longer frames are clamped (window drag, breakpoints)
}

var Movement MovementConfig
var Dash DashConfig
var Ghost GhostConfig
var Player PlayerConfig
var Clock ClockConfig

func init() {
	Movement = MovementConfig{
		MaxSpeed: 800,
	}

	Dash = DashConfig{
		IntentWindow: 100 * time.Millisecond,
		Distance:     800,
		Duration:     250 * time.Millisecond,
	}

	Ghost = GhostConfig{
		SpawnInterval: 50 * time.Millisecond,
		Lifetime:      250 * time.Millisecond,
	}

	Player = PlayerConfig{
		FrameWidth:  32,
		FrameHeight: 32,
		Scale:       4,
		AtlasCols:   6,
		AtlasRows:   2,
	}

	Clock = ClockConfig{
		MaxDelta: 100 * time.Millisecond,
	}
}

// FootprintWidth returns the on-screen sprite width.
func (p PlayerConfig) FootprintWidth() float64 {
	return float64(p.FrameWidth) * p.Scale
}

// FootprintHeight returns the on-screen sprite height.
func (p PlayerConfig) FootprintHeight() float64 {
	return float64(p.FrameHeight) * p.Scale
}
