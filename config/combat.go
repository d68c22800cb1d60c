package config

import "time"

// CombatConfig contains the gun, enemy and collision grid configuration
type CombatConfig struct {
	CellSize    int         `yaml:"cellSize"`    // collision grid cell, pixels
	SpaceMargin int         `yaml:"spaceMargin"` // grid padding around the wrap area
	Gun         GunConfig   `yaml:"gun"`
	Enemy       EnemyConfig `yaml:"enemy"`
	// HealthBarDuration is how long an enemy's bar stays up after a hit.
	HealthBarDuration time.Duration `yaml:"healthBarDuration"`
}

// GunConfig is the bullet spawner handed to the player by the gun toggle
type GunConfig struct {
	Damage     float64       `yaml:"damage"`
	Speed      float64       `yaml:"speed"` // pixels per second
	Interval   time.Duration `yaml:"interval"`
	TimeToLive time.Duration `yaml:"timeToLive"`
	Radius     float64       `yaml:"radius"` // drawn size only, hits are tested along the bullet path
}

// EnemyConfig describes the chasing squares
type EnemyConfig struct {
	MaxSpeed      float64       `yaml:"maxSpeed"`
	Health        float64       `yaml:"health"`
	Size          float64       `yaml:"size"`
	SpawnInterval time.Duration `yaml:"spawnInterval"`
	MaxAlive      int           `yaml:"maxAlive"`
}

var Combat CombatConfig

func init() {
	Combat = CombatConfig{
		CellSize:    64,
		SpaceMargin: 256,
		Gun: GunConfig{
			Damage:     1,
			Speed:      2000,
			Interval:   100 * time.Millisecond,
			TimeToLive: 5 * time.Second,
			Radius:     25,
		},
		Enemy: EnemyConfig{
			MaxSpeed:      800,
			Health:        2,
			Size:          150,
			SpawnInterval: 3 * time.Second,
			MaxAlive:      6,
		},
		HealthBarDuration: time.Second,
	}
}
