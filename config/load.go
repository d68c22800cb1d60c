package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML override document. Sections that are absent keep
// their current values.
type fileConfig struct {
	Window    Config          `yaml:"window"`
	Debug     DebugConfig     `yaml:"debug"`
	Movement  MovementConfig  `yaml:"movement"`
	Dash      DashConfig      `yaml:"dash"`
	Ghost     GhostConfig     `yaml:"ghost"`
	Player    PlayerConfig    `yaml:"player"`
	Clock     ClockConfig     `yaml:"clock"`
	Animation AnimationConfig `yaml:"animation"`
	Audio     AudioConfig     `yaml:"audio"`
	Combat    CombatConfig    `yaml:"combat"`
}

func current() fileConfig {
	return fileConfig{
		Window:    *C,
		Debug:     Debug,
		Movement:  Movement,
		Dash:      Dash,
		Ghost:     Ghost,
		Player:    Player,
		Clock:     Clock,
		Animation: Animation,
		Audio:     Audio,
		Combat:    Combat,
	}
}

// Load overlays the YAML file at path on top of the current configuration.
// Nothing is applied if the file cannot be read, parsed or validated.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply overlays a YAML document on top of the current configuration.
func Apply(data []byte) error {
	fc := current()
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := fc.validate(); err != nil {
		return err
	}

	*C = fc.Window
	Debug = fc.Debug
	Movement = fc.Movement
	Dash = fc.Dash
	Ghost = fc.Ghost
	Player = fc.Player
	Clock = fc.Clock
	Animation = fc.Animation
	Audio = fc.Audio
	Combat = fc.Combat
	return nil
}

// Validate checks the active configuration.
func Validate() error {
	return current().validate()
}

func (fc fileConfig) validate() error {
	var errs []error
	if fc.Window.Width <= 0 || fc.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", fc.Window.Width, fc.Window.Height))
	}
	if fc.Movement.MaxSpeed < 0 {
		errs = append(errs, fmt.Errorf("movement.maxSpeed must not be negative, got %v", fc.Movement.MaxSpeed))
	}
	if fc.Dash.Duration <= 0 {
		errs = append(errs, fmt.Errorf("dash.duration must be positive, got %v", fc.Dash.Duration))
	}
	if fc.Dash.IntentWindow <= 0 {
		errs = append(errs, fmt.Errorf("dash.intentWindow must be positive, got %v", fc.Dash.IntentWindow))
	}
	// The request buffer is never cleared. A dash ends on the first tick that
	// ends past its duration, which can be up to one clamped tick late, so the
	// press must expire before then or it starts a second dash.
	if fc.Dash.IntentWindow+fc.Clock.MaxDelta >= fc.Dash.Duration {
		errs = append(errs, fmt.Errorf("dash.intentWindow (%v) plus clock.maxDelta (%v) must be shorter than dash.duration (%v)",
			fc.Dash.IntentWindow, fc.Clock.MaxDelta, fc.Dash.Duration))
	}
	if fc.Ghost.SpawnInterval <= 0 || fc.Ghost.Lifetime <= 0 {
		errs = append(errs, fmt.Errorf("ghost interval and lifetime must be positive, got %v and %v", fc.Ghost.SpawnInterval, fc.Ghost.Lifetime))
	}
	if fc.Player.FrameWidth <= 0 || fc.Player.FrameHeight <= 0 || fc.Player.Scale <= 0 {
		errs = append(errs, errors.New("player frame size and scale must be positive"))
	}
	if fc.Clock.MaxDelta <= 0 {
		errs = append(errs, fmt.Errorf("clock.maxDelta must be positive, got %v", fc.Clock.MaxDelta))
	}
	if fc.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio.sampleRate must be positive, got %d", fc.Audio.SampleRate))
	}
	if fc.Audio.DefaultSFXVol < 0 || fc.Audio.DefaultSFXVol > 1 {
		errs = append(errs, fmt.Errorf("audio.defaultSfxVolume must be within [0, 1], got %v", fc.Audio.DefaultSFXVol))
	}
	if len(fc.Audio.VolumeSteps) == 0 {
		errs = append(errs, errors.New("audio.volumeSteps must not be empty"))
	}
	for _, v := range fc.Audio.VolumeSteps {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("audio.volumeSteps: %v is outside [0, 1]", v))
		}
	}
	errs = append(errs, fc.Combat.validate()...)
	for name, def := range map[string]AnimationDef{"idle": fc.Animation.Idle, "walk": fc.Animation.Walk} {
		if def.Frames <= 0 || def.Interval <= 0 {
			errs = append(errs, fmt.Errorf("animation.%s needs positive frames and interval", name))
		}
	}
	for _, f := range fc.Animation.StepFrames {
		if f < 0 || f >= fc.Animation.Walk.Frames {
			errs = append(errs, fmt.Errorf("animation.stepFrames: %d is outside the %d-frame walk cycle", f, fc.Animation.Walk.Frames))
		}
	}
	return errors.Join(errs...)
}

func (c CombatConfig) validate() []error {
	var errs []error
	if c.CellSize <= 0 || c.SpaceMargin < 0 {
		errs = append(errs, fmt.Errorf("combat grid needs a positive cellSize and non-negative spaceMargin, got %d and %d", c.CellSize, c.SpaceMargin))
	}
	if c.Gun.Interval <= 0 || c.Gun.TimeToLive <= 0 {
		errs = append(errs, fmt.Errorf("combat.gun interval and timeToLive must be positive, got %v and %v", c.Gun.Interval, c.Gun.TimeToLive))
	}
	if c.Gun.Speed <= 0 || c.Gun.Damage <= 0 {
		errs = append(errs, errors.New("combat.gun speed and damage must be positive"))
	}
	if c.Enemy.Health <= 0 || c.Enemy.Size <= 0 || c.Enemy.MaxSpeed < 0 {
		errs = append(errs, errors.New("combat.enemy needs positive health and size and a non-negative maxSpeed"))
	}
	if c.Enemy.SpawnInterval <= 0 || c.Enemy.MaxAlive < 0 {
		errs = append(errs, fmt.Errorf("combat.enemy spawnInterval must be positive and maxAlive non-negative, got %v and %d", c.Enemy.SpawnInterval, c.Enemy.MaxAlive))
	}
	return errs
}
