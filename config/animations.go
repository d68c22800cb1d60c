package config

import "time"

// AnimationDef describes one locomotion animation cadence
type AnimationDef struct {
	Frames      int           `yaml:"frames"`
	Interval    time.Duration `yaml:"interval"`    // time each frame is shown
	AtlasOffset int           `yaml:"atlasOffset"` // first atlas cell of the cycle
}

// AnimationConfig contains the player locomotion animation definitions
type AnimationConfig struct {
	Idle AnimationDef `yaml:"idle"`
	// Walking and dashing share one cadence and one atlas row.
	Walk AnimationDef `yaml:"walk"`
	// StepFrames are the walk frames where a foot touches the ground.
	StepFrames []int `yaml:"stepFrames"`
}

var Animation AnimationConfig

func init() {
	Animation = AnimationConfig{
		Idle: AnimationDef{
			Frames:      2,
			Interval:    500 * time.Millisecond,
			AtlasOffset: 0,
		},
		Walk: AnimationDef{
			Frames:      6,
			Interval:    50 * time.Millisecond,
			AtlasOffset: 6,
		},
		StepFrames: []int{2, 5},
	}
}

// IsStepFrame reports whether frame is a foot-contact pose of the walk cycle.
func (a AnimationConfig) IsStepFrame(frame int) bool {
	for _, f := range a.StepFrames {
		if f == frame {
			return true
		}
	}
	return false
}
