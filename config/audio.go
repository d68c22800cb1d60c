package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// SoundRandomStep resolves to one of Sound.StepSounds when played
	SoundRandomStep
	SoundStep1
	SoundStep2
	SoundStep3
	SoundStep4
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int     `yaml:"sampleRate"`
	DefaultSFXVol float64 `yaml:"defaultSfxVolume"`
	// VolumeSteps are the levels the volume keys step through.
	VolumeSteps []float64 `yaml:"volumeSteps"`
}

// StepVoice describes a synthesized footstep variant
type StepVoice struct {
	Frequency float64 // Hz of the thump body
	Length    float64 // seconds
	Gain      float64
}

// SoundConfig maps sound IDs to their sources
type SoundConfig struct {
	StepSounds        []SoundID
	StepVoices        map[SoundID]StepVoice
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		VolumeSteps:   []float64{0, 0.25, 0.5, 0.75, 1.0},
	}

	Sound = SoundConfig{
		StepSounds: []SoundID{SoundStep1, SoundStep2, SoundStep3, SoundStep4},
		StepVoices: map[SoundID]StepVoice{
			SoundStep1: {Frequency: 110, Length: 0.06, Gain: 0.6},
			SoundStep2: {Frequency: 125, Length: 0.05, Gain: 0.55},
			SoundStep3: {Frequency: 98, Length: 0.07, Gain: 0.6},
			SoundStep4: {Frequency: 140, Length: 0.05, Gain: 0.5},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundStep4: 0.9,
		},
	}
}
