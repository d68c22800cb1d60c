package systems

import (
	"math/rand/v2"

	"github.com/automoto/quackdash/components"
	cfg "github.com/automoto/quackdash/config"
	"github.com/yohamta/donburi/ecs"
)

// SFXPlayer plays a resolved sound at the given volume.
type SFXPlayer interface {
	Play(sound cfg.SoundID, volume float64)
}

// Global audio state - shared across all scenes
var (
	globalSFXPlayer SFXPlayer
	globalSFXVolume float64
	globalMuted     bool
)

func init() {
	InitAudioSettings()
}

// InitAudioSettings resets volume and mute to the configured defaults. Call
// it again once a config file has been loaded, before applying saved settings.
func InitAudioSettings() {
	globalSFXVolume = max(0, min(1, cfg.Audio.DefaultSFXVol))
	globalMuted = false
}

// pickStep chooses a footstep variant from the pool.
var pickStep = func(pool []cfg.SoundID) cfg.SoundID {
	return pool[rand.IntN(len(pool))]
}

// SetSFXPlayer installs the backend that UpdateAudio plays through. A nil
// player silently drops queued sounds.
func SetSFXPlayer(p SFXPlayer) {
	globalSFXPlayer = p
}

// UpdateAudio drains the pending SFX queue.
func UpdateAudio(e *ecs.ECS) {
	audioData := GetOrCreateAudio(e)
	for _, soundID := range audioData.PendingSFX {
		playSFX(audioData, soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(audioData *components.AudioData, soundID cfg.SoundID) {
	if globalSFXPlayer == nil || audioData.Muted || audioData.SFXVolume <= 0 {
		return
	}

	if soundID == cfg.SoundRandomStep {
		if len(cfg.Sound.StepSounds) == 0 {
			return
		}
		soundID = pickStep(cfg.Sound.StepSounds)
	}

	volume := audioData.SFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}
	globalSFXPlayer.Play(soundID, volume)
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = max(0, min(1, volume))
	GetOrCreateAudio(e).SFXVolume = globalSFXVolume
}

// SetMuted silences or restores sound effects without losing the volume.
func SetMuted(e *ecs.ECS, muted bool) {
	globalMuted = muted
	GetOrCreateAudio(e).Muted = muted
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// IsMuted reports whether sound effects are muted.
func IsMuted() bool {
	return globalMuted
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			Muted:      globalMuted,
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
