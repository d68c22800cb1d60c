package components

import (
	cfg "github.com/automoto/quackdash/config"
	"github.com/automoto/quackdash/shared/gametime"
	"github.com/yohamta/donburi"
)

// AudioData stores global audio state (singleton component)
type AudioData struct {
	SFXVolume  float64 // 0.0 - 1.0
	Muted      bool
	PendingSFX []cfg.SoundID
	// Readout runs while the volume readout is on screen after a change.
	Readout gametime.Timer
}

var Audio = donburi.NewComponentType[AudioData]()
