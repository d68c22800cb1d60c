package systems

import (
	"fmt"
	"time"

	cfg "github.com/automoto/quackdash/config"
	"github.com/automoto/quackdash/shared/gametime"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

const volumeReadoutTime = 1500 * time.Millisecond

// UpdateAudioSettings steps the SFX volume and toggles mute from the volume
// actions. Changes are saved right away and shown briefly on screen.
func UpdateAudioSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	audioData := GetOrCreateAudio(e)
	audioData.Readout.Tick(getOrCreateClock(e).Delta)

	changed := false
	if input.Action(cfg.ActionVolumeDown).JustPressed {
		SetSFXVolume(e, adjustVolumeStep(GetSFXVolume(), -1))
		changed = true
	}
	if input.Action(cfg.ActionVolumeUp).JustPressed {
		SetSFXVolume(e, adjustVolumeStep(GetSFXVolume(), 1))
		changed = true
	}
	if input.Action(cfg.ActionMute).JustPressed {
		SetMuted(e, !IsMuted())
		changed = true
	}
	if !changed {
		return
	}

	audioData.Readout = gametime.NewTimer(volumeReadoutTime, gametime.Once)
	PlaySFX(e, cfg.SoundRandomStep)
	SaveCurrentSettings()
}

// adjustVolumeStep moves volume to the neighbouring configured step
func adjustVolumeStep(current float64, direction int) float64 {
	steps := cfg.Audio.VolumeSteps
	if len(steps) == 0 {
		return current
	}
	idx := findClosestStepIndex(current, steps) + direction
	idx = max(0, min(len(steps)-1, idx))
	return steps[idx]
}

// findClosestStepIndex finds the closest step index for a volume value
func findClosestStepIndex(value float64, steps []float64) int {
	closest := 0
	minDiff := 2.0
	for i, step := range steps {
		diff := value - step
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}
	return closest
}

// formatVolumeBar renders volume as a ten-segment bar
func formatVolumeBar(volume float64, muted bool) string {
	if muted {
		return "SFX [muted]"
	}
	filled := int(volume*10 + 0.5)
	bar := make([]byte, 10)
	for i := range bar {
		bar[i] = '.'
		if i < filled {
			bar[i] = '|'
		}
	}
	return fmt.Sprintf("SFX [%s] %d%%", bar, int(volume*100+0.5))
}

// DrawVolumeReadout shows the volume bar in the bottom left corner for a
// moment after it changed.
func DrawVolumeReadout(e *ecs.ECS, screen *ebiten.Image) {
	audioData := GetOrCreateAudio(e)
	if audioData.Readout.Duration() == 0 || audioData.Readout.Finished() {
		return
	}
	ebitenutil.DebugPrintAt(screen, formatVolumeBar(audioData.SFXVolume, audioData.Muted), 8, screen.Bounds().Dy()-24)
}
