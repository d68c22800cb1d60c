package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"

	cfg "github.com/automoto/quackdash/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effects. It implements the
// systems.SFXPlayer interface.
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // cached 16-bit stereo PCM
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a sound effect and caches it without creating a
// player.
func (l *AudioLoader) PreloadSFX(sound cfg.SoundID) error {
	if _, ok := l.sfxCache[sound]; ok {
		return nil
	}
	voice, ok := cfg.Sound.StepVoices[sound]
	if !ok {
		return fmt.Errorf("no voice for sound %d", sound)
	}
	l.sfxCache[sound] = SynthesizeStep(voice, l.context.SampleRate(), uint64(sound))
	return nil
}

// LoadSFX returns a new player for the sound each time.
func (l *AudioLoader) LoadSFX(sound cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(sound); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[sound]))
}

// Play starts the sound at volume. Unknown sounds are ignored.
func (l *AudioLoader) Play(sound cfg.SoundID, volume float64) {
	player, err := l.LoadSFX(sound)
	if err != nil {
		return
	}
	player.SetVolume(volume)
	player.Play()
}

// SynthesizeStep renders a short footstep thump: a decaying low sine mixed
// with a little noise, as 16-bit little-endian stereo PCM. The same seed
// always yields the same samples.
func SynthesizeStep(voice cfg.StepVoice, sampleRate int, seed uint64) []byte {
	n := int(voice.Length * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	rng := rand.New(rand.NewPCG(seed, 0x5eed))

	out := make([]byte, n*4)
	for i := range n {
		t := float64(i) / float64(sampleRate)
		env := math.Exp(-t / (voice.Length / 4))
		body := math.Sin(2 * math.Pi * voice.Frequency * t)
		noise := rng.Float64()*2 - 1
		v := voice.Gain * env * (0.8*body + 0.2*noise)
		v = max(-1, min(1, v))

		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*4:], s)
		binary.LittleEndian.PutUint16(out[i*4+2:], s)
	}
	return out
}
