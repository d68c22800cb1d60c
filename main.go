package main

import (
	"flag"

	"github.com/automoto/quackdash/assets"
	"github.com/automoto/quackdash/config"
	"github.com/automoto/quackdash/logger"
	"github.com/automoto/quackdash/scenes"
	"github.com/automoto/quackdash/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

type Game struct {
	scene scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene scenes.Scene) {
	g.scene = scene
}

func NewGame() *Game {
	g := &Game{}
	g.scene = scenes.NewPlayingScene(g)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "quackdash.yaml", "YAML file overriding the default tuning")
	flag.Parse()

	logger.Init()
	log := logger.WithSystem("main")

	if err := config.Load(*configPath); err != nil {
		log.WithError(err).Warn("could not load config, using defaults")
	}
	systems.InitAudioSettings()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence("quackdash"); err != nil {
		log.WithError(err).Warn("could not initialize persistence")
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		log.WithError(err).Warn("could not load saved settings")
	}
	systems.ApplySavedSettingsGlobal(saved)

	loader := assets.NewAudioLoader(audio.NewContext(config.Audio.SampleRate))
	for _, sound := range config.Sound.StepSounds {
		if err := loader.PreloadSFX(sound); err != nil {
			log.WithError(err).Warn("could not preload sound")
		}
	}
	systems.SetSFXPlayer(loader)

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Quack Dash")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.WithError(err).Fatal("game exited")
	}
}
