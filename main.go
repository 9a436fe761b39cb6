package main

import (
	"log"

	"github.com/automoto/tickinterp/config"
	"github.com/automoto/tickinterp/fonts"
	"github.com/automoto/tickinterp/scenes"
	"github.com/automoto/tickinterp/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() (*Game, error) {
	scene, err := scenes.NewInterpolationScene()
	if err != nil {
		return nil, err
	}
	return &Game{scene: scene}, nil
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
	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetVsyncEnabled(true)

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettings(saved)
	}

	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to start interpolation: %v", err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
