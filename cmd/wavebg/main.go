//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"wavebg/internal/app"
	"wavebg/internal/scene"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sceneCfg, err := cfg.SceneConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	s, err := scene.New(sceneCfg)
	if err != nil {
		log.Fatal(err)
	}
	tw, err := cfg.Typewriter()
	if err != nil {
		log.Fatalf("invalid banner: %v", err)
	}

	game := app.New(s, tw, cfg.TPS)

	ebiten.SetWindowTitle("wavebg")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
