//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"numslide/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	game, err := app.New(cfg)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("numslide")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(app.ScreenW*cfg.Scale, app.ScreenH*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
