//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"rle-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	game := app.New(cfg)

	ebiten.SetWindowTitle("rle-life - " + cfg.SourceName())
	ebiten.SetWindowSize(640, 480)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
