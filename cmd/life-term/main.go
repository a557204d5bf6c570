package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"rle-life/internal/app"
	"rle-life/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	// Start decoding before the terminal switches modes; the result is
	// consumed exactly once below.
	pending := cfg.Load()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}

	res := <-pending
	if res.Err != nil {
		screen.Fini()
		log.Fatal(res.Err)
	}
	viewer, err := term.NewViewer(screen, res.Name, res.Board, cfg.TPS)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	err = viewer.Run()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
