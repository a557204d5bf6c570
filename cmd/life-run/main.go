package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"rle-life/internal/app"
	"rle-life/internal/life"
	"rle-life/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 100, "generations to simulate")
	every := flag.Int("every", 0, "print the population every N generations (0 = only at the end)")
	printGrid := flag.Bool("print", false, "print the final grid")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	res := <-cfg.Load()
	if res.Err != nil {
		log.Fatal(res.Err)
	}
	engine, err := life.NewFromBoard(res.Board)
	if err != nil {
		log.Fatal(err)
	}

	in := engine.Interior()
	fmt.Printf("%s: interior %dx%d, population %d\n", res.Name, in.W, in.H, engine.Population())
	for gen := 1; gen <= *steps; gen++ {
		engine.Advance()
		if *every > 0 && gen%*every == 0 {
			fmt.Printf("generation %d: population %d\n", gen, engine.Population())
		}
	}
	if *every <= 0 || *steps%*every != 0 {
		fmt.Printf("generation %d: population %d\n", *steps, engine.Population())
	}
	if *printGrid {
		fmt.Fprint(os.Stdout, term.Format(engine.Cells()))
	}
}
