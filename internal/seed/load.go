package seed

import (
	"fmt"
	"io/fs"

	"rle-life/internal/core"
)

// Result is the outcome of a one-shot load. Board already carries the padding
// ring and can be handed to life.NewFromBoard.
type Result struct {
	Name  string
	Board *core.Board
	Err   error
}

// Async runs build on its own goroutine. The returned channel receives exactly
// one Result and is then closed.
func Async(name string, build func() (*core.Board, error)) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		b, err := build()
		ch <- Result{Name: name, Board: b, Err: err}
	}()
	return ch
}

// Load reads and decodes the RLE file name from fsys in the background.
func Load(fsys fs.FS, name string, margin int) <-chan Result {
	return Async(name, func() (*core.Board, error) {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		b, err := Decode(src, margin)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		return b, nil
	})
}
