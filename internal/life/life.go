package life

import (
	"fmt"

	"rle-life/internal/core"
)

var _ core.Sim = (*Engine)(nil)

// neighbors lists the eight (dx, dy) offsets summed into each count.
var neighbors = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Engine implements Conway's Game of Life on a grid with a fixed dead border.
// cells carries a one-cell padding ring around the interior that is never
// written as alive; scratch holds neighbour counts for the interior only.
type Engine struct {
	cells   *core.Board
	scratch *core.Board
}

// New returns an all-dead engine with the given interior dimensions.
func New(w, h int) (*Engine, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: interior %dx%d", core.ErrInvalidDimensions, w, h)
	}
	cells, err := core.NewBoard(w+2, h+2)
	if err != nil {
		return nil, err
	}
	scratch, err := core.NewBoard(w, h)
	if err != nil {
		return nil, err
	}
	return &Engine{cells: cells, scratch: scratch}, nil
}

// NewFromBoard returns an engine seeded from b, whose dimensions already
// include the padding ring. b is copied; non-zero cells count as alive and
// anything on the ring is dropped.
func NewFromBoard(b *core.Board) (*Engine, error) {
	if b.Width() < 3 || b.Height() < 3 {
		return nil, fmt.Errorf("%w: board %dx%d has no interior", core.ErrInvalidDimensions, b.Width(), b.Height())
	}
	e, err := New(b.Width()-2, b.Height()-2)
	if err != nil {
		return nil, err
	}
	w := b.Width()
	src, dst := b.Cells(), e.cells.Cells()
	for y := 1; y < b.Height()-1; y++ {
		for x := 1; x < w-1; x++ {
			if src[y*w+x] != 0 {
				dst[y*w+x] = 1
			}
		}
	}
	return e, nil
}

// Clone returns an independent engine at the same generation.
func (e *Engine) Clone() *Engine {
	return &Engine{cells: e.cells.Clone(), scratch: e.scratch.Clone()}
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the padded grid dimensions.
func (e *Engine) Size() core.Size { return e.cells.Size() }

// Interior returns the dimensions of the simulated region.
func (e *Engine) Interior() core.Size { return e.scratch.Size() }

// Cells exposes the padded grid. Callers must treat it as read-only and must
// not hold on to it across Advance calls if they need a stable copy.
func (e *Engine) Cells() *core.Board { return e.cells }

// Population counts live cells.
func (e *Engine) Population() int { return e.cells.Population() }

// Advance computes the next generation in place.
func (e *Engine) Advance() {
	w := e.cells.Width()
	iw, ih := e.scratch.Width(), e.scratch.Height()
	cur, sum := e.cells.Cells(), e.scratch.Cells()

	clear(sum)
	for _, d := range neighbors {
		for y := 0; y < ih; y++ {
			src := cur[(y+1+d[1])*w+1+d[0]:]
			dst := sum[y*iw : (y+1)*iw]
			for x := range dst {
				dst[x] += src[x]
			}
		}
	}

	for y := 0; y < ih; y++ {
		row := cur[(y+1)*w+1 : (y+1)*w+1+iw]
		counts := sum[y*iw : (y+1)*iw]
		for x, alive := range row {
			row[x] = next(alive, counts[x])
		}
	}
}

func next(alive, n uint8) uint8 {
	if n == 3 || (alive == 1 && n == 2) {
		return 1
	}
	return 0
}
