package core

import "fmt"

// Board stores a fixed-size 2D grid of byte-sized cell states in row-major
// order. 0 is dead and 1 is alive.
type Board struct {
	w, h int
	data []uint8
}

// MaxCells caps the area of a single board at 64 MiB of cell state.
const MaxCells = 1 << 26

// NewBoard allocates an all-dead board with the given dimensions.
func NewBoard(w, h int) (*Board, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: board %dx%d", ErrInvalidDimensions, w, h)
	}
	if w > MaxCells/h {
		return nil, fmt.Errorf("%w: board %dx%d exceeds %d cells", ErrInvalidDimensions, w, h, MaxCells)
	}
	return &Board{w: w, h: h, data: make([]uint8, w*h)}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.w }

// Height returns the number of rows.
func (b *Board) Height() int { return b.h }

// Size returns the board dimensions.
func (b *Board) Size() Size { return Size{W: b.w, H: b.h} }

// Cells exposes the backing slice so renderers can read rows directly.
func (b *Board) Cells() []uint8 { return b.data }

// Index returns the linear slice index for coordinates (x, y).
func (b *Board) Index(x, y int) int { return y*b.w + x }

func (b *Board) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < b.w && y < b.h
}

// Get returns the state at (x, y).
func (b *Board) Get(x, y int) (uint8, error) {
	if !b.contains(x, y) {
		return 0, fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, x, y, b.w, b.h)
	}
	return b.data[b.Index(x, y)], nil
}

// Set writes the state at (x, y).
func (b *Board) Set(x, y int, v uint8) error {
	if !b.contains(x, y) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d board", ErrOutOfBounds, x, y, b.w, b.h)
	}
	b.data[b.Index(x, y)] = v
	return nil
}

// EmbedInto returns a new board margin cells wider and taller than b, with b
// copied into the centre. The margin is split evenly so it must be even.
func (b *Board) EmbedInto(margin int) (*Board, error) {
	if margin < 0 || margin%2 != 0 {
		return nil, fmt.Errorf("%w: margin %d must be even and non-negative", ErrInvalidDimensions, margin)
	}
	out, err := NewBoard(b.w+margin, b.h+margin)
	if err != nil {
		return nil, err
	}
	off := margin / 2
	for y := 0; y < b.h; y++ {
		copy(out.data[out.Index(off, y+off):], b.data[y*b.w:(y+1)*b.w])
	}
	return out, nil
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{w: b.w, h: b.h, data: append([]uint8(nil), b.data...)}
}

// Clear fills the board with dead cells.
func (b *Board) Clear() {
	clear(b.data)
}

// Population counts the non-dead cells.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.data {
		if c != 0 {
			n++
		}
	}
	return n
}
