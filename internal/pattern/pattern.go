// Package pattern decodes Game of Life patterns written in the RLE format.
//
// A file consists of optional '#' comment lines, a header line such as
//
//	x = 3, y = 3, rule = B3/S23
//
// and a body of [count]tag tokens: 'b' is a run of dead cells, 'o' a run of
// live cells, '$' ends one or more rows and '!' terminates the pattern.
package pattern

import (
	"errors"
	"fmt"
)

// ErrMalformed is wrapped by every decoding failure.
var ErrMalformed = errors.New("malformed pattern")

// SyntaxError locates a decoding failure in the source text.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return "pattern: " + e.Msg
	}
	return fmt.Sprintf("pattern: line %d col %d: %s", e.Line, e.Col, e.Msg)
}

// Unwrap lets callers match ErrMalformed with errors.Is.
func (e *SyntaxError) Unwrap() error { return ErrMalformed }

// Cell is the coordinate of one live cell, X being the column and Y the row.
type Cell struct {
	X, Y int
}

// Pattern is a decoded RLE file.
type Pattern struct {
	// Width and Height are the declared extent. Zero means infer from the cells.
	Width  int
	Height int
	// Rule is the header rule string, empty when absent.
	Rule     string
	Name     string
	Comments []string

	cells *Cells
}

// Cells returns the live-cell iterator. It is single-pass: every call returns
// the same iterator, so materialize it with All if the cells are needed twice.
func (p *Pattern) Cells() *Cells { return p.cells }

const (
	tagDead  = 'b'
	tagAlive = 'o'
	tagRow   = '$'
	tagEnd   = '!'
)

type run struct {
	n   int
	tag byte
}

// Cells walks the live cells of a pattern in row-major emission order.
type Cells struct {
	runs []run
	i    int
	left int
	x, y int
	cur  Cell
}

// Next advances to the next live cell, reporting false once exhausted.
func (c *Cells) Next() bool {
	for {
		if c.left > 0 {
			c.cur = Cell{X: c.x, Y: c.y}
			c.x++
			c.left--
			return true
		}
		if c.i >= len(c.runs) {
			return false
		}
		r := c.runs[c.i]
		c.i++
		switch r.tag {
		case tagAlive:
			c.left = r.n
		case tagDead:
			c.x += r.n
		case tagRow:
			c.x = 0
			c.y += r.n
		}
	}
}

// Cell returns the cell produced by the last successful Next.
func (c *Cells) Cell() Cell { return c.cur }

// All drains the remaining cells into a slice.
func (c *Cells) All() []Cell {
	var out []Cell
	for c.Next() {
		out = append(out, c.Cell())
	}
	return out
}
