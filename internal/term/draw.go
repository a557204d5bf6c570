// Package term renders life boards to terminals, either interactively through
// tcell or as plain text.
package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"rle-life/internal/core"
)

// halfBlocks maps (top alive, bottom alive) to the glyph covering both rows.
var halfBlocks = [2][2]rune{
	{' ', '▄'},
	{'▀', '█'},
}

func alive(b *core.Board, x, y int) int {
	if y >= b.Height() {
		return 0
	}
	if b.Cells()[b.Index(x, y)] != 0 {
		return 1
	}
	return 0
}

// Draw paints b at the screen's top-left corner, packing two board rows into
// each terminal row. Cells beyond the screen are clipped. It returns the
// number of terminal rows used.
func Draw(s tcell.Screen, b *core.Board, style tcell.Style) int {
	cols, rows := s.Size()
	used := 0
	for ty := 0; ty < rows && 2*ty < b.Height(); ty++ {
		for x := 0; x < cols && x < b.Width(); x++ {
			s.SetContent(x, ty, halfBlocks[alive(b, x, 2*ty)][alive(b, x, 2*ty+1)], nil, style)
		}
		used++
	}
	return used
}

// DrawLine writes text on row y, padding the rest of the row with blanks.
func DrawLine(s tcell.Screen, y int, text string, style tcell.Style) {
	cols, _ := s.Size()
	x := 0
	for _, r := range text {
		if x >= cols {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// Format renders b as text, one line per row, 'O' for alive and '.' for dead.
func Format(b *core.Board) string {
	var sb strings.Builder
	sb.Grow((b.Width() + 1) * b.Height())
	cells := b.Cells()
	for y := 0; y < b.Height(); y++ {
		for _, c := range cells[y*b.Width() : (y+1)*b.Width()] {
			if c != 0 {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
