//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"rle-life/internal/core"
)

// GridPainter updates a single RGBA image from board snapshots.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for a board of size w*h.
func NewGridPainter(size core.Size, p Palette) *GridPainter {
	gp := &GridPainter{w: size.W, h: size.H, buf: make([]byte, 4*size.W*size.H), palette: p}
	gp.img = ebiten.NewImage(size.W, size.H)
	return gp
}

// Blit uploads the board into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, b *core.Board, scale int) {
	if b.Width() != gp.w || b.Height() != gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, b, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
