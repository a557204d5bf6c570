//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"rle-life/internal/core"
)

// Overlay draws optional debugging visuals on top of the board: a tint over
// the dead padding ring and cell grid lines.
type Overlay struct {
	scale    int
	showRing bool
	showGrid bool
	pixel    *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles overlays from the number keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showRing = !o.showRing
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showGrid = !o.showGrid
	}
}

// Draw paints the enabled overlays for a board of the given size.
func (o *Overlay) Draw(screen *ebiten.Image, size core.Size) {
	s := float64(o.scale)
	w, h := float64(size.W)*s, float64(size.H)*s
	if o.showRing {
		tint := color.RGBA{R: 120, G: 30, B: 30, A: 160}
		o.rect(screen, 0, 0, w, s, tint)
		o.rect(screen, 0, h-s, w, s, tint)
		o.rect(screen, 0, 0, s, h, tint)
		o.rect(screen, w-s, 0, s, h, tint)
	}
	if o.showGrid && o.scale >= 4 {
		line := color.RGBA{R: 40, G: 40, B: 48, A: 255}
		for x := 0; x <= size.W; x++ {
			o.rect(screen, float64(x)*s, 0, 1, h, line)
		}
		for y := 0; y <= size.H; y++ {
			o.rect(screen, 0, float64(y)*s, w, 1, line)
		}
	}
}

func (o *Overlay) rect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(o.pixel, op)
}
