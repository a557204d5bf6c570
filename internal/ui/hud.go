//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the simulation view, with
// buttons that adjust the stepping rate.
type HUD struct {
	width        int
	panel        *ebiten.Image
	lastHeight   int
	status       Status
	panelOffsetX int

	minusRect image.Rectangle
	plusRect  image.Rectangle

	pixel *ebiten.Image
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.layout()
	return h
}

// Width returns the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update caches the status to draw and reports the requested change in steps
// per second: -1, 0 or +1.
func (h *HUD) Update(s Status, panelOffsetX int) int {
	if h == nil {
		return 0
	}
	h.status = s
	h.panelOffsetX = panelOffsetX
	if s.Loading || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return 0
	}
	x, y := ebiten.CursorPosition()
	x -= panelOffsetX
	switch {
	case pointInRect(x, y, h.minusRect):
		return -1
	case pointInRect(x, y, h.plusRect):
		return 1
	}
	return 0
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawStatus()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	label := color.RGBA{R: 160, G: 160, B: 170, A: 255}
	value := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	for i, row := range h.status.Lines() {
		y := panelPadding + headerBaseline + i*lineHeight
		text.Draw(h.panel, row[0], face, panelPadding, y, label)
		bounds := text.BoundString(face, row[1])
		text.Draw(h.panel, row[1], face, h.width-panelPadding-bounds.Dx(), y, value)
	}
	if h.status.Loading {
		return
	}
	h.drawButton(h.minusRect, "-", h.status.TPS > 1)
	h.drawButton(h.plusRect, "+", true)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

// layout places the rate buttons under the status rows.
func (h *HUD) layout() {
	top := panelPadding + len(Status{}.Lines())*lineHeight + buttonGap
	h.minusRect = image.Rect(panelPadding, top, panelPadding+buttonSize, top+buttonSize)
	h.plusRect = image.Rect(h.minusRect.Max.X+buttonGap, top, h.minusRect.Max.X+buttonGap+buttonSize, top+buttonSize)
}

// DrawLoading prints a centred message while the pattern is still loading.
func DrawLoading(screen *ebiten.Image, msg string) {
	face := basicfont.Face7x13
	b := screen.Bounds()
	bounds := text.BoundString(face, msg)
	text.Draw(screen, msg, face, (b.Dx()-bounds.Dx())/2, b.Dy()/2, color.RGBA{R: 200, G: 200, B: 210, A: 255})
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 20
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 12
)
