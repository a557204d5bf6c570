package render

import (
	"image/color"

	"rle-life/internal/core"
)

// Palette holds the two colours a binary board is painted with.
type Palette struct {
	On  color.Color
	Off color.Color
}

// fillBinaryRGBA converts a board snapshot into RGBA pixels in buf, one pixel
// per cell. buf must hold 4*W*H bytes.
func fillBinaryRGBA(buf []byte, b *core.Board, p Palette) {
	rOn, gOn, bOn, aOn := p.On.RGBA()
	rOff, gOff, bOff, aOff := p.Off.RGBA()
	for i, c := range b.Cells() {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Pixels returns a freshly allocated RGBA buffer for b.
func Pixels(b *core.Board, p Palette) []byte {
	buf := make([]byte, 4*b.Width()*b.Height())
	fillBinaryRGBA(buf, b, p)
	return buf
}
