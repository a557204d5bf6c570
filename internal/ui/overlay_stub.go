//go:build !ebiten

package ui

// Overlay keeps the ring tint and grid-line toggles compiling in terminal and
// batch builds, where there is no window to draw them on.
type Overlay struct{}

// NewOverlay ignores the pixel scale.
func NewOverlay(int) *Overlay { return &Overlay{} }

// Update has no keys to read.
func (o *Overlay) Update() {}

// Draw does nothing.
func (o *Overlay) Draw(any, any) {}
