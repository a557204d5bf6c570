//go:build !ebiten

package ui

// HUD stands in for the status panel when the window frontend is not built;
// the terminal viewer prints Status on its own status line instead.
type HUD struct{}

// NewHUD returns nil: there is no panel to draw without a window.
func NewHUD(int) *HUD { return nil }

// Width reports no panel space.
func (h *HUD) Width() int { return 0 }

// Update never requests a stepping-rate change.
func (h *HUD) Update(Status, int) int { return 0 }

// Draw does nothing.
func (h *HUD) Draw(any, int, int) {}
