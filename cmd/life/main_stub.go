//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

// Without the ebiten tag there is no window; point at the other frontends.
func main() {
	fmt.Fprintln(os.Stderr, "cmd/life opens a window and needs the ebiten build tag: go run -tags ebiten ./cmd/life")
	fmt.Fprintln(os.Stderr, "For a terminal view use ./cmd/life-term; for batch runs use ./cmd/life-run.")
	os.Exit(2)
}
