// Package seed turns decoded patterns and generators into padded boards ready
// for the life engine.
package seed

import (
	"errors"
	"fmt"
	"strings"

	"rle-life/internal/core"
	"rle-life/internal/life"
	"rle-life/internal/pattern"
)

// ErrUnsupportedRule reports a pattern written for a rule other than B3/S23.
var ErrUnsupportedRule = errors.New("unsupported rule")

// DefaultMargin leaves room for a pattern to grow before it hits the border.
const DefaultMargin = 64

// Build materializes p into an unpadded board sized to fit both the declared
// extent and every decoded cell.
func Build(p *pattern.Pattern) (*core.Board, error) {
	if !conway(p.Rule) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedRule, p.Rule)
	}
	cells := p.Cells().All()
	w, h := p.Width, p.Height
	for _, c := range cells {
		w = max(w, c.X+1)
		h = max(h, c.Y+1)
	}
	b, err := core.NewBoard(w, h)
	if err != nil {
		return nil, fmt.Errorf("pattern extent %dx%d: %w", w, h, err)
	}
	for _, c := range cells {
		if err := b.Set(c.X, c.Y, 1); err != nil {
			return nil, fmt.Errorf("%w: %v", pattern.ErrMalformed, err)
		}
	}
	return b, nil
}

// Embed builds p and centres it in a dead margin. The margin is split evenly,
// so it must be even, and at least 2 so the padding ring stays clear of the
// pattern.
func Embed(p *pattern.Pattern, margin int) (*core.Board, error) {
	if margin < 2 {
		return nil, fmt.Errorf("%w: margin %d leaves no padding ring", core.ErrInvalidDimensions, margin)
	}
	b, err := Build(p)
	if err != nil {
		return nil, err
	}
	return b.EmbedInto(margin)
}

// FromPattern builds an engine running p inside the given margin.
func FromPattern(p *pattern.Pattern, margin int) (*life.Engine, error) {
	b, err := Embed(p, margin)
	if err != nil {
		return nil, err
	}
	return life.NewFromBoard(b)
}

// Decode parses RLE text and embeds it.
func Decode(src []byte, margin int) (*core.Board, error) {
	p, err := pattern.Decode(src)
	if err != nil {
		return nil, err
	}
	return Embed(p, margin)
}

func conway(rule string) bool {
	switch strings.ToUpper(strings.ReplaceAll(rule, " ", "")) {
	case "", "B3/S23", "23/3", "S23/B3":
		return true
	}
	return false
}
