package seed

import (
	"fmt"

	perlin "github.com/aquilax/go-perlin"

	"rle-life/internal/core"
)

// Random fills a w×h interior with live cells at the given density and wraps
// it in the one-cell padding ring.
func Random(w, h int, seed int64, density float64) (*core.Board, error) {
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("density %v outside [0,1]", density)
	}
	b, err := core.NewBoard(w, h)
	if err != nil {
		return nil, err
	}
	core.NewRNG(seed).Fill(b, density)
	return b.EmbedInto(2)
}

const (
	noiseAlpha  = 2
	noiseBeta   = 2
	noiseOctave = 3
	noiseScale  = 0.08
)

// Noise seeds a w×h interior from 2D Perlin noise: cells whose noise value is
// above threshold start alive, which yields clustered soups rather than the
// uniform static of Random.
func Noise(w, h int, seed int64, threshold float64) (*core.Board, error) {
	b, err := core.NewBoard(w, h)
	if err != nil {
		return nil, err
	}
	gen := perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOctave, seed)
	cells := b.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if gen.Noise2D(float64(x)*noiseScale, float64(y)*noiseScale) > threshold {
				cells[b.Index(x, y)] = 1
			}
		}
	}
	return b.EmbedInto(2)
}
