package app

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"rle-life/internal/core"
	"rle-life/internal/pattern"
	"rle-life/internal/seed"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	Pattern string
	Builtin string
	Random  bool
	Noise   bool

	Width     int
	Height    int
	Seed      int64
	Density   float64
	Threshold float64

	Margin int
	Scale  int
	TPS    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Builtin:   "gosper",
		Width:     160,
		Height:    120,
		Seed:      42,
		Density:   0.3,
		Threshold: 0.05,
		Margin:    seed.DefaultMargin,
		Scale:     4,
		TPS:       15,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "path to an RLE pattern file")
	fs.StringVar(&c.Builtin, "builtin", c.Builtin, "built-in pattern: "+strings.Join(pattern.Builtins(), ", "))
	fs.BoolVar(&c.Random, "random", c.Random, "seed a random soup instead of a pattern")
	fs.BoolVar(&c.Noise, "noise", c.Noise, "seed from Perlin noise instead of a pattern")
	fs.IntVar(&c.Width, "w", c.Width, "interior width for -random and -noise")
	fs.IntVar(&c.Height, "h", c.Height, "interior height for -random and -noise")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for -random and -noise")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for -random")
	fs.Float64Var(&c.Threshold, "threshold", c.Threshold, "noise level above which cells start alive for -noise")
	fs.IntVar(&c.Margin, "margin", c.Margin, "dead cells added around a pattern (even, >= 2)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
}

// Validate reports flag combinations that cannot be loaded.
func (c *Config) Validate() error {
	if c.Random && c.Noise {
		return errors.New("-random and -noise are mutually exclusive")
	}
	if c.Pattern == "" && !c.Random && !c.Noise && !slices.Contains(pattern.Builtins(), c.Builtin) {
		return fmt.Errorf("unknown built-in pattern %q", c.Builtin)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale %d must be positive", c.Scale)
	}
	return nil
}

// SourceName names what Load will produce, for titles and status lines.
func (c *Config) SourceName() string {
	switch {
	case c.Pattern != "":
		return filepath.Base(c.Pattern)
	case c.Random:
		return "random"
	case c.Noise:
		return "noise"
	}
	return c.Builtin
}

// Load starts the one-shot background load of the configured source.
func (c *Config) Load() <-chan seed.Result {
	switch {
	case c.Pattern != "":
		return seed.Load(os.DirFS(filepath.Dir(c.Pattern)), filepath.Base(c.Pattern), c.Margin)
	case c.Random:
		return seed.Async(c.SourceName(), func() (*core.Board, error) {
			return seed.Random(c.Width, c.Height, c.Seed, c.Density)
		})
	case c.Noise:
		return seed.Async(c.SourceName(), func() (*core.Board, error) {
			return seed.Noise(c.Width, c.Height, c.Seed, c.Threshold)
		})
	}
	return seed.Load(pattern.Library(), pattern.BuiltinFile(c.Builtin), c.Margin)
}
