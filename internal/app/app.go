//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"rle-life/internal/core"
	"rle-life/internal/life"
	"rle-life/internal/render"
	"rle-life/internal/seed"
	"rle-life/internal/ui"
)

const hudWidth = 200

// Game adapts the life engine to the ebiten.Game interface. The pattern is
// loaded in the background; until its result arrives the game only draws a
// loading message.
type Game struct {
	cfg     *Config
	pending <-chan seed.Result

	name       string
	origin     *life.Engine
	engine     *life.Engine
	painter    *render.GridPainter
	hud        *ui.HUD
	overlay    *ui.Overlay
	step       *core.FixedStep
	generation int

	paused   bool
	tickOnce bool
}

// New constructs a Game and starts loading the configured source.
func New(cfg *Config) *Game {
	return &Game{
		cfg:     cfg,
		pending: cfg.Load(),
		name:    cfg.SourceName(),
		hud:     ui.NewHUD(hudWidth),
		overlay: ui.NewOverlay(cfg.Scale),
		step:    core.NewFixedStep(cfg.TPS),
	}
}

func (g *Game) start(b *core.Board) error {
	engine, err := life.NewFromBoard(b)
	if err != nil {
		return err
	}
	g.origin = engine
	g.engine = engine.Clone()
	g.generation = 0
	if g.painter == nil {
		g.painter = render.NewGridPainter(engine.Size(), render.Palette{On: color.White, Off: color.Black})
		size := engine.Size()
		ebiten.SetWindowSize(size.W*g.cfg.Scale+hudWidth, size.H*g.cfg.Scale)
	}
	return nil
}

// Reset restarts the simulation from the loaded pattern.
func (g *Game) Reset() {
	if g.origin != nil {
		g.engine = g.origin.Clone()
		g.generation = 0
	}
	g.tickOnce = false
}

func (g *Game) status() ui.Status {
	s := ui.Status{Name: g.name, TPS: g.step.TPS(), Paused: g.paused, Loading: g.engine == nil}
	if g.engine != nil {
		s.Generation = g.generation
		s.Population = g.engine.Population()
	}
	return s
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.engine == nil {
		select {
		case res := <-g.pending:
			g.pending = nil
			if res.Err != nil {
				return res.Err
			}
			if err := g.start(res.Board); err != nil {
				return err
			}
		default:
			g.hud.Update(g.status(), 0)
			return nil
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	g.overlay.Update()

	size := g.engine.Size()
	if delta := g.hud.Update(g.status(), size.W*g.cfg.Scale); delta != 0 {
		g.step.SetTPS(max(1, g.step.TPS()+delta))
	}

	if (!g.paused && g.step.ShouldStep()) || g.tickOnce {
		g.engine.Advance()
		g.generation++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.engine == nil {
		ui.DrawLoading(screen, "loading "+g.name+"...")
		return
	}
	g.painter.Blit(screen, g.engine.Cells(), g.cfg.Scale)
	g.overlay.Draw(screen, g.engine.Size())
	size := g.engine.Size()
	g.hud.Draw(screen, size.W*g.cfg.Scale, size.H*g.cfg.Scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.engine == nil {
		return outsideWidth, outsideHeight
	}
	s := g.engine.Size()
	return s.W*g.cfg.Scale + g.hud.Width(), s.H * g.cfg.Scale
}
