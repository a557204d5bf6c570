package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"rle-life/internal/core"
	"rle-life/internal/life"
	"rle-life/internal/ui"
)

// Viewer runs an engine interactively on a tcell screen. The engine is only
// touched from the Run loop, so stepping and drawing never interleave.
type Viewer struct {
	screen tcell.Screen
	name   string
	origin *life.Engine
	engine *life.Engine

	tps        int
	ticker     *time.Ticker
	generation int
	paused     bool

	boardStyle  tcell.Style
	statusStyle tcell.Style
}

// NewViewer builds a viewer for the padded board b.
func NewViewer(s tcell.Screen, name string, b *core.Board, tps int) (*Viewer, error) {
	engine, err := life.NewFromBoard(b)
	if err != nil {
		return nil, err
	}
	return &Viewer{
		screen:      s,
		name:        name,
		origin:      engine,
		engine:      engine.Clone(),
		tps:         max(1, tps),
		boardStyle:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		statusStyle: tcell.StyleDefault.Reverse(true),
	}, nil
}

// Status summarizes the viewer for the status line.
func (v *Viewer) Status() ui.Status {
	return ui.Status{
		Name:       v.name,
		Generation: v.generation,
		Population: v.engine.Population(),
		TPS:        v.tps,
		Paused:     v.paused,
	}
}

// Step advances one generation.
func (v *Viewer) Step() {
	v.engine.Advance()
	v.generation++
}

// Reset restarts from the loaded board.
func (v *Viewer) Reset() {
	v.engine = v.origin.Clone()
	v.generation = 0
}

func (v *Viewer) setTPS(tps int) {
	v.tps = max(1, tps)
	if v.ticker != nil {
		v.ticker.Reset(time.Second / time.Duration(v.tps))
	}
}

// HandleKey applies a key press and reports whether the viewer should quit.
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		v.paused = !v.paused
	case 'n':
		v.Step()
	case 'r':
		v.Reset()
	case '+', '=':
		v.setTPS(v.tps + 1)
	case '-':
		v.setTPS(v.tps - 1)
	}
	return false
}

// Render draws the board and the status line and flushes the screen.
func (v *Viewer) Render() {
	v.screen.Clear()
	used := Draw(v.screen, v.engine.Cells(), v.boardStyle)
	_, rows := v.screen.Size()
	if rows > 0 {
		DrawLine(v.screen, min(used, rows-1), v.Status().String(), v.statusStyle)
	}
	v.screen.Show()
}

// Run processes input and ticks until the user quits.
func (v *Viewer) Run() error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go v.screen.ChannelEvents(events, quit)

	v.ticker = time.NewTicker(time.Second / time.Duration(v.tps))
	defer v.ticker.Stop()

	v.Render()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if v.HandleKey(ev) {
					return nil
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
			v.Render()
		case <-v.ticker.C:
			if !v.paused {
				v.Step()
				v.Render()
			}
		}
	}
}
