package core

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestNewBoardRejectsBadExtent(t *testing.T) {
	huge := [][2]int{{math.MaxInt32, math.MaxInt32}, {MaxCells, 2}, {math.MaxInt, 2}, {2, math.MaxInt}}
	for _, dims := range append([][2]int{{0, 5}, {5, 0}, {0, 0}, {-1, 3}}, huge...) {
		if _, err := NewBoard(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewBoard(%d,%d) err=%v, expected ErrInvalidDimensions", dims[0], dims[1], err)
		}
	}
}

func TestNewBoardAtCellCap(t *testing.T) {
	b, err := NewBoard(MaxCells/4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Cells()) != MaxCells {
		t.Fatalf("backing slice %d cells, expected %d", len(b.Cells()), MaxCells)
	}
	if _, err := b.EmbedInto(2); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("embedding past the cap err=%v, expected ErrInvalidDimensions", err)
	}
}

func TestBoardAccessorsBounds(t *testing.T) {
	b, err := NewBoard(4, 3)
	if err != nil {
		t.Fatal(err)
	}
	bad := [][2]int{{4, 0}, {0, 3}, {4, 3}, {-1, 0}, {0, -1}, {100, 1}}
	for _, c := range bad {
		if _, err := b.Get(c[0], c[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Get(%d,%d) err=%v, expected ErrOutOfBounds", c[0], c[1], err)
		}
		if err := b.Set(c[0], c[1], 1); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Set(%d,%d) err=%v, expected ErrOutOfBounds", c[0], c[1], err)
		}
	}
	if b.Population() != 0 {
		t.Fatal("failed writes must not touch the board")
	}

	if err := b.Set(3, 2, 1); err != nil {
		t.Fatal(err)
	}
	v, err := b.Get(3, 2)
	if err != nil || v != 1 {
		t.Fatalf("Get(3,2)=%d,%v expected 1", v, err)
	}
	if b.Cells()[b.Index(3, 2)] != 1 {
		t.Fatal("Set must write through to the backing slice")
	}
}

func TestEmbedIntoCentres(t *testing.T) {
	b, _ := NewBoard(2, 3)
	_ = b.Set(0, 0, 1)
	_ = b.Set(1, 2, 1)

	out, err := b.EmbedInto(4)
	if err != nil {
		t.Fatal(err)
	}
	if out.Width() != 6 || out.Height() != 7 {
		t.Fatalf("embedded size %dx%d, expected 6x7", out.Width(), out.Height())
	}
	for y := 0; y < out.Height(); y++ {
		for x := 0; x < out.Width(); x++ {
			v, _ := out.Get(x, y)
			want := (x == 2 && y == 2) || (x == 3 && y == 4)
			if (v == 1) != want {
				t.Fatalf("cell (%d,%d)=%d, expected alive=%v", x, y, v, want)
			}
		}
	}
	if b.Width() != 2 || b.Height() != 3 {
		t.Fatal("EmbedInto must not resize the receiver")
	}
}

func TestEmbedIntoRejectsUnevenMargin(t *testing.T) {
	b, _ := NewBoard(3, 3)
	for _, m := range []int{1, 3, -2} {
		if _, err := b.EmbedInto(m); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("EmbedInto(%d) err=%v, expected ErrInvalidDimensions", m, err)
		}
	}
	same, err := b.EmbedInto(0)
	if err != nil || same.Width() != 3 || same == b {
		t.Fatalf("EmbedInto(0) must return a new equal-sized board, got %v, %v", same, err)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b, _ := NewBoard(2, 2)
	_ = b.Set(1, 1, 1)
	c := b.Clone()
	c.Clear()
	if b.Population() != 1 || c.Population() != 0 {
		t.Fatalf("population original=%d clone=%d", b.Population(), c.Population())
	}
}

func TestFixedStepGatesOnElapsedTime(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }

	if !fs.ShouldStep() {
		t.Fatal("first poll should step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if fs.ShouldStep() {
		t.Fatal("half a tick elapsed, should not step")
	}
	clock = clock.Add(50 * time.Millisecond)
	if !fs.ShouldStep() {
		t.Fatal("a full tick elapsed, should step")
	}
	clock = clock.Add(time.Second)
	steps := 0
	for i := 0; i < 5; i++ {
		if fs.ShouldStep() {
			steps++
		}
	}
	if steps != 2 {
		t.Fatalf("stall produced %d catch-up steps, expected 2", steps)
	}
	if fs.TPS() != 10 {
		t.Fatalf("TPS()=%d", fs.TPS())
	}
}

func TestRNGFillDeterministic(t *testing.T) {
	a, _ := NewBoard(16, 16)
	b, _ := NewBoard(16, 16)
	NewRNG(7).Fill(a, 0.5)
	NewRNG(7).Fill(b, 0.5)
	for i := range a.Cells() {
		if a.Cells()[i] != b.Cells()[i] {
			t.Fatalf("cell %d differs between identically seeded fills", i)
		}
	}
	NewRNG(7).Fill(a, 0)
	if a.Population() != 0 {
		t.Fatal("zero density must leave the board dead")
	}
}
