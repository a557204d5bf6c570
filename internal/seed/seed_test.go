package seed

import (
	"errors"
	"testing"
	"testing/fstest"

	"rle-life/internal/core"
	"rle-life/internal/pattern"
)

func decode(t *testing.T, src string) *pattern.Pattern {
	t.Helper()
	p, err := pattern.Decode([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestBuildUsesLargerOfDeclaredAndObserved(t *testing.T) {
	b, err := Build(decode(t, "x = 5, y = 1\no!"))
	if err != nil {
		t.Fatal(err)
	}
	if b.Width() != 5 || b.Height() != 1 {
		t.Fatalf("board %dx%d, expected 5x1", b.Width(), b.Height())
	}

	b, err = Build(decode(t, "x = 0, y = 0\n2$3bo!"))
	if err != nil {
		t.Fatal(err)
	}
	if b.Width() != 4 || b.Height() != 3 {
		t.Fatalf("board %dx%d, expected 4x3", b.Width(), b.Height())
	}
	if v, _ := b.Get(3, 2); v != 1 || b.Population() != 1 {
		t.Fatal("inferred cell not written")
	}
}

func TestBuildEmptyPattern(t *testing.T) {
	if _, err := Build(decode(t, "x = 0, y = 0\n!")); !errors.Is(err, core.ErrInvalidDimensions) {
		t.Fatalf("err=%v, expected ErrInvalidDimensions", err)
	}
}

func TestOversizedPatternsFailCleanly(t *testing.T) {
	if _, err := Decode([]byte("x = 4294967296, y = 4294967296\no!"), 2); !errors.Is(err, pattern.ErrMalformed) {
		t.Fatalf("huge header err=%v, expected ErrMalformed", err)
	}

	// Each axis fits the decoder's bound but the area exceeds the board cap.
	_, err := Build(decode(t, "x = 60000, y = 60000\no!"))
	if !errors.Is(err, core.ErrInvalidDimensions) {
		t.Fatalf("oversized area err=%v, expected ErrInvalidDimensions", err)
	}

	// Runs that walk the cursor to both axis limits resolve to an oversized area.
	res := <-Load(fstest.MapFS{"big.rle": {Data: []byte("x = 1, y = 1\n65535bo$65535$o!")}}, "big.rle", 2)
	if !errors.Is(res.Err, core.ErrInvalidDimensions) || res.Board != nil {
		t.Fatalf("oversized load %+v", res)
	}
}

func TestBuildRejectsOtherRules(t *testing.T) {
	_, err := Build(decode(t, "x = 1, y = 1, rule = B36/S23\no!"))
	if !errors.Is(err, ErrUnsupportedRule) {
		t.Fatalf("err=%v, expected ErrUnsupportedRule", err)
	}
	if _, err := Build(decode(t, "x = 1, y = 1, rule = 23/3\no!")); err != nil {
		t.Fatalf("S/B notation for Life rejected: %v", err)
	}
}

func TestFromPatternCentresGlider(t *testing.T) {
	e, err := FromPattern(decode(t, "x = 3, y = 3, rule = B3/S23\nbob$2bo$3o!"), 6)
	if err != nil {
		t.Fatal(err)
	}
	if e.Size() != (core.Size{W: 9, H: 9}) {
		t.Fatalf("padded size %+v, expected 9x9", e.Size())
	}
	for _, c := range []pattern.Cell{{X: 1, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}} {
		if v, _ := e.Cells().Get(c.X+3, c.Y+3); v != 1 {
			t.Fatalf("glider cell %v not at offset 3", c)
		}
	}
	if e.Population() != 5 {
		t.Fatalf("population %d", e.Population())
	}
}

func TestEmbedMarginValidation(t *testing.T) {
	for _, m := range []int{0, 1, 3, -2} {
		if _, err := Embed(decode(t, "x = 1, y = 1\no!"), m); !errors.Is(err, core.ErrInvalidDimensions) {
			t.Fatalf("margin %d: err=%v, expected ErrInvalidDimensions", m, err)
		}
	}
}

func TestRandomAndNoiseArePaddedAndDeterministic(t *testing.T) {
	a, err := Random(20, 10, 3, 0.4)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Random(20, 10, 3, 0.4)
	if a.Width() != 22 || a.Height() != 12 {
		t.Fatalf("random board %dx%d", a.Width(), a.Height())
	}
	if a.Population() == 0 || a.Population() != b.Population() {
		t.Fatalf("populations %d vs %d", a.Population(), b.Population())
	}
	if _, err := Random(4, 4, 1, 1.5); err == nil {
		t.Fatal("density above 1 accepted")
	}

	n1, err := Noise(30, 30, 9, 0.1)
	if err != nil {
		t.Fatal(err)
	}
	n2, _ := Noise(30, 30, 9, 0.1)
	if n1.Width() != 32 || n1.Population() != n2.Population() {
		t.Fatalf("noise boards differ: %d vs %d", n1.Population(), n2.Population())
	}
	for x := 0; x < n1.Width(); x++ {
		if v, _ := n1.Get(x, 0); v != 0 {
			t.Fatal("noise board ring not dead")
		}
	}
}

func TestLoadDeliversOnce(t *testing.T) {
	fsys := fstest.MapFS{
		"blinker.rle": {Data: []byte("x = 3, y = 1\n3o!")},
		"broken.rle":  {Data: []byte("x = 3, y = 1\n3o")},
	}

	ch := Load(fsys, "blinker.rle", 4)
	res := <-ch
	if res.Err != nil {
		t.Fatal(res.Err)
	}
	if res.Name != "blinker.rle" || res.Board.Width() != 7 || res.Board.Height() != 5 {
		t.Fatalf("result %q %dx%d", res.Name, res.Board.Width(), res.Board.Height())
	}
	if _, ok := <-ch; ok {
		t.Fatal("channel must close after the single result")
	}

	res = <-Load(fsys, "broken.rle", 4)
	if !errors.Is(res.Err, pattern.ErrMalformed) || res.Board != nil {
		t.Fatalf("broken load: %+v", res)
	}

	res = <-Load(fsys, "missing.rle", 4)
	if res.Err == nil {
		t.Fatal("missing file produced no error")
	}
}

func TestLoadBuiltinLibrary(t *testing.T) {
	for _, name := range pattern.Builtins() {
		res := <-Load(pattern.Library(), pattern.BuiltinFile(name), DefaultMargin)
		if res.Err != nil {
			t.Fatalf("%s: %v", name, res.Err)
		}
	}
}
