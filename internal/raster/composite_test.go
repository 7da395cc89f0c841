package raster

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/omrkit/notescribe/internal/score"
)

func onesMask(rows, cols int) score.Mask {
	m := make(score.Mask, rows)
	for r := range m {
		m[r] = make([]uint8, cols)
		for c := range m[r] {
			m[r][c] = 1
		}
	}
	return m
}

func symbolAt(id, top, left, height, width int) *score.Symbol {
	return &score.Symbol{
		ID:        id,
		ClassName: score.ClassStem,
		Box:       score.BBox{Top: top, Left: left, Height: height, Width: width},
		Mask:      onesMask(height, width),
	}
}

func TestComposite_Empty(t *testing.T) {
	_, err := Composite(nil, 1)
	if !errors.Is(err, ErrNoSymbols) {
		t.Errorf("expected ErrNoSymbols, got: %v", err)
	}
}

func TestComposite_NegativeMargin(t *testing.T) {
	_, err := Composite([]*score.Symbol{symbolAt(1, 0, 0, 2, 2)}, -1)
	if !errors.Is(err, ErrMargin) {
		t.Errorf("expected ErrMargin, got: %v", err)
	}
}

func TestComposite_SingleSymbolIdentity(t *testing.T) {
	// margin=0 over one symbol reproduces its mask unchanged.
	sym := symbolAt(1, 5, 7, 3, 4)
	sym.Mask = score.Mask{
		{1, 0, 0, 1},
		{0, 1, 1, 0},
		{1, 1, 0, 0},
	}

	bm, err := Composite([]*score.Symbol{sym}, 0)
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}

	if bm.Rows != 3 || bm.Cols != 4 {
		t.Fatalf("shape: got %dx%d, want 3x4", bm.Rows, bm.Cols)
	}
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			if bm.At(r, c) != sym.Mask[r][c] {
				t.Fatalf("pixel (%d,%d): got %d, want %d", r, c, bm.At(r, c), sym.Mask[r][c])
			}
		}
	}
}

func TestComposite_Shape(t *testing.T) {
	tests := []struct {
		name               string
		symbols            []*score.Symbol
		margin             int
		wantRows, wantCols int
	}{
		{
			"notehead and stem",
			[]*score.Symbol{symbolAt(1, 0, 0, 4, 2), symbolAt(2, 4, 0, 10, 1)},
			1, 16, 4,
		},
		{
			"no margin",
			[]*score.Symbol{symbolAt(1, 0, 0, 4, 2), symbolAt(2, 4, 0, 10, 1)},
			0, 14, 2,
		},
		{
			"offset origin",
			[]*score.Symbol{symbolAt(1, 100, 200, 4, 2), symbolAt(2, 104, 200, 10, 1)},
			1, 16, 4,
		},
		{
			"wide margin",
			[]*score.Symbol{symbolAt(1, 0, 0, 2, 2)},
			5, 12, 12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm, err := Composite(tt.symbols, tt.margin)
			if err != nil {
				t.Fatalf("Composite failed: %v", err)
			}
			if bm.Rows != tt.wantRows || bm.Cols != tt.wantCols {
				t.Errorf("shape: got %dx%d, want %dx%d", bm.Rows, bm.Cols, tt.wantRows, tt.wantCols)
			}
		})
	}
}

func TestComposite_OrderIndependent(t *testing.T) {
	symbols := []*score.Symbol{
		symbolAt(1, 0, 0, 4, 2),
		symbolAt(2, 4, 0, 10, 1),
		symbolAt(3, 2, 1, 5, 2),
	}

	want, err := Composite(symbols, 1)
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		perm := make([]*score.Symbol, len(symbols))
		for j, p := range rng.Perm(len(symbols)) {
			perm[j] = symbols[p]
		}
		got, err := Composite(perm, 1)
		if err != nil {
			t.Fatalf("Composite failed: %v", err)
		}
		if !got.Equal(want) {
			t.Fatalf("permutation %d produced a different raster", i)
		}
	}
}

func TestComposite_OverlapStaysBinary(t *testing.T) {
	// Three fully overlapping symbols accumulate to 3 before clamping.
	symbols := []*score.Symbol{
		symbolAt(1, 0, 0, 3, 3),
		symbolAt(2, 0, 0, 3, 3),
		symbolAt(3, 0, 0, 3, 3),
	}

	bm, err := Composite(symbols, 0)
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	for i, v := range bm.Pix {
		if v != 1 {
			t.Fatalf("pixel %d: got %d, want 1", i, v)
		}
	}
}

func TestComposite_MarginStaysBlank(t *testing.T) {
	bm, err := Composite([]*score.Symbol{symbolAt(1, 0, 0, 2, 2)}, 2)
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}

	for r := 0; r < bm.Rows; r++ {
		for c := 0; c < bm.Cols; c++ {
			inCore := r >= 2 && r < 4 && c >= 2 && c < 4
			if inCore && bm.At(r, c) != 1 {
				t.Errorf("core pixel (%d,%d) should be 1", r, c)
			}
			if !inCore && bm.At(r, c) != 0 {
				t.Errorf("margin pixel (%d,%d) should be 0", r, c)
			}
		}
	}
}
