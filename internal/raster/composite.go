package raster

import (
	"github.com/omrkit/notescribe/internal/score"
)

// Composite overlays the masks of symbols onto one canvas sized to their
// union bounding box plus margin pixels on every side.
//
// Each mask is added into the canvas at the symbol's offset from the union
// box origin; overlapping masks accumulate rather than overwrite, and the
// accumulated canvas is clamped to {0,1} afterwards. Addition commutes and
// the clamp is idempotent, so the output is independent of symbol order.
//
// All symbols must come from the same document; coordinates from different
// pages composite into nonsense. Returns ErrNoSymbols for an empty set and
// ErrMargin for a negative margin.
func Composite(symbols []*score.Symbol, margin int) (*Bitmap, error) {
	if len(symbols) == 0 {
		return nil, ErrNoSymbols
	}
	if margin < 0 {
		return nil, ErrMargin
	}

	top, left := symbols[0].Box.Top, symbols[0].Box.Left
	bottom, right := symbols[0].Box.Bottom(), symbols[0].Box.Right()
	for _, s := range symbols[1:] {
		if s.Box.Top < top {
			top = s.Box.Top
		}
		if s.Box.Left < left {
			left = s.Box.Left
		}
		if s.Box.Bottom() > bottom {
			bottom = s.Box.Bottom()
		}
		if s.Box.Right() > right {
			right = s.Box.Right()
		}
	}

	rows := bottom - top + 2*margin
	cols := right - left + 2*margin

	// Accumulate in int so overlapping masks cannot wrap a byte.
	acc := make([]int, rows*cols)
	for _, s := range symbols {
		rowOff := s.Box.Top - top + margin
		colOff := s.Box.Left - left + margin
		for r, maskRow := range s.Mask {
			base := (rowOff+r)*cols + colOff
			for c, v := range maskRow {
				acc[base+c] += int(v)
			}
		}
	}

	bm := NewBitmap(rows, cols)
	for i, v := range acc {
		if v > 0 {
			bm.Pix[i] = 1
		}
	}
	return bm, nil
}
