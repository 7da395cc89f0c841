package raster

import (
	"github.com/disintegration/imaging"
)

// Normalize resizes a bitmap to rows×cols and re-binarizes the result.
//
// The resize itself is delegated to the imaging library (Lanczos filter);
// interpolation produces gray values at shape boundaries, so every pixel
// with any ink at all (>0) is set back to 1. The output therefore contains
// only values in {0,1} regardless of the resize ratio.
func Normalize(bm *Bitmap, rows, cols int) (*Bitmap, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadSize
	}
	if rows == bm.Rows && cols == bm.Cols {
		return bm.Clone(), nil
	}
	resized := imaging.Resize(bm.ToGray(), cols, rows, imaging.Lanczos)
	return FromImage(resized), nil
}
