package raster

import (
	"image"
	"image/color"
)

// Bitmap is a binary raster stored row-major. Pix values are 0 or 1.
type Bitmap struct {
	Rows int
	Cols int
	Pix  []uint8
}

// NewBitmap allocates an all-zero bitmap.
func NewBitmap(rows, cols int) *Bitmap {
	return &Bitmap{Rows: rows, Cols: cols, Pix: make([]uint8, rows*cols)}
}

// At returns the value at (row, col).
func (b *Bitmap) At(row, col int) uint8 { return b.Pix[row*b.Cols+col] }

// Set stores v at (row, col).
func (b *Bitmap) Set(row, col int, v uint8) { b.Pix[row*b.Cols+col] = v }

// Clone returns a deep copy.
func (b *Bitmap) Clone() *Bitmap {
	pix := make([]uint8, len(b.Pix))
	copy(pix, b.Pix)
	return &Bitmap{Rows: b.Rows, Cols: b.Cols, Pix: pix}
}

// Equal reports whether two bitmaps have identical shape and pixels.
func (b *Bitmap) Equal(other *Bitmap) bool {
	if b.Rows != other.Rows || b.Cols != other.Cols {
		return false
	}
	for i, v := range b.Pix {
		if v != other.Pix[i] {
			return false
		}
	}
	return true
}

// OnCount returns the number of 1 pixels.
func (b *Bitmap) OnCount() int {
	n := 0
	for _, v := range b.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// Vector returns the bitmap flattened to float64 features, row-major.
func (b *Bitmap) Vector() []float64 {
	vec := make([]float64, len(b.Pix))
	for i, v := range b.Pix {
		vec[i] = float64(v)
	}
	return vec
}

// ToGray renders the bitmap as an 8-bit grayscale image with 1 pixels
// white (255) and 0 pixels black.
func (b *Bitmap) ToGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.Cols, b.Rows))
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.At(r, c) != 0 {
				img.SetGray(c, r, color.Gray{Y: 255})
			}
		}
	}
	return img
}

// FromImage binarizes an image into a bitmap: any pixel with luminance
// above zero becomes 1. This is the re-binarization step applied after
// interpolating resizers, which produce intermediate gray values.
func FromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	bm := NewBitmap(bounds.Dy(), bounds.Dx())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r|g|bl != 0 {
				bm.Set(y-bounds.Min.Y, x-bounds.Min.X, 1)
			}
		}
	}
	return bm
}
