package raster

import (
	"fmt"

	"github.com/anthonynsimon/bild/imgio"
)

// SavePNG writes the bitmap to path as an 8-bit grayscale PNG, ink white
// on black. Useful for inspecting extracted samples on disk.
func SavePNG(bm *Bitmap, path string) error {
	if err := imgio.Save(path, bm.ToGray(), imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save bitmap: %w", err)
	}
	return nil
}
