package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/omrkit/notescribe/internal/raster"
)

// Matrix flattens samples into a feature matrix and parallel label slice
// for the classifier.
func Matrix(samples []Sample) (x [][]float64, labels []int) {
	x = make([][]float64, len(samples))
	labels = make([]int, len(samples))
	for i, s := range samples {
		x[i] = s.Bitmap.Vector()
		labels[i] = s.Label
	}
	return x, labels
}

// WritePNGs saves every sample under dir as <class>-<uuid>.png and writes
// a manifest.json listing sample metadata. The directory is created if
// missing.
func WritePNGs(samples []Sample, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	for _, s := range samples {
		name := fmt.Sprintf("%s-%s.png", s.Class, s.ID)
		if err := raster.SavePNG(s.Bitmap, filepath.Join(dir, name)); err != nil {
			return err
		}
	}

	manifest, err := json.MarshalIndent(samples, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	path := filepath.Join(dir, "manifest.json")
	if err := os.WriteFile(path, manifest, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
