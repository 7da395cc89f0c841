// Package raster composites symbol masks into binary bitmaps and normalizes
// them to a fixed size for classification.
//
// A Bitmap is a strictly binary 2D raster stored row-major in a flat byte
// slice, so a bitmap doubles as a feature vector without copying. Composite
// overlays the masks of several symbols onto one canvas positioned by their
// page coordinates; Normalize resizes a bitmap to target dimensions and
// re-binarizes the interpolated result.
//
// All operations are pure: inputs are never mutated and every function
// returns a freshly allocated bitmap.
package raster
