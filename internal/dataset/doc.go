// Package dataset turns a corpus of annotated documents into a labeled
// sample set ready for classification.
//
// For each document it extracts isolated note pairs, composites every pair
// onto its own canvas, normalizes the canvas to a fixed size, and tags the
// resulting bitmap with a class label and a fresh UUID. Documents that fail
// the graph filter (malformed link structure) are skipped and counted; the
// rest of the corpus proceeds.
package dataset
