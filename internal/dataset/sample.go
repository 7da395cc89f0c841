package dataset

import (
	"github.com/omrkit/notescribe/internal/raster"
)

// Class labels. Full noteheads are quarter notes, empty noteheads half notes.
const (
	LabelQuarter = 0
	LabelHalf    = 1
)

// ClassNames maps labels to human-readable class names for reports.
var ClassNames = map[int]string{
	LabelQuarter: "quarter",
	LabelHalf:    "half",
}

// Sample is one extracted note, rasterized and labeled.
type Sample struct {
	// ID is a UUID assigned at build time, used for export file names.
	ID string `json:"id"`

	// Label is LabelQuarter or LabelHalf.
	Label int `json:"label"`

	// Class is the readable form of Label.
	Class string `json:"class"`

	// Document names the source document.
	Document string `json:"document"`

	// NoteheadID and StemID identify the source symbols within Document.
	NoteheadID int `json:"notehead_id"`
	StemID     int `json:"stem_id"`

	// Bitmap is the normalized binary raster.
	Bitmap *raster.Bitmap `json:"-"`
}
