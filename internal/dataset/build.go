package dataset

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/omrkit/notescribe/internal/notes"
	"github.com/omrkit/notescribe/internal/raster"
	"github.com/omrkit/notescribe/internal/score"
)

// Options controls sample building.
type Options struct {
	// Margin is the blank border added around each composite, in pixels.
	Margin int

	// Rows and Cols are the normalized bitmap dimensions. Every sample's
	// feature vector has length Rows*Cols.
	Rows int
	Cols int
}

// DefaultOptions mirror the proportions of a notehead-plus-stem glyph,
// taller than wide.
var DefaultOptions = Options{Margin: 1, Rows: 64, Cols: 32}

// Result is the flattened outcome of building over a corpus.
type Result struct {
	Quarter []Sample
	Half    []Sample

	// Skipped counts documents dropped because of malformed link graphs.
	Skipped int
}

// Samples returns all samples, quarter notes first.
func (r *Result) Samples() []Sample {
	out := make([]Sample, 0, len(r.Quarter)+len(r.Half))
	out = append(out, r.Quarter...)
	out = append(out, r.Half...)
	return out
}

// Build extracts, composites, and normalizes note samples from every
// document.
//
// A document whose graph filter fails with a dangling link is logged,
// counted in Result.Skipped, and skipped; any other error aborts the build.
// Compositing errors abort as well since the filter never emits empty
// symbol sets.
func Build(docs []*score.Document, opts Options) (*Result, error) {
	res := &Result{}
	for _, doc := range docs {
		quarter, half, err := notes.ExtractPairs(doc)
		if err != nil {
			if errors.Is(err, score.ErrUnknownID) {
				log.Printf("skipping document %q: %v", doc.Name, err)
				res.Skipped++
				continue
			}
			return nil, err
		}

		for _, p := range quarter {
			s, err := buildSample(doc, p, LabelQuarter, opts)
			if err != nil {
				return nil, err
			}
			res.Quarter = append(res.Quarter, s)
		}
		for _, p := range half {
			s, err := buildSample(doc, p, LabelHalf, opts)
			if err != nil {
				return nil, err
			}
			res.Half = append(res.Half, s)
		}
	}
	return res, nil
}

func buildSample(doc *score.Document, p notes.Pair, label int, opts Options) (Sample, error) {
	bm, err := raster.Composite([]*score.Symbol{p.Notehead, p.Stem}, opts.Margin)
	if err != nil {
		return Sample{}, fmt.Errorf("document %q notehead %d: %w", doc.Name, p.Notehead.ID, err)
	}
	bm, err = raster.Normalize(bm, opts.Rows, opts.Cols)
	if err != nil {
		return Sample{}, fmt.Errorf("document %q notehead %d: %w", doc.Name, p.Notehead.ID, err)
	}
	return Sample{
		ID:         uuid.NewString(),
		Label:      label,
		Class:      ClassNames[label],
		Document:   doc.Name,
		NoteheadID: p.Notehead.ID,
		StemID:     p.Stem.ID,
		Bitmap:     bm,
	}, nil
}
