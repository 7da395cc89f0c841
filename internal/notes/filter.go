package notes

import (
	"fmt"

	"github.com/omrkit/notescribe/internal/score"
)

// Pair is one isolated note: a notehead and the stem it attaches to.
// Pairs reference symbols owned by the source document and are not retained
// past rasterization.
type Pair struct {
	Notehead *score.Symbol
	Stem     *score.Symbol
}

// ExtractPairs scans a document for isolated quarter and half notes.
//
// For every notehead the filter walks its outlinks and records the linked
// stem, if any, plus whether any beam or flag is attached. A notehead
// qualifies iff it has a stem, no beam or flag, and the stem's inlink count
// is exactly one (a stem with two or more inlinks is shared by a chord and
// disqualifies the note). Qualifying notes are partitioned by notehead
// class: full noteheads into quarter, empty noteheads into half, preserving
// document order within each slice.
//
// If more than one outlink resolves to a stem the last one wins; the
// annotation vocabulary does not define a meaning for that shape, so no
// error is raised.
//
// A dangling outlink id is a malformed document: ExtractPairs returns an
// error wrapping score.ErrUnknownID and no pairs. The caller decides whether
// to skip the document or abort the batch.
func ExtractPairs(doc *score.Document) (quarter, half []Pair, err error) {
	for _, sym := range doc.Symbols {
		if !sym.IsNotehead() {
			continue
		}

		var stem *score.Symbol
		hasBeam := false
		hasFlag := false

		for _, id := range sym.Outlinks {
			linked, err := doc.Lookup(id)
			if err != nil {
				return nil, nil, fmt.Errorf("notehead %d: %w", sym.ID, err)
			}
			switch {
			case linked.ClassName == score.ClassStem:
				stem = linked
			case linked.ClassName == score.ClassBeam:
				hasBeam = true
			case score.IsFlagClass(linked.ClassName):
				hasFlag = true
			}
		}

		if stem == nil || hasBeam || hasFlag {
			continue
		}
		// A shared stem means this notehead is part of a chord.
		if len(stem.Inlinks) != 1 {
			continue
		}

		pair := Pair{Notehead: sym, Stem: stem}
		if sym.ClassName == score.ClassNoteheadFull {
			quarter = append(quarter, pair)
		} else {
			half = append(half, pair)
		}
	}
	return quarter, half, nil
}
