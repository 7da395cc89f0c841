// Package notes extracts isolated quarter and half notes from a document's
// symbol relationship graph.
//
// A notehead qualifies as an isolated note when it links to a stem, carries
// no beam and no flag decoration, and that stem is not shared with any other
// notehead. Shared stems mean the notehead belongs to a chord; beams and
// flags mean a shorter duration than the quarter/half classes this package
// targets. Full noteheads become quarter notes, empty noteheads half notes.
package notes
