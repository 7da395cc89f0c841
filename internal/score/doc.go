// Package score defines the symbol-graph data model for annotated
// music-notation documents and the JSON loader that produces it.
//
// A document is a flat collection of annotated primitives (noteheads, stems,
// beams, flags, ...). Each primitive carries a bounding box, a binary pixel
// mask of exactly that size, and directed relationship links to other
// primitives in the same document. Links are stored as integer ids and
// resolved through the owning Document's id index, never as direct object
// references, so the graph cannot form reference cycles.
//
// # Coordinate System
//
// Bounding boxes use image conventions: (0,0) is the top-left corner of the
// page, rows grow downward, columns grow rightward. A box is given as
// (top, left, height, width); bottom and right edges are derived and
// exclusive.
//
// # Identity
//
// Symbol ids are unique only within their owning document. Ids are never
// resolved across documents; a Document is built once from its symbol list
// and is read-only afterwards.
//
// # Thread Safety
//
// Document and Symbol are immutable after construction and safe to share
// between goroutines. Loader is safe for concurrent use.
package score
