package score

import (
	"encoding/json"
	"strings"
)

// Class names used by the note filter. Matching is exact except for flags,
// which are an open-ended family matched by suffix (see IsFlagClass).
const (
	ClassNoteheadFull  = "noteheadFull"
	ClassNoteheadEmpty = "notehead-empty"
	ClassStem          = "stem"
	ClassBeam          = "beam"

	flagSuffix = "flag"
)

// BBox is a symbol's bounding box in page coordinates.
type BBox struct {
	Top    int `json:"top"`
	Left   int `json:"left"`
	Height int `json:"height"`
	Width  int `json:"width"`
}

// Bottom returns the exclusive bottom edge (Top + Height).
func (b BBox) Bottom() int { return b.Top + b.Height }

// Right returns the exclusive right edge (Left + Width).
func (b BBox) Right() int { return b.Left + b.Width }

// Mask is a binary pixel raster stored row-major. Values are 0 or 1.
type Mask [][]uint8

// Rows returns the number of mask rows.
func (m Mask) Rows() int { return len(m) }

// Cols returns the number of mask columns, 0 for an empty mask.
func (m Mask) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// MarshalJSON encodes the mask as nested arrays of 0/1 integers.
// A bare [][]uint8 would serialize each row as a base64 string, which is
// unreadable in document files, so rows are widened to ints first.
func (m Mask) MarshalJSON() ([]byte, error) {
	rows := make([][]int, len(m))
	for r, row := range m {
		rows[r] = make([]int, len(row))
		for c, v := range row {
			rows[r][c] = int(v)
		}
	}
	return json.Marshal(rows)
}

// UnmarshalJSON decodes nested integer arrays, binarizing on the way in:
// any nonzero value becomes 1.
func (m *Mask) UnmarshalJSON(data []byte) error {
	var rows [][]int
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	out := make(Mask, len(rows))
	for r, row := range rows {
		out[r] = make([]uint8, len(row))
		for c, v := range row {
			if v != 0 {
				out[r][c] = 1
			}
		}
	}
	*m = out
	return nil
}

// Symbol is one annotated primitive within a document.
//
// Outlinks and Inlinks hold ids of related symbols in the same document,
// in annotation order. They are resolved via Document.Lookup, never stored
// as pointers.
type Symbol struct {
	ID        int    `json:"id"`
	ClassName string `json:"class_name"`
	Box       BBox   `json:"bounding_box"`
	Mask      Mask   `json:"mask"`
	Outlinks  []int  `json:"outlinks,omitempty"`
	Inlinks   []int  `json:"inlinks,omitempty"`
}

// IsNotehead reports whether the symbol is a full or empty notehead.
func (s *Symbol) IsNotehead() bool {
	return s.ClassName == ClassNoteheadFull || s.ClassName == ClassNoteheadEmpty
}

// IsFlagClass reports whether a class name denotes a flag variant.
// The match is a suffix test ("8th-flag", "16th-flag", ...) so new flag
// classes are covered without enumerating them.
func IsFlagClass(name string) bool {
	return strings.HasSuffix(name, flagSuffix)
}
