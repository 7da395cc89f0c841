package score

import "fmt"

// Document is an immutable arena of symbols from one annotated page.
//
// Symbols preserves annotation order; the id index is built once at
// construction and never mutated. Relationship links are resolved through
// Lookup so that symbols never hold direct references to each other.
type Document struct {
	Name    string
	Symbols []*Symbol

	byID map[int]*Symbol
}

// NewDocument builds a document from its symbol list.
//
// Returns ErrDuplicateID if two symbols share an id, and ErrMaskShape if a
// symbol's mask does not have exactly Height rows of Width columns each.
func NewDocument(name string, symbols []*Symbol) (*Document, error) {
	byID := make(map[int]*Symbol, len(symbols))
	for _, s := range symbols {
		if _, ok := byID[s.ID]; ok {
			return nil, fmt.Errorf("%w: document %q id %d", ErrDuplicateID, name, s.ID)
		}
		if err := validateMask(s); err != nil {
			return nil, fmt.Errorf("document %q id %d: %w", name, s.ID, err)
		}
		byID[s.ID] = s
	}
	return &Document{Name: name, Symbols: symbols, byID: byID}, nil
}

// Lookup resolves a symbol id within this document.
// Returns ErrUnknownID if the id is not present.
func (d *Document) Lookup(id int) (*Symbol, error) {
	s, ok := d.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: document %q id %d", ErrUnknownID, d.Name, id)
	}
	return s, nil
}

// Len returns the number of symbols in the document.
func (d *Document) Len() int { return len(d.Symbols) }

func validateMask(s *Symbol) error {
	if s.Mask.Rows() != s.Box.Height {
		return fmt.Errorf("%w: %d mask rows for height %d", ErrMaskShape, s.Mask.Rows(), s.Box.Height)
	}
	for _, row := range s.Mask {
		if len(row) != s.Box.Width {
			return fmt.Errorf("%w: %d mask cols for width %d", ErrMaskShape, len(row), s.Box.Width)
		}
	}
	return nil
}
