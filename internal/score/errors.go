package score

import "errors"

var (
	// ErrUnknownID indicates a relationship link references an id that is
	// not present in the document. The document is malformed; processing
	// of that document should stop.
	ErrUnknownID = errors.New("score: link references unknown symbol id")

	// ErrDuplicateID indicates two symbols in one document share an id.
	ErrDuplicateID = errors.New("score: duplicate symbol id in document")

	// ErrMaskShape indicates a symbol's mask dimensions do not match its
	// bounding box.
	ErrMaskShape = errors.New("score: mask dimensions do not match bounding box")
)
