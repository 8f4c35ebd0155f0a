package document

import (
	"errors"
	"fmt"
)

// Parse failure modes for tour source documents.
var (
	// ErrMissingOpen indicates the text does not begin with a `---` line.
	ErrMissingOpen = errors.New("document: missing opening front matter delimiter")

	// ErrMissingClose indicates no closing `---` line was found.
	ErrMissingClose = errors.New("document: unterminated front matter block")

	// ErrInvalidEntry indicates a metadata line without a `:` separator.
	ErrInvalidEntry = errors.New("document: metadata entry missing ':' separator")
)

// MalformedError wraps a parse failure with the offending source and line.
type MalformedError struct {
	SourceID string
	Line     int // 1-based line in the source text, 0 when not line-specific
	Wrapped  error
}

func (e *MalformedError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %v", e.SourceID, e.Line, e.Wrapped)
	}
	return fmt.Sprintf("%s: %v", e.SourceID, e.Wrapped)
}

func (e *MalformedError) Unwrap() error {
	return e.Wrapped
}
