package content

import "fmt"

// FieldError reports a missing or ill-typed front matter field. Fatal: the
// whole load is aborted.
type FieldError struct {
	SourceID string
	Field    string
	Reason   string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %q: %s", e.SourceID, e.Field, e.Reason)
}

// DuplicateIDError reports two documents declaring the same id. Fatal.
type DuplicateIDError struct {
	ID     string
	First  string
	Second string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate id %q declared by %s and %s", e.ID, e.First, e.Second)
}
