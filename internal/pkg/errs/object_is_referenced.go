package errs

import (
	"errors"
	"fmt"
)

// ErrObjectIsReferenced is the sentinel for deletions blocked by existing references.
var ErrObjectIsReferenced = errors.New("object is referenced")

// ObjectIsReferencedError reports that ParamName ID is still referenced by
// Count rows of ReferencedBy.
type ObjectIsReferencedError struct {
	ParamName    string
	ID           any
	ReferencedBy string
	Count        int64
}

func NewObjectIsReferencedError(paramName string, id any, referencedBy string, count int64) *ObjectIsReferencedError {
	return &ObjectIsReferencedError{
		ParamName:    paramName,
		ID:           id,
		ReferencedBy: referencedBy,
		Count:        count,
	}
}

func (e *ObjectIsReferencedError) Error() string {
	return fmt.Sprintf("%s: %s %v is referenced by %d %s",
		ErrObjectIsReferenced, e.ParamName, e.ID, e.Count, e.ReferencedBy)
}

func (e *ObjectIsReferencedError) Unwrap() error {
	return ErrObjectIsReferenced
}
