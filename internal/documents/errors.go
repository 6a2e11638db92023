package documents

import "errors"

// ErrNotFound indicates no document has been stored yet.
var ErrNotFound = errors.New("document not found")

// InvalidDocumentError reports document text that failed to parse or
// validate. The message carries the parser diagnostic verbatim so
// clients can surface the offending line and column.
type InvalidDocumentError struct {
	Err error
}

func (e *InvalidDocumentError) Error() string { return e.Err.Error() }

// Unwrap exposes the underlying parse or validation error.
func (e *InvalidDocumentError) Unwrap() error { return e.Err }
