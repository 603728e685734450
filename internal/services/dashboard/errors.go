package dashboard

import "errors"

var (
	// ErrNotFound means no invoice matches a resolved display id.
	ErrNotFound = errors.New("invoice not found")
	// ErrInvalidIDFormat means a display id could not be parsed at all.
	ErrInvalidIDFormat = errors.New("invalid invoice id format")
)

// FetchError wraps any internal failure of a read operation behind a fixed,
// user-facing message. Callers get the full result or this error, never a
// partial result.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string { return e.Message }

func (e *FetchError) Unwrap() error { return e.Err }

func fetchFailed(message string, err error) *FetchError {
	return &FetchError{Message: message, Err: err}
}
