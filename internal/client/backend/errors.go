package backend

import (
	"errors"
	"fmt"
)

var (
	// ErrDecode marks a success response whose body could not be
	// decoded into anything usable.
	ErrDecode = errors.New("undecodable response body")

	// ErrNoCandidate is returned by the document probe when no stored
	// announcement reports any documents.
	ErrNoCandidate = errors.New("no announcement with documents to probe")
)

// RemoteError is a failure reported by the backend proxy, either via
// an "error" field in the body or derived from the HTTP status.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string { return e.Message }

func httpStatusError(code int) *RemoteError {
	return &RemoteError{StatusCode: code, Message: fmt.Sprintf("HTTP error, status %d", code)}
}
