package api

import "errors"

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("movie not found")

// ValidationError marks request payloads that fail data validation so
// the HTTP layer can answer 400 instead of 500.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// IsValidation reports whether err (or anything it wraps) is a
// validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
