package services

import "errors"

var (
	ErrPlaceNotFound     = errors.New("place not found")
	ErrStoreUnavailable  = errors.New("database not configured")
	ErrUpstream          = errors.New("places search failed")
	ErrLabelsUnavailable = errors.New("label detection not configured")
)

// ValidationError is a client mistake in a request body; the message is
// returned to the caller as-is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(err error) error {
	return &ValidationError{Msg: err.Error()}
}
