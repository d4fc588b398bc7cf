package serviceerrors

import (
	"context"
	"errors"
)

var (
	ErrMissingProductID   = errors.New("missing required product id")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrContextCanceled    = errors.New("context canceled")
	ErrDeadlineExceeded   = errors.New("deadline exceeded")
)

// FromContext translates context errors into service errors. Any other error
// yields nil.
func FromContext(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return ErrContextCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return ErrDeadlineExceeded
	default:
		return nil
	}
}
