package cart

import "errors"

// Failure kinds surfaced by Engine. Callers match them with errors.Is; the
// wrapped message carries the offending value.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrForbidden       = errors.New("forbidden")
)
