package callback

import "errors"

var (
	// ErrInvalidHandler indicates a nil handler was passed to Register
	ErrInvalidHandler = errors.New("callback.invalid_handler")
)
