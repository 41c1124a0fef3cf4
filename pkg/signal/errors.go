package signal

import "errors"

var (
	// ErrInvalidCallback indicates a nil callback was passed to Subscribe
	ErrInvalidCallback = errors.New("signal.invalid_callback")
)
