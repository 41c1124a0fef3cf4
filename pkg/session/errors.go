package session

import "errors"

var (
	// ErrInvalidConfig indicates a negative heartbeat interval or
	// inactivity timeout
	ErrInvalidConfig = errors.New("session.invalid_config")

	// ErrDestroyed indicates an operation on a destroyed tracker
	ErrDestroyed = errors.New("session.destroyed")
)
