package services

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP
// statuses with errors.Is; wrapped variants keep the chain intact.
var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail means a registration reused an existing email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password,
	// so a caller cannot probe which addresses are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrValidation means the input failed a server-side constraint.
	ErrValidation = errors.New("validation failed")
)
