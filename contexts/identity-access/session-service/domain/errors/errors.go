package errors

import "errors"

var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrNotRegistered     = errors.New("wallet address is not registered")
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrNoActiveSession   = errors.New("no active session")
)
