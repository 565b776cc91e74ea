package errors

import "errors"

var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrUnknownCapability = errors.New("unknown capability")
)
