package errors

import "errors"

var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrUnknownRole         = errors.New("unknown role")
	ErrMissingWallet       = errors.New("wallet address is required")
)
