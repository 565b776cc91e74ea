package errors

import "errors"

var (
	ErrNetworkMismatch   = errors.New("ledger network mismatch")
	ErrNoLedgerCode      = errors.New("no contract code at ledger address")
	ErrLedgerUnavailable = errors.New("ledger connector unavailable")
	ErrItemNotFound      = errors.New("item not found")
	ErrNoSnapshot        = errors.New("no refresh snapshot available")
	ErrInvalidRequest    = errors.New("invalid request")
)
