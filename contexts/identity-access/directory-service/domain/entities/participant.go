package entities

import (
	"strings"
	"time"

	"foodtrace/internal/shared/roles"
)

// Location is a participant's registered place of business.
type Location struct {
	Country string
	State   string
	City    string
	ZipCode string
}

// ParticipantRecord is one registered off-ledger identity, keyed by wallet
// address. A new registration for an existing address replaces the prior
// record entirely.
type ParticipantRecord struct {
	RegistrationID string
	WalletAddress  string
	Role           roles.Role
	Name           string
	BusinessName   string
	BusinessType   string
	LicenseNumber  string
	Email          string
	Phone          string
	Location       Location
	RegisteredAt   time.Time
}

// NormalizeAddress lowercases a wallet address; the directory matches
// addresses case-insensitively.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}
