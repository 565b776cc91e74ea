package entities

import (
	"time"

	"foodtrace/internal/shared/roles"
)

// Login methods.
const (
	MethodWallet     = "wallet"
	MethodCredential = "credential"
)

// Session is the authenticated operator. Either wallet-derived (backed by a
// directory record) or credential-derived (backed by the fixed demo set).
type Session struct {
	Role          roles.Role
	Name          string
	Email         string
	BusinessName  string
	WalletAddress string
	LoginMethod   string
	LoginTime     time.Time
	RegisteredAt  time.Time
}
