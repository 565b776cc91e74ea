// Package roles defines the closed set of supply-chain participant roles.
// Role checks elsewhere in the codebase switch exhaustively over these four
// values instead of comparing free-text strings.
package roles

import "strings"

// Role is one of the four supply-chain participant roles.
type Role string

const (
	Farmer    Role = "farmer"
	Processor Role = "processor"
	Retailer  Role = "retailer"
	Consumer  Role = "consumer"
)

// All lists every role in lifecycle order.
func All() []Role {
	return []Role{Farmer, Processor, Retailer, Consumer}
}

// Parse resolves a case-insensitive role string. The second return is false
// for anything outside the closed set.
func Parse(raw string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case Farmer:
		return Farmer, true
	case Processor:
		return Processor, true
	case Retailer:
		return Retailer, true
	case Consumer:
		return Consumer, true
	default:
		return "", false
	}
}

// IsValid reports whether raw names one of the four roles.
func IsValid(raw string) bool {
	_, ok := Parse(raw)
	return ok
}

func (r Role) String() string { return string(r) }

// Title returns the display form used in dashboards ("Farmer", "Processor", ...).
func (r Role) Title() string {
	if r == "" {
		return ""
	}
	return strings.ToUpper(string(r[:1])) + string(r[1:])
}
