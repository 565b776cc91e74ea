package entities

import (
	"math/big"
	"strings"
	"time"
)

// ItemState is the lifecycle stage recorded on the ledger. It only ever
// advances; the ledger enforces that and this client reflects it.
type ItemState int

const (
	StateHarvested ItemState = iota
	StateProcessed
	StatePackaged
	StateForSale
	StateSold
	StateDelivered
)

func (s ItemState) Valid() bool {
	return s >= StateHarvested && s <= StateDelivered
}

func (s ItemState) String() string {
	switch s {
	case StateHarvested:
		return "Harvested"
	case StateProcessed:
		return "Processed"
	case StatePackaged:
		return "Packaged"
	case StateForSale:
		return "ForSale"
	case StateSold:
		return "Sold"
	case StateDelivered:
		return "Delivered"
	default:
		return "Unknown"
	}
}

// ZeroAddress is the unassigned participant slot sentinel.
const ZeroAddress = "0x0000000000000000000000000000000000000000"

// NormalizeAddress lowercases a wallet address for case-insensitive
// comparison and keying.
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// IsEmptyAddress reports whether a participant slot is unassigned.
func IsEmptyAddress(address string) bool {
	normalized := NormalizeAddress(address)
	return normalized == "" || normalized == ZeroAddress
}

// SameAddress compares two wallet addresses case-insensitively.
func SameAddress(a, b string) bool {
	return NormalizeAddress(a) == NormalizeAddress(b)
}

// Pseudonym builds the truncated-address display name used when an address
// has no directory record.
func Pseudonym(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

// RawItem is the 8-tuple fetched from the ledger for one index.
type RawItem struct {
	SKU          uint64
	Name         string
	State        ItemState
	OriginFarmer string
	Processor    string
	Retailer     string
	Consumer     string
	Price        *big.Int
}

// Identity is a resolved participant identity used to enrich timelines.
type Identity struct {
	Name string
	Role string
}

// ProvenanceEvent is one synthesized lifecycle transition.
type ProvenanceEvent struct {
	Participant string
	Role        string
	Name        string
	Action      string
	Timestamp   time.Time
}

// TrackedItem is one unit moving through the supply chain, enriched with a
// reconstructed chain-of-custody timeline.
type TrackedItem struct {
	SKU          uint64
	Name         string
	State        ItemState
	OriginFarmer string
	Processor    string
	Retailer     string
	Consumer     string

	// Price is the decimal ledger-native amount, "0" until the item is
	// listed for sale.
	Price string

	Timeline []ProvenanceEvent

	// CustodyGaps names transitions whose participant slot was never
	// assigned despite the state having advanced past them.
	CustodyGaps []string

	// TimelineSynthetic is always true: the ledger stores no event log, so
	// timeline timestamps are reconstructed approximations, not audit
	// records.
	TimelineSynthetic bool

	CurrentOwner string
}

// Owner derives the address holding custody from the highest populated
// participant slot consistent with the state.
func (r RawItem) Owner() string {
	switch {
	case r.State >= StateSold && !IsEmptyAddress(r.Consumer):
		return r.Consumer
	case r.State >= StateForSale && !IsEmptyAddress(r.Retailer):
		return r.Retailer
	case r.State >= StateProcessed && !IsEmptyAddress(r.Processor):
		return r.Processor
	default:
		return r.OriginFarmer
	}
}
