package services

import (
	"math/big"
	"time"

	"foodtrace/contexts/traceability/ledger-service/domain/entities"
)

// Lifecycle action labels, in transition order.
const (
	ActionHarvested    = "Harvested"
	ActionProcessed    = "Processed"
	ActionPackaged     = "Packaged"
	ActionListed       = "Listed for Sale"
	ActionPurchased    = "Purchased"
	ActionDeliveryDone = "Delivery Confirmed"
)

// transition associates one lifecycle step with the participant slot that
// performed it.
type transition struct {
	action string
	slot   func(entities.RawItem) string
}

var transitions = []transition{
	{ActionHarvested, func(r entities.RawItem) string { return r.OriginFarmer }},
	{ActionProcessed, func(r entities.RawItem) string { return r.Processor }},
	{ActionPackaged, func(r entities.RawItem) string {
		// Packaging is performed by the processor when one exists, else the
		// origin farmer retained custody.
		if !entities.IsEmptyAddress(r.Processor) {
			return r.Processor
		}
		return r.OriginFarmer
	}},
	{ActionListed, func(r entities.RawItem) string { return r.Retailer }},
	{ActionPurchased, func(r entities.RawItem) string { return r.Consumer }},
	{ActionDeliveryDone, func(r entities.RawItem) string { return r.Consumer }},
}

// Resolver maps a wallet address to a directory identity. The boolean is
// false on a directory miss.
type Resolver func(address string) (entities.Identity, bool)

// Synthesize reconstructs a TrackedItem from one raw ledger record.
//
// The ledger exposes only current state, so the timeline is rebuilt by
// walking the fixed transition sequence up to and including the recorded
// state. Timestamps are synthetic: derived from the item's position in the
// batch and the transition index so that sorting by timestamp reproduces
// transition order. Given the same record, batch coordinates, reference time
// and resolver contents, the output is identical.
func Synthesize(raw entities.RawItem, batchIndex, batchTotal uint64, ref time.Time, resolve Resolver) entities.TrackedItem {
	item := entities.TrackedItem{
		SKU:               raw.SKU,
		Name:              raw.Name,
		State:             raw.State,
		OriginFarmer:      raw.OriginFarmer,
		Processor:         raw.Processor,
		Retailer:          raw.Retailer,
		Consumer:          raw.Consumer,
		Price:             FormatPrice(raw.Price),
		TimelineSynthetic: true,
		CurrentOwner:      raw.Owner(),
	}

	base := ref.Add(-time.Duration(batchTotal-batchIndex) * 24 * time.Hour)

	for t := 0; t <= int(raw.State) && t < len(transitions); t++ {
		step := transitions[t]
		participant := step.slot(raw)
		if entities.IsEmptyAddress(participant) {
			// The slot was never assigned despite the state advancing.
			// Counted toward ordering, surfaced as a gap, never guessed.
			item.CustodyGaps = append(item.CustodyGaps, step.action)
			continue
		}

		event := entities.ProvenanceEvent{
			Participant: participant,
			Action:      step.action,
			Timestamp:   base.Add(time.Duration(t) * time.Hour),
		}
		if identity, ok := resolve(participant); ok {
			event.Role = identity.Role
			event.Name = identity.Name
		} else {
			event.Role = "Unknown"
			event.Name = entities.Pseudonym(participant)
		}
		item.Timeline = append(item.Timeline, event)
	}

	return item
}

var weiPerUnit = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// FormatPrice renders a ledger-native wei amount as a decimal unit string.
func FormatPrice(wei *big.Int) string {
	if wei == nil || wei.Sign() == 0 {
		return "0"
	}
	value := new(big.Rat).SetFrac(wei, weiPerUnit)
	text := value.FloatString(18)
	text = trimZeros(text)
	return text
}

func trimZeros(text string) string {
	i := len(text)
	for i > 0 && text[i-1] == '0' {
		i--
	}
	if i > 0 && text[i-1] == '.' {
		i--
	}
	return text[:i]
}
