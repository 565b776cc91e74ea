package services

import (
	"math/big"
	"testing"
	"time"

	"foodtrace/contexts/traceability/ledger-service/domain/entities"
)

const (
	farmerAddr    = "0x00000000000000000000000000000000000000a1"
	processorAddr = "0x00000000000000000000000000000000000000b2"
	retailerAddr  = "0x00000000000000000000000000000000000000c3"
	consumerAddr  = "0x00000000000000000000000000000000000000d4"
)

func noDirectory(string) (entities.Identity, bool) {
	return entities.Identity{}, false
}

func refTime() time.Time {
	return time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
}

func TestSynthesizeTimelineLengthTracksState(t *testing.T) {
	raw := entities.RawItem{
		SKU:          7,
		Name:         "Cameron Highlands Tomatoes",
		State:        entities.StateForSale,
		OriginFarmer: farmerAddr,
		Processor:    processorAddr,
		Retailer:     retailerAddr,
		Consumer:     entities.ZeroAddress,
	}

	item := Synthesize(raw, 1, 1, refTime(), noDirectory)

	if len(item.Timeline) != 4 {
		t.Fatalf("state ForSale must yield 4 timeline events, got %d", len(item.Timeline))
	}
	if len(item.CustodyGaps) != 0 {
		t.Fatalf("fully populated slots must not report gaps, got %v", item.CustodyGaps)
	}
	if item.CurrentOwner != retailerAddr {
		t.Fatalf("expected retailer custody at ForSale with empty consumer, got %q", item.CurrentOwner)
	}
	if !item.TimelineSynthetic {
		t.Fatalf("reconstructed timelines must be labeled synthetic")
	}
}

func TestSynthesizeTimestampsStrictlyIncrease(t *testing.T) {
	raw := entities.RawItem{
		SKU:          3,
		Name:         "Organic Rice",
		State:        entities.StateDelivered,
		OriginFarmer: farmerAddr,
		Processor:    processorAddr,
		Retailer:     retailerAddr,
		Consumer:     consumerAddr,
	}

	item := Synthesize(raw, 3, 10, refTime(), noDirectory)

	if len(item.Timeline) != 6 {
		t.Fatalf("delivered item must yield 6 events, got %d", len(item.Timeline))
	}
	for i := 1; i < len(item.Timeline); i++ {
		if !item.Timeline[i].Timestamp.After(item.Timeline[i-1].Timestamp) {
			t.Fatalf("timestamps must strictly increase, event %d (%v) not after %d (%v)",
				i, item.Timeline[i].Timestamp, i-1, item.Timeline[i-1].Timestamp)
		}
	}
	if !item.Timeline[0].Timestamp.Before(refTime()) {
		t.Fatalf("synthetic timestamps must predate the reference time")
	}
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	raw := entities.RawItem{
		SKU:          5,
		Name:         "Palm Sugar",
		State:        entities.StatePackaged,
		OriginFarmer: farmerAddr,
		Processor:    processorAddr,
	}

	first := Synthesize(raw, 2, 4, refTime(), noDirectory)
	second := Synthesize(raw, 2, 4, refTime(), noDirectory)

	if len(first.Timeline) != len(second.Timeline) {
		t.Fatalf("repeated synthesis changed timeline length: %d vs %d", len(first.Timeline), len(second.Timeline))
	}
	for i := range first.Timeline {
		if first.Timeline[i] != second.Timeline[i] {
			t.Fatalf("repeated synthesis changed event %d: %+v vs %+v", i, first.Timeline[i], second.Timeline[i])
		}
	}
}

func TestSynthesizePackagedFallsBackToFarmer(t *testing.T) {
	raw := entities.RawItem{
		SKU:          9,
		Name:         "Honey",
		State:        entities.StatePackaged,
		OriginFarmer: farmerAddr,
		Processor:    entities.ZeroAddress,
	}

	item := Synthesize(raw, 1, 1, refTime(), noDirectory)

	if len(item.Timeline) != 2 {
		t.Fatalf("expected 2 events (harvest + package), got %d", len(item.Timeline))
	}
	packaged := item.Timeline[1]
	if packaged.Action != ActionPackaged {
		t.Fatalf("expected second event %q, got %q", ActionPackaged, packaged.Action)
	}
	if packaged.Participant != farmerAddr {
		t.Fatalf("packaging without a processor must fall back to the origin farmer, got %q", packaged.Participant)
	}
	if len(item.CustodyGaps) != 1 || item.CustodyGaps[0] != ActionProcessed {
		t.Fatalf("missing processor must surface as a Processed gap, got %v", item.CustodyGaps)
	}
}

func TestSynthesizeSurfacesCustodyGapWithoutGuessing(t *testing.T) {
	raw := entities.RawItem{
		SKU:          11,
		Name:         "Dragon Fruit",
		State:        entities.StateForSale,
		OriginFarmer: farmerAddr,
		Processor:    processorAddr,
		Retailer:     entities.ZeroAddress,
	}

	item := Synthesize(raw, 1, 1, refTime(), noDirectory)

	// Harvested, Processed, Packaged present; Listed for Sale is the gap.
	if len(item.Timeline) != 3 {
		t.Fatalf("expected 3 events, got %d", len(item.Timeline))
	}
	if len(item.CustodyGaps) != 1 || item.CustodyGaps[0] != ActionListed {
		t.Fatalf("empty retailer slot at ForSale must surface a gap for %q, got %v", ActionListed, item.CustodyGaps)
	}
	for _, event := range item.Timeline {
		if entities.IsEmptyAddress(event.Participant) {
			t.Fatalf("no event may name an unassigned participant: %+v", event)
		}
	}
}

func TestSynthesizeResolvesIdentitiesAndFallsBackToPseudonym(t *testing.T) {
	raw := entities.RawItem{
		SKU:          2,
		Name:         "Teh Tarik Leaves",
		State:        entities.StateProcessed,
		OriginFarmer: farmerAddr,
		Processor:    processorAddr,
	}
	resolve := func(address string) (entities.Identity, bool) {
		if entities.SameAddress(address, farmerAddr) {
			return entities.Identity{Name: "John Smith", Role: "Farmer"}, true
		}
		return entities.Identity{}, false
	}

	item := Synthesize(raw, 1, 1, refTime(), resolve)

	if item.Timeline[0].Name != "John Smith" || item.Timeline[0].Role != "Farmer" {
		t.Fatalf("resolved identity not applied: %+v", item.Timeline[0])
	}
	if item.Timeline[1].Role != "Unknown" {
		t.Fatalf("directory miss must yield role Unknown, got %q", item.Timeline[1].Role)
	}
	want := "0x0000...00b2"
	if item.Timeline[1].Name != want {
		t.Fatalf("directory miss must yield pseudonym %q, got %q", want, item.Timeline[1].Name)
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		name string
		wei  *big.Int
		want string
	}{
		{"nil", nil, "0"},
		{"zero", big.NewInt(0), "0"},
		{"one unit", new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil), "1"},
		{"half unit", new(big.Int).Mul(big.NewInt(5), new(big.Int).Exp(big.NewInt(10), big.NewInt(17), nil)), "0.5"},
		{"one wei", big.NewInt(1), "0.000000000000000001"},
	}
	for _, tc := range cases {
		if got := FormatPrice(tc.wei); got != tc.want {
			t.Fatalf("%s: FormatPrice = %q, want %q", tc.name, got, tc.want)
		}
	}
}
