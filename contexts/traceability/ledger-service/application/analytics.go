package application

import (
	"strconv"

	"foodtrace/contexts/traceability/ledger-service/domain/entities"
	"foodtrace/internal/shared/roles"
)

// Stat is one dashboard analytics figure.
type Stat struct {
	Title string
	Value string
}

// AvailableItems filters the items a consumer can see: listed for sale or
// already moving to a buyer.
func AvailableItems(items []entities.TrackedItem) []entities.TrackedItem {
	available := make([]entities.TrackedItem, 0, len(items))
	for _, item := range items {
		if item.State >= entities.StateForSale {
			available = append(available, item)
		}
	}
	return available
}

// RoleStats computes the per-role dashboard figures over the visible item
// set. participantCount and supplierCount come from the identity directory
// (suppliers excludes consumers).
func RoleStats(role roles.Role, wallet string, items []entities.TrackedItem, participantCount, supplierCount int) []Stat {
	switch role {
	case roles.Farmer:
		mine := make([]entities.TrackedItem, 0, len(items))
		for _, item := range items {
			if entities.SameAddress(item.OriginFarmer, wallet) {
				mine = append(mine, item)
			}
		}
		return []Stat{
			{Title: "My Items", Value: itoa(len(mine))},
			{Title: "Harvested", Value: itoa(countState(mine, func(s entities.ItemState) bool { return s >= entities.StateHarvested }))},
			{Title: "In Process", Value: itoa(countState(mine, func(s entities.ItemState) bool { return s >= entities.StateProcessed && s < entities.StateForSale }))},
			{Title: "Sold", Value: itoa(countState(mine, func(s entities.ItemState) bool { return s >= entities.StateSold }))},
		}
	case roles.Processor:
		return []Stat{
			{Title: "Total Items", Value: itoa(len(items))},
			{Title: "To Process", Value: itoa(countState(items, func(s entities.ItemState) bool { return s == entities.StateHarvested }))},
			{Title: "Processed", Value: itoa(countState(items, func(s entities.ItemState) bool { return s >= entities.StateProcessed }))},
			{Title: "Participants", Value: itoa(participantCount)},
		}
	case roles.Retailer:
		return []Stat{
			{Title: "Total Items", Value: itoa(len(items))},
			{Title: "For Sale", Value: itoa(countState(items, func(s entities.ItemState) bool { return s == entities.StateForSale }))},
			{Title: "Sold", Value: itoa(countState(items, func(s entities.ItemState) bool { return s >= entities.StateSold }))},
			{Title: "Participants", Value: itoa(participantCount)},
		}
	case roles.Consumer:
		forSale := countState(items, func(s entities.ItemState) bool { return s == entities.StateForSale })
		return []Stat{
			{Title: "Available to Buy", Value: itoa(forSale)},
			{Title: "Verified Items", Value: itoa(len(items))},
			{Title: "Fresh Items", Value: itoa(forSale)},
			{Title: "Suppliers", Value: itoa(supplierCount)},
		}
	default:
		return nil
	}
}

func countState(items []entities.TrackedItem, match func(entities.ItemState) bool) int {
	n := 0
	for _, item := range items {
		if match(item.State) {
			n++
		}
	}
	return n
}

func itoa(n int) string { return strconv.Itoa(n) }
