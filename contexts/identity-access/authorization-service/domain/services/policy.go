package services

import (
	"strings"

	"foodtrace/internal/shared/roles"
)

// Capability names a dashboard area or operation gated by role.
type Capability string

const (
	CapabilityAllItems        Capability = "all-items"
	CapabilityConsumerTracker Capability = "consumer-tracker"
	CapabilityHarvest         Capability = "harvest"
	CapabilityMyItems         Capability = "my-items"
	CapabilityManageItems     Capability = "manage-items"
	CapabilityParticipants    Capability = "participants"
	CapabilityProfile         Capability = "profile"
	CapabilityAnalytics       Capability = "analytics"
)

// capabilityRoles is the closed access table. A capability absent from the
// table grants nothing.
var capabilityRoles = map[Capability][]roles.Role{
	CapabilityAllItems:        {roles.Processor, roles.Retailer},
	CapabilityConsumerTracker: {roles.Consumer},
	CapabilityHarvest:         {roles.Farmer},
	CapabilityMyItems:         {roles.Farmer},
	CapabilityManageItems:     {roles.Farmer, roles.Processor, roles.Retailer},
	CapabilityParticipants:    {roles.Processor, roles.Retailer},
	CapabilityProfile:         {roles.Farmer, roles.Processor, roles.Retailer, roles.Consumer},
	CapabilityAnalytics:       {roles.Farmer, roles.Processor, roles.Retailer},
}

// ParseCapability validates a raw capability name.
func ParseCapability(raw string) (Capability, bool) {
	capability := Capability(strings.ToLower(strings.TrimSpace(raw)))
	_, ok := capabilityRoles[capability]
	return capability, ok
}

// CanAccess reports whether a role may use a capability. Unknown capabilities
// and unknown roles deny.
func CanAccess(role roles.Role, capability Capability) bool {
	for _, granted := range capabilityRoles[capability] {
		if granted == role {
			return true
		}
	}
	return false
}

// Capabilities returns every capability granted to the role, in table order.
func Capabilities(role roles.Role) []Capability {
	granted := make([]Capability, 0, len(capabilityOrder))
	for _, capability := range capabilityOrder {
		if CanAccess(role, capability) {
			granted = append(granted, capability)
		}
	}
	return granted
}

var capabilityOrder = []Capability{
	CapabilityAllItems,
	CapabilityConsumerTracker,
	CapabilityHarvest,
	CapabilityMyItems,
	CapabilityManageItems,
	CapabilityParticipants,
	CapabilityProfile,
	CapabilityAnalytics,
}

// CanViewItem applies the ownership rule for item visibility: farmers see
// only items they originated, every other role sees the full set.
func CanViewItem(role roles.Role, wallet, originFarmer string) bool {
	if role != roles.Farmer {
		return true
	}
	return wallet != "" && strings.EqualFold(wallet, originFarmer)
}
