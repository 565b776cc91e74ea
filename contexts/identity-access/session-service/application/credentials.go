package application

import (
	"foodtrace/contexts/identity-access/session-service/ports"
	"foodtrace/internal/shared/roles"
)

// DemoCredentials is the fixed out-of-band credential set accepted by
// credential login.
func DemoCredentials() []ports.Credential {
	return []ports.Credential{
		{Email: "farmer1@farm.com", Password: "farmer123", Role: roles.Farmer, Name: "John Smith"},
		{Email: "processor1@processing.com", Password: "processor123", Role: roles.Processor, Name: "Sarah Johnson"},
		{Email: "retailer1@retail.com", Password: "retailer123", Role: roles.Retailer, Name: "Mike Chen"},
		{Email: "consumer1@email.com", Password: "consumer123", Role: roles.Consumer, Name: "Emma Davis"},
	}
}
