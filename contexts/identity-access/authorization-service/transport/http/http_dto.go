package httptransport

import "foodtrace/contexts/identity-access/authorization-service/application"

// ErrorResponse is the error envelope returned by authorization endpoints.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CheckRequest asks whether a role may use a capability. An empty role is
// the anonymous caller.
type CheckRequest struct {
	Role       string `json:"role"`
	Capability string `json:"capability"`
}

// CheckDTO is the wire representation of an access decision.
type CheckDTO struct {
	Role       string `json:"role,omitempty"`
	Capability string `json:"capability"`
	Allowed    bool   `json:"allowed"`
}

// CheckResponse wraps a single decision payload.
type CheckResponse struct {
	Status string   `json:"status"`
	Data   CheckDTO `json:"data"`
}

func NewCheckResponse(decision application.Decision) CheckResponse {
	return CheckResponse{
		Status: "success",
		Data: CheckDTO{
			Role:       decision.Role.String(),
			Capability: string(decision.Capability),
			Allowed:    decision.Allowed,
		},
	}
}
