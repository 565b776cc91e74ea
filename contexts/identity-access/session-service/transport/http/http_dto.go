package httptransport

import (
	"time"

	"foodtrace/contexts/identity-access/session-service/domain/entities"
)

// ErrorResponse is the error envelope returned by session endpoints.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WalletLoginRequest authenticates a connected wallet address.
type WalletLoginRequest struct {
	WalletAddress string `json:"wallet_address"`
}

// CredentialLoginRequest authenticates against the demo credential set.
type CredentialLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionDTO is the wire representation of the active session.
type SessionDTO struct {
	Role          string    `json:"role"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	BusinessName  string    `json:"business_name,omitempty"`
	WalletAddress string    `json:"wallet_address,omitempty"`
	LoginMethod   string    `json:"login_method"`
	LoginTime     time.Time `json:"login_time"`
	RegisteredAt  time.Time `json:"registered_at,omitzero"`
}

// SessionResponse wraps a single session payload.
type SessionResponse struct {
	Status string     `json:"status"`
	Data   SessionDTO `json:"data"`
}

// LogoutResponse acknowledges a logout.
type LogoutResponse struct {
	Status string `json:"status"`
}

func NewSessionDTO(session entities.Session) SessionDTO {
	return SessionDTO{
		Role:          session.Role.String(),
		Name:          session.Name,
		Email:         session.Email,
		BusinessName:  session.BusinessName,
		WalletAddress: session.WalletAddress,
		LoginMethod:   session.LoginMethod,
		LoginTime:     session.LoginTime,
		RegisteredAt:  session.RegisteredAt,
	}
}

func NewSessionResponse(session entities.Session) SessionResponse {
	return SessionResponse{Status: "success", Data: NewSessionDTO(session)}
}
