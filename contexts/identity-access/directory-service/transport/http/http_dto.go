package httptransport

import (
	"time"

	"foodtrace/contexts/identity-access/directory-service/domain/entities"
	"foodtrace/internal/shared/roles"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type LocationDTO struct {
	Country string `json:"country"`
	State   string `json:"state"`
	City    string `json:"city"`
	ZipCode string `json:"zip_code"`
}

type ParticipantDTO struct {
	RegistrationID string      `json:"registration_id"`
	WalletAddress  string      `json:"wallet_address"`
	Role           string      `json:"role"`
	Name           string      `json:"name"`
	BusinessName   string      `json:"business_name,omitempty"`
	BusinessType   string      `json:"business_type,omitempty"`
	LicenseNumber  string      `json:"license_number,omitempty"`
	Email          string      `json:"email,omitempty"`
	Phone          string      `json:"phone,omitempty"`
	Location       LocationDTO `json:"location"`
	RegisteredAt   string      `json:"registered_at"`
}

type RegisterRequest struct {
	WalletAddress string      `json:"wallet_address"`
	Role          string      `json:"role"`
	Name          string      `json:"name"`
	BusinessName  string      `json:"business_name"`
	BusinessType  string      `json:"business_type"`
	LicenseNumber string      `json:"license_number"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Location      LocationDTO `json:"location"`
}

type RegisterResponse struct {
	Status string         `json:"status"`
	Data   ParticipantDTO `json:"data"`
}

type BulkRegisterRequest struct {
	Participants []RegisterRequest `json:"participants"`
}

type BulkRegisterResponse struct {
	Status string `json:"status"`
	Data   struct {
		Registered int `json:"registered"`
	} `json:"data"`
}

type ListParticipantsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Participants []ParticipantDTO `json:"participants"`
	} `json:"data"`
}

type ParticipantResponse struct {
	Status string         `json:"status"`
	Data   ParticipantDTO `json:"data"`
}

func NewParticipantDTO(record entities.ParticipantRecord) ParticipantDTO {
	return ParticipantDTO{
		RegistrationID: record.RegistrationID,
		WalletAddress:  record.WalletAddress,
		Role:           record.Role.String(),
		Name:           record.Name,
		BusinessName:   record.BusinessName,
		BusinessType:   record.BusinessType,
		LicenseNumber:  record.LicenseNumber,
		Email:          record.Email,
		Phone:          record.Phone,
		Location: LocationDTO{
			Country: record.Location.Country,
			State:   record.Location.State,
			City:    record.Location.City,
			ZipCode: record.Location.ZipCode,
		},
		RegisteredAt: record.RegisteredAt.UTC().Format(time.RFC3339),
	}
}

func (r RegisterRequest) ToRecord() entities.ParticipantRecord {
	return entities.ParticipantRecord{
		WalletAddress: r.WalletAddress,
		Role:          roles.Role(r.Role),
		Name:          r.Name,
		BusinessName:  r.BusinessName,
		BusinessType:  r.BusinessType,
		LicenseNumber: r.LicenseNumber,
		Email:         r.Email,
		Phone:         r.Phone,
		Location: entities.Location{
			Country: r.Location.Country,
			State:   r.Location.State,
			City:    r.Location.City,
			ZipCode: r.Location.ZipCode,
		},
	}
}
