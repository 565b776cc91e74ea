package httpadapter

import (
	"context"
	"log/slog"

	"foodtrace/contexts/identity-access/directory-service/application"
	"foodtrace/contexts/identity-access/directory-service/domain/entities"
	httptransport "foodtrace/contexts/identity-access/directory-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterHandler(ctx context.Context, req httptransport.RegisterRequest) (httptransport.RegisterResponse, error) {
	record, err := h.Service.Register(ctx, req.ToRecord())
	if err != nil {
		return httptransport.RegisterResponse{}, err
	}
	return httptransport.RegisterResponse{
		Status: "success",
		Data:   httptransport.NewParticipantDTO(record),
	}, nil
}

func (h Handler) BulkRegisterHandler(ctx context.Context, req httptransport.BulkRegisterRequest) (httptransport.BulkRegisterResponse, error) {
	records := make([]entities.ParticipantRecord, 0, len(req.Participants))
	for _, participant := range req.Participants {
		records = append(records, participant.ToRecord())
	}
	registered, err := h.Service.BulkRegister(ctx, records)
	if err != nil {
		return httptransport.BulkRegisterResponse{}, err
	}
	resp := httptransport.BulkRegisterResponse{Status: "success"}
	resp.Data.Registered = registered
	return resp, nil
}

// LoadSampleHandler registers the deterministic demo participant set.
func (h Handler) LoadSampleHandler(ctx context.Context) (httptransport.BulkRegisterResponse, error) {
	registered, err := h.Service.BulkRegister(ctx, application.SampleParticipants())
	if err != nil {
		return httptransport.BulkRegisterResponse{}, err
	}
	resp := httptransport.BulkRegisterResponse{Status: "success"}
	resp.Data.Registered = registered
	return resp, nil
}

func (h Handler) GetParticipantHandler(ctx context.Context, address string) (httptransport.ParticipantResponse, error) {
	record, err := h.Service.Lookup(ctx, address)
	if err != nil {
		return httptransport.ParticipantResponse{}, err
	}
	return httptransport.ParticipantResponse{
		Status: "success",
		Data:   httptransport.NewParticipantDTO(record),
	}, nil
}

func (h Handler) ListParticipantsHandler(ctx context.Context) (httptransport.ListParticipantsResponse, error) {
	records, err := h.Service.List(ctx)
	if err != nil {
		return httptransport.ListParticipantsResponse{}, err
	}
	resp := httptransport.ListParticipantsResponse{Status: "success"}
	resp.Data.Participants = make([]httptransport.ParticipantDTO, 0, len(records))
	for _, record := range records {
		resp.Data.Participants = append(resp.Data.Participants, httptransport.NewParticipantDTO(record))
	}
	return resp, nil
}
