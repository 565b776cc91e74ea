package httpadapter

import (
	"log/slog"

	"foodtrace/contexts/identity-access/authorization-service/application"
	httptransport "foodtrace/contexts/identity-access/authorization-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CheckHandler(req httptransport.CheckRequest) (httptransport.CheckResponse, error) {
	decision, err := h.Service.Check(req.Role, req.Capability)
	if err != nil {
		return httptransport.CheckResponse{}, err
	}
	return httptransport.NewCheckResponse(decision), nil
}
