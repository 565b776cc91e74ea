package httpadapter

import (
	"context"
	"log/slog"

	"foodtrace/contexts/identity-access/session-service/application"
	httptransport "foodtrace/contexts/identity-access/session-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) WalletLoginHandler(ctx context.Context, req httptransport.WalletLoginRequest) (httptransport.SessionResponse, error) {
	session, err := h.Service.LoginByWallet(ctx, req.WalletAddress)
	if err != nil {
		return httptransport.SessionResponse{}, err
	}
	return httptransport.NewSessionResponse(session), nil
}

func (h Handler) CredentialLoginHandler(ctx context.Context, req httptransport.CredentialLoginRequest) (httptransport.SessionResponse, error) {
	session, err := h.Service.LoginByCredential(ctx, req.Email, req.Password)
	if err != nil {
		return httptransport.SessionResponse{}, err
	}
	return httptransport.NewSessionResponse(session), nil
}

func (h Handler) LogoutHandler(ctx context.Context) (httptransport.LogoutResponse, error) {
	if err := h.Service.Logout(ctx); err != nil {
		return httptransport.LogoutResponse{}, err
	}
	return httptransport.LogoutResponse{Status: "success"}, nil
}

// CurrentSessionHandler returns the active session, if any.
func (h Handler) CurrentSessionHandler(ctx context.Context) (httptransport.SessionResponse, error) {
	session, err := h.Service.Current()
	if err != nil {
		return httptransport.SessionResponse{}, err
	}
	return httptransport.NewSessionResponse(session), nil
}
