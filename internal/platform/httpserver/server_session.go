package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	sessionerrors "foodtrace/contexts/identity-access/session-service/domain/errors"
	sessionhttp "foodtrace/contexts/identity-access/session-service/transport/http"
)

func (s *Server) handleWalletLogin(w http.ResponseWriter, r *http.Request) {
	var req sessionhttp.WalletLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSessionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.session.Handler.WalletLoginHandler(r.Context(), req)
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCredentialLogin(w http.ResponseWriter, r *http.Request) {
	var req sessionhttp.CredentialLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeSessionError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.session.Handler.CredentialLoginHandler(r.Context(), req)
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	resp, err := s.session.Handler.LogoutHandler(r.Context())
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCurrentSession(w http.ResponseWriter, r *http.Request) {
	resp, err := s.session.Handler.CurrentSessionHandler(r.Context())
	if err != nil {
		writeSessionDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeSessionDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, sessionerrors.ErrInvalidRequest):
		writeSessionError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, sessionerrors.ErrNotRegistered):
		writeSessionError(w, http.StatusForbidden, "not_registered", err.Error())
	case errors.Is(err, sessionerrors.ErrInvalidCredential):
		writeSessionError(w, http.StatusUnauthorized, "invalid_credential", err.Error())
	case errors.Is(err, sessionerrors.ErrNoActiveSession):
		writeSessionError(w, http.StatusUnauthorized, "no_active_session", err.Error())
	default:
		writeSessionError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeSessionError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, sessionhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
