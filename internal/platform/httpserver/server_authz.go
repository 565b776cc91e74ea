package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	authzerrors "foodtrace/contexts/identity-access/authorization-service/domain/errors"
	authzhttp "foodtrace/contexts/identity-access/authorization-service/transport/http"
)

func (s *Server) handleAuthzCheck(w http.ResponseWriter, r *http.Request) {
	var req authzhttp.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthzError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	if req.Role == "" {
		// Fall back to the active session when the caller does not name a
		// role explicitly.
		if session, err := s.session.Service.Current(); err == nil {
			req.Role = session.Role.String()
		}
	}
	resp, err := s.authorization.Handler.CheckHandler(req)
	if err != nil {
		writeAuthzDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeAuthzDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authzerrors.ErrUnknownCapability):
		writeAuthzError(w, http.StatusUnprocessableEntity, "unknown_capability", err.Error())
	case errors.Is(err, authzerrors.ErrInvalidRequest):
		writeAuthzError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeAuthzError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeAuthzError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, authzhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
