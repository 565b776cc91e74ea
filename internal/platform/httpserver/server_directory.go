package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	directoryerrors "foodtrace/contexts/identity-access/directory-service/domain/errors"
	directoryhttp "foodtrace/contexts/identity-access/directory-service/transport/http"
)

func (s *Server) handleRegisterParticipant(w http.ResponseWriter, r *http.Request) {
	var req directoryhttp.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDirectoryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.directory.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBulkRegisterParticipants(w http.ResponseWriter, r *http.Request) {
	var req directoryhttp.BulkRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDirectoryError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.directory.Handler.BulkRegisterHandler(r.Context(), req)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLoadSampleParticipants(w http.ResponseWriter, r *http.Request) {
	resp, err := s.directory.Handler.LoadSampleHandler(r.Context())
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListParticipants(w http.ResponseWriter, r *http.Request) {
	resp, err := s.directory.Handler.ListParticipantsHandler(r.Context())
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetParticipant(w http.ResponseWriter, r *http.Request) {
	address := r.PathValue("address")
	resp, err := s.directory.Handler.GetParticipantHandler(r.Context(), address)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeDirectoryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, directoryerrors.ErrInvalidRequest),
		errors.Is(err, directoryerrors.ErrMissingWallet):
		writeDirectoryError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, directoryerrors.ErrUnknownRole):
		writeDirectoryError(w, http.StatusUnprocessableEntity, "unknown_role", err.Error())
	case errors.Is(err, directoryerrors.ErrParticipantNotFound):
		writeDirectoryError(w, http.StatusNotFound, "participant_not_found", err.Error())
	default:
		writeDirectoryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeDirectoryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, directoryhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
