package httpserver

import (
	"errors"
	"net/http"

	authzservices "foodtrace/contexts/identity-access/authorization-service/domain/services"
	"foodtrace/contexts/traceability/ledger-service/application"
	"foodtrace/contexts/traceability/ledger-service/domain/entities"
	ledgererrors "foodtrace/contexts/traceability/ledger-service/domain/errors"
	ledgerhttp "foodtrace/contexts/traceability/ledger-service/transport/http"
	"foodtrace/internal/shared/roles"
)

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	session, err := s.session.Service.Current()
	if err != nil {
		writeItemsError(w, http.StatusUnauthorized, "no_active_session", "log in to view items")
		return
	}
	result, err := s.traceability.Snapshot.Current()
	if err != nil {
		writeItemsDomainError(w, err)
		return
	}
	visible := visibleItems(result.Items, session.Role, session.WalletAddress)
	writeJSON(w, http.StatusOK, s.traceability.Handler.ListItemsHandler(result, visible))
}

func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	resp, err := s.traceability.Handler.GetItemHandler(r.Context(), r.PathValue("sku"))
	if err != nil {
		writeItemsDomainError(w, err)
		return
	}
	// Ownership rule: a farmer only sees items they originated.
	if session, err := s.session.Service.Current(); err == nil {
		if !authzservices.CanViewItem(session.Role, session.WalletAddress, resp.Data.OriginFarmer) {
			writeItemsDomainError(w, ledgererrors.ErrItemNotFound)
			return
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAvailableItems(w http.ResponseWriter, r *http.Request) {
	result, err := s.traceability.Snapshot.Current()
	if err != nil {
		writeItemsDomainError(w, err)
		return
	}
	available := application.AvailableItems(result.Items)
	writeJSON(w, http.StatusOK, s.traceability.Handler.ListItemsHandler(result, available))
}

func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	session, err := s.session.Service.Current()
	if err != nil {
		writeItemsError(w, http.StatusUnauthorized, "no_active_session", "log in to view analytics")
		return
	}
	result, err := s.traceability.Snapshot.Current()
	if err != nil {
		writeItemsDomainError(w, err)
		return
	}
	total, suppliers, err := s.directory.Service.Counts(r.Context())
	if err != nil {
		writeItemsError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	visible := visibleItems(result.Items, session.Role, session.WalletAddress)
	stats := application.RoleStats(session.Role, session.WalletAddress, visible, total, suppliers)
	writeJSON(w, http.StatusOK, ledgerhttp.NewAnalyticsResponse(session.Role.String(), stats))
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	resp, err := s.traceability.Handler.RefreshHandler(r.Context())
	if err != nil {
		writeItemsDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func visibleItems(items []entities.TrackedItem, role roles.Role, wallet string) []entities.TrackedItem {
	visible := make([]entities.TrackedItem, 0, len(items))
	for _, item := range items {
		if authzservices.CanViewItem(role, wallet, item.OriginFarmer) {
			visible = append(visible, item)
		}
	}
	return visible
}

func writeItemsDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgererrors.ErrInvalidRequest):
		writeItemsError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, ledgererrors.ErrItemNotFound):
		writeItemsError(w, http.StatusNotFound, "item_not_found", err.Error())
	case errors.Is(err, ledgererrors.ErrNoSnapshot):
		writeItemsError(w, http.StatusServiceUnavailable, "no_snapshot", err.Error())
	case errors.Is(err, ledgererrors.ErrNetworkMismatch):
		writeItemsError(w, http.StatusBadGateway, "network_mismatch", err.Error())
	case errors.Is(err, ledgererrors.ErrNoLedgerCode):
		writeItemsError(w, http.StatusBadGateway, "no_ledger_code", err.Error())
	case errors.Is(err, ledgererrors.ErrLedgerUnavailable):
		writeItemsError(w, http.StatusServiceUnavailable, "ledger_unavailable", err.Error())
	default:
		writeItemsError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeItemsError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, ledgerhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
