package httpadapter

import (
	"context"
	"log/slog"
	"strconv"

	"foodtrace/contexts/traceability/ledger-service/application"
	"foodtrace/contexts/traceability/ledger-service/domain/entities"
	domainerrors "foodtrace/contexts/traceability/ledger-service/domain/errors"
	httptransport "foodtrace/contexts/traceability/ledger-service/transport/http"
)

type Handler struct {
	Service  application.Service
	Snapshot *application.SnapshotStore
	Logger   *slog.Logger
}

// ListItemsHandler maps a refresh result to the wire format, restricted to
// the visible item set the platform layer computed from the session.
func (h Handler) ListItemsHandler(result application.RefreshResult, visible []entities.TrackedItem) httptransport.ItemsResponse {
	return httptransport.NewItemsResponse(result, visible)
}

// GetItemHandler resolves one item by SKU from the latest snapshot.
func (h Handler) GetItemHandler(_ context.Context, rawSKU string) (httptransport.ItemResponse, error) {
	sku, err := strconv.ParseUint(rawSKU, 10, 64)
	if err != nil || sku == 0 {
		return httptransport.ItemResponse{}, domainerrors.ErrInvalidRequest
	}
	item, err := h.Snapshot.Item(sku)
	if err != nil {
		return httptransport.ItemResponse{}, err
	}
	return httptransport.ItemResponse{Status: "success", Data: httptransport.NewItemDTO(item)}, nil
}

// RefreshHandler runs a refresh cycle immediately and publishes the result.
func (h Handler) RefreshHandler(ctx context.Context) (httptransport.RefreshResponse, error) {
	result, err := h.Service.Refresh(ctx)
	if err != nil {
		return httptransport.RefreshResponse{}, err
	}
	h.Snapshot.Set(result)
	return httptransport.NewRefreshResponse(result), nil
}
