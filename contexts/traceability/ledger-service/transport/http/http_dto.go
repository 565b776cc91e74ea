package httptransport

import (
	"time"

	"foodtrace/contexts/traceability/ledger-service/application"
	"foodtrace/contexts/traceability/ledger-service/domain/entities"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ProvenanceEventDTO struct {
	Participant string `json:"participant"`
	Role        string `json:"role"`
	Name        string `json:"name"`
	Action      string `json:"action"`
	Timestamp   string `json:"timestamp"`
}

type ItemDTO struct {
	SKU               uint64               `json:"sku"`
	Name              string               `json:"name"`
	State             int                  `json:"state"`
	StateLabel        string               `json:"state_label"`
	OriginFarmer      string               `json:"origin_farmer"`
	Processor         string               `json:"processor"`
	Retailer          string               `json:"retailer"`
	Consumer          string               `json:"consumer"`
	Price             string               `json:"price"`
	CurrentOwner      string               `json:"current_owner"`
	Timeline          []ProvenanceEventDTO `json:"timeline"`
	CustodyGaps       []string             `json:"custody_gaps,omitempty"`
	TimelineSynthetic bool                 `json:"timeline_synthetic"`
}

type ItemsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Items         []ItemDTO `json:"items"`
		ItemCount     uint64    `json:"item_count"`
		FailedIndices []uint64  `json:"failed_indices,omitempty"`
		RefreshedAt   string    `json:"refreshed_at"`
	} `json:"data"`
}

type ItemResponse struct {
	Status string  `json:"status"`
	Data   ItemDTO `json:"data"`
}

type RefreshResponse struct {
	Status string `json:"status"`
	Data   struct {
		ItemCount     uint64   `json:"item_count"`
		Fetched       int      `json:"fetched"`
		FailedIndices []uint64 `json:"failed_indices,omitempty"`
		RefreshedAt   string   `json:"refreshed_at"`
	} `json:"data"`
}

type AnalyticsResponse struct {
	Status string `json:"status"`
	Data   struct {
		Role  string `json:"role"`
		Stats []struct {
			Title string `json:"title"`
			Value string `json:"value"`
		} `json:"stats"`
	} `json:"data"`
}

func NewItemDTO(item entities.TrackedItem) ItemDTO {
	dto := ItemDTO{
		SKU:               item.SKU,
		Name:              item.Name,
		State:             int(item.State),
		StateLabel:        item.State.String(),
		OriginFarmer:      item.OriginFarmer,
		Processor:         item.Processor,
		Retailer:          item.Retailer,
		Consumer:          item.Consumer,
		Price:             item.Price,
		CurrentOwner:      item.CurrentOwner,
		CustodyGaps:       item.CustodyGaps,
		TimelineSynthetic: item.TimelineSynthetic,
	}
	for _, event := range item.Timeline {
		dto.Timeline = append(dto.Timeline, ProvenanceEventDTO{
			Participant: event.Participant,
			Role:        event.Role,
			Name:        event.Name,
			Action:      event.Action,
			Timestamp:   event.Timestamp.UTC().Format(time.RFC3339),
		})
	}
	return dto
}

func NewItemsResponse(result application.RefreshResult, visible []entities.TrackedItem) ItemsResponse {
	resp := ItemsResponse{Status: "success"}
	resp.Data.Items = make([]ItemDTO, 0, len(visible))
	for _, item := range visible {
		resp.Data.Items = append(resp.Data.Items, NewItemDTO(item))
	}
	resp.Data.ItemCount = result.ItemCount
	resp.Data.FailedIndices = result.FailedIndices
	resp.Data.RefreshedAt = result.RefreshedAt.UTC().Format(time.RFC3339)
	return resp
}

func NewRefreshResponse(result application.RefreshResult) RefreshResponse {
	resp := RefreshResponse{Status: "success"}
	resp.Data.ItemCount = result.ItemCount
	resp.Data.Fetched = len(result.Items)
	resp.Data.FailedIndices = result.FailedIndices
	resp.Data.RefreshedAt = result.RefreshedAt.UTC().Format(time.RFC3339)
	return resp
}

func NewAnalyticsResponse(role string, stats []application.Stat) AnalyticsResponse {
	resp := AnalyticsResponse{Status: "success"}
	resp.Data.Role = role
	for _, stat := range stats {
		resp.Data.Stats = append(resp.Data.Stats, struct {
			Title string `json:"title"`
			Value string `json:"value"`
		}{Title: stat.Title, Value: stat.Value})
	}
	return resp
}
