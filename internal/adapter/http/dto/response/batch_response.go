package response

import (
	"time"

	"consolidador/internal/domain/entities"
)

type BatchResponse struct {
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	InboundTracking string    `json:"inbound_tracking"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes"`
	OrderIDs        []string  `json:"order_ids"`
	IsShipped       bool      `json:"is_shipped"`
	IsReceived      bool      `json:"is_received"`
	IsAbnormal      bool      `json:"is_abnormal"`
	ShippingState   string    `json:"shipping_state"`
	SupplierID      string    `json:"supplier_id,omitempty"`
	SyncState       string    `json:"sync_state"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromBatch(b entities.Batch) BatchResponse {
	ids := b.OrderIDs
	if ids == nil {
		ids = []string{}
	}
	return BatchResponse{
		Code:            b.Code,
		Name:            b.Name,
		InboundTracking: b.InboundTracking,
		Status:          string(b.Status),
		Notes:           b.Notes,
		OrderIDs:        ids,
		IsShipped:       b.IsShipped,
		IsReceived:      b.IsReceived,
		IsAbnormal:      b.IsAbnormal,
		ShippingState:   string(b.ShippingState()),
		SupplierID:      b.SupplierID,
		SyncState:       syncState(b.SyncState),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func FromBatches(batches []entities.Batch) []BatchResponse {
	out := make([]BatchResponse, 0, len(batches))
	for _, b := range batches {
		out = append(out, FromBatch(b))
	}
	return out
}
