package request

import (
	"strings"

	"consolidador/internal/domain/entities"
)

// BatchCreateRequest is the payload of POST /batches. The code is always
// generated server side.
type BatchCreateRequest struct {
	Name            string   `json:"name"`
	InboundTracking string   `json:"inbound_tracking"`
	Status          string   `json:"status"`
	Notes           string   `json:"notes"`
	OrderIDs        []string `json:"order_ids"`
	SupplierID      string   `json:"supplier_id"`
}

func (r BatchCreateRequest) ToEntity() entities.Batch {
	return entities.Batch{
		Name:            r.Name,
		InboundTracking: r.InboundTracking,
		Status:          entities.BatchStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
		Notes:           r.Notes,
		OrderIDs:        r.OrderIDs,
		SupplierID:      strings.TrimSpace(r.SupplierID),
	}
}

// BatchUpdateRequest is the payload of PATCH /batches/:code. A present
// order_ids replaces the whole membership list.
type BatchUpdateRequest struct {
	Name            *string   `json:"name"`
	InboundTracking *string   `json:"inbound_tracking"`
	Status          *string   `json:"status"`
	Notes           *string   `json:"notes"`
	OrderIDs        *[]string `json:"order_ids"`
	SupplierID      *string   `json:"supplier_id"`
}

func (r BatchUpdateRequest) ToPatch() entities.BatchPatch {
	patch := entities.BatchPatch{
		Name:            r.Name,
		InboundTracking: r.InboundTracking,
		Notes:           r.Notes,
		OrderIDs:        r.OrderIDs,
		SupplierID:      r.SupplierID,
	}
	if r.Status != nil {
		v := entities.BatchStatus(strings.ToUpper(strings.TrimSpace(*r.Status)))
		patch.Status = &v
	}
	return patch
}

type BatchStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r BatchStatusRequest) ToStatus() entities.BatchStatus {
	return entities.BatchStatus(strings.ToUpper(strings.TrimSpace(r.Status)))
}

// BatchTrackingRequest accepts an empty tracking code, which clears the
// shipping flags.
type BatchTrackingRequest struct {
	InboundTracking string `json:"inbound_tracking"`
}

type BatchNotesRequest struct {
	Notes string `json:"notes"`
}

type BatchShippedRequest struct {
	Shipped *bool `json:"shipped" binding:"required"`
}
