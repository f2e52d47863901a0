package response

import (
	"time"

	"consolidador/internal/domain/entities"
)

type OrderResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	ProductName   string    `json:"product_name"`
	Size          string    `json:"size"`
	SKU           string    `json:"sku"`
	ShippingType  string    `json:"shipping_type"`
	PaymentStatus string    `json:"payment_status"`
	BatchCode     string    `json:"batch_code,omitempty"`
	InternalTag   string    `json:"internal_tag,omitempty"`
	Notes         string    `json:"notes"`
	SyncState     string    `json:"sync_state"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		ProductName:   o.ProductName,
		Size:          o.Size,
		SKU:           o.SKU,
		ShippingType:  string(o.ShippingType),
		PaymentStatus: string(o.PaymentStatus),
		BatchCode:     o.BatchCode,
		InternalTag:   o.InternalTag,
		Notes:         o.Notes,
		SyncState:     syncState(o.SyncState),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

// syncState reports records that never carried a state as synced.
func syncState(s entities.SyncState) string {
	if s == "" {
		return string(entities.SyncStateSynced)
	}
	return string(s)
}
