package request

import (
	"strings"

	"consolidador/internal/domain/entities"
)

// OrderCreateRequest is the payload of POST /orders. Enum fields are
// optional and default to PADRAO / AGUARDANDO.
type OrderCreateRequest struct {
	ID            string `json:"id" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	ProductName   string `json:"product_name" binding:"required"`
	Size          string `json:"size"`
	SKU           string `json:"sku"`
	ShippingType  string `json:"shipping_type"`
	PaymentStatus string `json:"payment_status"`
	Notes         string `json:"notes"`
}

func (r OrderCreateRequest) ToEntity() entities.Order {
	return entities.Order{
		ID:            strings.TrimSpace(r.ID),
		CustomerName:  strings.TrimSpace(r.CustomerName),
		ProductName:   strings.TrimSpace(r.ProductName),
		Size:          strings.TrimSpace(r.Size),
		SKU:           strings.TrimSpace(r.SKU),
		ShippingType:  entities.ShippingType(strings.ToUpper(strings.TrimSpace(r.ShippingType))),
		PaymentStatus: entities.PaymentStatus(strings.ToUpper(strings.TrimSpace(r.PaymentStatus))),
		Notes:         r.Notes,
	}
}

// OrderUpdateRequest is the payload of PATCH /orders/:id. Omitted fields are
// left unchanged.
type OrderUpdateRequest struct {
	CustomerName  *string `json:"customer_name"`
	ProductName   *string `json:"product_name"`
	Size          *string `json:"size"`
	SKU           *string `json:"sku"`
	ShippingType  *string `json:"shipping_type"`
	PaymentStatus *string `json:"payment_status"`
	Notes         *string `json:"notes"`
}

func (r OrderUpdateRequest) ToPatch() entities.OrderPatch {
	patch := entities.OrderPatch{
		CustomerName: r.CustomerName,
		ProductName:  r.ProductName,
		Size:         r.Size,
		SKU:          r.SKU,
		Notes:        r.Notes,
	}
	if r.ShippingType != nil {
		v := entities.ShippingType(strings.ToUpper(strings.TrimSpace(*r.ShippingType)))
		patch.ShippingType = &v
	}
	if r.PaymentStatus != nil {
		v := entities.PaymentStatus(strings.ToUpper(strings.TrimSpace(*r.PaymentStatus)))
		patch.PaymentStatus = &v
	}
	return patch
}

// OrderQuery holds the filters of GET /orders.
type OrderQuery struct {
	Q             string `form:"q"`
	ShippingType  string `form:"shipping_type"`
	PaymentStatus string `form:"payment_status"`
}

func (q OrderQuery) Empty() bool {
	return strings.TrimSpace(q.Q) == "" && q.ShippingType == "" && q.PaymentStatus == ""
}

func (q OrderQuery) Filters() entities.OrderFilters {
	return entities.OrderFilters{
		ShippingType:  entities.ShippingType(strings.ToUpper(q.ShippingType)),
		PaymentStatus: entities.PaymentStatus(strings.ToUpper(q.PaymentStatus)),
	}
}
