package entities

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"
)

type ShippingType string

const (
	ShippingTypePadrao   ShippingType = "PADRAO"
	ShippingTypeExpresso ShippingType = "EXPRESSO"
)

func (s ShippingType) Valid() bool {
	return s == ShippingTypePadrao || s == ShippingTypeExpresso
}

type PaymentStatus string

const (
	PaymentStatusPago       PaymentStatus = "PAGO"
	PaymentStatusAguardando PaymentStatus = "AGUARDANDO"
	PaymentStatusCancelado  PaymentStatus = "CANCELADO"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentStatusPago, PaymentStatusAguardando, PaymentStatusCancelado:
		return true
	}
	return false
}

// Order is a customer order tracked by the consolidation store.
//
// Relationship with Batch:
//   - BatchCode is set iff some batch lists the order id in OrderIDs.
//   - InternalTag is set iff BatchCode is set.
//   - Only PADRAO orders may carry a BatchCode.
type Order struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customerName"`
	ProductName   string        `json:"productName"`
	Size          string        `json:"size"`
	SKU           string        `json:"sku"`
	ShippingType  ShippingType  `json:"shippingType"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	BatchCode     string        `json:"batchCode,omitempty"`
	InternalTag   string        `json:"internalTag,omitempty"`
	Notes         string        `json:"notes"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	SyncState     SyncState     `json:"syncState,omitempty"`
}

// OrderPatch carries the fields an update may change. Nil means "keep".
type OrderPatch struct {
	CustomerName  *string
	ProductName   *string
	Size          *string
	SKU           *string
	ShippingType  *ShippingType
	PaymentStatus *PaymentStatus
	Notes         *string
}

// OrderFilters are exact-match filters for order searches. Empty means any.
type OrderFilters struct {
	ShippingType  ShippingType
	PaymentStatus PaymentStatus
}

func (o Order) LastModified() time.Time {
	return latest(o.UpdatedAt, o.CreatedAt)
}

func (o Order) Batched() bool {
	return o.BatchCode != ""
}

// Available reports whether the order can be put in a new batch.
func (o Order) Available() bool {
	return o.ShippingType == ShippingTypePadrao && o.PaymentStatus == PaymentStatusPago && !o.Batched()
}

// LinkTo sets the batch reference together with its derived tag.
func (o *Order) LinkTo(batchCode string) {
	o.BatchCode = batchCode
	o.InternalTag = InternalTag(o.ProductName, o.ID)
}

func (o *Order) Unlink() {
	o.BatchCode = ""
	o.InternalTag = ""
}

// Matches is the case-insensitive substring search over id, product and customer.
func (o Order) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(o.ID), q) ||
		strings.Contains(strings.ToLower(o.ProductName), q) ||
		strings.Contains(strings.ToLower(o.CustomerName), q)
}

func (f OrderFilters) Accepts(o Order) bool {
	if f.ShippingType != "" && o.ShippingType != f.ShippingType {
		return false
	}
	if f.PaymentStatus != "" && o.PaymentStatus != f.PaymentStatus {
		return false
	}
	return true
}

func (o *Order) UnmarshalJSON(b []byte) error {
	type alias Order
	aux := struct {
		*alias
		PendingSync *bool `json:"pendingSync,omitempty"`
	}{alias: (*alias)(o)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	o.SyncState = o.SyncState.withLegacyFlag(aux.PendingSync)
	return nil
}

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// InternalTag builds the label printed on internal tags: the lowercased product
// name with every non-alphanumeric run collapsed to one hyphen, then "-<id>".
func InternalTag(productName, orderID string) string {
	slug := nonSlugRun.ReplaceAllString(strings.ToLower(productName), "-")
	slug = strings.Trim(slug, "-")
	return slug + "-" + orderID
}

func latest(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}
