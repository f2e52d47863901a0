package entities

import (
	"encoding/json"
	"strings"
	"time"
)

type BatchStatus string

const (
	BatchStatusCriado   BatchStatus = "CRIADO"
	BatchStatusACaminho BatchStatus = "A_CAMINHO"
	BatchStatusRecebido BatchStatus = "RECEBIDO"
	BatchStatusSeparado BatchStatus = "SEPARADO"
)

func (s BatchStatus) Valid() bool {
	switch s {
	case BatchStatusCriado, BatchStatusACaminho, BatchStatusRecebido, BatchStatusSeparado:
		return true
	}
	return false
}

// ShippingState is the tri-state machine derived from the shipping flags.
type ShippingState string

const (
	ShippingStateNaoEnviado ShippingState = "NAO_ENVIADO"
	ShippingStateEnviado    ShippingState = "ENVIADO"
	ShippingStateRecebido   ShippingState = "RECEBIDO"
	ShippingStateAnormal    ShippingState = "ANORMAL"
)

// Batch is a coded group of orders shipped and received together.
//
// Shipping flags:
//   - IsReceived and IsAbnormal are mutually exclusive and both require IsShipped.
//   - Non-empty tracking or notes mark the batch shipped.
//   - Clearing the tracking resets all three flags.
type Batch struct {
	Code            string      `json:"code"`
	Name            string      `json:"name"`
	InboundTracking string      `json:"inboundTracking"`
	Status          BatchStatus `json:"status"`
	Notes           string      `json:"notes"`
	OrderIDs        []string    `json:"orderIds"`
	IsShipped       bool        `json:"isShipped"`
	IsReceived      bool        `json:"isReceived"`
	IsAbnormal      bool        `json:"isAbnormal"`
	SupplierID      string      `json:"supplierId,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
	SyncState       SyncState   `json:"syncState,omitempty"`
}

// BatchPatch carries the fields an update may change. Nil means "keep".
type BatchPatch struct {
	Name            *string
	InboundTracking *string
	Status          *BatchStatus
	Notes           *string
	OrderIDs        *[]string
	SupplierID      *string
}

func (b Batch) LastModified() time.Time {
	return latest(b.UpdatedAt, b.CreatedAt)
}

func (b Batch) Contains(orderID string) bool {
	for _, id := range b.OrderIDs {
		if id == orderID {
			return true
		}
	}
	return false
}

// RemoveOrder drops orderID from the list. It reports whether the list changed.
func (b *Batch) RemoveOrder(orderID string) bool {
	kept := b.OrderIDs[:0:0]
	for _, id := range b.OrderIDs {
		if id != orderID {
			kept = append(kept, id)
		}
	}
	changed := len(kept) != len(b.OrderIDs)
	b.OrderIDs = kept
	return changed
}

// AppendOrders adds ids not yet listed, keeping the existing order.
func (b *Batch) AppendOrders(ids ...string) {
	for _, id := range ids {
		if !b.Contains(id) {
			b.OrderIDs = append(b.OrderIDs, id)
		}
	}
}

// ApplyTracking sets the inbound tracking. A tracking code puts the batch back in
// the "Enviado" state; an empty one means the batch was never shipped.
func (b *Batch) ApplyTracking(tracking string) {
	b.InboundTracking = tracking
	if strings.TrimSpace(tracking) != "" {
		b.IsShipped = true
	} else {
		b.IsShipped = false
	}
	b.IsReceived = false
	b.IsAbnormal = false
}

func (b *Batch) ApplyNotes(notes string) {
	b.Notes = notes
	if strings.TrimSpace(notes) != "" {
		b.IsShipped = true
	}
}

func (b *Batch) SetShipped(shipped bool) {
	b.IsShipped = shipped
	if !shipped {
		b.IsReceived = false
		b.IsAbnormal = false
	}
}

// ToggleReceived cycles Enviado -> Recebido -> Anormal -> Enviado.
// It returns false, leaving the batch untouched, when the batch was not shipped.
func (b *Batch) ToggleReceived() bool {
	if !b.IsShipped {
		return false
	}
	switch {
	case !b.IsReceived && !b.IsAbnormal:
		b.IsReceived = true
	case b.IsReceived:
		b.IsReceived = false
		b.IsAbnormal = true
	default:
		b.IsAbnormal = false
	}
	return true
}

// BackfillShipped fixes batches stored before tracking/notes implied shipment.
func (b *Batch) BackfillShipped() bool {
	hasTracking := strings.TrimSpace(b.InboundTracking) != ""
	hasNotes := strings.TrimSpace(b.Notes) != ""
	if (hasTracking || hasNotes) && !b.IsShipped {
		b.IsShipped = true
		return true
	}
	return false
}

func (b Batch) ShippingState() ShippingState {
	switch {
	case !b.IsShipped:
		return ShippingStateNaoEnviado
	case b.IsReceived:
		return ShippingStateRecebido
	case b.IsAbnormal:
		return ShippingStateAnormal
	default:
		return ShippingStateEnviado
	}
}

// Clone returns a copy that does not share the order id slice.
func (b Batch) Clone() Batch {
	b.OrderIDs = append([]string(nil), b.OrderIDs...)
	return b
}

func (b *Batch) UnmarshalJSON(data []byte) error {
	type alias Batch
	aux := struct {
		*alias
		PendingSync *bool `json:"pendingSync,omitempty"`
	}{alias: (*alias)(b)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	b.SyncState = b.SyncState.withLegacyFlag(aux.PendingSync)
	return nil
}
