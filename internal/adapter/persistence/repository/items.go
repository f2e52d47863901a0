package repository

import (
	"consolidador/internal/domain/entities"
)

type orderItem struct {
	ID            string `dynamodbav:"id"`
	CustomerName  string `dynamodbav:"customer_name"`
	ProductName   string `dynamodbav:"product_name"`
	Size          string `dynamodbav:"size"`
	SKU           string `dynamodbav:"sku"`
	ShippingType  string `dynamodbav:"shipping_type"`
	PaymentStatus string `dynamodbav:"payment_status"`
	BatchCode     string `dynamodbav:"batch_code,omitempty"`
	InternalTag   string `dynamodbav:"internal_tag,omitempty"`
	Notes         string `dynamodbav:"notes"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

type batchItem struct {
	Code            string   `dynamodbav:"code"`
	Name            string   `dynamodbav:"name"`
	InboundTracking string   `dynamodbav:"inbound_tracking"`
	Status          string   `dynamodbav:"status"`
	Notes           string   `dynamodbav:"notes"`
	OrderIDs        []string `dynamodbav:"order_ids"`
	IsShipped       bool     `dynamodbav:"is_shipped"`
	IsReceived      bool     `dynamodbav:"is_received"`
	IsAbnormal      bool     `dynamodbav:"is_abnormal"`
	SupplierID      string   `dynamodbav:"supplier_id,omitempty"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
}

type supplierItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	Contact    string `dynamodbav:"contact"`
	Email      string `dynamodbav:"email"`
	Phone      string `dynamodbav:"phone"`
	Address    string `dynamodbav:"address"`
	IsFavorite bool   `dynamodbav:"is_favorite"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

func toOrderItem(o entities.Order) orderItem {
	return orderItem{
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
		CreatedAt:     formatTime(o.CreatedAt),
		UpdatedAt:     formatTime(o.UpdatedAt),
	}
}

// Documents read back from the remote store are synced by definition.
func fromOrderItem(it orderItem) entities.Order {
	return entities.Order{
		ID:            it.ID,
		CustomerName:  it.CustomerName,
		ProductName:   it.ProductName,
		Size:          it.Size,
		SKU:           it.SKU,
		ShippingType:  entities.ShippingType(it.ShippingType),
		PaymentStatus: entities.PaymentStatus(it.PaymentStatus),
		BatchCode:     it.BatchCode,
		InternalTag:   it.InternalTag,
		Notes:         it.Notes,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
		SyncState:     entities.SyncStateSynced,
	}
}

func toBatchItem(b entities.Batch) batchItem {
	ids := b.OrderIDs
	if ids == nil {
		ids = []string{}
	}
	return batchItem{
		Code:            b.Code,
		Name:            b.Name,
		InboundTracking: b.InboundTracking,
		Status:          string(b.Status),
		Notes:           b.Notes,
		OrderIDs:        ids,
		IsShipped:       b.IsShipped,
		IsReceived:      b.IsReceived,
		IsAbnormal:      b.IsAbnormal,
		SupplierID:      b.SupplierID,
		CreatedAt:       formatTime(b.CreatedAt),
		UpdatedAt:       formatTime(b.UpdatedAt),
	}
}

func fromBatchItem(it batchItem) entities.Batch {
	return entities.Batch{
		Code:            it.Code,
		Name:            it.Name,
		InboundTracking: it.InboundTracking,
		Status:          entities.BatchStatus(it.Status),
		Notes:           it.Notes,
		OrderIDs:        append([]string{}, it.OrderIDs...),
		IsShipped:       it.IsShipped,
		IsReceived:      it.IsReceived,
		IsAbnormal:      it.IsAbnormal,
		SupplierID:      it.SupplierID,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
		SyncState:       entities.SyncStateSynced,
	}
}

func toSupplierItem(s entities.Supplier) supplierItem {
	return supplierItem{
		ID:         s.ID,
		Name:       s.Name,
		Contact:    s.Contact,
		Email:      s.Email,
		Phone:      s.Phone,
		Address:    s.Address,
		IsFavorite: s.IsFavorite,
		CreatedAt:  formatTime(s.CreatedAt),
		UpdatedAt:  formatTime(s.UpdatedAt),
	}
}

func fromSupplierItem(it supplierItem) entities.Supplier {
	return entities.Supplier{
		ID:         it.ID,
		Name:       it.Name,
		Contact:    it.Contact,
		Email:      it.Email,
		Phone:      it.Phone,
		Address:    it.Address,
		IsFavorite: it.IsFavorite,
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
		SyncState:  entities.SyncStateSynced,
	}
}
