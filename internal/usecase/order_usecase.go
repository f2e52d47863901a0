package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"consolidador/internal/domain/entities"
)

func validateOrder(o entities.Order) error {
	switch {
	case strings.TrimSpace(o.ID) == "":
		return fmt.Errorf("%w: id is required", ErrInvalidOrder)
	case strings.TrimSpace(o.CustomerName) == "":
		return fmt.Errorf("%w: customerName is required", ErrInvalidOrder)
	case strings.TrimSpace(o.ProductName) == "":
		return fmt.Errorf("%w: productName is required", ErrInvalidOrder)
	case !o.ShippingType.Valid():
		return fmt.Errorf("%w: shippingType %q", ErrInvalidOrder, o.ShippingType)
	case !o.PaymentStatus.Valid():
		return fmt.Errorf("%w: paymentStatus %q", ErrInvalidOrder, o.PaymentStatus)
	}
	return nil
}

// AddOrder creates an unbatched order. Empty enums default to PADRAO and
// AGUARDANDO.
func (u *ConsolidationUseCase) AddOrder(ctx context.Context, in entities.Order) (entities.Order, error) {
	in.ID = strings.TrimSpace(in.ID)
	if in.ShippingType == "" {
		in.ShippingType = entities.ShippingTypePadrao
	}
	if in.PaymentStatus == "" {
		in.PaymentStatus = entities.PaymentStatusAguardando
	}
	if err := validateOrder(in); err != nil {
		log.Printf("[store][order] add rejected order_id=%q err=%v", in.ID, err)
		return entities.Order{}, err
	}

	err := u.mutate(ctx, func(s *entities.Snapshot, now time.Time) (changeSet, error) {
		var cs changeSet
		if s.Order(in.ID) != nil {
			return cs, ErrOrderAlreadyExists
		}
		o := in
		o.Unlink()
		o.CreatedAt = now
		o.UpdatedAt = now
		s.Orders = append([]entities.Order{o}, s.Orders...)
		cs.touchOrder(o.ID)
		return cs, nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[store][order] added order_id=%s shipping_type=%s payment_status=%s", in.ID, in.ShippingType, in.PaymentStatus)
	return u.GetOrder(in.ID)
}

// UpdateOrder applies patch. Switching a batched order to EXPRESSO takes it
// out of its batch; renaming the product of a batched order refreshes its tag.
func (u *ConsolidationUseCase) UpdateOrder(ctx context.Context, id string, patch entities.OrderPatch) (entities.Order, error) {
	err := u.mutate(ctx, func(s *entities.Snapshot, _ time.Time) (changeSet, error) {
		var cs changeSet
		o := s.Order(id)
		if o == nil {
			return cs, ErrOrderNotFound
		}

		next := *o
		if patch.CustomerName != nil {
			next.CustomerName = *patch.CustomerName
		}
		if patch.ProductName != nil {
			next.ProductName = *patch.ProductName
		}
		if patch.Size != nil {
			next.Size = *patch.Size
		}
		if patch.SKU != nil {
			next.SKU = *patch.SKU
		}
		if patch.ShippingType != nil {
			next.ShippingType = *patch.ShippingType
		}
		if patch.PaymentStatus != nil {
			next.PaymentStatus = *patch.PaymentStatus
		}
		if patch.Notes != nil {
			next.Notes = *patch.Notes
		}
		if err := validateOrder(next); err != nil {
			return cs, err
		}

		if next.Batched() {
			if next.ShippingType != entities.ShippingTypePadrao {
				for i := range s.Batches {
					if s.Batches[i].RemoveOrder(id) {
						cs.touchBatch(s.Batches[i].Code)
					}
				}
				log.Printf("[association] order left batch on shipping change order_id=%s batch_code=%s", id, next.BatchCode)
				next.Unlink()
			} else {
				next.LinkTo(next.BatchCode)
			}
		}

		*o = next
		cs.touchOrder(id)
		return cs, nil
	})
	if err != nil {
		log.Printf("[store][order] update failed order_id=%s err=%v", id, err)
		return entities.Order{}, err
	}
	return u.GetOrder(id)
}

// DeleteOrder removes the order and drops its id from every batch list.
func (u *ConsolidationUseCase) DeleteOrder(ctx context.Context, id string) error {
	err := u.mutate(ctx, func(s *entities.Snapshot, _ time.Time) (changeSet, error) {
		var cs changeSet
		i := s.OrderIndex(id)
		if i < 0 {
			return cs, ErrOrderNotFound
		}
		for j := range s.Batches {
			if s.Batches[j].RemoveOrder(id) {
				cs.touchBatch(s.Batches[j].Code)
			}
		}
		s.Orders = append(s.Orders[:i], s.Orders[i+1:]...)
		cs.deleteOrder(id)
		return cs, nil
	})
	if err != nil {
		log.Printf("[store][order] delete failed order_id=%s err=%v", id, err)
		return err
	}
	log.Printf("[store][order] deleted order_id=%s", id)
	return nil
}

// GetAvailableOrders lists PADRAO, PAGO orders not yet in a batch.
func (u *ConsolidationUseCase) GetAvailableOrders() []entities.Order {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := []entities.Order{}
	for _, o := range u.state.Orders {
		if o.Available() {
			out = append(out, o)
		}
	}
	return out
}

func (u *ConsolidationUseCase) SearchOrders(query string, filters entities.OrderFilters) []entities.Order {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := []entities.Order{}
	for _, o := range u.state.Orders {
		if filters.Accepts(o) && o.Matches(query) {
			out = append(out, o)
		}
	}
	return out
}

// GetOrdersInBatch resolves the batch list in its own order, skipping ids
// that no longer resolve to an order.
func (u *ConsolidationUseCase) GetOrdersInBatch(code string) ([]entities.Order, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	b := u.state.Batch(code)
	if b == nil {
		return nil, ErrBatchNotFound
	}
	out := make([]entities.Order, 0, len(b.OrderIDs))
	for _, id := range b.OrderIDs {
		if o := u.state.Order(id); o != nil {
			out = append(out, *o)
		}
	}
	return out, nil
}

// SearchOrdersInBatch also matches on the internal tag printed on labels.
func (u *ConsolidationUseCase) SearchOrdersInBatch(code, query string) ([]entities.Order, error) {
	orders, err := u.GetOrdersInBatch(code)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	out := []entities.Order{}
	for _, o := range orders {
		if o.Matches(q) || strings.Contains(strings.ToLower(o.InternalTag), q) {
			out = append(out, o)
		}
	}
	return out, nil
}
