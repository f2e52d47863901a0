package usecase

import (
	"log"
	"sync/atomic"

	"consolidador/internal/domain/entities"
)

// AssociationManager keeps Order.BatchCode/InternalTag and Batch.OrderIDs in
// agreement. Its methods mutate the snapshot they are given and report which
// records changed; persisting and pushing those records is the caller's job.
type AssociationManager struct {
	checking atomic.Bool
}

func NewAssociationManager() *AssociationManager {
	return &AssociationManager{}
}

// Associate links each existing PADRAO order to batchCode, first taking it out
// of any other batch that lists it. Unknown and EXPRESSO ids are skipped and
// never appended to the batch list.
func (m *AssociationManager) Associate(s *entities.Snapshot, batchCode string, orderIDs []string) (changeSet, error) {
	var cs changeSet
	batch := s.Batch(batchCode)
	if batch == nil {
		return cs, ErrBatchNotFound
	}

	linked := make([]string, 0, len(orderIDs))
	for _, id := range orderIDs {
		o := s.Order(id)
		if o == nil {
			log.Printf("[association] skip unknown order order_id=%s batch_code=%s", id, batchCode)
			continue
		}
		if o.ShippingType != entities.ShippingTypePadrao {
			log.Printf("[association] skip non-standard order order_id=%s shipping_type=%s", id, o.ShippingType)
			continue
		}

		for i := range s.Batches {
			other := &s.Batches[i]
			if other.Code != batchCode && other.RemoveOrder(id) {
				log.Printf("[association] moved order order_id=%s from=%s to=%s", id, other.Code, batchCode)
				cs.touchBatch(other.Code)
			}
		}

		tag := entities.InternalTag(o.ProductName, o.ID)
		if o.BatchCode != batchCode || o.InternalTag != tag {
			o.LinkTo(batchCode)
			cs.touchOrder(id)
		}
		linked = append(linked, id)
	}

	before := len(batch.OrderIDs)
	batch.AppendOrders(linked...)
	if len(batch.OrderIDs) != before {
		cs.touchBatch(batchCode)
	}
	return cs, nil
}

// Disassociate only edits the batch list; the order keeps its BatchCode and
// InternalTag until the caller clears them.
func (m *AssociationManager) Disassociate(s *entities.Snapshot, orderID, batchCode string) (changeSet, error) {
	var cs changeSet
	batch := s.Batch(batchCode)
	if batch == nil {
		return cs, ErrBatchNotFound
	}
	if batch.RemoveOrder(orderID) {
		cs.touchBatch(batchCode)
	}
	return cs, nil
}

// DiffMembership replaces the batch list with ids. Orders leaving the batch
// are unlinked, orders joining it go through Associate, and orders present on
// both sides are left alone.
func (m *AssociationManager) DiffMembership(s *entities.Snapshot, batchCode string, ids []string) (changeSet, error) {
	var cs changeSet
	batch := s.Batch(batchCode)
	if batch == nil {
		return cs, ErrBatchNotFound
	}

	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	have := make(map[string]struct{}, len(batch.OrderIDs))
	for _, id := range batch.OrderIDs {
		have[id] = struct{}{}
	}

	var removed, added []string
	for _, id := range batch.OrderIDs {
		if _, ok := want[id]; !ok {
			removed = append(removed, id)
		}
	}
	for _, id := range ids {
		if _, ok := have[id]; !ok {
			added = append(added, id)
			have[id] = struct{}{}
		}
	}

	for _, id := range removed {
		rm, _ := m.Disassociate(s, id, batchCode)
		cs.merge(rm)
		if o := s.Order(id); o != nil && o.BatchCode == batchCode {
			o.Unlink()
			cs.touchOrder(id)
		}
	}
	if len(added) > 0 {
		add, err := m.Associate(s, batchCode, added)
		if err != nil {
			return cs, err
		}
		cs.merge(add)
	}
	log.Printf("[association] membership diff batch_code=%s removed=%d added=%d", batchCode, len(removed), len(added))
	return cs, nil
}

// tryBegin takes the integrity guard; end releases it.
func (m *AssociationManager) tryBegin() bool {
	return m.checking.CompareAndSwap(false, true)
}

func (m *AssociationManager) end() {
	m.checking.Store(false)
}
