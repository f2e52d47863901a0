package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"consolidador/internal/domain/entities"
)

// AddBatch creates a batch under a freshly generated code and links the
// requested orders to it. Code, flags and timestamps of the input are ignored.
func (u *ConsolidationUseCase) AddBatch(ctx context.Context, in entities.Batch) (entities.Batch, error) {
	if in.Status == "" {
		in.Status = entities.BatchStatusCriado
	}
	if !in.Status.Valid() {
		return entities.Batch{}, fmt.Errorf("%w: status %q", ErrInvalidBatch, in.Status)
	}

	var code string
	err := u.mutate(ctx, func(s *entities.Snapshot, now time.Time) (changeSet, error) {
		var cs changeSet
		if in.SupplierID != "" && s.SupplierIndex(in.SupplierID) < 0 {
			return cs, ErrSupplierNotFound
		}

		code = u.numbering.GenerateCode()
		if s.Batch(code) != nil {
			u.numbering.RecomputeNext(u.batchCodesLocked())
			code = u.numbering.GenerateCode()
		}

		b := entities.Batch{
			Code:       code,
			Name:       strings.TrimSpace(in.Name),
			Status:     in.Status,
			SupplierID: in.SupplierID,
			OrderIDs:   []string{},
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if b.Name == "" {
			b.Name = code
		}
		b.ApplyTracking(strings.TrimSpace(in.InboundTracking))
		b.ApplyNotes(in.Notes)
		s.Batches = append(s.Batches, b)
		cs.touchBatch(code)

		linked, err := u.assoc.Associate(s, code, in.OrderIDs)
		if err != nil {
			return cs, err
		}
		cs.merge(linked)
		return cs, nil
	})
	if err != nil {
		log.Printf("[store][batch] add failed err=%v", err)
		return entities.Batch{}, err
	}
	log.Printf("[store][batch] added batch_code=%s requested_orders=%d", code, len(in.OrderIDs))
	return u.GetBatch(code)
}

// UpdateBatch applies patch. A new order list is reconciled against the old
// one, so only orders that actually join or leave the batch are rewritten.
func (u *ConsolidationUseCase) UpdateBatch(ctx context.Context, code string, patch entities.BatchPatch) (entities.Batch, error) {
	return u.updateBatch(ctx, code, func(s *entities.Snapshot, b *entities.Batch) (changeSet, error) {
		var cs changeSet
		if patch.Status != nil && !patch.Status.Valid() {
			return cs, fmt.Errorf("%w: status %q", ErrInvalidBatch, *patch.Status)
		}
		if patch.SupplierID != nil && *patch.SupplierID != "" && s.SupplierIndex(*patch.SupplierID) < 0 {
			return cs, ErrSupplierNotFound
		}

		if patch.Name != nil {
			b.Name = strings.TrimSpace(*patch.Name)
			if b.Name == "" {
				b.Name = b.Code
			}
		}
		if patch.Status != nil {
			b.Status = *patch.Status
		}
		if patch.SupplierID != nil {
			b.SupplierID = *patch.SupplierID
		}
		if patch.InboundTracking != nil {
			b.ApplyTracking(strings.TrimSpace(*patch.InboundTracking))
		}
		if patch.Notes != nil {
			b.ApplyNotes(*patch.Notes)
		}
		cs.touchBatch(code)

		if patch.OrderIDs != nil {
			diff, err := u.assoc.DiffMembership(s, code, *patch.OrderIDs)
			if err != nil {
				return cs, err
			}
			cs.merge(diff)
		}
		return cs, nil
	})
}

func (u *ConsolidationUseCase) UpdateBatchStatus(ctx context.Context, code string, status entities.BatchStatus) (entities.Batch, error) {
	return u.UpdateBatch(ctx, code, entities.BatchPatch{Status: &status})
}

// UpdateBatchTracking stores the inbound tracking code. Any change puts the
// batch back in "Enviado"; an empty code clears all shipping flags.
func (u *ConsolidationUseCase) UpdateBatchTracking(ctx context.Context, code, tracking string) (entities.Batch, error) {
	return u.UpdateBatch(ctx, code, entities.BatchPatch{InboundTracking: &tracking})
}

func (u *ConsolidationUseCase) UpdateBatchNotes(ctx context.Context, code, notes string) (entities.Batch, error) {
	return u.UpdateBatch(ctx, code, entities.BatchPatch{Notes: &notes})
}

func (u *ConsolidationUseCase) UpdateBatchShippingStatus(ctx context.Context, code string, shipped bool) (entities.Batch, error) {
	return u.updateBatch(ctx, code, func(_ *entities.Snapshot, b *entities.Batch) (changeSet, error) {
		var cs changeSet
		b.SetShipped(shipped)
		cs.touchBatch(code)
		return cs, nil
	})
}

// ToggleBatchReceived cycles Enviado -> Recebido -> Anormal -> Enviado. It
// fails with ErrBatchNotShipped, changing nothing, on a batch not yet shipped.
func (u *ConsolidationUseCase) ToggleBatchReceived(ctx context.Context, code string) (entities.Batch, error) {
	return u.updateBatch(ctx, code, func(_ *entities.Snapshot, b *entities.Batch) (changeSet, error) {
		var cs changeSet
		if !b.ToggleReceived() {
			return cs, ErrBatchNotShipped
		}
		cs.touchBatch(code)
		return cs, nil
	})
}

func (u *ConsolidationUseCase) updateBatch(ctx context.Context, code string, fn func(s *entities.Snapshot, b *entities.Batch) (changeSet, error)) (entities.Batch, error) {
	err := u.mutate(ctx, func(s *entities.Snapshot, _ time.Time) (changeSet, error) {
		b := s.Batch(code)
		if b == nil {
			return changeSet{}, ErrBatchNotFound
		}
		return fn(s, b)
	})
	if err != nil {
		log.Printf("[store][batch] update failed batch_code=%s err=%v", code, err)
		return entities.Batch{}, err
	}
	return u.GetBatch(code)
}

// DeleteBatch removes the batch and unlinks every order that pointed at it.
func (u *ConsolidationUseCase) DeleteBatch(ctx context.Context, code string) error {
	err := u.mutate(ctx, func(s *entities.Snapshot, _ time.Time) (changeSet, error) {
		var cs changeSet
		i := s.BatchIndex(code)
		if i < 0 {
			return cs, ErrBatchNotFound
		}
		for j := range s.Orders {
			o := &s.Orders[j]
			if o.BatchCode == code {
				o.Unlink()
				cs.touchOrder(o.ID)
			}
		}
		s.Batches = append(s.Batches[:i], s.Batches[i+1:]...)
		cs.deleteBatch(code)
		return cs, nil
	})
	if err != nil {
		log.Printf("[store][batch] delete failed batch_code=%s err=%v", code, err)
		return err
	}
	log.Printf("[store][batch] deleted batch_code=%s", code)
	return nil
}
