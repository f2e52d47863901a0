package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"consolidador/internal/domain/entities"
)

// AddSupplier stores a new supplier under a generated id. Marking it as
// favorite clears the flag on every other supplier.
func (u *ConsolidationUseCase) AddSupplier(ctx context.Context, in entities.Supplier) (entities.Supplier, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return entities.Supplier{}, fmt.Errorf("%w: name is required", ErrInvalidSupplier)
	}

	id := u.newID()
	err := u.mutate(ctx, func(s *entities.Snapshot, now time.Time) (changeSet, error) {
		var cs changeSet
		sup := in
		sup.ID = id
		sup.CreatedAt = now
		sup.UpdatedAt = now
		if sup.IsFavorite {
			cs.merge(clearFavorites(s, id))
		}
		s.Suppliers = append(s.Suppliers, sup)
		cs.touchSupplier(id)
		return cs, nil
	})
	if err != nil {
		return entities.Supplier{}, err
	}
	log.Printf("[store][supplier] added supplier_id=%s favorite=%t", id, in.IsFavorite)
	return u.GetSupplier(id)
}

func (u *ConsolidationUseCase) UpdateSupplier(ctx context.Context, id string, patch entities.SupplierPatch) (entities.Supplier, error) {
	err := u.mutate(ctx, func(s *entities.Snapshot, _ time.Time) (changeSet, error) {
		var cs changeSet
		i := s.SupplierIndex(id)
		if i < 0 {
			return cs, ErrSupplierNotFound
		}
		sup := &s.Suppliers[i]
		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if name == "" {
				return cs, fmt.Errorf("%w: name is required", ErrInvalidSupplier)
			}
			sup.Name = name
		}
		if patch.Contact != nil {
			sup.Contact = *patch.Contact
		}
		if patch.Email != nil {
			sup.Email = *patch.Email
		}
		if patch.Phone != nil {
			sup.Phone = *patch.Phone
		}
		if patch.Address != nil {
			sup.Address = *patch.Address
		}
		if patch.IsFavorite != nil {
			sup.IsFavorite = *patch.IsFavorite
			if sup.IsFavorite {
				cs.merge(clearFavorites(s, id))
			}
		}
		cs.touchSupplier(id)
		return cs, nil
	})
	if err != nil {
		log.Printf("[store][supplier] update failed supplier_id=%s err=%v", id, err)
		return entities.Supplier{}, err
	}
	return u.GetSupplier(id)
}

// DeleteSupplier removes the supplier and clears it from the batches that
// referenced it.
func (u *ConsolidationUseCase) DeleteSupplier(ctx context.Context, id string) error {
	err := u.mutate(ctx, func(s *entities.Snapshot, _ time.Time) (changeSet, error) {
		var cs changeSet
		i := s.SupplierIndex(id)
		if i < 0 {
			return cs, ErrSupplierNotFound
		}
		for j := range s.Batches {
			if s.Batches[j].SupplierID == id {
				s.Batches[j].SupplierID = ""
				cs.touchBatch(s.Batches[j].Code)
			}
		}
		s.Suppliers = append(s.Suppliers[:i], s.Suppliers[i+1:]...)
		cs.deleteSupplier(id)
		return cs, nil
	})
	if err != nil {
		log.Printf("[store][supplier] delete failed supplier_id=%s err=%v", id, err)
		return err
	}
	return nil
}

func (u *ConsolidationUseCase) GetFavoriteSupplier() (entities.Supplier, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	for _, s := range u.state.Suppliers {
		if s.IsFavorite {
			return s, nil
		}
	}
	return entities.Supplier{}, ErrSupplierNotFound
}

func clearFavorites(s *entities.Snapshot, keepID string) changeSet {
	var cs changeSet
	for i := range s.Suppliers {
		sup := &s.Suppliers[i]
		if sup.ID != keepID && sup.IsFavorite {
			sup.IsFavorite = false
			cs.touchSupplier(sup.ID)
		}
	}
	return cs
}
