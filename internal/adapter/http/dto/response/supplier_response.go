package response

import (
	"time"

	"consolidador/internal/domain/entities"
)

type SupplierResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Contact    string    `json:"contact"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	IsFavorite bool      `json:"is_favorite"`
	SyncState  string    `json:"sync_state"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromSupplier(s entities.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:         s.ID,
		Name:       s.Name,
		Contact:    s.Contact,
		Email:      s.Email,
		Phone:      s.Phone,
		Address:    s.Address,
		IsFavorite: s.IsFavorite,
		SyncState:  syncState(s.SyncState),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func FromSuppliers(suppliers []entities.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, FromSupplier(s))
	}
	return out
}
