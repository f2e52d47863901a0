package request

import "consolidador/internal/domain/entities"

type SupplierCreateRequest struct {
	Name       string `json:"name" binding:"required"`
	Contact    string `json:"contact"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	IsFavorite bool   `json:"is_favorite"`
}

func (r SupplierCreateRequest) ToEntity() entities.Supplier {
	return entities.Supplier{
		Name:       r.Name,
		Contact:    r.Contact,
		Email:      r.Email,
		Phone:      r.Phone,
		Address:    r.Address,
		IsFavorite: r.IsFavorite,
	}
}

type SupplierUpdateRequest struct {
	Name       *string `json:"name"`
	Contact    *string `json:"contact"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	IsFavorite *bool   `json:"is_favorite"`
}

func (r SupplierUpdateRequest) ToPatch() entities.SupplierPatch {
	return entities.SupplierPatch{
		Name:       r.Name,
		Contact:    r.Contact,
		Email:      r.Email,
		Phone:      r.Phone,
		Address:    r.Address,
		IsFavorite: r.IsFavorite,
	}
}
