package entities

import (
	"encoding/json"
	"time"
)

// Supplier is a vendor batches can be ordered from. At most one supplier is
// marked as favorite at any time.
type Supplier struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Contact    string    `json:"contact"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	IsFavorite bool      `json:"isFavorite"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	SyncState  SyncState `json:"syncState,omitempty"`
}

type SupplierPatch struct {
	Name       *string
	Contact    *string
	Email      *string
	Phone      *string
	Address    *string
	IsFavorite *bool
}

func (s Supplier) LastModified() time.Time {
	return latest(s.UpdatedAt, s.CreatedAt)
}

func (s *Supplier) UnmarshalJSON(b []byte) error {
	type alias Supplier
	aux := struct {
		*alias
		PendingSync *bool `json:"pendingSync,omitempty"`
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	s.SyncState = s.SyncState.withLegacyFlag(aux.PendingSync)
	return nil
}
