package interfaces

import (
	"context"

	"consolidador/internal/domain/entities"
)

// ILocalCache abstracts the durable key-value cache holding the whole local
// state as one document.

type ILocalCache interface {
	// Load returns found=false when nothing was persisted yet.
	Load(ctx context.Context) (snapshot entities.Snapshot, found bool, err error)
	Save(ctx context.Context, snapshot entities.Snapshot) error
	Close() error
}
