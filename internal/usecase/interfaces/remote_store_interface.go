package interfaces

import (
	"context"
	"errors"
	"time"

	"consolidador/internal/domain/entities"
)

var (
	// ErrQuotaExhausted is returned (wrapped) when the remote store refuses work
	// because a throughput or request quota is exhausted.
	ErrQuotaExhausted = errors.New("remote quota exhausted")
	// ErrRemoteUnavailable is returned when no remote store is configured.
	ErrRemoteUnavailable = errors.New("remote store unavailable")
)

// IRemoteStore abstracts the authoritative-but-unreliable document store.
//
// Put* operations are upserts keyed by the entity id (code for batches), so
// retrying a pending write never duplicates a document.

type IRemoteStore interface {
	ListOrders(ctx context.Context) ([]entities.Order, error)
	PutOrder(ctx context.Context, o entities.Order) error
	DeleteOrder(ctx context.Context, id string) error

	ListBatches(ctx context.Context) ([]entities.Batch, error)
	PutBatch(ctx context.Context, b entities.Batch) error
	DeleteBatch(ctx context.Context, code string) error

	ListSuppliers(ctx context.Context) ([]entities.Supplier, error)
	PutSupplier(ctx context.Context, s entities.Supplier) error
	DeleteSupplier(ctx context.Context, id string) error

	// SubscribeOrders delivers full order snapshots every interval until the
	// returned function is called or ctx is done.
	SubscribeOrders(ctx context.Context, interval time.Duration, onSnapshot func([]entities.Order), onError func(error)) (unsubscribe func())
}

// IsQuotaExhausted reports whether err carries the quota signal.
func IsQuotaExhausted(err error) bool {
	return errors.Is(err, ErrQuotaExhausted)
}
