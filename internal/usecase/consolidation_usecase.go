package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"consolidador/internal/domain/entities"
	"consolidador/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderAlreadyExists    = errors.New("order already exists")
	ErrInvalidOrder          = errors.New("invalid order")
	ErrBatchNotFound         = errors.New("batch not found")
	ErrInvalidBatch          = errors.New("invalid batch")
	ErrBatchNotShipped       = errors.New("batch not shipped")
	ErrSupplierNotFound      = errors.New("supplier not found")
	ErrInvalidSupplier       = errors.New("invalid supplier")
	ErrIntegrityCheckRunning = errors.New("integrity check already running")
	ErrLocalPersistence      = errors.New("local persistence failed")
)

// IConsolidationUseCase is the operation contract offered to collaborators
// (HTTP handlers, importers). All mutation of orders, batches and suppliers
// goes through it.
type IConsolidationUseCase interface {
	Load(ctx context.Context) error

	AddOrder(ctx context.Context, o entities.Order) (entities.Order, error)
	UpdateOrder(ctx context.Context, id string, patch entities.OrderPatch) (entities.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	GetOrders() []entities.Order
	GetOrder(id string) (entities.Order, error)
	GetAvailableOrders() []entities.Order
	SearchOrders(query string, filters entities.OrderFilters) []entities.Order

	AddBatch(ctx context.Context, b entities.Batch) (entities.Batch, error)
	UpdateBatch(ctx context.Context, code string, patch entities.BatchPatch) (entities.Batch, error)
	DeleteBatch(ctx context.Context, code string) error
	UpdateBatchStatus(ctx context.Context, code string, status entities.BatchStatus) (entities.Batch, error)
	UpdateBatchTracking(ctx context.Context, code, tracking string) (entities.Batch, error)
	UpdateBatchNotes(ctx context.Context, code, notes string) (entities.Batch, error)
	UpdateBatchShippingStatus(ctx context.Context, code string, shipped bool) (entities.Batch, error)
	ToggleBatchReceived(ctx context.Context, code string) (entities.Batch, error)
	GetBatches() []entities.Batch
	GetBatch(code string) (entities.Batch, error)
	GetOrdersInBatch(code string) ([]entities.Order, error)
	SearchOrdersInBatch(code, query string) ([]entities.Order, error)

	AddSupplier(ctx context.Context, s entities.Supplier) (entities.Supplier, error)
	UpdateSupplier(ctx context.Context, id string, patch entities.SupplierPatch) (entities.Supplier, error)
	DeleteSupplier(ctx context.Context, id string) error
	GetSuppliers() []entities.Supplier
	GetSupplier(id string) (entities.Supplier, error)
	GetFavoriteSupplier() (entities.Supplier, error)

	CheckDataIntegrity(ctx context.Context) (IntegrityReport, error)
	RepairDataIntegrity(ctx context.Context) (RepairReport, error)

	SyncStatus() SyncStatus
	ProbeRemote(ctx context.Context) error
	ForceSyncAndReload(ctx context.Context) error
}

// ConsolidationUseCase owns the in-memory orders, batches and suppliers and
// keeps them in step with the local cache and the remote store.
//
// Write path:
//   - mutate memory and mark the touched records pending_remote
//   - persist the full snapshot locally (the only failure reported to callers)
//   - unless the quota breaker is open, write each touched record remotely;
//     success marks it synced, a quota error opens the breaker
//
// The lock is never held across a remote call. Records are looked up again by
// key once the call returns, since a live merge or another write may have
// replaced them in the meantime. Remote writes of one record are serialized,
// and each reads the record only once it holds the record's key, so the last
// write to land is always the latest local version.
type ConsolidationUseCase struct {
	mu     sync.Mutex
	state  entities.Snapshot
	loaded bool

	remote    interfaces.IRemoteStore
	cache     interfaces.ILocalCache
	breaker   *QuotaBreaker
	numbering *BatchNumbering
	assoc     *AssociationManager
	pushLocks keyLocks

	now   func() time.Time
	newID func() string

	liveMu       sync.Mutex
	liveInterval time.Duration
	unsubscribe  func()
}

var _ IConsolidationUseCase = (*ConsolidationUseCase)(nil)

type Option func(*ConsolidationUseCase)

// WithClock replaces time.Now for timestamps and batch codes.
func WithClock(now func() time.Time) Option {
	return func(u *ConsolidationUseCase) { u.now = now }
}

// WithIDGenerator replaces uuid.NewString for supplier ids.
func WithIDGenerator(newID func() string) Option {
	return func(u *ConsolidationUseCase) { u.newID = newID }
}

// WithLiveInterval sets the period of the remote order subscription.
func WithLiveInterval(d time.Duration) Option {
	return func(u *ConsolidationUseCase) { u.liveInterval = d }
}

// NewConsolidationUseCase builds the engine. remote may be nil, in which case
// every remote step is skipped.
func NewConsolidationUseCase(remote interfaces.IRemoteStore, cache interfaces.ILocalCache, opts ...Option) *ConsolidationUseCase {
	u := &ConsolidationUseCase{
		remote:  remote,
		cache:   cache,
		breaker: NewQuotaBreaker(),
		assoc:   NewAssociationManager(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.numbering = NewBatchNumbering(u.now)
	return u
}

// changeSet lists the keys a mutation touched. Deleted keys are removed
// remotely, the others are written.
type changeSet struct {
	orders           []string
	batches          []string
	suppliers        []string
	deletedOrders    []string
	deletedBatches   []string
	deletedSuppliers []string
}

func appendUnique(list []string, key string) []string {
	for _, k := range list {
		if k == key {
			return list
		}
	}
	return append(list, key)
}

func (c *changeSet) touchOrder(id string) { c.orders = appendUnique(c.orders, id) }
func (c *changeSet) touchBatch(code string) { c.batches = appendUnique(c.batches, code) }
func (c *changeSet) touchSupplier(id string) { c.suppliers = appendUnique(c.suppliers, id) }
func (c *changeSet) deleteOrder(id string) { c.deletedOrders = appendUnique(c.deletedOrders, id) }
func (c *changeSet) deleteBatch(code string) { c.deletedBatches = appendUnique(c.deletedBatches, code) }
func (c *changeSet) deleteSupplier(id string) { c.deletedSuppliers = appendUnique(c.deletedSuppliers, id) }

func (c *changeSet) merge(other changeSet) {
	for _, k := range other.orders {
		c.touchOrder(k)
	}
	for _, k := range other.batches {
		c.touchBatch(k)
	}
	for _, k := range other.suppliers {
		c.touchSupplier(k)
	}
	for _, k := range other.deletedOrders {
		c.deleteOrder(k)
	}
	for _, k := range other.deletedBatches {
		c.deleteBatch(k)
	}
	for _, k := range other.deletedSuppliers {
		c.deleteSupplier(k)
	}
}

func (c changeSet) empty() bool {
	return len(c.orders)+len(c.batches)+len(c.suppliers)+
		len(c.deletedOrders)+len(c.deletedBatches)+len(c.deletedSuppliers) == 0
}

// stamp marks every touched record as modified now and pending remotely.
func (c changeSet) stamp(s *entities.Snapshot, now time.Time) {
	for _, id := range c.orders {
		if o := s.Order(id); o != nil {
			o.UpdatedAt = now
			o.SyncState = entities.SyncStatePendingRemote
		}
	}
	for _, code := range c.batches {
		if b := s.Batch(code); b != nil {
			b.UpdatedAt = now
			b.SyncState = entities.SyncStatePendingRemote
		}
	}
	for _, id := range c.suppliers {
		if i := s.SupplierIndex(id); i >= 0 {
			s.Suppliers[i].UpdatedAt = now
			s.Suppliers[i].SyncState = entities.SyncStatePendingRemote
		}
	}
}

// mutate runs fn under the lock, stamps and persists what it touched, then
// pushes the touched records to the remote store. If fn or the local save
// fails the in-memory state and the batch sequence are rolled back.
func (u *ConsolidationUseCase) mutate(ctx context.Context, fn func(s *entities.Snapshot, now time.Time) (changeSet, error)) error {
	u.mu.Lock()
	now := u.now()
	before := u.state.Clone()
	restoreNumbering := u.numbering.checkpoint()
	cs, err := fn(&u.state, now)
	if err != nil {
		u.state = before
		restoreNumbering()
		u.mu.Unlock()
		return err
	}
	if cs.empty() {
		u.mu.Unlock()
		return nil
	}
	cs.stamp(&u.state, now)
	if err := u.persistLocked(ctx); err != nil {
		u.state = before
		restoreNumbering()
		u.mu.Unlock()
		return err
	}
	u.mu.Unlock()

	u.push(ctx, cs)
	return nil
}

func (u *ConsolidationUseCase) persistLocked(ctx context.Context) error {
	if err := u.cache.Save(ctx, u.state.Clone()); err != nil {
		log.Printf("[store][cache] persist failed err=%v", err)
		return fmt.Errorf("%w: %v", ErrLocalPersistence, err)
	}
	return nil
}

func (u *ConsolidationUseCase) remoteWritable() bool {
	return u.remote != nil && !u.breaker.Tripped()
}

// push writes the records of cs to the remote store one by one. Once the
// breaker opens the remaining records are left pending.
func (u *ConsolidationUseCase) push(ctx context.Context, cs changeSet) {
	if u.remote == nil {
		return
	}
	for _, id := range cs.deletedOrders {
		u.remoteDelete(ctx, "order", id, u.remote.DeleteOrder)
	}
	for _, code := range cs.deletedBatches {
		u.remoteDelete(ctx, "batch", code, u.remote.DeleteBatch)
	}
	for _, id := range cs.deletedSuppliers {
		u.remoteDelete(ctx, "supplier", id, u.remote.DeleteSupplier)
	}
	for _, id := range cs.orders {
		u.pushOrder(ctx, id)
	}
	for _, code := range cs.batches {
		u.pushBatch(ctx, code)
	}
	for _, id := range cs.suppliers {
		u.pushSupplier(ctx, id)
	}
}

// remoteDelete has no pending state to fall back on: a failed remote delete
// is logged and the record may come back with the next remote read.
func (u *ConsolidationUseCase) remoteDelete(ctx context.Context, kind, key string, del func(context.Context, string) error) {
	defer u.pushLocks.lock(kind + ":" + key)()
	if !u.remoteWritable() {
		log.Printf("[sync] remote delete skipped kind=%s key=%s breaker_open=%t", kind, key, u.breaker.Tripped())
		return
	}
	if err := del(ctx, key); err != nil {
		u.remoteFailed("delete", kind, key, err)
	}
}

func (u *ConsolidationUseCase) pushOrder(ctx context.Context, id string) {
	defer u.pushLocks.lock("order:" + id)()
	if !u.remoteWritable() {
		return
	}

	u.mu.Lock()
	o := u.state.Order(id)
	if o == nil {
		u.mu.Unlock()
		return
	}
	sent := *o
	u.mu.Unlock()

	if err := u.remote.PutOrder(ctx, sent); err != nil {
		u.remoteFailed("put", "order", id, err)
		return
	}
	u.markSynced(ctx, func(s *entities.Snapshot) bool {
		o := s.Order(id)
		if o == nil || !o.UpdatedAt.Equal(sent.UpdatedAt) || !o.SyncState.Pending() {
			return false
		}
		o.SyncState = entities.SyncStateSynced
		return true
	})
}

func (u *ConsolidationUseCase) pushBatch(ctx context.Context, code string) {
	defer u.pushLocks.lock("batch:" + code)()
	if !u.remoteWritable() {
		return
	}

	u.mu.Lock()
	b := u.state.Batch(code)
	if b == nil {
		u.mu.Unlock()
		return
	}
	sent := b.Clone()
	u.mu.Unlock()

	if err := u.remote.PutBatch(ctx, sent); err != nil {
		u.remoteFailed("put", "batch", code, err)
		return
	}
	u.markSynced(ctx, func(s *entities.Snapshot) bool {
		b := s.Batch(code)
		if b == nil || !b.UpdatedAt.Equal(sent.UpdatedAt) || !b.SyncState.Pending() {
			return false
		}
		b.SyncState = entities.SyncStateSynced
		return true
	})
}

func (u *ConsolidationUseCase) pushSupplier(ctx context.Context, id string) {
	defer u.pushLocks.lock("supplier:" + id)()
	if !u.remoteWritable() {
		return
	}

	u.mu.Lock()
	i := u.state.SupplierIndex(id)
	if i < 0 {
		u.mu.Unlock()
		return
	}
	sent := u.state.Suppliers[i]
	u.mu.Unlock()

	if err := u.remote.PutSupplier(ctx, sent); err != nil {
		u.remoteFailed("put", "supplier", id, err)
		return
	}
	u.markSynced(ctx, func(s *entities.Snapshot) bool {
		i := s.SupplierIndex(id)
		if i < 0 || !s.Suppliers[i].UpdatedAt.Equal(sent.UpdatedAt) || !s.Suppliers[i].SyncState.Pending() {
			return false
		}
		s.Suppliers[i].SyncState = entities.SyncStateSynced
		return true
	})
}

// markSynced applies fn to the current state and persists when it changed
// something. A record modified while its write was in flight stays pending.
func (u *ConsolidationUseCase) markSynced(ctx context.Context, fn func(s *entities.Snapshot) bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !fn(&u.state) {
		return
	}
	if err := u.persistLocked(ctx); err != nil {
		log.Printf("[sync] persist after remote write failed err=%v", err)
	}
}

func (u *ConsolidationUseCase) remoteFailed(op, kind, key string, err error) {
	if interfaces.IsQuotaExhausted(err) {
		u.breaker.Trip(err)
		log.Printf("[sync][remote] quota exhausted op=%s kind=%s key=%s; remote writes suspended", op, kind, key)
		return
	}
	log.Printf("[sync][remote] %s failed kind=%s key=%s err=%v", op, kind, key, err)
}

func (u *ConsolidationUseCase) GetOrder(id string) (entities.Order, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	o := u.state.Order(id)
	if o == nil {
		return entities.Order{}, ErrOrderNotFound
	}
	return *o, nil
}

func (u *ConsolidationUseCase) GetOrders() []entities.Order {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]entities.Order{}, u.state.Orders...)
}

func (u *ConsolidationUseCase) GetBatch(code string) (entities.Batch, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	b := u.state.Batch(code)
	if b == nil {
		return entities.Batch{}, ErrBatchNotFound
	}
	return b.Clone(), nil
}

func (u *ConsolidationUseCase) GetBatches() []entities.Batch {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make([]entities.Batch, 0, len(u.state.Batches))
	for _, b := range u.state.Batches {
		out = append(out, b.Clone())
	}
	return out
}

func (u *ConsolidationUseCase) GetSupplier(id string) (entities.Supplier, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	i := u.state.SupplierIndex(id)
	if i < 0 {
		return entities.Supplier{}, ErrSupplierNotFound
	}
	return u.state.Suppliers[i], nil
}

func (u *ConsolidationUseCase) GetSuppliers() []entities.Supplier {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]entities.Supplier{}, u.state.Suppliers...)
}
