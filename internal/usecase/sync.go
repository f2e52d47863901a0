package usecase

import (
	"context"
	"fmt"
	"log"
	"slices"
	"sort"
	"strconv"
	"sync"
	"time"

	"consolidador/internal/domain/entities"
	"consolidador/internal/usecase/interfaces"
)

// QuotaBreaker is the sticky "remote quota exhausted" flag. Once tripped it
// stays open until a probe succeeds.
type QuotaBreaker struct {
	mu      sync.Mutex
	tripped bool
	since   time.Time
	cause   string
}

func NewQuotaBreaker() *QuotaBreaker {
	return &QuotaBreaker{}
}

func (b *QuotaBreaker) Trip(cause error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.tripped {
		return
	}
	b.tripped = true
	b.since = time.Now()
	if cause != nil {
		b.cause = cause.Error()
	}
}

// Reset closes the breaker and reports whether it was open.
func (b *QuotaBreaker) Reset() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	was := b.tripped
	b.tripped = false
	b.since = time.Time{}
	b.cause = ""
	return was
}

func (b *QuotaBreaker) Tripped() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tripped
}

// State returns when and why the breaker opened; zero values when closed.
func (b *QuotaBreaker) State() (tripped bool, since time.Time, cause string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tripped, b.since, b.cause
}

type SyncStatus struct {
	Loaded           bool      `json:"loaded"`
	RemoteEnabled    bool      `json:"remoteEnabled"`
	QuotaExceeded    bool      `json:"quotaExceeded"`
	QuotaSince       time.Time `json:"quotaSince,omitempty"`
	QuotaCause       string    `json:"quotaCause,omitempty"`
	LiveUpdates      bool      `json:"liveUpdates"`
	PendingOrders    int       `json:"pendingOrders"`
	PendingBatches   int       `json:"pendingBatches"`
	PendingSuppliers int       `json:"pendingSuppliers"`
	Conflicts        int       `json:"conflicts"`
	NextBatchNumber  int       `json:"nextBatchNumber"`
}

// Load brings the engine up: local cache first, then a per-collection merge
// with whatever the remote store returns. Remote failures never fail Load.
//
// The cache read and the swap into memory happen under the engine lock, so a
// write can never persist a snapshot that misses what the cache held.
func (u *ConsolidationUseCase) Load(ctx context.Context) error {
	u.mu.Lock()
	snap, found, err := u.cache.Load(ctx)
	if err != nil {
		u.mu.Unlock()
		log.Printf("[store][load] local cache read failed err=%v", err)
		return fmt.Errorf("%w: %v", ErrLocalPersistence, err)
	}
	if !found {
		log.Printf("[store][load] local cache empty; starting fresh")
	}

	u.state = snap
	migrated := 0
	for i := range u.state.Batches {
		b := &u.state.Batches[i]
		if b.Name == "" {
			b.Name = b.Code
			migrated++
		}
	}
	u.numbering.RecomputeNext(u.batchCodesLocked())
	backfilled := u.backfillShippedLocked()
	log.Printf("[store][load] local orders=%d batches=%d suppliers=%d migrated_names=%d backfilled_shipped=%d",
		len(u.state.Orders), len(u.state.Batches), len(u.state.Suppliers), migrated, backfilled)
	u.mu.Unlock()

	if u.remote != nil && u.breaker.Tripped() {
		if err := u.ProbeRemote(ctx); err != nil {
			log.Printf("[store][load] recovery probe failed err=%v", err)
		}
	}

	var (
		remoteOrders    []entities.Order
		remoteBatches   []entities.Batch
		remoteSuppliers []entities.Supplier
		gotOrders       bool
		gotBatches      bool
		gotSuppliers    bool
	)
	if u.remote != nil && !u.breaker.Tripped() {
		if remoteOrders, err = u.remote.ListOrders(ctx); err != nil {
			u.remoteFailed("list", "order", "*", err)
		} else {
			gotOrders = true
		}
		if remoteBatches, err = u.remote.ListBatches(ctx); err != nil {
			u.remoteFailed("list", "batch", "*", err)
		} else {
			gotBatches = true
		}
		if remoteSuppliers, err = u.remote.ListSuppliers(ctx); err != nil {
			u.remoteFailed("list", "supplier", "*", err)
		} else {
			gotSuppliers = true
		}
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	conflicts := 0
	if gotOrders {
		var n int
		u.state.Orders, n = mergeByKey(u.state.Orders, remoteOrders, orderMergePolicy(true))
		conflicts += n
	}
	if gotBatches {
		var n int
		u.state.Batches, n = mergeByKey(u.state.Batches, remoteBatches, batchMergePolicy(true))
		conflicts += n
		u.backfillShippedLocked()
	}
	if gotSuppliers {
		var n int
		u.state.Suppliers, n = mergeByKey(u.state.Suppliers, remoteSuppliers, supplierMergePolicy(true))
		conflicts += n
	}
	sortOrdersByID(u.state.Orders)
	u.numbering.RecomputeNext(u.batchCodesLocked())
	if conflicts > 0 {
		log.Printf("[sync][merge] load merge replaced unsynced local edits conflicts=%d", conflicts)
	}

	if err := u.persistLocked(ctx); err != nil {
		return err
	}
	u.loaded = true
	log.Printf("[store][load] complete orders=%d batches=%d suppliers=%d remote_orders=%t remote_batches=%t remote_suppliers=%t",
		len(u.state.Orders), len(u.state.Batches), len(u.state.Suppliers), gotOrders, gotBatches, gotSuppliers)
	return nil
}

func (u *ConsolidationUseCase) batchCodesLocked() []string {
	codes := make([]string, 0, len(u.state.Batches))
	for _, b := range u.state.Batches {
		codes = append(codes, b.Code)
	}
	return codes
}

// backfillShippedLocked marks batches with tracking or notes as shipped. The
// corrected batches are left pending so the next drain writes them back.
func (u *ConsolidationUseCase) backfillShippedLocked() int {
	n := 0
	for i := range u.state.Batches {
		b := &u.state.Batches[i]
		if b.BackfillShipped() {
			b.SyncState = entities.SyncStatePendingRemote
			n++
		}
	}
	return n
}

// ProbeRemote issues a cheap remote read. On success the breaker is closed
// and every pending record is written again.
func (u *ConsolidationUseCase) ProbeRemote(ctx context.Context) error {
	if u.remote == nil {
		return interfaces.ErrRemoteUnavailable
	}
	if _, err := u.remote.ListSuppliers(ctx); err != nil {
		u.remoteFailed("probe", "supplier", "*", err)
		return err
	}
	if u.breaker.Reset() {
		log.Printf("[sync][probe] remote reachable again; breaker closed")
	}
	u.drainPending(ctx)
	return nil
}

// drainPending retries the remote write of every pending record. Puts are
// upserts, so a record whose earlier write did land is not duplicated.
func (u *ConsolidationUseCase) drainPending(ctx context.Context) {
	var cs changeSet
	u.mu.Lock()
	for _, o := range u.state.Orders {
		if o.SyncState.Pending() {
			cs.touchOrder(o.ID)
		}
	}
	for _, b := range u.state.Batches {
		if b.SyncState.Pending() {
			cs.touchBatch(b.Code)
		}
	}
	for _, s := range u.state.Suppliers {
		if s.SyncState.Pending() {
			cs.touchSupplier(s.ID)
		}
	}
	u.mu.Unlock()

	if cs.empty() {
		return
	}
	log.Printf("[sync][drain] start orders=%d batches=%d suppliers=%d", len(cs.orders), len(cs.batches), len(cs.suppliers))
	u.push(ctx, cs)

	status := u.SyncStatus()
	log.Printf("[sync][drain] done pending_orders=%d pending_batches=%d pending_suppliers=%d",
		status.PendingOrders, status.PendingBatches, status.PendingSuppliers)
}

// StartOrdersRealtime subscribes to remote order snapshots, replacing any
// earlier subscription so merges never run twice per snapshot.
func (u *ConsolidationUseCase) StartOrdersRealtime(ctx context.Context) {
	if u.remote == nil {
		return
	}
	u.liveMu.Lock()
	defer u.liveMu.Unlock()
	if u.unsubscribe != nil {
		u.unsubscribe()
		u.unsubscribe = nil
	}
	u.unsubscribe = u.remote.SubscribeOrders(ctx, u.liveInterval, u.applyRemoteOrders, func(err error) {
		u.remoteFailed("subscribe", "order", "*", err)
	})
	log.Printf("[sync][live] orders subscription started interval=%s", u.liveInterval)
}

// StopOrdersRealtime tears the subscription down and waits for it to exit.
func (u *ConsolidationUseCase) StopOrdersRealtime() {
	u.liveMu.Lock()
	defer u.liveMu.Unlock()
	if u.unsubscribe == nil {
		return
	}
	u.unsubscribe()
	u.unsubscribe = nil
	log.Printf("[sync][live] orders subscription stopped")
}

// applyRemoteOrders merges one remote order snapshot. Ties go to the remote
// copy unless the local one is still unsynced; local-only orders are kept.
func (u *ConsolidationUseCase) applyRemoteOrders(remote []entities.Order) {
	u.mu.Lock()
	defer u.mu.Unlock()

	merged, conflicts := mergeByKey(u.state.Orders, remote, orderMergePolicy(false))
	sortOrdersByID(merged)
	if slices.Equal(merged, u.state.Orders) {
		return
	}
	u.state.Orders = merged
	u.numbering.RecomputeNext(u.batchCodesLocked())
	if conflicts > 0 {
		log.Printf("[sync][live] remote replaced unsynced local edits conflicts=%d", conflicts)
	}
	if err := u.persistLocked(context.Background()); err != nil {
		log.Printf("[sync][live] persist failed err=%v", err)
	}
}

// RunRecoveryLoop probes the remote store every interval while the breaker is
// open. It returns when ctx is done.
func (u *ConsolidationUseCase) RunRecoveryLoop(ctx context.Context, interval time.Duration) {
	if u.remote == nil || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !u.breaker.Tripped() {
				continue
			}
			if err := u.ProbeRemote(ctx); err != nil {
				log.Printf("[sync][probe] still failing err=%v", err)
			}
		}
	}
}

func (u *ConsolidationUseCase) SyncStatus() SyncStatus {
	tripped, since, cause := u.breaker.State()
	status := SyncStatus{
		RemoteEnabled: u.remote != nil,
		QuotaExceeded: tripped,
		QuotaSince:    since,
		QuotaCause:    cause,
	}

	u.liveMu.Lock()
	status.LiveUpdates = u.unsubscribe != nil
	u.liveMu.Unlock()

	u.mu.Lock()
	defer u.mu.Unlock()
	status.Loaded = u.loaded
	status.NextBatchNumber = u.numbering.Next()
	for _, o := range u.state.Orders {
		status.PendingOrders += countState(o.SyncState, &status.Conflicts)
	}
	for _, b := range u.state.Batches {
		status.PendingBatches += countState(b.SyncState, &status.Conflicts)
	}
	for _, s := range u.state.Suppliers {
		status.PendingSuppliers += countState(s.SyncState, &status.Conflicts)
	}
	return status
}

func countState(s entities.SyncState, conflicts *int) int {
	if s == entities.SyncStateConflictNeedsReview {
		*conflicts++
	}
	if s.Pending() {
		return 1
	}
	return 0
}

// ForceSyncAndReload drains what it can, then runs Load again, which replaces
// the in-memory state with the cached snapshot and re-merges the remote one.
func (u *ConsolidationUseCase) ForceSyncAndReload(ctx context.Context) error {
	if u.remoteWritable() {
		u.drainPending(ctx)
	}
	return u.Load(ctx)
}

// sortOrdersByID orders by descending numeric id; non-numeric ids go last in
// descending lexical order.
func sortOrdersByID(orders []entities.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		a, aErr := strconv.ParseInt(orders[i].ID, 10, 64)
		b, bErr := strconv.ParseInt(orders[j].ID, 10, 64)
		switch {
		case aErr == nil && bErr == nil:
			return a > b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		default:
			return orders[i].ID > orders[j].ID
		}
	})
}
