package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"consolidador/internal/adapter/persistence/repository"
	"consolidador/internal/domain/entities"
	"consolidador/internal/usecase/interfaces"
	mock_interfaces "consolidador/internal/usecase/interfaces/mocks"

	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func at(minutes int) time.Time {
	return day0.Add(time.Duration(minutes) * time.Minute)
}

func stored(id string, minutes int, state entities.SyncState) entities.Order {
	o := paidOrder(id, "Produto "+id)
	o.CreatedAt = at(0)
	o.UpdatedAt = at(minutes)
	o.SyncState = state
	return o
}

func TestQuotaBreaker(t *testing.T) {
	b := NewQuotaBreaker()
	if b.Tripped() {
		t.Fatalf("new breaker must be closed")
	}

	b.Trip(errors.New("first"))
	b.Trip(errors.New("second"))
	tripped, since, cause := b.State()
	if !tripped || since.IsZero() || cause != "first" {
		t.Fatalf("unexpected state tripped=%t since=%v cause=%q", tripped, since, cause)
	}

	if !b.Reset() {
		t.Fatalf("reset should report the breaker was open")
	}
	if b.Reset() {
		t.Fatalf("second reset should report a closed breaker")
	}
}

func TestLoad_MergesLocalAndRemote(t *testing.T) {
	ctx := context.Background()
	local := &memCache{found: true, snap: entities.Snapshot{
		Orders: []entities.Order{
			stored("1", 5, entities.SyncStateSynced),
			stored("2", 1, entities.SyncStatePendingRemote),
			stored("3", 1, entities.SyncStatePendingRemote),
		},
		Batches: []entities.Batch{{
			Code:            "LOTE-20260301-2",
			InboundTracking: "BR9",
			Status:          entities.BatchStatusACaminho,
			OrderIDs:        []string{},
			CreatedAt:       at(0),
			UpdatedAt:       at(0),
			SyncState:       entities.SyncStateSynced,
		}},
	}}

	remote := repository.NewMemoryRemoteStore()
	for _, o := range []entities.Order{stored("1", 4, ""), stored("2", 9, ""), stored("10", 2, "")} {
		if o.ID == "2" {
			o.CustomerName = "Remoto"
		}
		_ = remote.PutOrder(ctx, o)
	}

	u, _ := newTestEngine(t, remote, local)
	orders := u.GetOrders()

	var ids []string
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	if fmt.Sprint(ids) != "[10 3 2 1]" {
		t.Fatalf("expected orders sorted by descending id, got %v", ids)
	}

	o1, _ := u.GetOrder("1")
	if !o1.UpdatedAt.Equal(at(5)) {
		t.Fatalf("newer local order should win: %+v", o1)
	}
	o2, _ := u.GetOrder("2")
	if o2.CustomerName != "Remoto" || o2.SyncState != entities.SyncStateConflictNeedsReview {
		t.Fatalf("newer remote over an unsynced edit should be flagged: %+v", o2)
	}
	o3, _ := u.GetOrder("3")
	if o3.SyncState != entities.SyncStatePendingRemote {
		t.Fatalf("local-only order must be kept pending: %+v", o3)
	}

	b, err := u.GetBatch("LOTE-20260301-2")
	if err != nil {
		t.Fatalf("local batch lost: %v", err)
	}
	if b.Name != b.Code || !b.IsShipped || b.SyncState != entities.SyncStatePendingRemote {
		t.Fatalf("batch should be migrated and backfilled: %+v", b)
	}

	status := u.SyncStatus()
	if status.Conflicts != 1 || status.PendingOrders != 1 || status.PendingBatches != 1 {
		t.Fatalf("unexpected status %+v", status)
	}
	if saved := local.Saved(); len(saved.Orders) != 4 {
		t.Fatalf("merged state not persisted: %d orders", len(saved.Orders))
	}
}

func TestLoad_QuotaErrorOnOneCollection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	remote := mock_interfaces.NewMockIRemoteStore(ctrl)
	remote.EXPECT().ListOrders(gomock.Any()).Return(nil, fmt.Errorf("scan orders: %w", interfaces.ErrQuotaExhausted))
	remote.EXPECT().ListBatches(gomock.Any()).Return([]entities.Batch{{
		Code: "LOTE-20260310-3", Name: "remoto", Status: entities.BatchStatusCriado, OrderIDs: []string{}, CreatedAt: at(0), UpdatedAt: at(0),
	}}, nil)
	remote.EXPECT().ListSuppliers(gomock.Any()).Return([]entities.Supplier{{ID: "s1", Name: "Malharia"}}, nil)

	local := &memCache{found: true, snap: entities.Snapshot{Orders: []entities.Order{stored("1", 0, entities.SyncStateSynced)}}}
	u, _ := newTestEngine(t, remote, local)

	if len(u.GetOrders()) != 1 || len(u.GetBatches()) != 1 || len(u.GetSuppliers()) != 1 {
		t.Fatalf("other collections should still be merged: orders=%d batches=%d suppliers=%d",
			len(u.GetOrders()), len(u.GetBatches()), len(u.GetSuppliers()))
	}
	status := u.SyncStatus()
	if !status.QuotaExceeded || !status.Loaded {
		t.Fatalf("unexpected status %+v", status)
	}
	if status.NextBatchNumber != 4 {
		t.Fatalf("numbering should follow remote codes, got %d", status.NextBatchNumber)
	}
}

func TestLoad_LocalCacheFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	local := mock_interfaces.NewMockILocalCache(ctrl)
	local.EXPECT().Load(gomock.Any()).Return(entities.Snapshot{}, false, errors.New("corrupt value log"))

	u := NewConsolidationUseCase(nil, local)
	if err := u.Load(context.Background()); !errors.Is(err, ErrLocalPersistence) {
		t.Fatalf("expected ErrLocalPersistence, got %v", err)
	}
	if u.SyncStatus().Loaded {
		t.Fatalf("failed load must not mark the engine loaded")
	}
}

func TestApplyRemoteOrders(t *testing.T) {
	local := &memCache{}
	u, _ := newTestEngine(t, nil, local)
	mine := mustAddOrder(t, u, paidOrder("1", "Camisa"))

	t.Run("idempotent", func(t *testing.T) {
		snapshot := []entities.Order{stored("7", 0, entities.SyncStateSynced), stored("8", 0, entities.SyncStateSynced)}
		u.applyRemoteOrders(snapshot)
		saves := local.Saves()
		u.applyRemoteOrders(snapshot)
		if local.Saves() != saves {
			t.Fatalf("identical snapshot should not persist again")
		}

		var ids []string
		for _, o := range u.GetOrders() {
			ids = append(ids, o.ID)
		}
		if fmt.Sprint(ids) != "[8 7 1]" {
			t.Fatalf("unexpected order list %v", ids)
		}
	})

	t.Run("tie keeps unsynced local edit", func(t *testing.T) {
		theirs := mine
		theirs.CustomerName = "Remoto"
		theirs.SyncState = entities.SyncStateSynced
		u.applyRemoteOrders([]entities.Order{theirs})

		got, _ := u.GetOrder("1")
		if got.CustomerName != mine.CustomerName || got.SyncState != entities.SyncStatePendingRemote {
			t.Fatalf("local edit should survive a tie: %+v", got)
		}
	})

	t.Run("newer remote flags conflict", func(t *testing.T) {
		theirs := mine
		theirs.CustomerName = "Remoto"
		theirs.UpdatedAt = mine.UpdatedAt.Add(time.Minute)
		theirs.SyncState = entities.SyncStateSynced
		u.applyRemoteOrders([]entities.Order{theirs})

		got, _ := u.GetOrder("1")
		if got.CustomerName != "Remoto" || got.SyncState != entities.SyncStateConflictNeedsReview {
			t.Fatalf("unexpected order %+v", got)
		}
		if u.SyncStatus().Conflicts != 1 {
			t.Fatalf("conflict not counted")
		}
	})
}

func TestOrdersRealtime(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx := context.Background()
	remote := repository.NewMemoryRemoteStore()
	u, _ := newTestEngine(t, remote, &memCache{})

	u.StartOrdersRealtime(ctx)
	u.StartOrdersRealtime(ctx)
	if !u.SyncStatus().LiveUpdates {
		t.Fatalf("subscription should be active")
	}

	_ = remote.PutOrder(ctx, stored("900", 60, entities.SyncStateSynced))
	waitFor(t, "remote order to arrive", func() bool {
		_, err := u.GetOrder("900")
		return err == nil
	})

	u.StopOrdersRealtime()
	u.StopOrdersRealtime()
	if u.SyncStatus().LiveUpdates {
		t.Fatalf("subscription should be stopped")
	}
}

func TestRunRecoveryLoop(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	remote := repository.NewMemoryRemoteStore()
	u, _ := newTestEngine(t, remote, &memCache{})

	remote.FailWithQuota(true)
	mustAddOrder(t, u, paidOrder("1", "Camisa"))
	if !u.SyncStatus().QuotaExceeded {
		t.Fatalf("breaker should be open")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		u.RunRecoveryLoop(ctx, 5*time.Millisecond)
	}()

	time.Sleep(20 * time.Millisecond)
	if !u.SyncStatus().QuotaExceeded {
		t.Fatalf("breaker must stay open while the quota is exhausted")
	}

	remote.FailWithQuota(false)
	waitFor(t, "probe to drain pending orders", func() bool {
		s := u.SyncStatus()
		return !s.QuotaExceeded && s.PendingOrders == 0
	})

	cancel()
	<-done
}

func TestForceSyncAndReload(t *testing.T) {
	ctx := context.Background()
	remote := repository.NewMemoryRemoteStore()
	u, _ := newTestEngine(t, remote, &memCache{})

	remote.FailWithQuota(true)
	mustAddOrder(t, u, paidOrder("1", "Camisa"))
	remote.FailWithQuota(false)
	_ = remote.PutOrder(ctx, stored("2", 0, entities.SyncStateSynced))

	if err := u.ForceSyncAndReload(ctx); err != nil {
		t.Fatalf("reload: %v", err)
	}

	if len(u.GetOrders()) != 2 {
		t.Fatalf("expected local and remote orders, got %+v", u.GetOrders())
	}
	o, _ := u.GetOrder("1")
	if o.SyncState != entities.SyncStateSynced {
		t.Fatalf("pending order should be synced on reload, got %q", o.SyncState)
	}
	status := u.SyncStatus()
	if status.QuotaExceeded || !status.Loaded || status.PendingOrders != 0 {
		t.Fatalf("unexpected status %+v", status)
	}
}

// gatedCache holds Load until release is closed once gate is set.
type gatedCache struct {
	*memCache
	gate    chan struct{}
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedCache() *gatedCache {
	return &gatedCache{
		memCache: &memCache{},
		gate:     make(chan struct{}),
		entered:  make(chan struct{}),
		release:  make(chan struct{}),
	}
}

func (c *gatedCache) Load(ctx context.Context) (entities.Snapshot, bool, error) {
	select {
	case <-c.gate:
		c.once.Do(func() { close(c.entered) })
		<-c.release
	default:
	}
	return c.memCache.Load(ctx)
}

func TestForceSyncAndReload_ConcurrentWriteIsKept(t *testing.T) {
	ctx := context.Background()
	local := newGatedCache()
	u, _ := newTestEngine(t, nil, local)
	for _, id := range []string{"1", "2", "3"} {
		mustAddOrder(t, u, paidOrder(id, "Camisa"))
	}

	close(local.gate)
	reloaded := make(chan error, 1)
	go func() { reloaded <- u.ForceSyncAndReload(ctx) }()
	<-local.entered

	added := make(chan error, 1)
	go func() {
		_, err := u.AddOrder(ctx, paidOrder("4", "Boné"))
		added <- err
	}()
	time.Sleep(20 * time.Millisecond)
	close(local.release)

	if err := <-reloaded; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if err := <-added; err != nil {
		t.Fatalf("add order during reload: %v", err)
	}

	if got := len(u.GetOrders()); got != 4 {
		t.Fatalf("expected 4 orders in memory, got %d", got)
	}
	if got := len(local.Saved().Orders); got != 4 {
		t.Fatalf("expected 4 orders in the cache, got %d", got)
	}
}
