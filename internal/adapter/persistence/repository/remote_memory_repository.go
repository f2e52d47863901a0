package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"consolidador/internal/domain/entities"
	"consolidador/internal/usecase/interfaces"
)

// MemoryRemoteStore is an in-process stand-in for the document store, used when
// REMOTE_DRIVER=memory and by tests. FailWithQuota makes every call fail with
// ErrQuotaExhausted until it is switched off again.

type MemoryRemoteStore struct {
	mu        sync.Mutex
	orders    map[string]entities.Order
	batches   map[string]entities.Batch
	suppliers map[string]entities.Supplier
	quota     bool
	writes    int
}

var _ interfaces.IRemoteStore = (*MemoryRemoteStore)(nil)

func NewMemoryRemoteStore() *MemoryRemoteStore {
	return &MemoryRemoteStore{
		orders:    map[string]entities.Order{},
		batches:   map[string]entities.Batch{},
		suppliers: map[string]entities.Supplier{},
	}
}

func (m *MemoryRemoteStore) FailWithQuota(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quota = on
}

// Writes counts successful Put/Delete calls.
func (m *MemoryRemoteStore) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

func (m *MemoryRemoteStore) check(op string) error {
	if m.quota {
		return fmt.Errorf("%s: %w", op, interfaces.ErrQuotaExhausted)
	}
	return nil
}

func (m *MemoryRemoteStore) ListOrders(_ context.Context) ([]entities.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check("list orders"); err != nil {
		return nil, err
	}
	out := make([]entities.Order, 0, len(m.orders))
	for _, o := range m.orders {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryRemoteStore) PutOrder(_ context.Context, o entities.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check("put order"); err != nil {
		return err
	}
	o.SyncState = entities.SyncStateSynced
	m.orders[o.ID] = o
	m.writes++
	return nil
}

func (m *MemoryRemoteStore) DeleteOrder(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check("delete order"); err != nil {
		return err
	}
	delete(m.orders, id)
	m.writes++
	return nil
}

func (m *MemoryRemoteStore) ListBatches(_ context.Context) ([]entities.Batch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check("list batches"); err != nil {
		return nil, err
	}
	out := make([]entities.Batch, 0, len(m.batches))
	for _, b := range m.batches {
		out = append(out, b.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (m *MemoryRemoteStore) PutBatch(_ context.Context, b entities.Batch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check("put batch"); err != nil {
		return err
	}
	b = b.Clone()
	b.SyncState = entities.SyncStateSynced
	m.batches[b.Code] = b
	m.writes++
	return nil
}

func (m *MemoryRemoteStore) DeleteBatch(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check("delete batch"); err != nil {
		return err
	}
	delete(m.batches, code)
	m.writes++
	return nil
}

func (m *MemoryRemoteStore) ListSuppliers(_ context.Context) ([]entities.Supplier, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check("list suppliers"); err != nil {
		return nil, err
	}
	out := make([]entities.Supplier, 0, len(m.suppliers))
	for _, s := range m.suppliers {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *MemoryRemoteStore) PutSupplier(_ context.Context, s entities.Supplier) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check("put supplier"); err != nil {
		return err
	}
	s.SyncState = entities.SyncStateSynced
	m.suppliers[s.ID] = s
	m.writes++
	return nil
}

func (m *MemoryRemoteStore) DeleteSupplier(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.check("delete supplier"); err != nil {
		return err
	}
	delete(m.suppliers, id)
	m.writes++
	return nil
}

func (m *MemoryRemoteStore) SubscribeOrders(ctx context.Context, interval time.Duration, onSnapshot func([]entities.Order), onError func(error)) func() {
	return pollOrders(ctx, interval, m.ListOrders, onSnapshot, onError)
}
