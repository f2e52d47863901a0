package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"consolidador/internal/domain/entities"
	"consolidador/internal/usecase/interfaces"
)

// testClock returns a time that moves forward by step on every call.
type testClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newTestClock(start time.Time) *testClock {
	return &testClock{now: start, step: time.Second}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// memCache is an ILocalCache kept in a plain variable.
type memCache struct {
	mu    sync.Mutex
	snap  entities.Snapshot
	found bool
	saves int
}

var _ interfaces.ILocalCache = (*memCache)(nil)

func (c *memCache) Load(_ context.Context) (entities.Snapshot, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap.Clone(), c.found, nil
}

func (c *memCache) Save(_ context.Context, s entities.Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = s.Clone()
	c.found = true
	c.saves++
	return nil
}

func (c *memCache) Close() error { return nil }

func (c *memCache) Saved() entities.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snap.Clone()
}

var day0 = time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

func newTestEngine(t *testing.T, remote interfaces.IRemoteStore, cache interfaces.ILocalCache) (*ConsolidationUseCase, *testClock) {
	t.Helper()
	clock := newTestClock(day0)
	ids := 0
	u := NewConsolidationUseCase(remote, cache,
		WithClock(clock.Now),
		WithIDGenerator(func() string {
			ids++
			return fmt.Sprintf("sup-%d", ids)
		}),
		WithLiveInterval(5*time.Millisecond),
	)
	if err := u.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return u, clock
}

func paidOrder(id, product string) entities.Order {
	return entities.Order{
		ID:            id,
		CustomerName:  "Cliente " + id,
		ProductName:   product,
		ShippingType:  entities.ShippingTypePadrao,
		PaymentStatus: entities.PaymentStatusPago,
	}
}

func mustAddOrder(t *testing.T, u *ConsolidationUseCase, o entities.Order) entities.Order {
	t.Helper()
	got, err := u.AddOrder(context.Background(), o)
	if err != nil {
		t.Fatalf("add order %s: %v", o.ID, err)
	}
	return got
}

func mustAddBatch(t *testing.T, u *ConsolidationUseCase, ids ...string) entities.Batch {
	t.Helper()
	b, err := u.AddBatch(context.Background(), entities.Batch{OrderIDs: ids})
	if err != nil {
		t.Fatalf("add batch: %v", err)
	}
	return b
}

func assertIntegrity(t *testing.T, u *ConsolidationUseCase) {
	t.Helper()
	report, err := u.CheckDataIntegrity(context.Background())
	if err != nil {
		t.Fatalf("integrity: %v", err)
	}
	if !report.OK() {
		t.Fatalf("integrity errors: %+v", report.Issues)
	}
}

func (c *memCache) Saves() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saves
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}
