package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"consolidador/internal/domain/entities"
	"consolidador/internal/usecase/interfaces"

	"github.com/dgraph-io/badger/v4"
)

const DefaultKey = "consolidador:v1"

// BadgerLocalCache keeps the whole local state as one JSON document under a
// single badger key. An empty dir opens badger in memory.
type BadgerLocalCache struct {
	db  *badger.DB
	key []byte
}

var _ interfaces.ILocalCache = (*BadgerLocalCache)(nil)

func OpenBadgerLocalCache(dir, key string) (*BadgerLocalCache, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger dir=%q: %w", dir, err)
	}
	return NewBadgerLocalCache(db, key), nil
}

func NewBadgerLocalCache(db *badger.DB, key string) *BadgerLocalCache {
	if key == "" {
		key = DefaultKey
	}
	return &BadgerLocalCache{db: db, key: []byte(key)}
}

func (c *BadgerLocalCache) Load(_ context.Context) (entities.Snapshot, bool, error) {
	var snap entities.Snapshot
	found := false
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(c.key)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if err != nil {
		log.Printf("[cache][badger] load failed key=%s err=%v", c.key, err)
		return entities.Snapshot{}, false, err
	}
	return snap, found, nil
}

func (c *BadgerLocalCache) Save(_ context.Context, snap entities.Snapshot) error {
	if snap.Orders == nil {
		snap.Orders = []entities.Order{}
	}
	if snap.Batches == nil {
		snap.Batches = []entities.Batch{}
	}
	if snap.Suppliers == nil {
		snap.Suppliers = []entities.Supplier{}
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(c.key, data)
	})
	if err != nil {
		log.Printf("[cache][badger] save failed key=%s bytes=%d err=%v", c.key, len(data), err)
	}
	return err
}

func (c *BadgerLocalCache) Close() error {
	return c.db.Close()
}
