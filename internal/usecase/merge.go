package usecase

import (
	"time"

	"consolidador/internal/domain/entities"
)

// mergePolicy parameterizes mergeByKey for one collection.
type mergePolicy[T any] struct {
	key      func(T) string
	modified func(T) time.Time
	unsynced func(T) bool
	// localWinsTies keeps the local record on equal timestamps. When false the
	// local record only survives a tie while it is still unsynced.
	localWinsTies bool
	// conflicted returns the remote record flagged for review; it is applied
	// when a newer remote version replaces an unsynced local edit.
	conflicted func(T) T
}

// mergeByKey is last-writer-wins on modified(). Local-only records are always
// kept; remote-only records are appended after the local ones in remote order.
func mergeByKey[T any](local, remote []T, p mergePolicy[T]) (merged []T, conflicts int) {
	remoteByKey := make(map[string]T, len(remote))
	for _, r := range remote {
		remoteByKey[p.key(r)] = r
	}

	merged = make([]T, 0, len(local)+len(remote))
	seen := make(map[string]struct{}, len(local))
	for _, l := range local {
		k := p.key(l)
		seen[k] = struct{}{}
		r, ok := remoteByKey[k]
		if !ok {
			merged = append(merged, l)
			continue
		}

		lt, rt := p.modified(l), p.modified(r)
		switch {
		case lt.After(rt):
			merged = append(merged, l)
		case rt.After(lt):
			if p.unsynced(l) && p.conflicted != nil {
				r = p.conflicted(r)
				conflicts++
			}
			merged = append(merged, r)
		case p.localWinsTies || p.unsynced(l):
			merged = append(merged, l)
		default:
			merged = append(merged, r)
		}
	}

	for _, r := range remote {
		k := p.key(r)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		merged = append(merged, r)
	}
	return merged, conflicts
}

func orderMergePolicy(localWinsTies bool) mergePolicy[entities.Order] {
	return mergePolicy[entities.Order]{
		key:           func(o entities.Order) string { return o.ID },
		modified:      entities.Order.LastModified,
		unsynced:      func(o entities.Order) bool { return !o.SyncState.Synced() },
		localWinsTies: localWinsTies,
		conflicted: func(o entities.Order) entities.Order {
			o.SyncState = entities.SyncStateConflictNeedsReview
			return o
		},
	}
}

func batchMergePolicy(localWinsTies bool) mergePolicy[entities.Batch] {
	return mergePolicy[entities.Batch]{
		key:           func(b entities.Batch) string { return b.Code },
		modified:      entities.Batch.LastModified,
		unsynced:      func(b entities.Batch) bool { return !b.SyncState.Synced() },
		localWinsTies: localWinsTies,
		conflicted: func(b entities.Batch) entities.Batch {
			b = b.Clone()
			b.SyncState = entities.SyncStateConflictNeedsReview
			return b
		},
	}
}

func supplierMergePolicy(localWinsTies bool) mergePolicy[entities.Supplier] {
	return mergePolicy[entities.Supplier]{
		key:           func(s entities.Supplier) string { return s.ID },
		modified:      entities.Supplier.LastModified,
		unsynced:      func(s entities.Supplier) bool { return !s.SyncState.Synced() },
		localWinsTies: localWinsTies,
		conflicted: func(s entities.Supplier) entities.Supplier {
			s.SyncState = entities.SyncStateConflictNeedsReview
			return s
		},
	}
}
