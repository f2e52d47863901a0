package entities

// SyncState tracks whether the latest local state of an entity has been
// confirmed by the remote store.
type SyncState string

const (
	SyncStateSynced        SyncState = "synced"
	SyncStatePendingRemote SyncState = "pending_remote"
	// SyncStateConflictNeedsReview marks a record whose unsynced local edit was
	// overwritten by a newer remote version during a merge.
	SyncStateConflictNeedsReview SyncState = "conflict_needs_review"
)

// Pending reports whether the entity still has to be written remotely.
func (s SyncState) Pending() bool {
	return s == SyncStatePendingRemote
}

// Synced treats an empty state as synced (records that came from the remote store).
func (s SyncState) Synced() bool {
	return s == "" || s == SyncStateSynced
}

// withLegacyFlag resolves the state of blobs persisted before SyncState existed,
// when a plain "pendingSync" boolean was stored.
func (s SyncState) withLegacyFlag(pending *bool) SyncState {
	if s != "" || pending == nil {
		return s
	}
	if *pending {
		return SyncStatePendingRemote
	}
	return SyncStateSynced
}
