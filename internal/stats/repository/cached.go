package repository

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedRepository memoizes per-owner snapshots for a short TTL.
// Recomputing every metric from raw events is cheap but the snapshot
// read is not free; dashboards poll several endpoints per page load.
// The task domain invalidates entries on every mutation, so the TTL
// only bounds staleness across devices.
type cachedRepository struct {
	inner Repository
	lru   *expirable.LRU[string, Snapshot]
}

// NewCached wraps a Repository with an expirable LRU keyed by owner.
// A non-positive ttl or size disables caching and returns inner as-is.
func NewCached(inner Repository, size int, ttl time.Duration) Repository {
	if size <= 0 || ttl <= 0 {
		return inner
	}
	return &cachedRepository{
		inner: inner,
		lru:   expirable.NewLRU[string, Snapshot](size, nil, ttl),
	}
}

func (r *cachedRepository) GetSnapshot(ctx context.Context, userID string) (Snapshot, error) {
	if snapshot, ok := r.lru.Get(userID); ok {
		return snapshot, nil
	}

	snapshot, err := r.inner.GetSnapshot(ctx, userID)
	if err != nil {
		return Snapshot{}, err
	}
	r.lru.Add(userID, snapshot)
	return snapshot, nil
}

// Invalidate drops the memoized snapshot for a user.
func (r *cachedRepository) Invalidate(userID string) {
	r.lru.Remove(userID)
}
