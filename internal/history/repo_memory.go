package history

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores snapshots in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu        sync.RWMutex
	snapshots []Snapshot
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create stores the snapshot.
func (r *MemoryRepo) Create(ctx context.Context, snapshot Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, snapshot)
	return nil
}

// List returns snapshots newest-first.
func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := make([]Snapshot, len(r.snapshots))
	copy(sorted, r.snapshots)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if offset >= len(sorted) {
		return []Snapshot{}, nil
	}
	sorted = sorted[offset:]
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}
