package careerspage

import "context"

// PageCache stores page snapshots by slug
type PageCache interface {
	// Get returns the cached snapshot. A miss is (nil, false, nil).
	Get(ctx context.Context, slug string) (*Snapshot, bool, error)

	// Set caches a snapshot
	Set(ctx context.Context, slug string, snap *Snapshot) error

	// Invalidate drops the cached snapshot
	Invalidate(ctx context.Context, slug string) error
}
