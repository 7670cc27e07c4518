package cache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	appfulfillment "github.com/storefront/backoffice/internal/application/fulfillment"
)

// InMemorySnapshotCache caches order snapshots in process memory.
// Used in single-instance deployments and as the default when Redis
// is not configured.
type InMemorySnapshotCache struct {
	mu        sync.RWMutex
	snapshots map[uuid.UUID]snapshotEntry
	ttl       time.Duration
	now       func() time.Time
}

type snapshotEntry struct {
	snapshot  *appfulfillment.OrderResponse
	expiresAt time.Time
}

// NewInMemorySnapshotCache creates a new in-memory snapshot cache
func NewInMemorySnapshotCache(ttl time.Duration) *InMemorySnapshotCache {
	return &InMemorySnapshotCache{
		snapshots: make(map[uuid.UUID]snapshotEntry),
		ttl:       ttl,
		now:       time.Now,
	}
}

// Get retrieves an order snapshot if present and not expired
func (c *InMemorySnapshotCache) Get(ctx context.Context, orderID uuid.UUID) (*appfulfillment.OrderResponse, bool) {
	c.mu.RLock()
	entry, ok := c.snapshots[orderID]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if c.now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.snapshots, orderID)
		c.mu.Unlock()
		return nil, false
	}
	return entry.snapshot, true
}

// Set stores an order snapshot with the configured TTL
func (c *InMemorySnapshotCache) Set(ctx context.Context, snapshot *appfulfillment.OrderResponse) {
	if snapshot == nil {
		return
	}
	orderID, err := uuid.Parse(snapshot.ID)
	if err != nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshots[orderID] = snapshotEntry{
		snapshot:  snapshot,
		expiresAt: c.now().Add(c.ttl),
	}
}

// Invalidate removes an order snapshot
func (c *InMemorySnapshotCache) Invalidate(ctx context.Context, orderID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.snapshots, orderID)
}

// Len returns the number of cached snapshots
func (c *InMemorySnapshotCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.snapshots)
}

// Ensure InMemorySnapshotCache implements SnapshotCache
var _ appfulfillment.SnapshotCache = (*InMemorySnapshotCache)(nil)
