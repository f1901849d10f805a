// Package directory implements the shared employee roster cache.
package directory

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/hrdesk/internal/core/domain"
	"go.trai.ch/hrdesk/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

const (
	loadKey    = "load"
	refreshKey = "refresh"
)

// View is a point-in-time reading of the cache.
// Employees is shared between readers and must not be modified.
type View struct {
	Employees []domain.Employee
	FetchedAt time.Time
	Loading   bool
	Err       error
}

// Loaded reports whether a roster has ever been fetched or restored.
// A view can be loaded and carry an error at the same time when the last refetch failed.
func (v View) Loaded() bool {
	return !v.FetchedAt.IsZero()
}

// Cache holds the most recent roster snapshot and refetches it once it is older than the TTL.
type Cache struct {
	source ports.RosterSource
	store  ports.SnapshotStore
	clock  clockwork.Clock
	ttl    time.Duration
	logger ports.Logger

	group singleflight.Group

	mu         sync.Mutex
	snapshot   *domain.RosterSnapshot
	lastErr    error
	inflight   int
	issued     uint64
	applied    uint64
	restored   bool
	refreshing chan struct{}
}

// New creates a Cache. store may be nil, in which case nothing is persisted between runs.
func New(
	source ports.RosterSource,
	store ports.SnapshotStore,
	clock clockwork.Clock,
	ttl time.Duration,
	log ports.Logger,
) *Cache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if ttl <= 0 {
		ttl = domain.DefaultCacheTTL
	}
	return &Cache{
		source: source,
		store:  store,
		clock:  clock,
		ttl:    ttl,
		logger: log,
	}
}

// Get returns the cached roster, fetching it first when it is missing or stale.
// A stale Get waits for a refresh already in flight instead of starting its own fetch.
func (c *Cache) Get(ctx context.Context) View {
	c.restore()

	c.mu.Lock()
	fresh := c.isFreshLocked()
	pending := c.refreshing
	c.mu.Unlock()

	if fresh {
		return c.Peek()
	}
	if pending != nil {
		select {
		case <-pending:
		case <-ctx.Done():
		}
		return c.Peek()
	}

	c.fetch(ctx, loadKey)
	return c.Peek()
}

// Refresh refetches the roster regardless of its age.
func (c *Cache) Refresh(ctx context.Context) View {
	c.mu.Lock()
	c.restored = true
	c.mu.Unlock()

	c.fetch(ctx, refreshKey)
	return c.Peek()
}

// DetachStore stops the cache from reading or writing the snapshot store.
func (c *Cache) DetachStore() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store = nil
}

// Peek returns the current state without touching the network.
func (c *Cache) Peek() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := View{
		Loading: c.inflight > 0,
		Err:     c.lastErr,
	}
	if c.snapshot != nil {
		v.Employees = c.snapshot.Employees
		v.FetchedAt = c.snapshot.FetchedAt
	}
	return v
}

func (c *Cache) isFreshLocked() bool {
	if c.snapshot == nil {
		return false
	}
	return c.clock.Since(c.snapshot.FetchedAt) < c.ttl
}

// restore seeds the cache from the snapshot store once per process.
func (c *Cache) restore() {
	c.mu.Lock()
	store := c.store
	if c.restored || store == nil {
		c.restored = true
		c.mu.Unlock()
		return
	}
	c.restored = true
	c.mu.Unlock()

	snap, err := store.Load()
	if err != nil {
		c.warn("ignoring stored roster: " + err.Error())
		return
	}
	if snap == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.snapshot == nil {
		c.snapshot = snap
	}
}

func (c *Cache) fetch(ctx context.Context, key string) {
	_, _, _ = c.group.Do(key, func() (any, error) {
		c.mu.Lock()
		c.issued++
		seq := c.issued
		c.inflight++
		store := c.store
		var done chan struct{}
		if key == refreshKey {
			done = make(chan struct{})
			c.refreshing = done
		}
		c.mu.Unlock()

		if done != nil {
			defer func() {
				c.mu.Lock()
				c.refreshing = nil
				c.mu.Unlock()
				close(done)
			}()
		}

		employees, err := c.source.ListEmployees(ctx)
		fetchedAt := c.clock.Now()

		snap, applied := c.apply(seq, employees, fetchedAt, err)
		if applied && snap != nil && store != nil {
			if saveErr := store.Save(*snap); saveErr != nil {
				c.warn("failed to persist roster: " + saveErr.Error())
			}
		}
		return nil, err
	})
}

// apply installs a fetch outcome unless a newer fetch has already been applied.
func (c *Cache) apply(seq uint64, employees []domain.Employee, fetchedAt time.Time, err error) (*domain.RosterSnapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.inflight--
	if seq <= c.applied {
		return nil, false
	}
	c.applied = seq

	if err != nil {
		c.lastErr = err
		return nil, true
	}

	if employees == nil {
		employees = []domain.Employee{}
	}
	c.snapshot = &domain.RosterSnapshot{Employees: employees, FetchedAt: fetchedAt}
	c.lastErr = nil
	return c.snapshot, true
}

func (c *Cache) warn(msg string) {
	if c.logger != nil {
		c.logger.Warn(msg)
	}
}
