// Package querycache tracks every read operation under a cache key with a
// staleness window, and wraps every write with the invalidation table and
// user-facing notifications. Reads and writes may be in flight
// concurrently; per key, the last write-triggered invalidation wins — a
// stale in-flight read can never overwrite newer state.
package querycache

import (
	"context"
	"sync"
	"time"

	"hrmclient/internal/api"
)

// Status is the per-key read state machine:
// idle -> loading -> success | error. A success entry goes back through
// loading when its staleness window elapses or a write invalidates it.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

// FetchFunc performs the underlying service call for a key.
type FetchFunc func(ctx context.Context) (any, error)

type inflight struct {
	generation uint64
	done       chan struct{}
	data       any
	err        error
	discarded  bool
}

type entry struct {
	status      Status
	data        any
	err         error
	fetchedAt   time.Time
	generation  uint64
	subscribers int
	inflight    *inflight
}

type Cache struct {
	mu               sync.Mutex
	entries          map[Key]*entry
	staleness        map[string]time.Duration
	defaultStaleness time.Duration
	notifier         Notifier
	now              func() time.Time
}

type Option func(*Cache)

func WithNotifier(n Notifier) Option {
	return func(c *Cache) { c.notifier = n }
}

// WithStaleness sets the window for one read operation.
func WithStaleness(op string, d time.Duration) Option {
	return func(c *Cache) { c.staleness[op] = d }
}

// WithClock overrides time for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

func New(opts ...Option) *Cache {
	c := &Cache{
		entries:          map[Key]*entry{},
		staleness:        defaultStaleness(),
		defaultStaleness: 5 * time.Minute,
		notifier:         SlogNotifier{},
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// defaultStaleness mirrors the dashboard's windows: short for volatile
// lists, long for near-static catalogues, 5m otherwise.
func defaultStaleness() map[string]time.Duration {
	return map[string]time.Duration{
		OpLeaveRequests:     2 * time.Minute,
		OpAttendanceRecords: 2 * time.Minute,
		OpTodayAttendance:   1 * time.Minute,
		OpApplications:      2 * time.Minute,
		OpLeaveTypes:        10 * time.Minute,
		OpTrainingPrograms:  10 * time.Minute,
		OpAuditLogs:         10 * time.Minute,
	}
}

func (c *Cache) windowFor(key Key) time.Duration {
	if d, ok := c.staleness[key.Op()]; ok {
		return d
	}
	return c.defaultStaleness
}

func (c *Cache) get(key Key) *entry {
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	return e
}

// Subscribe registers an active consumer of a key and returns the
// unsubscribe func. Fetch results destined for a key with no subscribers
// are discarded rather than cached.
func (c *Cache) Subscribe(key Key) func() {
	c.mu.Lock()
	e := c.get(key)
	e.subscribers++
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			e.subscribers--
			c.mu.Unlock()
		})
	}
}

// Get returns the cached value for key, fetching when the entry is idle,
// errored, or invalidated. A fresh success returns immediately; a stale
// success is returned as-is while a revalidation runs in the background.
// Concurrent gets for the same key coalesce into one fetch.
func (c *Cache) Get(ctx context.Context, key Key, fetch FetchFunc) (any, error) {
	for {
		c.mu.Lock()
		e := c.get(key)

		if e.status == StatusSuccess {
			fresh := c.now().Sub(e.fetchedAt) < c.windowFor(key)
			data := e.data
			if !fresh && e.inflight == nil {
				c.startFetch(key, e, fetch, true)
			}
			c.mu.Unlock()
			return data, nil
		}

		if fl := e.inflight; fl != nil {
			c.mu.Unlock()
			select {
			case <-fl.done:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			if fl.discarded {
				continue
			}
			return fl.data, fl.err
		}

		fl := c.startFetch(key, e, nil, false)
		c.mu.Unlock()

		data, err := fetch(ctx)

		c.mu.Lock()
		accepted := c.complete(key, fl, data, err)
		c.mu.Unlock()

		if !accepted {
			continue
		}
		return data, err
	}
}

// startFetch transitions the entry to loading. With background=true it also
// spawns the revalidation goroutine; the caller-driven path runs the fetch
// itself. Must hold c.mu.
func (c *Cache) startFetch(key Key, e *entry, fetch FetchFunc, background bool) *inflight {
	fl := &inflight{generation: e.generation, done: make(chan struct{})}
	e.inflight = fl
	if e.status != StatusSuccess {
		e.status = StatusLoading
	}
	if background {
		go func() {
			data, err := fetch(context.Background())
			c.mu.Lock()
			c.complete(key, fl, data, err)
			c.mu.Unlock()
		}()
	}
	return fl
}

// complete stores a fetch result unless it was superseded by a newer
// invalidation or the key has no subscriber left. Must hold c.mu.
// Returns whether the result was accepted for this generation.
func (c *Cache) complete(key Key, fl *inflight, data any, err error) bool {
	e := c.get(key)
	if e.inflight == fl {
		e.inflight = nil
	}
	if fl.generation != e.generation {
		// a write invalidated this key while the read was in flight
		fl.discarded = true
		close(fl.done)
		return false
	}
	fl.data, fl.err = data, err
	switch {
	case e.subscribers == 0:
		// nobody is watching; hand the result to the caller but keep nothing
		e.status = StatusIdle
		e.data = nil
		e.err = nil
	case err != nil:
		e.status = StatusError
		e.err = err
		e.data = nil
	default:
		e.status = StatusSuccess
		e.data = data
		e.err = nil
		e.fetchedAt = c.now()
	}
	close(fl.done)
	return true
}

// Invalidate marks every key under the given read operation stale and
// supersedes any in-flight fetch for those keys. Two invalidations of the
// same key before the next read coalesce into a single refetch.
func (c *Cache) Invalidate(ops ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, e := range c.entries {
		for _, op := range ops {
			if key.Op() != op {
				continue
			}
			e.generation++
			e.inflight = nil
			if e.status == StatusSuccess {
				// keep serving old data until the refetch lands, but force
				// the next access to refetch
				e.status = StatusIdle
				e.data = nil
			}
			break
		}
	}
}

// Status reports the state-machine position of a key.
func (c *Cache) Status(key Key) Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return StatusIdle
	}
	return e.status
}

// Mutate runs a write operation under its declared mutation name. On
// success it applies the invalidation table and raises a success
// notification; on failure it raises the server's message (generic
// fallback otherwise) and leaves all cached data untouched.
func (c *Cache) Mutate(ctx context.Context, mutation Mutation, fn func(ctx context.Context) error) error {
	spec, ok := Invalidations[mutation]
	if !ok {
		spec = MutationSpec{SuccessText: "Saved successfully", FallbackText: "Request failed"}
	}
	if err := fn(ctx); err != nil {
		c.notifier.Error(api.ServerMessage(err, spec.FallbackText))
		return err
	}
	if len(spec.Invalidates) > 0 {
		c.Invalidate(spec.Invalidates...)
	}
	c.notifier.Success(spec.SuccessText)
	return nil
}

// GetAs is the typed wrapper over Cache.Get.
func GetAs[T any](ctx context.Context, c *Cache, key Key, fetch func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	v, err := c.Get(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, nil
	}
	return out, nil
}
