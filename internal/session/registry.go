package session

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/chynybekuuludastan/adstudio/internal/repository/cache"
)

const (
	// DefaultTTL is how long an unused workspace is kept
	DefaultTTL = 30 * time.Minute

	defaultStoreTimeout = 2 * time.Second
)

// purger is implemented by stores that expire entries lazily
type purger interface {
	Purge() int
}

// Options configures a Registry
type Options struct {
	Backend  Backend
	Store    cache.SnapshotStore
	Notifier Notifier
	TTL      time.Duration
}

// Registry owns the workspaces of all sessions
type Registry struct {
	ctx    context.Context
	cancel context.CancelFunc

	backend      Backend
	store        cache.SnapshotStore
	notifier     Notifier
	ttl          time.Duration
	storeTimeout time.Duration

	mu         sync.Mutex
	workspaces map[string]*Workspace
}

// NewRegistry creates a registry; workspace requests are bound to ctx
func NewRegistry(ctx context.Context, opts Options) *Registry {
	if opts.TTL <= 0 {
		opts.TTL = DefaultTTL
	}
	ctx, cancel := context.WithCancel(ctx)
	return &Registry{
		ctx:          ctx,
		cancel:       cancel,
		backend:      opts.Backend,
		store:        opts.Store,
		notifier:     opts.Notifier,
		ttl:          opts.TTL,
		storeTimeout: defaultStoreTimeout,
		workspaces:   make(map[string]*Workspace),
	}
}

// Get returns the workspace of id, creating and restoring it when needed.
// Snapshots are loaded without holding the registry lock.
func (r *Registry) Get(id string) *Workspace {
	if w, ok := r.Lookup(id); ok {
		w.Touch()
		return w
	}

	w := newWorkspace(r.ctx, id, r.backend)
	restore(r, id, w.Upload)
	restore(r, id, w.AdCreatives)

	r.mu.Lock()
	if existing, ok := r.workspaces[id]; ok {
		r.mu.Unlock()
		w.Close()
		existing.Touch()
		return existing
	}
	persist(r, id, w.Upload)
	persist(r, id, w.AdCreatives)
	r.workspaces[id] = w
	r.mu.Unlock()

	return w
}

// Lookup returns the workspace of id without creating it
func (r *Registry) Lookup(id string) (*Workspace, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.workspaces[id]
	return w, ok
}

// Len returns the number of live workspaces
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.workspaces)
}

// Sweep closes and drops workspaces unused since before now-TTL
func (r *Registry) Sweep(now time.Time) int {
	cutoff := now.Add(-r.ttl)

	r.mu.Lock()
	var expired []*Workspace
	for id, w := range r.workspaces {
		if w.LastSeen().Before(cutoff) {
			expired = append(expired, w)
			delete(r.workspaces, id)
		}
	}
	r.mu.Unlock()

	for _, w := range expired {
		w.Close()
	}
	return len(expired)
}

// Run sweeps idle workspaces every interval until ctx is done
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := r.Sweep(now); n > 0 {
				log.Printf("[INFO] closed %d idle sessions", n)
			}
			if p, ok := r.store.(purger); ok {
				p.Purge()
			}
		}
	}
}

// Close closes every workspace and cancels their requests
func (r *Registry) Close() {
	r.mu.Lock()
	workspaces := r.workspaces
	r.workspaces = make(map[string]*Workspace)
	r.mu.Unlock()

	for _, w := range workspaces {
		w.Close()
	}
	r.cancel()
}
