package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/chynybekuuludastan/adstudio/internal/database"
)

const (
	// KeyPrefixPanel prefixes panel snapshot keys: panel:<session>:<panel>
	KeyPrefixPanel = "panel:"

	// DefaultTTL for stored snapshots
	DefaultTTL = 1 * time.Hour
)

// SnapshotStore keeps the latest panel snapshot of each session.
// Load returns ok=false on a miss; Health reports whether the store is reachable.
type SnapshotStore interface {
	Save(ctx context.Context, sessionID, panel string, snapshot interface{}) error
	Load(ctx context.Context, sessionID, panel string, dest interface{}) (bool, error)
	Health(ctx context.Context) error
}

// PanelKey builds the storage key of a panel snapshot
func PanelKey(sessionID, panel string) string {
	return KeyPrefixPanel + sessionID + ":" + panel
}

// RedisStore stores snapshots in Redis
type RedisStore struct {
	client *database.RedisClient
	ttl    time.Duration
}

// NewRedisStore creates a Redis snapshot store
func NewRedisStore(client *database.RedisClient, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Save stores a snapshot
func (r *RedisStore) Save(ctx context.Context, sessionID, panel string, snapshot interface{}) error {
	if err := r.client.SetJSON(ctx, PanelKey(sessionID, panel), snapshot, r.ttl); err != nil {
		return fmt.Errorf("failed to save %s snapshot: %w", panel, err)
	}
	return nil
}

// Load retrieves a snapshot
func (r *RedisStore) Load(ctx context.Context, sessionID, panel string, dest interface{}) (bool, error) {
	ok, err := r.client.GetJSON(ctx, PanelKey(sessionID, panel), dest)
	if err != nil {
		return false, fmt.Errorf("failed to load %s snapshot: %w", panel, err)
	}
	return ok, nil
}

// Health pings Redis
func (r *RedisStore) Health(ctx context.Context) error {
	if err := r.client.Ping(ctx); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryStore stores snapshots in process memory; used when Redis is not configured
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryStore creates an in-memory snapshot store
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Save stores a snapshot
func (m *MemoryStore) Save(_ context.Context, sessionID, panel string, snapshot interface{}) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal %s snapshot: %w", panel, err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[PanelKey(sessionID, panel)] = memoryEntry{data: data, expiresAt: m.now().Add(m.ttl)}
	return nil
}

// Load retrieves a snapshot
func (m *MemoryStore) Load(_ context.Context, sessionID, panel string, dest interface{}) (bool, error) {
	key := PanelKey(sessionID, panel)

	m.mu.Lock()
	entry, ok := m.entries[key]
	if ok && m.now().After(entry.expiresAt) {
		delete(m.entries, key)
		ok = false
	}
	m.mu.Unlock()

	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(entry.data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s snapshot: %w", panel, err)
	}
	return true, nil
}

// Health always succeeds for the in-process store
func (m *MemoryStore) Health(context.Context) error {
	return nil
}

// Purge drops expired snapshots and returns how many were removed
func (m *MemoryStore) Purge() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for key, entry := range m.entries {
		if now.After(entry.expiresAt) {
			delete(m.entries, key)
			removed++
		}
	}
	return removed
}
