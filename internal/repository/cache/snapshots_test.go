package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"

	"github.com/chynybekuuludastan/adstudio/internal/database"
)

type snapshot struct {
	State string `json:"state"`
	Title string `json:"title"`
}

func exerciseStore(t *testing.T, store SnapshotStore) {
	t.Helper()
	ctx := context.Background()

	var got snapshot
	ok, err := store.Load(ctx, "s1", "upload", &got)
	if err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	if err := store.Save(ctx, "s1", "upload", snapshot{State: "success", Title: "T"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	ok, err = store.Load(ctx, "s1", "upload", &got)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got.State != "success" || got.Title != "T" {
		t.Errorf("unexpected snapshot %+v", got)
	}

	ok, _ = store.Load(ctx, "s2", "upload", &got)
	if ok {
		t.Errorf("sessions must not share snapshots")
	}

	if err := store.Health(ctx); err != nil {
		t.Errorf("health: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore(time.Minute))
}

func TestMemoryStoreExpires(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }

	if err := store.Save(context.Background(), "s1", "upload", snapshot{State: "error"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	now = now.Add(2 * time.Minute)
	var got snapshot
	ok, err := store.Load(context.Background(), "s1", "upload", &got)
	if err != nil || ok {
		t.Errorf("expected expired entry to miss, got ok=%v err=%v", ok, err)
	}
}

func TestMemoryStorePurge(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }

	_ = store.Save(context.Background(), "old", "upload", snapshot{State: "success"})
	now = now.Add(30 * time.Second)
	_ = store.Save(context.Background(), "new", "upload", snapshot{State: "success"})

	now = now.Add(45 * time.Second)
	if n := store.Purge(); n != 1 {
		t.Fatalf("expected 1 purged entry, got %d", n)
	}

	var got snapshot
	if ok, _ := store.Load(context.Background(), "new", "upload", &got); !ok {
		t.Errorf("fresh entry was purged")
	}
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { client.Close() })

	store := NewRedisStore(client, time.Minute)
	exerciseStore(t, store)

	if err := store.Save(context.Background(), "s3", "upload", snapshot{State: "success"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if ttl := mr.TTL(PanelKey("s3", "upload")); ttl != time.Minute {
		t.Errorf("ttl = %v", ttl)
	}
}

func TestRedisStoreHealthAfterShutdown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})}
	t.Cleanup(func() { client.Close() })

	store := NewRedisStore(client, time.Minute)
	if err := store.Health(context.Background()); err != nil {
		t.Fatalf("health: %v", err)
	}

	mr.Close()
	if err := store.Health(context.Background()); err == nil {
		t.Errorf("expected health to fail once redis is gone")
	}
}
