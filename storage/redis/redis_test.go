package redis

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"

	"github.com/utsurius/actionable-messages/storage"
	"github.com/utsurius/actionable-messages/storage/storagetest"
)

func newClient(t *testing.T) *redis.Client {
	t.Helper()
	// Skip test if Redis is not available
	client := redis.NewClient(&redis.Options{
		Addr: "127.0.0.1:6379",
		DB:   2, // Use separate DB for storage tests
	})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available: %v", err)
	}
	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	return client
}

func TestRedisStorage(t *testing.T) {
	client := newClient(t)
	defer client.FlushDB(context.Background())

	s, err := New(Config{Client: client})
	if err != nil {
		t.Fatalf("Failed to create Redis storage: %v", err)
	}
	defer s.Close()

	storagetest.Run(t, s)
}

func TestNewRequiresClient(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("expected an error without a client")
	}
}

func TestGlobCharactersStayInNamespace(t *testing.T) {
	client := newClient(t)
	defer client.FlushDB(context.Background())

	s, err := New(Config{Client: client, KeyPrefix: "test:"})
	if err != nil {
		t.Fatalf("Failed to create Redis storage: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.Set(ctx, "json", []byte("1"), storage.WithCard("agenda")); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := s.Delete(ctx, storage.WithCard("*")); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	item, err := s.Get(ctx, "json", storage.WithCard("agenda"))
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if item == nil {
		t.Fatal("deleting card \"*\" must not touch other cards")
	}
}

func TestBuildKey(t *testing.T) {
	s := &Storage{keyPrefix: "p:"}
	tests := []struct {
		ns   storage.Namespace
		want string
	}{
		{nil, "p:global:key:k"},
		{storage.CardNamespace{Card: "hero"}, "p:card:hero:key:k"},
		{storage.LocaleNamespace{Card: "hero", Locale: "de"}, "p:card:hero:locale:de:key:k"},
		{storage.CardNamespace{Card: "a*b"}, `p:card:a\*b:key:k`},
	}
	for _, tt := range tests {
		if got := s.buildKey(tt.ns, "k"); got != tt.want {
			t.Errorf("buildKey(%v) = %q, want %q", tt.ns, got, tt.want)
		}
	}
}
