// Package storagetest holds the behavior every storage backend must share.
package storagetest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/utsurius/actionable-messages/storage"
)

// Run exercises s. The backend must start empty.
func Run(t *testing.T, s storage.Storage) {
	t.Helper()
	t.Run("SetAndGet", func(t *testing.T) { testSetAndGet(t, s) })
	t.Run("GetNonExistent", func(t *testing.T) { testGetNonExistent(t, s) })
	t.Run("TTL", func(t *testing.T) { testTTL(t, s) })
	t.Run("Namespaces", func(t *testing.T) { testNamespaces(t, s) })
	t.Run("DeleteKey", func(t *testing.T) { testDeleteKey(t, s) })
	t.Run("DeleteCard", func(t *testing.T) { testDeleteCard(t, s) })
	t.Run("InvalidOptions", func(t *testing.T) { testInvalidOptions(t, s) })
	t.Run("Fetch", func(t *testing.T) { testFetch(t, s) })
}

func mustGet(t *testing.T, s storage.Storage, key string, opts ...storage.Option) *storage.StorageItem {
	t.Helper()
	item, err := s.Get(context.Background(), key, opts...)
	if err != nil {
		t.Fatalf("Get(%q) failed: %v", key, err)
	}
	return item
}

func mustSet(t *testing.T, s storage.Storage, key, data string, opts ...storage.Option) {
	t.Helper()
	if err := s.Set(context.Background(), key, []byte(data), opts...); err != nil {
		t.Fatalf("Set(%q) failed: %v", key, err)
	}
}

func testSetAndGet(t *testing.T, s storage.Storage) {
	mustSet(t, s, "json", `{"type":"AdaptiveCard"}`, storage.WithCard("agenda"))
	item := mustGet(t, s, "json", storage.WithCard("agenda"))
	if item == nil {
		t.Fatal("Get() returned nil item")
	}
	if string(item.Data) != `{"type":"AdaptiveCard"}` {
		t.Fatalf("Get() returned wrong data: %s", item.Data)
	}
	if item.CreatedAt.IsZero() || item.ExpiresAt != nil {
		t.Fatalf("unexpected metadata: %+v", item)
	}
}

func testGetNonExistent(t *testing.T, s storage.Storage) {
	if item := mustGet(t, s, "missing"); item != nil {
		t.Fatalf("Get() should return nil for non-existent key, got %+v", item)
	}
}

func testTTL(t *testing.T, s storage.Storage) {
	ttl := 1100 * time.Millisecond
	mustSet(t, s, "ttl", "short-lived", storage.WithTTL(ttl))
	if item := mustGet(t, s, "ttl"); item == nil || item.ExpiresAt == nil {
		t.Fatalf("Get() before expiration: %+v", item)
	}
	time.Sleep(ttl + 400*time.Millisecond)
	if item := mustGet(t, s, "ttl"); item != nil {
		t.Fatal("Get() returned non-nil item after expiration")
	}
}

func testNamespaces(t *testing.T, s storage.Storage) {
	mustSet(t, s, "html", "global")
	mustSet(t, s, "html", "card", storage.WithCard("hero"))
	mustSet(t, s, "html", "card-de", storage.WithCardLocale("hero", "de"))

	for _, tt := range []struct {
		want string
		opts []storage.Option
	}{
		{"global", nil},
		{"card", []storage.Option{storage.WithCard("hero")}},
		{"card-de", []storage.Option{storage.WithCardLocale("hero", "de")}},
	} {
		item := mustGet(t, s, "html", tt.opts...)
		if item == nil || string(item.Data) != tt.want {
			t.Fatalf("namespace %q not isolated: %+v", tt.want, item)
		}
	}
}

func testDeleteKey(t *testing.T, s storage.Storage) {
	opt := storage.WithCardLocale("trello", "pl")
	mustSet(t, s, "json", "a", opt)
	mustSet(t, s, "html", "b", opt)
	if err := s.Delete(context.Background(), opt, storage.WithKey("json")); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if item := mustGet(t, s, "json", opt); item != nil {
		t.Fatal("deleted key still present")
	}
	if item := mustGet(t, s, "html", opt); item == nil {
		t.Fatal("sibling key should survive")
	}
}

func testDeleteCard(t *testing.T, s storage.Storage) {
	mustSet(t, s, "json", "en", storage.WithCardLocale("github", "en-us"))
	mustSet(t, s, "json", "de", storage.WithCardLocale("github", "de"))
	mustSet(t, s, "yaml", "any", storage.WithCard("github"))
	mustSet(t, s, "json", "other", storage.WithCard("thumbnail"))

	if err := s.Delete(context.Background(), storage.WithCard("github")); err != nil {
		t.Fatalf("Delete() card failed: %v", err)
	}
	for _, opt := range []storage.Option{
		storage.WithCardLocale("github", "en-us"),
		storage.WithCardLocale("github", "de"),
	} {
		if item := mustGet(t, s, "json", opt); item != nil {
			t.Fatalf("locale entry survived card deletion: %s", item.Data)
		}
	}
	if item := mustGet(t, s, "yaml", storage.WithCard("github")); item != nil {
		t.Fatal("card entry survived card deletion")
	}
	if item := mustGet(t, s, "json", storage.WithCard("thumbnail")); item == nil {
		t.Fatal("other card should survive")
	}
}

func testInvalidOptions(t *testing.T, s storage.Storage) {
	localeOnly := func(o *storage.Options) { o.Locale = "de" }
	ctx := context.Background()
	if _, err := s.Get(ctx, "k", localeOnly); !errors.Is(err, storage.ErrInvalidOptions) {
		t.Fatalf("Get: want ErrInvalidOptions, got %v", err)
	}
	if err := s.Set(ctx, "k", nil, localeOnly); !errors.Is(err, storage.ErrInvalidOptions) {
		t.Fatalf("Set: want ErrInvalidOptions, got %v", err)
	}
	if err := s.Delete(ctx, localeOnly); !errors.Is(err, storage.ErrInvalidOptions) {
		t.Fatalf("Delete: want ErrInvalidOptions, got %v", err)
	}
}

func testFetch(t *testing.T, s storage.Storage) {
	ctx := context.Background()
	calls := 0
	render := func() ([]byte, error) {
		calls++
		return []byte("rendered"), nil
	}
	opt := storage.WithCardLocale("food-order", "de")
	for i, wantHit := range []bool{false, true} {
		data, hit, err := storage.Fetch(ctx, s, "json", time.Minute, render, opt)
		if err != nil {
			t.Fatalf("Fetch #%d: %v", i, err)
		}
		if string(data) != "rendered" || hit != wantHit {
			t.Fatalf("Fetch #%d = %q hit=%v", i, data, hit)
		}
	}
	if calls != 1 {
		t.Fatalf("render called %d times, want 1", calls)
	}

	boom := errors.New("boom")
	if _, _, err := storage.Fetch(ctx, s, "broken", 0, func() ([]byte, error) { return nil, boom }); !errors.Is(err, boom) {
		t.Fatalf("Fetch error = %v", err)
	}
	if item := mustGet(t, s, "broken"); item != nil {
		t.Fatal("failed render must not be cached")
	}
}
