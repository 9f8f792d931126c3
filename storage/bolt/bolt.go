// Package bolt provides a file-backed implementation of the storage.Storage
// interface on top of bbolt, for rendered payloads that should survive a
// restart of a single cardgen process.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bbolt "go.etcd.io/bbolt"

	"github.com/utsurius/actionable-messages/storage"
)

// Layout: the global namespace is one bucket. Every card has a bucket under
// cardsBucket holding its entries ("k:" prefix) and one nested bucket per
// locale ("l:" prefix), so deleting a card bucket drops all its locales.
var (
	globalBucket = []byte("global")
	cardsBucket  = []byte("cards")
)

const (
	entryPrefix  = "k:"
	localePrefix = "l:"
)

// Storage implements the storage.Storage interface using bbolt
type Storage struct {
	db *bbolt.DB
}

type storedItem struct {
	Data      []byte     `json:"data"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// New opens or creates the database at path.
func New(path string) (*Storage, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(globalBucket); err != nil {
			return err
		}
		_, err := tx.CreateBucketIfNotExists(cardsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating buckets: %w", err)
	}
	return &Storage{db: db}, nil
}

// Get retrieves data for a specific key within the given namespace
func (s *Storage) Get(ctx context.Context, key string, opts ...storage.Option) (*storage.StorageItem, error) {
	options, err := storage.Apply(opts...)
	if err != nil {
		return nil, err
	}
	ns := options.Namespace()

	var raw []byte
	err = s.db.View(func(tx *bbolt.Tx) error {
		b := lookup(tx, ns)
		if b == nil {
			return nil
		}
		if v := b.Get(entryKey(ns, key)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get key %s: %w", key, err)
	}
	if raw == nil {
		return nil, nil
	}

	var item storedItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored data: %w", err)
	}
	storageItem := &storage.StorageItem{
		Data:      item.Data,
		CreatedAt: item.CreatedAt,
		ExpiresAt: item.ExpiresAt,
	}
	if storageItem.IsExpired() {
		if err := s.Delete(ctx, append(opts[:len(opts):len(opts)], storage.WithKey(key))...); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return storageItem, nil
}

// Set stores data for a specific key within the given namespace
func (s *Storage) Set(ctx context.Context, key string, data []byte, opts ...storage.Option) error {
	options, err := storage.Apply(opts...)
	if err != nil {
		return err
	}
	ns := options.Namespace()

	now := time.Now()
	item := storedItem{Data: data, CreatedAt: now}
	if options.TTL != nil {
		expiresAt := now.Add(*options.TTL)
		item.ExpiresAt = &expiresAt
	}
	raw, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal storage item: %w", err)
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		b, err := create(tx, ns)
		if err != nil {
			return err
		}
		return b.Put(entryKey(ns, key), raw)
	})
	if err != nil {
		return fmt.Errorf("failed to set key %s: %w", key, err)
	}
	return nil
}

// Delete removes data within the given namespace
// If no key specified via WithKey, removes entire namespace
func (s *Storage) Delete(ctx context.Context, opts ...storage.Option) error {
	options, err := storage.Apply(opts...)
	if err != nil {
		return err
	}
	ns := options.Namespace()

	err = s.db.Update(func(tx *bbolt.Tx) error {
		if options.Key != nil {
			b := lookup(tx, ns)
			if b == nil {
				return nil
			}
			return b.Delete(entryKey(ns, *options.Key))
		}
		switch ns := ns.(type) {
		case storage.CardNamespace:
			return deleteBucket(tx.Bucket(cardsBucket), []byte(ns.Card))
		case storage.LocaleNamespace:
			return deleteBucket(tx.Bucket(cardsBucket).Bucket([]byte(ns.Card)), []byte(localePrefix+ns.Locale))
		default:
			if err := tx.DeleteBucket(globalBucket); err != nil {
				return err
			}
			_, err := tx.CreateBucket(globalBucket)
			return err
		}
	})
	if err != nil {
		return fmt.Errorf("failed to delete: %w", err)
	}
	return nil
}

// Close closes the database file.
func (s *Storage) Close() error {
	return s.db.Close()
}

func entryKey(ns storage.Namespace, key string) []byte {
	if ns == nil {
		return []byte(key)
	}
	return []byte(entryPrefix + key)
}

// lookup returns the bucket of ns, or nil when nothing was stored there.
func lookup(tx *bbolt.Tx, ns storage.Namespace) *bbolt.Bucket {
	switch ns := ns.(type) {
	case storage.CardNamespace:
		return tx.Bucket(cardsBucket).Bucket([]byte(ns.Card))
	case storage.LocaleNamespace:
		c := tx.Bucket(cardsBucket).Bucket([]byte(ns.Card))
		if c == nil {
			return nil
		}
		return c.Bucket([]byte(localePrefix + ns.Locale))
	default:
		return tx.Bucket(globalBucket)
	}
}

func create(tx *bbolt.Tx, ns storage.Namespace) (*bbolt.Bucket, error) {
	switch ns := ns.(type) {
	case storage.CardNamespace:
		return tx.Bucket(cardsBucket).CreateBucketIfNotExists([]byte(ns.Card))
	case storage.LocaleNamespace:
		c, err := tx.Bucket(cardsBucket).CreateBucketIfNotExists([]byte(ns.Card))
		if err != nil {
			return nil, err
		}
		return c.CreateBucketIfNotExists([]byte(localePrefix + ns.Locale))
	default:
		return tx.Bucket(globalBucket), nil
	}
}

func deleteBucket(parent *bbolt.Bucket, name []byte) error {
	if parent == nil || parent.Bucket(name) == nil {
		return nil
	}
	return parent.DeleteBucket(name)
}

var _ storage.Storage = (*Storage)(nil)
