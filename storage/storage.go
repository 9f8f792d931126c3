// Package storage caches rendered card payloads. Entries live in a namespace
// per card, optionally narrowed to one locale, so every render of a card can
// be dropped at once when the card definition changes.
package storage

import (
	"context"
	"errors"
	"time"
)

// Storage defines the primary interface for cached payloads
type Storage interface {
	// Get retrieves data for a specific key within the given namespace
	// Returns nil StorageItem if key doesn't exist or has expired
	// Returns error only for legitimate storage system failures
	Get(ctx context.Context, key string, opts ...Option) (*StorageItem, error)

	// Set stores data for a specific key within the given namespace
	Set(ctx context.Context, key string, data []byte, opts ...Option) error

	// Delete removes data within the given namespace
	// If no key specified via WithKey, removes entire namespace
	Delete(ctx context.Context, opts ...Option) error

	// Close closes the storage backend and releases resources
	Close() error
}

// StorageItem represents a stored piece of data with metadata
type StorageItem struct {
	Data      []byte     // The stored data
	CreatedAt time.Time  // When the item was created
	ExpiresAt *time.Time // When the item expires (nil = no expiration)
}

// IsExpired checks if the item has expired
func (si *StorageItem) IsExpired() bool {
	return si.ExpiresAt != nil && time.Now().After(*si.ExpiresAt)
}

// Option configures storage operations
type Option func(*Options)

// Options contains configuration for storage operations
type Options struct {
	Card   string         // Optional: card namespace ("" = global)
	Locale string         // Optional: locale namespace inside Card
	Key    *string        // Optional: specific key (for Delete operations)
	TTL    *time.Duration // Optional: time-to-live for the data
}

// Namespace identifies where an entry lives. Backends switch on the
// concrete types below; nil is the global namespace.
type Namespace interface {
	namespace()
}

// CardNamespace holds every render of one card.
type CardNamespace struct {
	Card string
}

func (CardNamespace) namespace() {}

// LocaleNamespace holds the renders of one card in one locale.
type LocaleNamespace struct {
	Card   string
	Locale string
}

func (LocaleNamespace) namespace() {}

// Namespace returns the namespace selected by the options.
func (o *Options) Namespace() Namespace {
	switch {
	case o.Card == "":
		return nil
	case o.Locale == "":
		return CardNamespace{Card: o.Card}
	default:
		return LocaleNamespace{Card: o.Card, Locale: o.Locale}
	}
}

// Apply collects opts. A locale without a card is rejected with
// ErrInvalidOptions.
func Apply(opts ...Option) (*Options, error) {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	if options.Locale != "" && options.Card == "" {
		return nil, ErrInvalidOptions
	}
	if options.TTL != nil && *options.TTL < 0 {
		return nil, ErrInvalidOptions
	}
	return options, nil
}

// WithCard specifies the card namespace
func WithCard(name string) Option {
	return func(opts *Options) {
		opts.Card = name
	}
}

// WithCardLocale specifies the locale namespace of a card
func WithCardLocale(name, locale string) Option {
	return func(opts *Options) {
		opts.Card = name
		opts.Locale = locale
	}
}

// WithKey specifies a specific key for Delete operations
// If not provided, Delete removes the entire namespace
func WithKey(key string) Option {
	return func(opts *Options) {
		opts.Key = &key
	}
}

// WithTTL sets a time-to-live for the stored data
func WithTTL(ttl time.Duration) Option {
	return func(opts *Options) {
		opts.TTL = &ttl
	}
}

// Fetch returns the cached value of key, calling render and storing its
// result on a miss. A zero ttl caches without expiration.
func Fetch(ctx context.Context, s Storage, key string, ttl time.Duration, render func() ([]byte, error), opts ...Option) (data []byte, hit bool, err error) {
	item, err := s.Get(ctx, key, opts...)
	if err != nil {
		return nil, false, err
	}
	if item != nil {
		return item.Data, true, nil
	}
	data, err = render()
	if err != nil {
		return nil, false, err
	}
	if ttl > 0 {
		opts = append(opts[:len(opts):len(opts)], WithTTL(ttl))
	}
	if err := s.Set(ctx, key, data, opts...); err != nil {
		return nil, false, err
	}
	return data, false, nil
}

// Error types
var (
	// ErrInvalidOptions is returned when incompatible options are provided
	ErrInvalidOptions = errors.New("storage: invalid option combination")
)
