package cursor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/nats-io/nats.go"
)

// NATSKVConfig configures the NATS JetStream key-value cache backend.
type NATSKVConfig struct {
	// URL is the NATS server URL (e.g., nats://localhost:4222).
	URL string

	// Bucket is the KV bucket name. Created if it does not exist.
	Bucket string

	// TTL is the bucket-level time-to-live applied on creation. Zero
	// means entries never expire at the bucket level; per-entry expiry
	// still applies.
	TTL time.Duration

	// Credentials is an optional path to a NATS credentials file.
	Credentials string
}

// natsKVEntry is the stored wire form of a CacheEntry.
type natsKVEntry struct {
	Data      []byte    `json:"data"`
	ETag      string    `json:"etag,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NATSKVCache is a cache backed by a NATS JetStream key-value bucket,
// letting several clients share one cache.
type NATSKVCache struct {
	conn *nats.Conn
	kv   nats.KeyValue
}

// NATS KV keys cannot contain every character a cache key can; the invalid
// ones are replaced with underscores.
var natsKeySanitizer = regexp.MustCompile(`[^-/_=.a-zA-Z0-9]`)

// NewNATSKVCache connects to the NATS server and binds (or creates) the
// configured bucket.
func NewNATSKVCache(config *NATSKVConfig) (*NATSKVCache, error) {
	if config == nil {
		return nil, ErrNATSConfigRequired
	}

	opts := []nats.Option{nats.Name("cursor-agents-cache")}
	if config.Credentials != "" {
		opts = append(opts, nats.UserCredentials(config.Credentials))
	}

	conn, err := nats.Connect(config.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	kv, err := js.KeyValue(config.Bucket)
	if errors.Is(err, nats.ErrBucketNotFound) {
		kv, err = js.CreateKeyValue(&nats.KeyValueConfig{
			Bucket: config.Bucket,
			TTL:    config.TTL,
		})
	}

	if err != nil {
		conn.Close()

		return nil, fmt.Errorf("failed to bind KV bucket %q: %w", config.Bucket, err)
	}

	return &NATSKVCache{conn: conn, kv: kv}, nil
}

// Get retrieves an entry from the bucket. Expired entries are purged and
// reported as stale.
func (c *NATSKVCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	kvEntry, err := c.kv.Get(sanitizeNATSKey(key))
	if err != nil {
		if errors.Is(err, nats.ErrKeyNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrCacheKeyNotFound, key)
		}

		return nil, fmt.Errorf("failed to get key %q: %w", key, err)
	}

	var stored natsKVEntry

	err = json.Unmarshal(kvEntry.Value(), &stored)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache entry: %w", err)
	}

	entry := &CacheEntry{
		Data:      stored.Data,
		ETag:      stored.ETag,
		ExpiresAt: stored.ExpiresAt,
	}

	if entry.Expired() {
		_ = c.kv.Delete(sanitizeNATSKey(key))

		return nil, fmt.Errorf("%w: %s", ErrCacheEntryStale, key)
	}

	return entry, nil
}

// Set stores an entry in the bucket.
func (c *NATSKVCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	stored := natsKVEntry{
		Data:      entry.Data,
		ETag:      entry.ETag,
		ExpiresAt: entry.ExpiresAt,
	}

	data, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	_, err = c.kv.Put(sanitizeNATSKey(key), data)
	if err != nil {
		return fmt.Errorf("failed to put key %q: %w", key, err)
	}

	return nil
}

// Delete removes an entry from the bucket.
func (c *NATSKVCache) Delete(ctx context.Context, key string) error {
	err := c.kv.Delete(sanitizeNATSKey(key))
	if err != nil && !errors.Is(err, nats.ErrKeyNotFound) {
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}

	return nil
}

// Clear purges every key in the bucket.
func (c *NATSKVCache) Clear(ctx context.Context) error {
	keys, err := c.kv.Keys()
	if err != nil {
		if errors.Is(err, nats.ErrNoKeysFound) {
			return nil
		}

		return fmt.Errorf("failed to list keys: %w", err)
	}

	for _, key := range keys {
		err = c.kv.Purge(key)
		if err != nil {
			return fmt.Errorf("failed to purge key %q: %w", key, err)
		}
	}

	return nil
}

// Has reports whether a non-expired entry exists for key.
func (c *NATSKVCache) Has(ctx context.Context, key string) bool {
	_, err := c.Get(ctx, key)

	return err == nil
}

// Close releases the NATS connection.
func (c *NATSKVCache) Close() error {
	c.conn.Close()

	return nil
}

func sanitizeNATSKey(key string) string {
	return natsKeySanitizer.ReplaceAllString(key, "_")
}
