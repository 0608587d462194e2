package cursor

import (
	"context"
	"errors"
	"fmt"

	"github.com/jabrena/cursor-agents-go/internal/constants"
)

// CacheType selects the backend for agent response caching.
type CacheType string

const (
	// CacheTypeMemory caches in-process. The right choice for a single
	// poller; entries die with the process.
	CacheTypeMemory CacheType = "memory"

	// CacheTypeNATS caches in a NATS JetStream KV bucket shared across
	// processes polling the same agents.
	CacheTypeNATS CacheType = "nats"

	// CacheTypeTiered layers an in-process cache over a shared NATS
	// bucket: reads hit memory first and backfill it from NATS.
	CacheTypeTiered CacheType = "tiered"

	// CacheTypeNone disables caching while keeping the cache plumbing in
	// place.
	CacheTypeNone CacheType = "none"
)

// Static errors for err113 compliance.
var (
	ErrNATSConfigRequired   = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCacheType = errors.New("unsupported cache type")
	ErrCacheDisabled        = errors.New("cache disabled")
)

// CacheConfig selects and tunes the cache backend for agent reads.
type CacheConfig struct {
	Type CacheType

	// Memory configures the in-process layer. Used by CacheTypeMemory and
	// as the first tier of CacheTypeTiered.
	Memory *MemoryCacheConfig

	// NATS configures the shared bucket. Required for CacheTypeNATS and
	// CacheTypeTiered.
	NATS *NATSKVConfig

	// Options applies to any backend. Nil means DefaultCacheOptions().
	Options *CacheOptions
}

// MemoryCacheConfig tunes the in-process cache layer.
type MemoryCacheConfig struct {
	// MaxSize bounds the number of entries; the entry closest to expiry
	// is evicted when full.
	MaxSize int
}

// DefaultCacheConfig returns the configuration used when Config.Cache is
// set without details: an in-process cache sized for agent status
// polling, with the short default TTL so terminal status transitions are
// observed promptly.
func DefaultCacheConfig() *CacheConfig {
	return &CacheConfig{
		Type:    CacheTypeMemory,
		Memory:  &MemoryCacheConfig{MaxSize: constants.DefaultCacheSize},
		Options: DefaultCacheOptions(),
	}
}

// TieredCacheConfig returns a configuration layering an in-process cache
// over a shared NATS bucket, for fleets of pollers watching the same
// agents. The memory tier is kept small; the bucket is the source of
// truth between processes.
func TieredCacheConfig(nats *NATSKVConfig) *CacheConfig {
	return &CacheConfig{
		Type:    CacheTypeTiered,
		Memory:  &MemoryCacheConfig{MaxSize: constants.TieredLocalCacheSize},
		NATS:    nats,
		Options: DefaultCacheOptions(),
	}
}

// NewCacheFromConfig creates the cache backend for config. A nil config
// gets the in-process default.
func NewCacheFromConfig(config *CacheConfig) (Cache, error) {
	if config == nil {
		config = DefaultCacheConfig()
	}

	switch config.Type {
	case CacheTypeMemory:
		return newMemoryCacheFromConfig(config.Memory), nil

	case CacheTypeNATS:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		return NewNATSKVCache(config.NATS)

	case CacheTypeTiered:
		if config.NATS == nil {
			return nil, ErrNATSConfigRequired
		}

		shared, err := NewNATSKVCache(config.NATS)
		if err != nil {
			return nil, err
		}

		return NewTieredCache(newMemoryCacheFromConfig(config.Memory), shared), nil

	case CacheTypeNone:
		return NewNoOpCache(), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCacheType, config.Type)
	}
}

func newMemoryCacheFromConfig(config *MemoryCacheConfig) Cache {
	size := constants.DefaultCacheSize
	if config != nil && config.MaxSize > 0 {
		size = config.MaxSize
	}

	return NewMemoryCache(size)
}

// NoOpCache satisfies Cache while storing nothing. It backs
// CacheTypeNone so callers can disable caching without conditionals.
type NoOpCache struct{}

// NewNoOpCache creates a cache that never stores anything.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always misses.
func (c *NoOpCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	return nil, ErrCacheDisabled
}

// Set discards the entry.
func (c *NoOpCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	return nil
}

// Delete is a no-op.
func (c *NoOpCache) Delete(ctx context.Context, key string) error {
	return nil
}

// Clear is a no-op.
func (c *NoOpCache) Clear(ctx context.Context) error {
	return nil
}

// Has always reports false.
func (c *NoOpCache) Has(ctx context.Context, key string) bool {
	return false
}

// TieredCache layers a fast local cache over a shared one. Agent status
// reads are the hot path: the local tier absorbs a single poller's
// repeat reads, the shared tier lets a fleet of pollers reuse each
// other's fetches.
type TieredCache struct {
	local  Cache
	shared Cache
}

// NewTieredCache creates a two-tier cache reading local first.
func NewTieredCache(local, shared Cache) *TieredCache {
	return &TieredCache{local: local, shared: shared}
}

// Get checks the local tier, then the shared one. A shared hit is
// copied into the local tier on the way out.
func (c *TieredCache) Get(ctx context.Context, key string) (*CacheEntry, error) {
	entry, err := c.local.Get(ctx, key)
	if err == nil {
		return entry, nil
	}

	entry, err = c.shared.Get(ctx, key)
	if err != nil {
		return nil, ErrCacheKeyNotFound
	}

	_ = c.local.Set(ctx, key, entry)

	return entry, nil
}

// Set writes both tiers. The shared tier's error wins because it is the
// one other processes depend on.
func (c *TieredCache) Set(ctx context.Context, key string, entry *CacheEntry) error {
	_ = c.local.Set(ctx, key, entry)

	return c.shared.Set(ctx, key, entry)
}

// Delete removes the entry from both tiers.
func (c *TieredCache) Delete(ctx context.Context, key string) error {
	_ = c.local.Delete(ctx, key)

	return c.shared.Delete(ctx, key)
}

// Clear empties both tiers.
func (c *TieredCache) Clear(ctx context.Context) error {
	_ = c.local.Clear(ctx)

	return c.shared.Clear(ctx)
}

// Has reports whether either tier holds the key.
func (c *TieredCache) Has(ctx context.Context, key string) bool {
	return c.local.Has(ctx, key) || c.shared.Has(ctx, key)
}
