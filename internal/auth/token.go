// Package auth provides credential management for the Cursor API.
//
// The API authenticates with static bearer keys, so the token manager is
// a thin concurrency-safe holder rather than a refresh loop. The
// TokenManager interface keeps the HTTP layer decoupled from how the key
// is sourced.
package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
)

// Static errors for err113 compliance.
var (
	ErrNoAPIKey = errors.New("no API key set")
)

// TokenManager provides the bearer token for outgoing requests.
type TokenManager interface {
	// GetToken returns the current bearer token.
	GetToken(ctx context.Context) (string, error)
}

// APIKeyTokenManager is a TokenManager backed by a static API key.
type APIKeyTokenManager struct {
	mu  sync.RWMutex
	key string
}

// NewAPIKeyTokenManager creates a token manager holding key. The key may
// be empty; GetToken then fails until SetKey is called.
func NewAPIKeyTokenManager(key string) *APIKeyTokenManager {
	return &APIKeyTokenManager{key: strings.TrimSpace(key)}
}

// GetToken returns the API key.
func (m *APIKeyTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.key == "" {
		return "", ErrNoAPIKey
	}

	return m.key, nil
}

// SetKey replaces the API key.
func (m *APIKeyTokenManager) SetKey(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.key = strings.TrimSpace(key)
}

// HasKey reports whether a key is set.
func (m *APIKeyTokenManager) HasKey() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.key != ""
}
