// Package cursorclient provides the main entry point for creating Cursor
// API clients.
package cursorclient

import (
	"fmt"
	"strings"

	"github.com/jabrena/cursor-agents-go/internal/client"
	"github.com/jabrena/cursor-agents-go/internal/constants"
	"github.com/jabrena/cursor-agents-go/pkg/cursor"
)

// New creates a new Cursor API client from config.
func New(config *cursor.Config) (cursor.Client, error) {
	if config == nil {
		return nil, cursor.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, cursor.ErrAPIEndpointRequired
	}

	// Normalize API endpoint
	apiEndpoint := strings.TrimSuffix(config.APIEndpoint, "/")
	if !strings.HasPrefix(apiEndpoint, "http://") && !strings.HasPrefix(apiEndpoint, "https://") {
		apiEndpoint = "https://" + apiEndpoint
	}

	config.APIEndpoint = apiEndpoint

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithAPIKey creates a client for the production endpoint with a
// static API key.
func NewWithAPIKey(apiKey string) (cursor.Client, error) {
	if apiKey == "" {
		return nil, cursor.ErrAPIKeyRequired
	}

	return New(&cursor.Config{
		APIEndpoint: constants.DefaultAPIEndpoint,
		APIKey:      apiKey,
	})
}

// NewWithEndpoint creates a client for a custom endpoint with a static
// API key. An empty apiKey sends requests unauthenticated, which is
// useful against local test servers.
func NewWithEndpoint(endpoint, apiKey string) (cursor.Client, error) {
	return New(&cursor.Config{
		APIEndpoint: endpoint,
		APIKey:      apiKey,
	})
}
