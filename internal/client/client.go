// Package client implements the cursor.Client interface over the HTTP
// transport.
package client

import (
	"fmt"

	"github.com/jabrena/cursor-agents-go/internal/auth"
	"github.com/jabrena/cursor-agents-go/internal/constants"
	"github.com/jabrena/cursor-agents-go/internal/http"
	"github.com/jabrena/cursor-agents-go/pkg/cursor"
)

// Client implements the cursor.Client interface.
type Client struct {
	httpClient   *http.Client
	tokenManager auth.TokenManager
	baseURL      string
	logger       cursor.Logger

	// Resource clients
	agents  cursor.AgentsClient
	cursors cursor.CursorsClient
}

// New creates a new Cursor API client from config. The endpoint must
// already be normalized (scheme present, no trailing slash).
func New(config *cursor.Config) (*Client, error) {
	if config == nil {
		return nil, cursor.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, cursor.ErrAPIEndpointRequired
	}

	var tokenManager auth.TokenManager
	if config.APIKey != "" {
		tokenManager = auth.NewAPIKeyTokenManager(config.APIKey)
	}

	opts := []http.Option{}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithHTTPTimeout(config.HTTPTimeout))
	}

	retryMax := config.RetryMax
	if retryMax == 0 {
		retryMax = constants.DefaultRetryMax
	}

	retryWaitMin := config.RetryWaitMin
	if retryWaitMin == 0 {
		retryWaitMin = constants.DefaultRetryWaitMin
	}

	retryWaitMax := config.RetryWaitMax
	if retryWaitMax == 0 {
		retryWaitMax = constants.DefaultRetryWaitMax
	}

	opts = append(opts, http.WithRetryConfig(retryMax, retryWaitMin, retryWaitMax))

	interceptors := config.Interceptors
	if interceptors == nil {
		interceptors = cursor.NewInterceptorChain()
	}

	interceptors.AddRequestInterceptor(cursor.RequestIDInterceptor())
	opts = append(opts, http.WithInterceptors(interceptors))

	httpClient := http.NewClient(config.APIEndpoint, tokenManager, opts...)

	var cacheManager *cursor.CacheManager

	if config.Cache != nil {
		cache, err := cursor.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, fmt.Errorf("failed to create cache: %w", err)
		}

		cacheManager = cursor.NewCacheManager(cache, config.Cache.Options)
	}

	client := &Client{
		httpClient:   httpClient,
		tokenManager: tokenManager,
		baseURL:      config.APIEndpoint,
		logger:       config.Logger,
	}

	client.agents = NewAgentsClient(httpClient, cacheManager)
	client.cursors = NewCursorsClient(httpClient)

	return client, nil
}

// Agents returns the agents resource client.
func (c *Client) Agents() cursor.AgentsClient {
	return c.agents
}

// Cursors returns the demo cursors resource client.
func (c *Client) Cursors() cursor.CursorsClient {
	return c.cursors
}
