package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jabrena/cursor-agents-go/internal/client"
	"github.com/jabrena/cursor-agents-go/internal/constants"
	"github.com/jabrena/cursor-agents-go/pkg/cursor"
)

func TestNew_RequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := client.New(nil)
	require.ErrorIs(t, err, cursor.ErrConfigRequired)
}

func TestNew_RequiresEndpoint(t *testing.T) {
	t.Parallel()

	_, err := client.New(&cursor.Config{})
	require.ErrorIs(t, err, cursor.ErrAPIEndpointRequired)
}

func TestNew_SendsBearerKey(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "Bearer test-key", request.Header.Get("Authorization"))
		_ = json.NewEncoder(writer).Encode(cursor.AgentList{})
	}))
	defer server.Close()

	c, err := client.New(&cursor.Config{
		APIEndpoint: server.URL,
		APIKey:      "test-key",
	})
	require.NoError(t, err)

	_, err = c.Agents().List(context.Background(), nil)
	require.NoError(t, err)
}

func TestNew_WithCacheConfig(t *testing.T) {
	t.Parallel()

	requests := 0

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests++
		_ = json.NewEncoder(writer).Encode(cursor.Agent{ID: "bc_1", Status: cursor.StatusRunning})
	}))
	defer server.Close()

	c, err := client.New(&cursor.Config{
		APIEndpoint: server.URL,
		Cache: &cursor.CacheConfig{
			Type:   cursor.CacheTypeMemory,
			Memory: &cursor.MemoryCacheConfig{MaxSize: 10},
		},
	})
	require.NoError(t, err)

	_, err = c.Agents().Get(context.Background(), "bc_1")
	require.NoError(t, err)

	_, err = c.Agents().Get(context.Background(), "bc_1")
	require.NoError(t, err)

	assert.Equal(t, 1, requests)
}

func TestNew_InvalidCacheType(t *testing.T) {
	t.Parallel()

	_, err := client.New(&cursor.Config{
		APIEndpoint: "https://api.cursor.com",
		Cache:       &cursor.CacheConfig{Type: cursor.CacheType("redis")},
	})
	require.ErrorIs(t, err, cursor.ErrUnsupportedCacheType)
}

func TestNew_StampsRequestID(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requestID := request.Header.Get(constants.RequestIDHeader)
		require.NotEmpty(t, requestID)

		_, parseErr := uuid.Parse(requestID)
		assert.NoError(t, parseErr)

		_ = json.NewEncoder(writer).Encode(cursor.AgentList{})
	}))
	defer server.Close()

	c, err := client.New(&cursor.Config{APIEndpoint: server.URL})
	require.NoError(t, err)

	_, err = c.Agents().List(context.Background(), nil)
	require.NoError(t, err)
}

func TestNew_RunsConfiguredInterceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "integration-suite", request.Header.Get("X-Client-Tag"))
		_ = json.NewEncoder(writer).Encode(cursor.AgentList{})
	}))
	defer server.Close()

	responses := 0

	chain := cursor.NewInterceptorChain()
	chain.AddRequestInterceptor(cursor.HeaderInterceptor(map[string]string{"X-Client-Tag": "integration-suite"}))
	chain.AddResponseInterceptor(func(ctx context.Context, req *cursor.Request, resp *cursor.Response) error {
		responses++

		return nil
	})

	c, err := client.New(&cursor.Config{
		APIEndpoint:  server.URL,
		Interceptors: chain,
	})
	require.NoError(t, err)

	_, err = c.Agents().List(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, responses)
}

func TestClient_ResourceAccessors(t *testing.T) {
	t.Parallel()

	c, err := client.New(&cursor.Config{APIEndpoint: "https://api.cursor.com"})
	require.NoError(t, err)

	assert.NotNil(t, c.Agents())
	assert.NotNil(t, c.Cursors())
}
