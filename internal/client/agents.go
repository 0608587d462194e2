package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/jabrena/cursor-agents-go/internal/constants"
	"github.com/jabrena/cursor-agents-go/internal/http"
	"github.com/jabrena/cursor-agents-go/pkg/cursor"
)

// AgentsClient implements cursor.AgentsClient.
type AgentsClient struct {
	httpClient *http.Client
	cache      *cursor.CacheManager
	policy     *cursor.CachingPolicy
}

// NewAgentsClient creates a new agents client. A nil cache disables
// response caching.
func NewAgentsClient(httpClient *http.Client, cache *cursor.CacheManager) *AgentsClient {
	return &AgentsClient{
		httpClient: httpClient,
		cache:      cache,
		policy:     cursor.DefaultCachingPolicy(),
	}
}

// Launch implements cursor.AgentsClient.Launch.
func (c *AgentsClient) Launch(ctx context.Context, request *cursor.LaunchAgentRequest) (*cursor.Agent, error) {
	resp, err := c.httpClient.Post(ctx, constants.AgentsBasePath, request)
	if err != nil {
		return nil, fmt.Errorf("launching agent: %w", err)
	}

	var agent cursor.Agent
	if err := json.Unmarshal(resp.Body, &agent); err != nil {
		return nil, fmt.Errorf("parsing agent response: %w", err)
	}

	c.invalidateList(ctx)

	return &agent, nil
}

// Get implements cursor.AgentsClient.Get. Successful reads are cached
// under the request path when a cache is configured.
func (c *AgentsClient) Get(ctx context.Context, agentID string) (*cursor.Agent, error) {
	path := fmt.Sprintf("%s/%s", constants.AgentsBasePath, agentID)

	if body, ok := c.cachedGet(ctx, path); ok {
		var agent cursor.Agent
		if err := json.Unmarshal(body, &agent); err == nil {
			return &agent, nil
		}
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting agent: %w", err)
	}

	var agent cursor.Agent
	if err := json.Unmarshal(resp.Body, &agent); err != nil {
		return nil, fmt.Errorf("parsing agent response: %w", err)
	}

	c.cacheSet(ctx, path, resp)

	return &agent, nil
}

// List implements cursor.AgentsClient.List.
func (c *AgentsClient) List(ctx context.Context, params *cursor.ListParams) (*cursor.AgentList, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, constants.AgentsBasePath, query)
	if err != nil {
		return nil, fmt.Errorf("listing agents: %w", err)
	}

	var result cursor.AgentList
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing agents list response: %w", err)
	}

	return &result, nil
}

// FollowUp implements cursor.AgentsClient.FollowUp.
func (c *AgentsClient) FollowUp(ctx context.Context, agentID string, request *cursor.FollowUpRequest) (*cursor.FollowUpResponse, error) {
	path := fmt.Sprintf("%s/%s/follow-up", constants.AgentsBasePath, agentID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("adding follow-up: %w", err)
	}

	var result cursor.FollowUpResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing follow-up response: %w", err)
	}

	c.invalidate(ctx, agentID)

	return &result, nil
}

// Delete implements cursor.AgentsClient.Delete.
func (c *AgentsClient) Delete(ctx context.Context, agentID string) (*cursor.DeleteAgentResponse, error) {
	path := fmt.Sprintf("%s/%s", constants.AgentsBasePath, agentID)

	resp, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("deleting agent: %w", err)
	}

	var result cursor.DeleteAgentResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing delete response: %w", err)
	}

	c.invalidate(ctx, agentID)

	return &result, nil
}

// Conversation implements cursor.AgentsClient.Conversation.
func (c *AgentsClient) Conversation(ctx context.Context, agentID string) (*cursor.Conversation, error) {
	path := fmt.Sprintf("%s/%s/conversation", constants.AgentsBasePath, agentID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting conversation: %w", err)
	}

	var conversation cursor.Conversation
	if err := json.Unmarshal(resp.Body, &conversation); err != nil {
		return nil, fmt.Errorf("parsing conversation response: %w", err)
	}

	return &conversation, nil
}

func (c *AgentsClient) cachedGet(ctx context.Context, path string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}

	key := c.cache.GetCacheKey("GET", path, nil)

	body, err := c.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}

	return body, true
}

func (c *AgentsClient) cacheSet(ctx context.Context, path string, resp *http.Response) {
	if c.cache == nil || !c.policy.ShouldCache("GET", path, resp.StatusCode) {
		return
	}

	key := c.cache.GetCacheKey("GET", path, nil)
	_ = c.cache.SetWithETag(ctx, key, resp.Body, resp.Headers.Get("ETag"), 0)
}

func (c *AgentsClient) invalidate(ctx context.Context, agentID string) {
	if c.cache == nil {
		return
	}

	path := fmt.Sprintf("%s/%s", constants.AgentsBasePath, agentID)
	_ = c.cache.Delete(ctx, c.cache.GetCacheKey("GET", path, nil))
}

func (c *AgentsClient) invalidateList(ctx context.Context) {
	if c.cache == nil {
		return
	}

	_ = c.cache.Delete(ctx, c.cache.GetCacheKey("GET", constants.AgentsBasePath, nil))
}
