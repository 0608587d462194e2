package cursor

import (
	"context"
	"time"
)

// AgentsClient provides access to background-agent operations.
type AgentsClient interface {
	// Launch creates a new agent. The server responds with the full Agent
	// resource in CREATING state.
	Launch(ctx context.Context, request *LaunchAgentRequest) (*Agent, error)

	// Get fetches the current state of an agent.
	Get(ctx context.Context, agentID string) (*Agent, error)

	// List returns a page of agents; params controls limit and cursor.
	List(ctx context.Context, params *ListParams) (*AgentList, error)

	// FollowUp adds a follow-up prompt to a running agent.
	FollowUp(ctx context.Context, agentID string, request *FollowUpRequest) (*FollowUpResponse, error)

	// Delete removes an agent.
	Delete(ctx context.Context, agentID string) (*DeleteAgentResponse, error)

	// Conversation returns the agent's message history.
	Conversation(ctx context.Context, agentID string) (*Conversation, error)
}

// CursorsClient provides access to the demo cursors resource.
type CursorsClient interface {
	List(ctx context.Context, params *ListParams) (*CursorList, error)
	Create(ctx context.Context, request *CreateCursorRequest) (*Cursor, error)
	Get(ctx context.Context, cursorID string) (*Cursor, error)
	Update(ctx context.Context, cursorID string, request *UpdateCursorRequest) (*Cursor, error)
	Delete(ctx context.Context, cursorID string) error
	Move(ctx context.Context, cursorID string, request *MoveCursorRequest) (*Cursor, error)
}

// Client is the top-level interface for the Cursor API.
type Client interface {
	Agents() AgentsClient
	Cursors() CursorsClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a cursor.Client.
//
// The Cursor API authenticates every request with a static bearer key
// ("Authorization: Bearer <APIKey>"); there is no token exchange or
// refresh flow. Per-request timeouts should generally be controlled via
// the context passed to client methods; HTTPTimeout bounds the underlying
// transport. Retry behavior for transient failures (>=500, 429, and
// connection errors) can be tuned via RetryMax/RetryWaitMin/RetryWaitMax.
type Config struct {
	// APIEndpoint is the base URL for the API (e.g., "https://api.cursor.com").
	// cursorclient.New normalizes this value by trimming a trailing slash and
	// adding "https://" if no scheme is present.
	APIEndpoint string

	// APIKey is the static bearer key used on every request. Requests are
	// sent unauthenticated when empty (useful against local test servers).
	APIKey string

	// HTTPTimeout bounds individual HTTP requests. Zero means the
	// transport default.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of retries for transient failures.
	// If 0, a sensible default is used by the client.
	RetryMax int

	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger
	// is provided.
	Debug bool

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// Cache optionally enables caching of agent status reads. Nil
	// disables caching.
	Cache *CacheConfig

	// Interceptors optionally supplies an interceptor chain that runs
	// around every request (rate limiting, metrics, circuit breaking,
	// custom headers). A request-ID interceptor is always appended so
	// client and server logs can be correlated; nil gets a chain with
	// just that.
	Interceptors *InterceptorChain
}
