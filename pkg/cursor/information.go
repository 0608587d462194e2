package cursor

import (
	"context"
	"strings"

	"github.com/jabrena/cursor-agents-go/pkg/outcome"
)

// AgentInformation wraps an AgentsClient behind the outcome container for
// the read-only operations: listing agents, checking status, and fetching
// conversations. See AgentManagement for the mutating counterpart.
type AgentInformation struct {
	client AgentsClient
}

// NewAgentInformation creates an AgentInformation facade over client.
func NewAgentInformation(client AgentsClient) *AgentInformation {
	if client == nil {
		panic("cursor: NewAgentInformation requires a non-nil client")
	}

	return &AgentInformation{client: client}
}

// List returns a page of agents. A nil params lists with server defaults.
func (i *AgentInformation) List(ctx context.Context, params *ListParams) outcome.Outcome[*AgentList] {
	return outcome.RunCatching(func() (*AgentList, error) {
		return i.client.List(ctx, params)
	})
}

// Status fetches the current status of an agent.
func (i *AgentInformation) Status(ctx context.Context, agentID string) outcome.Outcome[AgentStatus] {
	if strings.TrimSpace(agentID) == "" {
		return outcome.Failure[AgentStatus](ErrAgentIDRequired)
	}

	fetched := outcome.RunCatching(func() (*Agent, error) {
		return i.client.Get(ctx, agentID)
	})

	return outcome.Map(fetched, func(agent *Agent) (AgentStatus, error) {
		return agent.Status, nil
	})
}

// Get fetches the full agent resource.
func (i *AgentInformation) Get(ctx context.Context, agentID string) outcome.Outcome[*Agent] {
	if strings.TrimSpace(agentID) == "" {
		return outcome.Failure[*Agent](ErrAgentIDRequired)
	}

	return outcome.RunCatching(func() (*Agent, error) {
		return i.client.Get(ctx, agentID)
	})
}

// Conversation fetches the agent's message history.
func (i *AgentInformation) Conversation(ctx context.Context, agentID string) outcome.Outcome[*Conversation] {
	if strings.TrimSpace(agentID) == "" {
		return outcome.Failure[*Conversation](ErrAgentIDRequired)
	}

	return outcome.RunCatching(func() (*Conversation, error) {
		return i.client.Conversation(ctx, agentID)
	})
}
