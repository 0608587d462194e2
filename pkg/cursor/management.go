package cursor

import (
	"context"
	"strings"

	"github.com/jabrena/cursor-agents-go/pkg/outcome"
)

// DefaultBranch is the ref used when a launch does not name one.
const DefaultBranch = "main"

// AgentManagement wraps an AgentsClient behind the outcome container for
// the mutating operations: launch, follow-up, delete. Every method returns
// an Outcome instead of an (T, error) pair, so callers compose pipelines
// with Map/FlatMap and collapse them with Fold at the program boundary.
// Input validation failures surface as Failure outcomes carrying the
// package's static errors, never as panics.
type AgentManagement struct {
	client AgentsClient
}

// NewAgentManagement creates an AgentManagement facade over client.
func NewAgentManagement(client AgentsClient) *AgentManagement {
	if client == nil {
		panic("cursor: NewAgentManagement requires a non-nil client")
	}

	return &AgentManagement{client: client}
}

// Launch starts an agent from a prompt, model, and repository URL. The
// source ref defaults to DefaultBranch and a PR is auto-created when the
// agent completes.
func (m *AgentManagement) Launch(ctx context.Context, prompt, model, repository string) outcome.Outcome[LaunchResponse] {
	if strings.TrimSpace(prompt) == "" {
		return outcome.Failure[LaunchResponse](ErrPromptRequired)
	}

	if strings.TrimSpace(model) == "" {
		return outcome.Failure[LaunchResponse](ErrModelRequired)
	}

	if strings.TrimSpace(repository) == "" {
		return outcome.Failure[LaunchResponse](ErrRepositoryRequired)
	}

	request := &LaunchAgentRequest{
		Prompt: Prompt{Text: prompt},
		Source: Source{Repository: repository, Ref: DefaultBranch},
		Model:  model,
		Target: &Target{AutoCreatePR: true},
	}

	launched := outcome.RunCatching(func() (*Agent, error) {
		return m.client.Launch(ctx, request)
	})

	return outcome.Map(launched, func(agent *Agent) (LaunchResponse, error) {
		return LaunchResponse{ID: agent.ID, Status: agent.Status}, nil
	})
}

// FollowUp adds a follow-up prompt to an existing agent and yields the
// acknowledged agent ID.
func (m *AgentManagement) FollowUp(ctx context.Context, agentID, prompt string) outcome.Outcome[string] {
	if strings.TrimSpace(agentID) == "" {
		return outcome.Failure[string](ErrAgentIDRequired)
	}

	if strings.TrimSpace(prompt) == "" {
		return outcome.Failure[string](ErrPromptRequired)
	}

	request := &FollowUpRequest{Prompt: Prompt{Text: prompt}}

	followed := outcome.RunCatching(func() (*FollowUpResponse, error) {
		return m.client.FollowUp(ctx, agentID, request)
	})

	return outcome.Map(followed, func(resp *FollowUpResponse) (string, error) {
		return resp.ID, nil
	})
}

// Delete removes an agent and yields the acknowledged agent ID.
func (m *AgentManagement) Delete(ctx context.Context, agentID string) outcome.Outcome[string] {
	if strings.TrimSpace(agentID) == "" {
		return outcome.Failure[string](ErrAgentIDRequired)
	}

	deleted := outcome.RunCatching(func() (*DeleteAgentResponse, error) {
		return m.client.Delete(ctx, agentID)
	})

	return outcome.Map(deleted, func(resp *DeleteAgentResponse) (string, error) {
		return resp.ID, nil
	})
}
