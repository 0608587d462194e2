package cursor

import (
	"strings"
	"time"
)

// AgentStatus represents the lifecycle state of a background agent.
type AgentStatus string

// Agent lifecycle states.
const (
	StatusCreating  AgentStatus = "CREATING"
	StatusPending   AgentStatus = "PENDING"
	StatusRunning   AgentStatus = "RUNNING"
	StatusFinished  AgentStatus = "FINISHED"
	StatusCompleted AgentStatus = "COMPLETED"
	StatusFailed    AgentStatus = "FAILED"
	StatusCancelled AgentStatus = "CANCELLED"
	StatusError     AgentStatus = "ERROR"
	StatusExpired   AgentStatus = "EXPIRED"
)

// IsTerminal reports whether the status indicates the agent has finished
// and will not make further progress. Unknown statuses are treated as
// non-terminal so that pollers keep watching rather than give up early.
func (s AgentStatus) IsTerminal() bool {
	switch AgentStatus(strings.ToUpper(strings.TrimSpace(string(s)))) {
	case StatusFinished, StatusCompleted, StatusFailed, StatusCancelled, StatusError, StatusExpired:
		return true
	case StatusCreating, StatusPending, StatusRunning:
		return false
	default:
		return false
	}
}

// Agent represents a background agent working on a repository.
type Agent struct {
	ID        string      `json:"id"                  yaml:"id"`
	Name      string      `json:"name,omitempty"      yaml:"name,omitempty"`
	Status    AgentStatus `json:"status"              yaml:"status"`
	Source    Source      `json:"source"              yaml:"source"`
	Target    *Target     `json:"target,omitempty"    yaml:"target,omitempty"`
	Summary   string      `json:"summary,omitempty"   yaml:"summary,omitempty"`
	CreatedAt time.Time   `json:"createdAt"           yaml:"createdAt"`
	UpdatedAt *time.Time  `json:"updatedAt,omitempty" yaml:"updatedAt,omitempty"`
}

// Source identifies the repository and ref an agent starts from.
type Source struct {
	Repository string `json:"repository"    yaml:"repository"`
	Ref        string `json:"ref,omitempty" yaml:"ref,omitempty"`
}

// Target describes where an agent delivers its work.
type Target struct {
	BranchName   string `json:"branchName,omitempty"   yaml:"branchName,omitempty"`
	URL          string `json:"url,omitempty"          yaml:"url,omitempty"`
	AutoCreatePR bool   `json:"autoCreatePr"           yaml:"autoCreatePr"`
	PRURL        string `json:"prUrl,omitempty"        yaml:"prUrl,omitempty"`
}

// Prompt carries the instructions for an agent, with optional images.
type Prompt struct {
	Text   string  `json:"text"             yaml:"text"`
	Images []Image `json:"images,omitempty" yaml:"images,omitempty"`
}

// Image is an inline image attached to a prompt.
type Image struct {
	Data      []byte          `json:"data"                yaml:"data"`
	Dimension *ImageDimension `json:"dimension,omitempty" yaml:"dimension,omitempty"`
}

// ImageDimension holds pixel dimensions for an attached image.
type ImageDimension struct {
	Width  int `json:"width"  yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// LaunchAgentRequest represents a request to launch a new agent.
type LaunchAgentRequest struct {
	// Prompt carries the instructions the agent executes.
	Prompt Prompt `json:"prompt" yaml:"prompt"`
	// Source must name the repository; Ref defaults to the server-side default branch.
	Source Source `json:"source" yaml:"source"`
	// Model optionally selects the LLM model (e.g., "claude-4-sonnet").
	Model string `json:"model,omitempty" yaml:"model,omitempty"`
	// Target optionally configures branch naming and PR auto-creation.
	Target *Target `json:"target,omitempty" yaml:"target,omitempty"`
}

// FollowUpRequest adds a follow-up instruction to a running agent.
type FollowUpRequest struct {
	Prompt Prompt `json:"prompt" yaml:"prompt"`
}

// FollowUpResponse acknowledges a follow-up by echoing the agent ID.
type FollowUpResponse struct {
	ID string `json:"id" yaml:"id"`
}

// DeleteAgentResponse acknowledges a deletion by echoing the agent ID.
type DeleteAgentResponse struct {
	ID string `json:"id" yaml:"id"`
}

// AgentList is a cursor-paginated page of agents.
type AgentList struct {
	Agents     []Agent `json:"agents"               yaml:"agents"`
	NextCursor string  `json:"nextCursor,omitempty" yaml:"nextCursor,omitempty"`
}

// Conversation is the message history of an agent.
type Conversation struct {
	ID       string    `json:"id"       yaml:"id"`
	Messages []Message `json:"messages" yaml:"messages"`
}

// Message is a single conversation entry.
type Message struct {
	ID   string `json:"id"   yaml:"id"`
	Type string `json:"type" yaml:"type"`
	Text string `json:"text" yaml:"text"`
}

// LaunchResponse is the projection of a launched Agent used by the
// AgentManagement facade: just enough to identify and track the agent.
type LaunchResponse struct {
	ID     string      `json:"id"     yaml:"id"`
	Status AgentStatus `json:"status" yaml:"status"`
}
