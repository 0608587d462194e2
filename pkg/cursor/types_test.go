package cursor_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jabrena/cursor-agents-go/pkg/cursor"
)

func TestAgentStatus_IsTerminal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status   cursor.AgentStatus
		terminal bool
	}{
		{cursor.StatusCreating, false},
		{cursor.StatusPending, false},
		{cursor.StatusRunning, false},
		{cursor.StatusFinished, true},
		{cursor.StatusCompleted, true},
		{cursor.StatusFailed, true},
		{cursor.StatusCancelled, true},
		{cursor.StatusError, true},
		{cursor.StatusExpired, true},
		// Case and whitespace from the wire are tolerated
		{cursor.AgentStatus("finished"), true},
		{cursor.AgentStatus(" RUNNING "), false},
		// Unknown statuses keep pollers watching
		{cursor.AgentStatus("REBOOTING"), false},
		{cursor.AgentStatus(""), false},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(string(testCase.status), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.terminal, testCase.status.IsTerminal())
		})
	}
}

func TestAgent_JSONShape(t *testing.T) {
	t.Parallel()

	payload := []byte(`{
		"id": "bc_abc123",
		"name": "Add a README",
		"status": "RUNNING",
		"source": {"repository": "https://github.com/org/repo", "ref": "main"},
		"target": {"branchName": "cursor/add-readme", "autoCreatePr": true, "prUrl": "https://github.com/org/repo/pull/7"},
		"createdAt": "2026-08-01T12:00:00Z"
	}`)

	var agent cursor.Agent

	err := json.Unmarshal(payload, &agent)
	require.NoError(t, err)

	assert.Equal(t, "bc_abc123", agent.ID)
	assert.Equal(t, cursor.StatusRunning, agent.Status)
	assert.Equal(t, "main", agent.Source.Ref)
	require.NotNil(t, agent.Target)
	assert.Equal(t, "cursor/add-readme", agent.Target.BranchName)
	assert.True(t, agent.Target.AutoCreatePR)
	assert.Nil(t, agent.UpdatedAt)
}

func TestLaunchAgentRequest_OmitsEmptyFields(t *testing.T) {
	t.Parallel()

	request := cursor.LaunchAgentRequest{
		Prompt: cursor.Prompt{Text: "Add a README"},
		Source: cursor.Source{Repository: "https://github.com/org/repo"},
	}

	data, err := json.Marshal(request)
	require.NoError(t, err)

	var decoded map[string]interface{}

	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err)

	assert.NotContains(t, decoded, "model")
	assert.NotContains(t, decoded, "target")

	source, ok := decoded["source"].(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, source, "ref")
}

func TestAgentList_JSONShape(t *testing.T) {
	t.Parallel()

	payload := []byte(`{"agents":[{"id":"bc_1","status":"FINISHED","source":{"repository":"r"},"createdAt":"2026-08-01T12:00:00Z"}],"nextCursor":"token"}`)

	var list cursor.AgentList

	err := json.Unmarshal(payload, &list)
	require.NoError(t, err)
	require.Len(t, list.Agents, 1)
	assert.Equal(t, "token", list.NextCursor)
	assert.True(t, list.Agents[0].Status.IsTerminal())
}
