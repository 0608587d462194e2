package cursor

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jabrena/cursor-agents-go/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrUnsupportedResourceType  = errors.New("unsupported resource type")
	ErrUnsupportedOperationType = errors.New("unsupported operation type")
	ErrInvalidDataTypeAgent     = errors.New("invalid data type for agent operation")
	ErrInvalidDataTypeCursor    = errors.New("invalid data type for cursor operation")
)

// FollowUpData pairs an agent ID with the follow-up request for batch
// execution.
type FollowUpData struct {
	AgentID string
	Request *FollowUpRequest
}

// UpdateCursorData pairs a cursor ID with the update request for batch
// execution.
type UpdateCursorData struct {
	CursorID string
	Request  *UpdateCursorRequest
}

// BatchOperation represents a single operation in a batch.
type BatchOperation struct {
	ID       string
	Type     string // "launch", "get", "follow-up", "delete", "conversation", "create", "update", "move"
	Resource string // "agent" or "cursor"
	Data     interface{}
	Callback func(result *BatchResult)
}

// BatchResult represents the result of a batch operation.
type BatchResult struct {
	ID       string
	Success  bool
	Data     interface{}
	Error    error
	Duration time.Duration
}

// BatchExecutor executes batch operations with bounded concurrency. It is
// the bulk counterpart of the per-call clients: launching a fleet of
// agents across repositories, polling them, or cleaning them up in one
// call.
type BatchExecutor struct {
	client      Client
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a new batch executor.
func NewBatchExecutor(client Client, concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = constants.DefaultConcurrencyLimit
	}

	return &BatchExecutor{
		client:      client,
		concurrency: concurrency,
		timeout:     constants.DefaultHTTPTimeout,
	}
}

// SetTimeout sets the per-operation timeout.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs a batch of operations. Results are positionally aligned
// with operations; individual failures are recorded per result, never
// returned as the batch error.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) ([]BatchResult, error) {
	results := make([]BatchResult, len(operations))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, b.concurrency)

	for index, operation := range operations {
		waitGroup.Add(1)

		go func(index int, operation BatchOperation) {
			defer waitGroup.Done()

			// Acquire semaphore
			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			opCtx, cancel := context.WithTimeout(ctx, b.timeout)
			defer cancel()

			start := time.Now()
			result := b.executeOperation(opCtx, operation)
			result.Duration = time.Since(start)
			results[index] = *result

			if operation.Callback != nil {
				operation.Callback(result)
			}
		}(index, operation)
	}

	waitGroup.Wait()

	return results, nil
}

// executeOperation executes a single operation.
func (b *BatchExecutor) executeOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	result := &BatchResult{
		ID: operation.ID,
	}

	switch operation.Resource {
	case "agent":
		result = b.executeAgentOperation(ctx, operation)
	case "cursor":
		result = b.executeCursorOperation(ctx, operation)
	default:
		result.Success = false
		result.Error = fmt.Errorf("%w: %s", ErrUnsupportedResourceType, operation.Resource)
	}

	return result
}

func (b *BatchExecutor) executeAgentOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	result := &BatchResult{ID: operation.ID}

	var (
		data interface{}
		err  error
	)

	switch operation.Type {
	case "launch":
		if req, ok := operation.Data.(*LaunchAgentRequest); ok {
			data, err = b.client.Agents().Launch(ctx, req)
		} else {
			err = fmt.Errorf("%w launch", ErrInvalidDataTypeAgent)
		}
	case "get":
		if agentID, ok := operation.Data.(string); ok {
			data, err = b.client.Agents().Get(ctx, agentID)
		} else {
			err = fmt.Errorf("%w get", ErrInvalidDataTypeAgent)
		}
	case "follow-up":
		if followUp, ok := operation.Data.(*FollowUpData); ok {
			data, err = b.client.Agents().FollowUp(ctx, followUp.AgentID, followUp.Request)
		} else {
			err = fmt.Errorf("%w follow-up", ErrInvalidDataTypeAgent)
		}
	case "delete":
		if agentID, ok := operation.Data.(string); ok {
			data, err = b.client.Agents().Delete(ctx, agentID)
		} else {
			err = fmt.Errorf("%w delete", ErrInvalidDataTypeAgent)
		}
	case "conversation":
		if agentID, ok := operation.Data.(string); ok {
			data, err = b.client.Agents().Conversation(ctx, agentID)
		} else {
			err = fmt.Errorf("%w conversation", ErrInvalidDataTypeAgent)
		}
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedOperationType, operation.Type)
	}

	result.Success = err == nil
	result.Data = data
	result.Error = err

	return result
}

func (b *BatchExecutor) executeCursorOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	result := &BatchResult{ID: operation.ID}

	var (
		data interface{}
		err  error
	)

	switch operation.Type {
	case "create":
		if req, ok := operation.Data.(*CreateCursorRequest); ok {
			data, err = b.client.Cursors().Create(ctx, req)
		} else {
			err = fmt.Errorf("%w create", ErrInvalidDataTypeCursor)
		}
	case "get":
		if cursorID, ok := operation.Data.(string); ok {
			data, err = b.client.Cursors().Get(ctx, cursorID)
		} else {
			err = fmt.Errorf("%w get", ErrInvalidDataTypeCursor)
		}
	case "update":
		if update, ok := operation.Data.(*UpdateCursorData); ok {
			data, err = b.client.Cursors().Update(ctx, update.CursorID, update.Request)
		} else {
			err = fmt.Errorf("%w update", ErrInvalidDataTypeCursor)
		}
	case "delete":
		if cursorID, ok := operation.Data.(string); ok {
			err = b.client.Cursors().Delete(ctx, cursorID)
		} else {
			err = fmt.Errorf("%w delete", ErrInvalidDataTypeCursor)
		}
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedOperationType, operation.Type)
	}

	result.Success = err == nil
	result.Data = data
	result.Error = err

	return result
}

// BatchBuilder helps build batch operations.
type BatchBuilder struct {
	operations []BatchOperation
}

// NewBatchBuilder creates a new batch builder.
func NewBatchBuilder() *BatchBuilder {
	return &BatchBuilder{
		operations: make([]BatchOperation, 0),
	}
}

// AddLaunchAgent adds an agent launch operation.
func (b *BatchBuilder) AddLaunchAgent(id string, request *LaunchAgentRequest) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "launch",
		Resource: "agent",
		Data:     request,
	})

	return b
}

// AddGetAgent adds an agent read operation.
func (b *BatchBuilder) AddGetAgent(id, agentID string) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "get",
		Resource: "agent",
		Data:     agentID,
	})

	return b
}

// AddFollowUp adds a follow-up operation.
func (b *BatchBuilder) AddFollowUp(id, agentID string, request *FollowUpRequest) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "follow-up",
		Resource: "agent",
		Data: &FollowUpData{
			AgentID: agentID,
			Request: request,
		},
	})

	return b
}

// AddDeleteAgent adds an agent deletion operation.
func (b *BatchBuilder) AddDeleteAgent(id, agentID string) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "delete",
		Resource: "agent",
		Data:     agentID,
	})

	return b
}

// AddConversation adds a conversation read operation.
func (b *BatchBuilder) AddConversation(id, agentID string) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "conversation",
		Resource: "agent",
		Data:     agentID,
	})

	return b
}

// AddCreateCursor adds a demo cursor creation operation.
func (b *BatchBuilder) AddCreateCursor(id string, request *CreateCursorRequest) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "create",
		Resource: "cursor",
		Data:     request,
	})

	return b
}

// AddDeleteCursor adds a demo cursor deletion operation.
func (b *BatchBuilder) AddDeleteCursor(id, cursorID string) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{
		ID:       id,
		Type:     "delete",
		Resource: "cursor",
		Data:     cursorID,
	})

	return b
}

// AddOperation adds a custom operation.
func (b *BatchBuilder) AddOperation(operation BatchOperation) *BatchBuilder {
	b.operations = append(b.operations, operation)

	return b
}

// Build returns the built operations.
func (b *BatchBuilder) Build() []BatchOperation {
	return b.operations
}
