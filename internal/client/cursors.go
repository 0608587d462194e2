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

// CursorsClient implements cursor.CursorsClient.
type CursorsClient struct {
	httpClient *http.Client
}

// NewCursorsClient creates a new demo cursors client.
func NewCursorsClient(httpClient *http.Client) *CursorsClient {
	return &CursorsClient{httpClient: httpClient}
}

// List implements cursor.CursorsClient.List.
func (c *CursorsClient) List(ctx context.Context, params *cursor.ListParams) (*cursor.CursorList, error) {
	var query url.Values
	if params != nil {
		query = params.ToValues()
	}

	resp, err := c.httpClient.Get(ctx, constants.CursorsBasePath, query)
	if err != nil {
		return nil, fmt.Errorf("listing cursors: %w", err)
	}

	var result cursor.CursorList
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing cursors list response: %w", err)
	}

	return &result, nil
}

// Create implements cursor.CursorsClient.Create.
func (c *CursorsClient) Create(ctx context.Context, request *cursor.CreateCursorRequest) (*cursor.Cursor, error) {
	resp, err := c.httpClient.Post(ctx, constants.CursorsBasePath, request)
	if err != nil {
		return nil, fmt.Errorf("creating cursor: %w", err)
	}

	var result cursor.Cursor
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing cursor response: %w", err)
	}

	return &result, nil
}

// Get implements cursor.CursorsClient.Get.
func (c *CursorsClient) Get(ctx context.Context, cursorID string) (*cursor.Cursor, error) {
	path := fmt.Sprintf("%s/%s", constants.CursorsBasePath, cursorID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting cursor: %w", err)
	}

	var result cursor.Cursor
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing cursor response: %w", err)
	}

	return &result, nil
}

// Update implements cursor.CursorsClient.Update.
func (c *CursorsClient) Update(ctx context.Context, cursorID string, request *cursor.UpdateCursorRequest) (*cursor.Cursor, error) {
	path := fmt.Sprintf("%s/%s", constants.CursorsBasePath, cursorID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating cursor: %w", err)
	}

	var result cursor.Cursor
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing cursor response: %w", err)
	}

	return &result, nil
}

// Delete implements cursor.CursorsClient.Delete.
func (c *CursorsClient) Delete(ctx context.Context, cursorID string) error {
	path := fmt.Sprintf("%s/%s", constants.CursorsBasePath, cursorID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting cursor: %w", err)
	}

	return nil
}

// Move implements cursor.CursorsClient.Move.
func (c *CursorsClient) Move(ctx context.Context, cursorID string, request *cursor.MoveCursorRequest) (*cursor.Cursor, error) {
	path := fmt.Sprintf("%s/%s/move", constants.CursorsBasePath, cursorID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("moving cursor: %w", err)
	}

	var result cursor.Cursor
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return nil, fmt.Errorf("parsing cursor response: %w", err)
	}

	return &result, nil
}
