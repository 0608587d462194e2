package cursor_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jabrena/cursor-agents-go/pkg/cursor"
)

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &cursor.APIError{
		Code:    cursor.ErrorCodeValidation,
		Message: "prompt is required",
	}
	assert.Equal(t, "VALIDATION_ERROR: prompt is required", err.Error())

	withDetails := &cursor.APIError{
		Code:    cursor.ErrorCodeValidation,
		Message: "prompt is required",
		Details: "field: prompt.text",
	}
	assert.Equal(t, "VALIDATION_ERROR: prompt is required (field: prompt.text)", withDetails.Error())
}

func TestParseResponseError(t *testing.T) {
	t.Parallel()

	body := []byte(`{"error":{"code":"RATE_LIMIT_EXCEEDED","message":"Too many requests","details":"retry later"}}`)

	respErr, err := cursor.ParseResponseError(body, 429)
	require.NoError(t, err)
	assert.Equal(t, cursor.ErrorCodeRateLimitExceeded, respErr.Err.Code)
	assert.Equal(t, "Too many requests", respErr.Err.Message)
	assert.Equal(t, 429, respErr.Err.HTTPStatus)
}

func TestParseResponseError_InvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := cursor.ParseResponseError([]byte("not json"), 500)
	require.Error(t, err)
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
		expected  bool
	}{
		{
			name:      "not found via APIError",
			err:       &cursor.APIError{Code: cursor.ErrorCodeNotFound},
			predicate: cursor.IsNotFound,
			expected:  true,
		},
		{
			name:      "not found via wrapped ResponseError",
			err:       fmt.Errorf("getting agent: %w", &cursor.ResponseError{Err: cursor.APIError{Code: cursor.ErrorCodeNotFound}}),
			predicate: cursor.IsNotFound,
			expected:  true,
		},
		{
			name:      "unauthorized",
			err:       &cursor.APIError{Code: cursor.ErrorCodeUnauthorized},
			predicate: cursor.IsUnauthorized,
			expected:  true,
		},
		{
			name:      "forbidden",
			err:       &cursor.APIError{Code: cursor.ErrorCodeForbidden},
			predicate: cursor.IsForbidden,
			expected:  true,
		},
		{
			name:      "rate limited",
			err:       &cursor.APIError{Code: cursor.ErrorCodeRateLimitExceeded},
			predicate: cursor.IsRateLimited,
			expected:  true,
		},
		{
			name:      "mismatched code",
			err:       &cursor.APIError{Code: cursor.ErrorCodeInternal},
			predicate: cursor.IsNotFound,
			expected:  false,
		},
		{
			name:      "plain error",
			err:       errBackend,
			predicate: cursor.IsNotFound,
			expected:  false,
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.expected, testCase.predicate(testCase.err))
		})
	}
}
