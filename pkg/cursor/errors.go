package cursor

import (
	"encoding/json"
	"errors"
	"fmt"
)

// APIError represents an error returned by the Cursor API.
type APIError struct {
	Code       string `json:"code"              yaml:"code"`
	Message    string `json:"message"           yaml:"message"`
	Details    string `json:"details,omitempty" yaml:"details,omitempty"`
	HTTPStatus int    `json:"-"                 yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ResponseError is the wire shape of an API error response.
type ResponseError struct {
	Err APIError `json:"error" yaml:"error"`
}

// Error implements the error interface for ResponseError.
func (e *ResponseError) Error() string {
	return e.Err.Error()
}

// Common error codes returned by the API.
const (
	ErrorCodeValidation        = "VALIDATION_ERROR"
	ErrorCodeUnauthorized      = "UNAUTHORIZED"
	ErrorCodeForbidden         = "FORBIDDEN"
	ErrorCodeNotFound          = "NOT_FOUND"
	ErrorCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrorCodeInternal          = "INTERNAL_ERROR"
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
	ErrAPIKeyRequired      = errors.New("API key is required")
	ErrPromptRequired      = errors.New("prompt cannot be empty")
	ErrModelRequired       = errors.New("model cannot be empty")
	ErrRepositoryRequired  = errors.New("repository cannot be empty")
	ErrAgentIDRequired     = errors.New("agent ID cannot be empty")
	ErrCursorIDRequired    = errors.New("cursor ID cannot be empty")
	ErrCursorNameRequired  = errors.New("cursor name is required")
	ErrAgentNotFound       = errors.New("agent not found")
	ErrNoAgentsClient      = errors.New("agents client is required")
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrCircuitBreakerOpen  = errors.New("circuit breaker is open")
)

// IsNotFound checks if the error is a not-found error.
func IsNotFound(err error) bool {
	return hasErrorCode(err, ErrorCodeNotFound)
}

// IsUnauthorized checks if the error is an authentication error.
func IsUnauthorized(err error) bool {
	return hasErrorCode(err, ErrorCodeUnauthorized)
}

// IsForbidden checks if the error is an authorization error.
func IsForbidden(err error) bool {
	return hasErrorCode(err, ErrorCodeForbidden)
}

// IsRateLimited checks if the error is a rate-limit error.
func IsRateLimited(err error) bool {
	return hasErrorCode(err, ErrorCodeRateLimitExceeded)
}

func hasErrorCode(err error, code string) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Code == code
	}

	respErr := &ResponseError{}
	if errors.As(err, &respErr) {
		return respErr.Err.Code == code
	}

	return false
}

// ParseResponseError parses an error response body. The HTTP status is
// attached to the contained APIError so callers can branch on it even when
// the body carries no machine-readable code.
func ParseResponseError(data []byte, httpStatus int) (*ResponseError, error) {
	var respErr ResponseError

	err := json.Unmarshal(data, &respErr)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response error: %w", err)
	}

	respErr.Err.HTTPStatus = httpStatus

	return &respErr, nil
}
