package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'cursor-agents login' or set CURSOR_API_KEY")
	ErrConfigNotFound     = errors.New("configuration file not found")
	ErrEmptyAPIKey        = errors.New("API key cannot be empty")
)

// CLI validation errors.
var (
	ErrInvalidLimit  = errors.New("limit must be between 1 and 100")
	ErrInvalidPage   = errors.New("page must be a positive number")
	ErrInvalidFormat = errors.New("output format must be one of: table, json, yaml")
)
