package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/jabrena/cursor-agents-go/internal/constants"
	"github.com/jabrena/cursor-agents-go/pkg/cursor"
	"github.com/jabrena/cursor-agents-go/pkg/cursorclient"
)

// Output formats.
const (
	OutputFormatTable = constants.FormatTable
	OutputFormatJSON  = constants.FormatJSON
	OutputFormatYAML  = constants.FormatYAML

	defaultJSONIndent = 2
)

// createClient builds an API client from flags, environment, and config
// file, in that precedence order (viper resolves it).
func createClient() (cursor.Client, error) {
	endpoint := viper.GetString("api")
	if endpoint == "" {
		endpoint = constants.DefaultAPIEndpoint
	}

	apiKey := viper.GetString("key")
	if apiKey == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	client, err := cursorclient.New(&cursor.Config{
		APIEndpoint: endpoint,
		APIKey:      apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// outputFormat returns the active output format, validated.
func outputFormat() (string, error) {
	format := viper.GetString("output")

	switch format {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrInvalidFormat, format)
	}
}

// renderJSON writes data as indented JSON to stdout.
func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// renderYAML writes data as YAML to stdout.
func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultJSONIndent)

	defer func() { _ = encoder.Close() }()

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}

// renderStructured dispatches to the JSON or YAML renderer.
func renderStructured(format string, data interface{}) error {
	if format == OutputFormatJSON {
		return renderJSON(data)
	}

	return renderYAML(data)
}

// formatTime renders a timestamp for table output.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return constants.NotAvailable
	}

	return t.Format(time.RFC3339)
}

// truncate shortens long strings for table cells.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	return s[:limit-3] + "..."
}
