package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/jabrena/cursor-agents-go/internal/constants"
	"github.com/jabrena/cursor-agents-go/pkg/cursor"
	"github.com/jabrena/cursor-agents-go/pkg/cursorclient"
)

// cliConfig is the persisted shape of ~/.cursor-agents/config.yml.
type cliConfig struct {
	API string `yaml:"api,omitempty"`
	Key string `yaml:"key,omitempty"`
}

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		apiEndpoint string
		apiKey      string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key",
		Long:  "Verify an API key against the Cursor API and store it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiEndpoint == "" {
				apiEndpoint = viper.GetString("api")
			}

			if apiEndpoint == "" {
				apiEndpoint = constants.DefaultAPIEndpoint
			}

			if apiKey == "" {
				fmt.Print("API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				fmt.Println()

				apiKey = strings.TrimSpace(string(byteKey))
			}

			if apiKey == "" {
				return constants.ErrEmptyAPIKey
			}

			client, err := cursorclient.New(&cursor.Config{
				APIEndpoint: apiEndpoint,
				APIKey:      apiKey,
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Verify the key before persisting it
			listParams := cursor.NewListParams().WithLimit(1)
			if _, err := client.Agents().List(cmd.Context(), listParams); err != nil {
				return fmt.Errorf("failed to verify API key: %w", err)
			}

			if err := saveCLIConfig(cliConfig{API: apiEndpoint, Key: apiKey}); err != nil {
				return err
			}

			fmt.Printf("Successfully logged in to %s\n", apiEndpoint)

			return nil
		},
	}

	cmd.Flags().StringVarP(&apiEndpoint, "api", "a", "", "API endpoint URL")
	cmd.Flags().StringVarP(&apiKey, "key", "k", "", "API key (prompted when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored API key",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := saveCLIConfig(cliConfig{API: viper.GetString("api")}); err != nil {
				return err
			}

			fmt.Println("Successfully logged out")

			return nil
		},
	}
}

// saveCLIConfig writes the config file with restrictive permissions, since
// it holds the API key.
func saveCLIConfig(config cliConfig) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to find home directory: %w", err)
	}

	configDir := filepath.Join(home, ".cursor-agents")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")
	if err := os.WriteFile(configPath, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	return nil
}
