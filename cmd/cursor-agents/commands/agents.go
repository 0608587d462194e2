package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/jabrena/cursor-agents-go/internal/constants"
	"github.com/jabrena/cursor-agents-go/pkg/cursor"
	"github.com/jabrena/cursor-agents-go/pkg/outcome"
)

// NewAgentsCommand creates the agents command group.
func NewAgentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "agents",
		Aliases: []string{"agent"},
		Short:   "Manage background agents",
		Long:    "Launch, inspect, and manage Cursor background agents",
	}

	cmd.AddCommand(newAgentsLaunchCommand())
	cmd.AddCommand(newAgentsListCommand())
	cmd.AddCommand(newAgentsStatusCommand())
	cmd.AddCommand(newAgentsFollowUpCommand())
	cmd.AddCommand(newAgentsDeleteCommand())
	cmd.AddCommand(newAgentsConversationCommand())

	return cmd
}

func newAgentsLaunchCommand() *cobra.Command {
	var (
		prompt     string
		model      string
		repository string
		watch      bool
	)

	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Launch a new agent",
		Long:  "Launch a background agent against a repository",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			management := cursor.NewAgentManagement(client.Agents())

			result := management.Launch(cmd.Context(), prompt, model, repository)

			launched, ok := result.Get()
			if !ok {
				return result.Err()
			}

			fmt.Printf("Launched agent %s (status: %s)\n", launched.ID, launched.Status)

			if watch {
				return watchAgent(cmd.Context(), client, launched.ID)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "instructions for the agent (required)")
	cmd.Flags().StringVarP(&model, "model", "m", "", "LLM model to use (required)")
	cmd.Flags().StringVarP(&repository, "repository", "r", "", "repository URL (required)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "poll status until the agent reaches a terminal state")

	return cmd
}

// watchAgent polls the agent until its status is terminal.
func watchAgent(ctx context.Context, client cursor.Client, agentID string) error {
	information := cursor.NewAgentInformation(client.Agents())

	ticker := time.NewTicker(constants.DefaultPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			result := information.Status(ctx, agentID)

			status, ok := result.Get()
			if !ok {
				return result.Err()
			}

			fmt.Printf("  %s\n", status)

			if status.IsTerminal() {
				return nil
			}
		}
	}
}

func newAgentsListCommand() *cobra.Command {
	var (
		limit      int
		pageCursor string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List agents",
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 1 || limit > constants.MaxPageSize {
				return constants.ErrInvalidLimit
			}

			format, err := outputFormat()
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			params := cursor.NewListParams().WithLimit(limit).WithCursor(pageCursor)

			information := cursor.NewAgentInformation(client.Agents())

			result := information.List(cmd.Context(), params)

			list, ok := result.Get()
			if !ok {
				return result.Err()
			}

			if format != OutputFormatTable {
				return renderStructured(format, list)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Status", "Repository", "Created")

			for _, agent := range list.Agents {
				_ = table.Append(
					agent.ID,
					truncate(agent.Name, 40),
					string(agent.Status),
					agent.Source.Repository,
					formatTime(agent.CreatedAt),
				)
			}

			_ = table.Render()

			if list.NextCursor != "" {
				fmt.Printf("\nNext cursor: %s\n", list.NextCursor)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", constants.DefaultPageSize, "maximum agents per page")
	cmd.Flags().StringVar(&pageCursor, "cursor", "", "pagination cursor from a previous listing")

	return cmd
}

func newAgentsStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status AGENT_ID",
		Short: "Show agent status",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			information := cursor.NewAgentInformation(client.Agents())

			result := information.Get(cmd.Context(), args[0])

			agent, ok := result.Get()
			if !ok {
				return result.Err()
			}

			if format != OutputFormatTable {
				return renderStructured(format, agent)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Field", "Value")
			_ = table.Append("ID", agent.ID)
			_ = table.Append("Name", agent.Name)
			_ = table.Append("Status", string(agent.Status))
			_ = table.Append("Repository", agent.Source.Repository)
			_ = table.Append("Created", formatTime(agent.CreatedAt))

			if agent.Target != nil && agent.Target.PRURL != "" {
				_ = table.Append("PR", agent.Target.PRURL)
			}

			if agent.Summary != "" {
				_ = table.Append("Summary", truncate(agent.Summary, 80))
			}

			_ = table.Render()

			return nil
		},
	}

	return cmd
}

func newAgentsFollowUpCommand() *cobra.Command {
	var prompt string

	cmd := &cobra.Command{
		Use:   "follow-up AGENT_ID",
		Short: "Add a follow-up instruction to an agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			management := cursor.NewAgentManagement(client.Agents())

			result := management.FollowUp(cmd.Context(), args[0], prompt)

			return outcome.Fold(result,
				func(id string) error {
					fmt.Printf("Follow-up accepted for agent %s\n", id)

					return nil
				},
				func(err error) error { return err },
			)
		},
	}

	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "follow-up instructions (required)")

	return cmd
}

func newAgentsDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete AGENT_ID",
		Short: "Delete an agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			management := cursor.NewAgentManagement(client.Agents())

			result := management.Delete(cmd.Context(), args[0])

			deleted, ok := result.Get()
			if !ok {
				return result.Err()
			}

			fmt.Printf("Deleted agent %s\n", deleted)

			return nil
		},
	}

	return cmd
}

func newAgentsConversationCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "conversation AGENT_ID",
		Short: "Show the agent's conversation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat()
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			information := cursor.NewAgentInformation(client.Agents())

			result := information.Conversation(cmd.Context(), args[0])

			conversation, ok := result.Get()
			if !ok {
				return result.Err()
			}

			if format != OutputFormatTable {
				return renderStructured(format, conversation)
			}

			for _, message := range conversation.Messages {
				fmt.Printf("[%s] %s\n", message.Type, message.Text)
			}

			return nil
		},
	}

	return cmd
}
