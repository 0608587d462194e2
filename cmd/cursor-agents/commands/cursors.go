package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/jabrena/cursor-agents-go/internal/constants"
	"github.com/jabrena/cursor-agents-go/pkg/cursor"
)

// NewCursorsCommand creates the cursors command group for the demo
// cursors resource.
func NewCursorsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cursors",
		Aliases: []string{"cursor"},
		Short:   "Manage demo cursors",
		Long:    "CRUD operations against the demo cursors resource",
	}

	cmd.AddCommand(newCursorsListCommand())
	cmd.AddCommand(newCursorsCreateCommand())
	cmd.AddCommand(newCursorsGetCommand())
	cmd.AddCommand(newCursorsUpdateCommand())
	cmd.AddCommand(newCursorsDeleteCommand())
	cmd.AddCommand(newCursorsMoveCommand())

	return cmd
}

func newCursorsListCommand() *cobra.Command {
	var (
		limit int
		page  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cursors",
		RunE: func(cmd *cobra.Command, args []string) error {
			if page < 0 {
				return constants.ErrInvalidPage
			}

			format, err := outputFormat()
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			params := cursor.NewListParams().WithLimit(limit).WithPage(page)

			list, err := client.Cursors().List(cmd.Context(), params)
			if err != nil {
				return fmt.Errorf("failed to list cursors: %w", err)
			}

			if format != OutputFormatTable {
				return renderStructured(format, list)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("ID", "Name", "Type", "Position", "Active")

			for _, item := range list.Cursors {
				_ = table.Append(
					item.ID,
					item.Name,
					string(item.Type),
					fmt.Sprintf("(%d, %d)", item.Position.X, item.Position.Y),
					strconv.FormatBool(item.Active),
				)
			}

			_ = table.Render()

			pagination := list.Pagination
			fmt.Printf("\nPage %d of %d (%d total)\n", pagination.Page, pagination.TotalPages, pagination.Total)

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", constants.DefaultPageSize, "maximum cursors per page")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number")

	return cmd
}

func newCursorsCreateCommand() *cobra.Command {
	var (
		name       string
		cursorType string
		x, y       int
		active     bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a cursor",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			created, err := client.Cursors().Create(cmd.Context(), &cursor.CreateCursorRequest{
				Name:     name,
				Type:     cursor.CursorType(cursorType),
				Position: cursor.Position{X: x, Y: y},
				Active:   active,
			})
			if err != nil {
				return fmt.Errorf("failed to create cursor: %w", err)
			}

			fmt.Printf("Created cursor %s (%s)\n", created.ID, created.Name)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "cursor name (required)")
	cmd.Flags().StringVarP(&cursorType, "type", "t", string(cursor.CursorTypePointer), "cursor type (pointer, text, crosshair)")
	cmd.Flags().IntVarP(&x, "x", "x", 0, "x coordinate")
	cmd.Flags().IntVarP(&y, "y", "y", 0, "y coordinate")
	cmd.Flags().BoolVar(&active, "active", true, "whether the cursor is active")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newCursorsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get CURSOR_ID",
		Short: "Show a cursor",
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

			item, err := client.Cursors().Get(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get cursor: %w", err)
			}

			if format != OutputFormatTable {
				return renderStructured(format, item)
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Field", "Value")
			_ = table.Append("ID", item.ID)
			_ = table.Append("Name", item.Name)
			_ = table.Append("Type", string(item.Type))
			_ = table.Append("Position", fmt.Sprintf("(%d, %d)", item.Position.X, item.Position.Y))
			_ = table.Append("Active", strconv.FormatBool(item.Active))
			_ = table.Append("Created", formatTime(item.CreatedAt))
			_ = table.Append("Updated", formatTime(item.UpdatedAt))
			_ = table.Render()

			return nil
		},
	}

	return cmd
}

func newCursorsUpdateCommand() *cobra.Command {
	var (
		name   string
		active bool
	)

	cmd := &cobra.Command{
		Use:   "update CURSOR_ID",
		Short: "Update a cursor",
		Long:  "Update a cursor; only flags that are set are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			request := &cursor.UpdateCursorRequest{}
			if cmd.Flags().Changed("name") {
				request.Name = &name
			}

			if cmd.Flags().Changed("active") {
				request.Active = &active
			}

			updated, err := client.Cursors().Update(cmd.Context(), args[0], request)
			if err != nil {
				return fmt.Errorf("failed to update cursor: %w", err)
			}

			fmt.Printf("Updated cursor %s\n", updated.ID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "new cursor name")
	cmd.Flags().BoolVar(&active, "active", true, "whether the cursor is active")

	return cmd
}

func newCursorsDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete CURSOR_ID",
		Short: "Delete a cursor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			if err := client.Cursors().Delete(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("failed to delete cursor: %w", err)
			}

			fmt.Printf("Deleted cursor %s\n", args[0])

			return nil
		},
	}

	return cmd
}

func newCursorsMoveCommand() *cobra.Command {
	var x, y int

	cmd := &cobra.Command{
		Use:   "move CURSOR_ID",
		Short: "Move a cursor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			moved, err := client.Cursors().Move(cmd.Context(), args[0], &cursor.MoveCursorRequest{
				Position: cursor.Position{X: x, Y: y},
			})
			if err != nil {
				return fmt.Errorf("failed to move cursor: %w", err)
			}

			fmt.Printf("Moved cursor %s to (%d, %d)\n", moved.ID, moved.Position.X, moved.Position.Y)

			return nil
		},
	}

	cmd.Flags().IntVarP(&x, "x", "x", 0, "x coordinate")
	cmd.Flags().IntVarP(&y, "y", "y", 0, "y coordinate")

	return cmd
}
