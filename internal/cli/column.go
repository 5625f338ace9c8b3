package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hypejab/triage/internal/board"
	"github.com/hypejab/triage/internal/models"
	"github.com/hypejab/triage/internal/services/kanban"
	"github.com/hypejab/triage/internal/validate"
)

// ColumnCmd returns the column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage columns",
	}

	cmd.AddCommand(columnCreateCmd())
	cmd.AddCommand(columnListCmd())
	cmd.AddCommand(columnUpdateCmd())
	cmd.AddCommand(columnDeleteCmd())

	return cmd
}

func columnCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new column",
		Long: `Create a new column at the end of the board.

Examples:
  # Create column (human-readable output)
  triage column create --title="Backlog"

  # Quiet mode for bash capture
  COLUMN_ID=$(triage column create --title="Backlog" --quiet)
`,
		RunE: runColumnCreate,
	}

	cmd.Flags().String("title", "", "Column title (required)")
	_ = cmd.MarkFlagRequired("title")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runColumnCreate(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := NewFormatter(jsonOutput, quietMode)

	c, err := NewCLI(cmd.Context())
	if err != nil {
		return initError(formatter, err)
	}
	defer closeCLI(c)

	if _, err := c.RequireUser(); err != nil {
		if fmtErr := formatter.Error("NOT_LOGGED_IN", err.Error()); fmtErr != nil {
			logFormatError(fmtErr)
		}
		os.Exit(ExitUsage)
	}

	title, _ := cmd.Flags().GetString("title")

	// Form validation happens here, not in the service
	if err := validate.ColumnTitle(title, c.App.Board.Columns()); err != nil {
		if fmtErr := formatter.Error("INVALID_TITLE", err.Error()); fmtErr != nil {
			logFormatError(fmtErr)
		}
		os.Exit(ExitValidation)
	}

	column := c.App.Board.AddNewColumn(kanban.ColumnData{Title: title})

	if quietMode {
		fmt.Printf("%s\n", column.ID)
		return nil
	}
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"column":  column,
		})
	}
	fmt.Printf("✓ Column '%s' created successfully (ID: %s)\n", column.Title, column.ID)
	return nil
}

func columnListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns in display order",
		RunE:  runColumnList,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runColumnList(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := NewFormatter(jsonOutput, quietMode)

	c, err := NewCLI(cmd.Context())
	if err != nil {
		return initError(formatter, err)
	}
	defer closeCLI(c)

	if _, err := c.RequireUser(); err != nil {
		if fmtErr := formatter.Error("NOT_LOGGED_IN", err.Error()); fmtErr != nil {
			logFormatError(fmtErr)
		}
		os.Exit(ExitUsage)
	}

	columns := c.App.Board.Columns()
	sort.SliceStable(columns, func(i, j int) bool { return columns[i].Order < columns[j].Order })
	tasks := c.App.Board.RawTasks()

	if quietMode {
		for _, col := range columns {
			fmt.Printf("%s\n", col.ID)
		}
		return nil
	}
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"columns": columns,
		})
	}

	fmt.Println("Columns:")
	for i, col := range columns {
		fmt.Printf("  %d. %s (ID: %s, %d tasks)\n", i+1, col.Title, col.ID, len(tasks[col.ID]))
	}
	return nil
}

func columnUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a column's title",
		RunE:  runColumnUpdate,
	}

	cmd.Flags().String("id", "", "Column ID (required)")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().String("title", "", "New column title (required)")
	_ = cmd.MarkFlagRequired("title")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runColumnUpdate(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := NewFormatter(jsonOutput, quietMode)

	c, err := NewCLI(cmd.Context())
	if err != nil {
		return initError(formatter, err)
	}
	defer closeCLI(c)

	if _, err := c.RequireUser(); err != nil {
		if fmtErr := formatter.Error("NOT_LOGGED_IN", err.Error()); fmtErr != nil {
			logFormatError(fmtErr)
		}
		os.Exit(ExitUsage)
	}

	id, _ := cmd.Flags().GetString("id")
	title, _ := cmd.Flags().GetString("title")

	if err := validate.ColumnTitle(title, c.App.Board.Columns()); err != nil {
		if fmtErr := formatter.Error("INVALID_TITLE", err.Error()); fmtErr != nil {
			logFormatError(fmtErr)
		}
		os.Exit(ExitValidation)
	}

	if err := c.App.Board.UpdateColumn(id, board.ColumnPatch{Title: &title}); err != nil {
		if errors.Is(err, models.ErrColumnNotFound) {
			if fmtErr := formatter.Error("COLUMN_NOT_FOUND", fmt.Sprintf("column %s not found", id)); fmtErr != nil {
				logFormatError(fmtErr)
			}
			os.Exit(ExitNotFound)
		}
		return err
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":   true,
			"column_id": id,
			"title":     title,
		})
	}
	fmt.Printf("✓ Column %s updated successfully\n", id)
	return nil
}

func columnDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a column",
		Long: `Delete a column by ID (requires confirmation unless --force or --quiet).

Warning: Deleting a column discards its tasks. Use --move-to to relocate
them to another column first.

Examples:
  # Delete with confirmation
  triage column delete --id=draft

  # Move tasks out first, then delete
  triage column delete --id=draft --move-to=unsolved --force
`,
		RunE: runColumnDelete,
	}

	cmd.Flags().String("id", "", "Column ID (required)")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().String("move-to", "", "Move this column's tasks to another column before deleting")
	cmd.Flags().Bool("force", false, "Skip confirmation")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runColumnDelete(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := NewFormatter(jsonOutput, quietMode)

	c, err := NewCLI(cmd.Context())
	if err != nil {
		return initError(formatter, err)
	}
	defer closeCLI(c)

	if _, err := c.RequireUser(); err != nil {
		if fmtErr := formatter.Error("NOT_LOGGED_IN", err.Error()); fmtErr != nil {
			logFormatError(fmtErr)
		}
		os.Exit(ExitUsage)
	}

	id, _ := cmd.Flags().GetString("id")
	moveTo, _ := cmd.Flags().GetString("move-to")
	force, _ := cmd.Flags().GetBool("force")

	if !force && !quietMode {
		if moveTo == "" {
			fmt.Println("⚠ Warning: deleting a column discards its tasks")
		}
		fmt.Printf("Delete column '%s'? (y/N): ", id)
		var response string
		_, _ = fmt.Scanln(&response)
		response = strings.ToLower(response)
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if moveTo != "" {
		if err := c.App.Board.MoveAllTasksToColumn(id, moveTo); err != nil {
			if fmtErr := formatter.Error("COLUMN_NOT_FOUND", err.Error()); fmtErr != nil {
				logFormatError(fmtErr)
			}
			os.Exit(ExitNotFound)
		}
	}

	if err := c.App.Board.RemoveColumnWithTasks(id); err != nil {
		if errors.Is(err, models.ErrColumnNotFound) {
			if fmtErr := formatter.Error("COLUMN_NOT_FOUND", fmt.Sprintf("column %s not found", id)); fmtErr != nil {
				logFormatError(fmtErr)
			}
			os.Exit(ExitNotFound)
		}
		return err
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":   true,
			"column_id": id,
		})
	}
	fmt.Printf("✓ Column %s deleted successfully\n", id)
	return nil
}
