package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hypejab/triage/internal/board"
	"github.com/hypejab/triage/internal/models"
	"github.com/hypejab/triage/internal/services/kanban"
	"github.com/hypejab/triage/internal/validate"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(taskCreateCmd())
	cmd.AddCommand(taskUpdateCmd())
	cmd.AddCommand(taskMoveCmd())
	cmd.AddCommand(taskDeleteCmd())

	return cmd
}

func taskCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task in a column",
		Long: `Create a task. Omitted fields get board defaults: title "New Task",
priority Medium, rating 8.8.

Examples:
  # Minimal
  triage task create --column=draft --title="Fix XSS"

  # With metadata
  triage task create --column=draft --title="Fix XSS" --priority=High --rating=9.1 --label=security

  # Quiet mode for bash capture
  TASK_ID=$(triage task create --column=draft --title="Fix XSS" --quiet)
`,
		RunE: runTaskCreate,
	}

	cmd.Flags().String("column", "", "Column ID (required)")
	_ = cmd.MarkFlagRequired("column")
	cmd.Flags().String("title", "", "Task title")
	cmd.Flags().String("details", "", "Task details")
	cmd.Flags().String("priority", "", "Priority (Critical, High, Medium, Low)")
	cmd.Flags().Float64("rating", 0, "Severity rating in [0, 10]")
	cmd.Flags().Bool("starred", false, "Star the task")
	cmd.Flags().StringSlice("label", nil, "Label ID to attach (repeatable)")
	cmd.Flags().String("due", "", "Due date")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runTaskCreate(cmd *cobra.Command, args []string) error {
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

	columnID, _ := cmd.Flags().GetString("column")
	title, _ := cmd.Flags().GetString("title")
	details, _ := cmd.Flags().GetString("details")
	priority, _ := cmd.Flags().GetString("priority")
	rating, _ := cmd.Flags().GetFloat64("rating")
	starred, _ := cmd.Flags().GetBool("starred")
	labels, _ := cmd.Flags().GetStringSlice("label")
	due, _ := cmd.Flags().GetString("due")

	if err := validate.Priority(priority); err != nil {
		if fmtErr := formatter.Error("INVALID_PRIORITY", err.Error()); fmtErr != nil {
			logFormatError(fmtErr)
		}
		os.Exit(ExitValidation)
	}
	data := kanban.TaskData{
		Title:    title,
		Details:  details,
		Priority: priority,
		Starred:  starred,
		Labels:   labels,
		DueDate:  due,
	}
	// Only a flag the user actually set overrides the default; --rating=0 is
	// a real zero, an absent flag is not
	if cmd.Flags().Changed("rating") {
		if err := validate.Rating(rating); err != nil {
			if fmtErr := formatter.Error("INVALID_RATING", err.Error()); fmtErr != nil {
				logFormatError(fmtErr)
			}
			os.Exit(ExitValidation)
		}
		data.Rating = &rating
	}

	task, err := c.App.Board.AddNewTask(columnID, data)
	if err != nil {
		if errors.Is(err, models.ErrColumnNotFound) {
			if fmtErr := formatter.Error("COLUMN_NOT_FOUND", fmt.Sprintf("column %s not found", columnID)); fmtErr != nil {
				logFormatError(fmtErr)
			}
			os.Exit(ExitNotFound)
		}
		return err
	}

	if quietMode {
		fmt.Printf("%s\n", task.ID)
		return nil
	}
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"task":    task,
		})
	}
	fmt.Printf("✓ Task '%s' created successfully (ID: %s)\n", task.Title, task.ID)
	fmt.Printf("  Column: %s, Priority: %s, Rating: %.1f\n", columnID, task.Priority, task.Rating)
	return nil
}

func taskUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a task's fields",
		Long: `Update task fields. Only the flags you pass are changed.

Examples:
  triage task update --id=<task-id> --title="Fix stored XSS"
  triage task update --id=<task-id> --priority=Critical --starred
`,
		RunE: runTaskUpdate,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("details", "", "New details")
	cmd.Flags().String("priority", "", "New priority")
	cmd.Flags().Float64("rating", 0, "New rating in [0, 10]")
	cmd.Flags().Bool("starred", false, "Star the task")
	cmd.Flags().String("status", "", "New status")
	cmd.Flags().String("due", "", "New due date")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runTaskUpdate(cmd *cobra.Command, args []string) error {
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

	// Build a patch from only the flags that were set
	var patch board.TaskPatch
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		patch.Title = &title
	}
	if cmd.Flags().Changed("details") {
		details, _ := cmd.Flags().GetString("details")
		patch.Details = &details
	}
	if cmd.Flags().Changed("priority") {
		priority, _ := cmd.Flags().GetString("priority")
		if err := validate.Priority(priority); err != nil {
			if fmtErr := formatter.Error("INVALID_PRIORITY", err.Error()); fmtErr != nil {
				logFormatError(fmtErr)
			}
			os.Exit(ExitValidation)
		}
		color := models.PriorityColor(priority)
		patch.Priority = &priority
		patch.PriorityColor = &color
	}
	if cmd.Flags().Changed("rating") {
		rating, _ := cmd.Flags().GetFloat64("rating")
		if err := validate.Rating(rating); err != nil {
			if fmtErr := formatter.Error("INVALID_RATING", err.Error()); fmtErr != nil {
				logFormatError(fmtErr)
			}
			os.Exit(ExitValidation)
		}
		patch.Rating = &rating
	}
	if cmd.Flags().Changed("starred") {
		starred, _ := cmd.Flags().GetBool("starred")
		patch.Starred = &starred
	}
	if cmd.Flags().Changed("status") {
		status, _ := cmd.Flags().GetString("status")
		patch.Status = &status
	}
	if cmd.Flags().Changed("due") {
		due, _ := cmd.Flags().GetString("due")
		patch.DueDate = &due
	}

	if err := c.App.Board.UpdateTask(id, patch); err != nil {
		if errors.Is(err, models.ErrTaskNotFound) {
			if fmtErr := formatter.Error("TASK_NOT_FOUND", fmt.Sprintf("task %s not found", id)); fmtErr != nil {
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
			"success": true,
			"task_id": id,
		})
	}
	fmt.Printf("✓ Task %s updated successfully\n", id)
	return nil
}

func taskMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a task to another column",
		RunE:  runTaskMove,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().String("to", "", "Target column ID (required)")
	_ = cmd.MarkFlagRequired("to")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runTaskMove(cmd *cobra.Command, args []string) error {
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
	to, _ := cmd.Flags().GetString("to")

	if err := c.App.Board.MoveTaskToColumn(id, to); err != nil {
		code := "MOVE_ERROR"
		switch {
		case errors.Is(err, models.ErrTaskNotFound):
			code = "TASK_NOT_FOUND"
		case errors.Is(err, models.ErrColumnNotFound):
			code = "COLUMN_NOT_FOUND"
		}
		if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
			logFormatError(fmtErr)
		}
		os.Exit(ExitNotFound)
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"task_id": id,
			"column":  to,
		})
	}
	fmt.Printf("✓ Task %s moved to %s\n", id, to)
	return nil
}

func taskDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		RunE:  runTaskDelete,
	}

	cmd.Flags().String("id", "", "Task ID (required)")
	_ = cmd.MarkFlagRequired("id")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runTaskDelete(cmd *cobra.Command, args []string) error {
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

	if err := c.App.Board.RemoveTask(id); err != nil {
		if errors.Is(err, models.ErrTaskNotFound) {
			if fmtErr := formatter.Error("TASK_NOT_FOUND", fmt.Sprintf("task %s not found", id)); fmtErr != nil {
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
			"success": true,
			"task_id": id,
		})
	}
	fmt.Printf("✓ Task %s deleted successfully\n", id)
	return nil
}
