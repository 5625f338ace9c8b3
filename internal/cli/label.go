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

// LabelCmd returns the label parent command
func LabelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "label",
		Short: "Manage labels",
	}

	cmd.AddCommand(labelCreateCmd())
	cmd.AddCommand(labelListCmd())
	cmd.AddCommand(labelUpdateCmd())
	cmd.AddCommand(labelDeleteCmd())
	cmd.AddCommand(labelAttachCmd())
	cmd.AddCommand(labelDetachCmd())

	return cmd
}

func labelCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new label",
		Long: `Create a label with a name and hex color.

Examples:
  triage label create --name="Regression" --color="#facc15"
`,
		RunE: runLabelCreate,
	}

	cmd.Flags().String("name", "", "Label name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().String("color", "", "Hex color like #dc2626 (required)")
	_ = cmd.MarkFlagRequired("color")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runLabelCreate(cmd *cobra.Command, args []string) error {
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

	name, _ := cmd.Flags().GetString("name")
	color, _ := cmd.Flags().GetString("color")

	if err := validate.LabelName(name, c.App.Board.Labels()); err != nil {
		if fmtErr := formatter.Error("INVALID_NAME", err.Error()); fmtErr != nil {
			logFormatError(fmtErr)
		}
		os.Exit(ExitValidation)
	}
	if err := validate.LabelColor(color); err != nil {
		if fmtErr := formatter.Error("INVALID_COLOR", err.Error()); fmtErr != nil {
			logFormatError(fmtErr)
		}
		os.Exit(ExitValidation)
	}

	label := c.App.Board.AddNewLabel(kanban.LabelData{Name: name, Color: color})

	if quietMode {
		fmt.Printf("%s\n", label.ID)
		return nil
	}
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"label":   label,
		})
	}
	fmt.Printf("✓ Label '%s' created successfully (ID: %s)\n", label.Name, label.ID)
	return nil
}

func labelListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List labels",
		RunE:  runLabelList,
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runLabelList(cmd *cobra.Command, args []string) error {
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

	labels := c.App.Board.Labels()

	if quietMode {
		for _, label := range labels {
			fmt.Printf("%s\n", label.ID)
		}
		return nil
	}
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"labels":  labels,
		})
	}

	fmt.Println("Labels:")
	for _, label := range labels {
		fmt.Printf("  %s (ID: %s, color: %s)\n", label.Name, label.ID, label.Color)
	}
	return nil
}

func labelUpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a label's name or color",
		RunE:  runLabelUpdate,
	}

	cmd.Flags().String("id", "", "Label ID (required)")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().String("name", "", "New label name")
	cmd.Flags().String("color", "", "New hex color")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runLabelUpdate(cmd *cobra.Command, args []string) error {
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

	var patch board.LabelPatch
	if cmd.Flags().Changed("name") {
		name, _ := cmd.Flags().GetString("name")
		if err := validate.LabelName(name, c.App.Board.Labels()); err != nil {
			if fmtErr := formatter.Error("INVALID_NAME", err.Error()); fmtErr != nil {
				logFormatError(fmtErr)
			}
			os.Exit(ExitValidation)
		}
		patch.Name = &name
	}
	if cmd.Flags().Changed("color") {
		color, _ := cmd.Flags().GetString("color")
		if err := validate.LabelColor(color); err != nil {
			if fmtErr := formatter.Error("INVALID_COLOR", err.Error()); fmtErr != nil {
				logFormatError(fmtErr)
			}
			os.Exit(ExitValidation)
		}
		patch.Color = &color
	}

	if err := c.App.Board.UpdateLabel(id, patch); err != nil {
		if errors.Is(err, models.ErrLabelNotFound) {
			if fmtErr := formatter.Error("LABEL_NOT_FOUND", fmt.Sprintf("label %s not found", id)); fmtErr != nil {
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
			"success":  true,
			"label_id": id,
		})
	}
	fmt.Printf("✓ Label %s updated successfully\n", id)
	return nil
}

func labelDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a label",
		Long: `Delete a label by ID. The label is removed from every task that
carries it; no dangling references remain.`,
		RunE: runLabelDelete,
	}

	cmd.Flags().String("id", "", "Label ID (required)")
	_ = cmd.MarkFlagRequired("id")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runLabelDelete(cmd *cobra.Command, args []string) error {
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

	if err := c.App.Board.RemoveLabel(id); err != nil {
		if errors.Is(err, models.ErrLabelNotFound) {
			if fmtErr := formatter.Error("LABEL_NOT_FOUND", fmt.Sprintf("label %s not found", id)); fmtErr != nil {
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
			"success":  true,
			"label_id": id,
		})
	}
	fmt.Printf("✓ Label %s deleted successfully\n", id)
	return nil
}

func labelAttachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attach",
		Short: "Attach a label to a task",
		RunE:  runLabelAttach,
	}

	cmd.Flags().String("id", "", "Label ID (required)")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().String("task", "", "Task ID (required)")
	_ = cmd.MarkFlagRequired("task")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runLabelAttach(cmd *cobra.Command, args []string) error {
	return runLabelAttachment(cmd, true)
}

func labelDetachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detach",
		Short: "Detach a label from a task",
		RunE:  runLabelDetach,
	}

	cmd.Flags().String("id", "", "Label ID (required)")
	_ = cmd.MarkFlagRequired("id")
	cmd.Flags().String("task", "", "Task ID (required)")
	_ = cmd.MarkFlagRequired("task")

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runLabelDetach(cmd *cobra.Command, args []string) error {
	return runLabelAttachment(cmd, false)
}

func runLabelAttachment(cmd *cobra.Command, attach bool) error {
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

	labelID, _ := cmd.Flags().GetString("id")
	taskID, _ := cmd.Flags().GetString("task")

	if attach {
		err = c.App.Board.AttachLabel(taskID, labelID)
	} else {
		err = c.App.Board.DetachLabel(taskID, labelID)
	}
	if err != nil {
		if errors.Is(err, models.ErrTaskNotFound) {
			if fmtErr := formatter.Error("TASK_NOT_FOUND", fmt.Sprintf("task %s not found", taskID)); fmtErr != nil {
				logFormatError(fmtErr)
			}
			os.Exit(ExitNotFound)
		}
		return err
	}

	verb := "attached to"
	if !attach {
		verb = "detached from"
	}

	if quietMode {
		return nil
	}
	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"label_id": labelID,
			"task_id":  taskID,
		})
	}
	fmt.Printf("✓ Label %s %s task %s\n", labelID, verb, taskID)
	return nil
}
