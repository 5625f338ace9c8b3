package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/hypejab/triage/internal/models"
	"github.com/hypejab/triage/internal/view"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the kanban board",
		Long: `Show the board: every column with its visible tasks, after the
active search, label, priority, and sort criteria are applied.

Examples:
  # Full board
  triage board

  # Only tasks matching a search, sorted by priority
  triage board --search="xss" --sort=priority

  # Tasks carrying any of the selected labels
  triage board --label=security --label=bug

  # JSON output for agents
  triage board --json
`,
		RunE: runBoard,
	}

	cmd.Flags().String("search", "", "Case-insensitive search over title and details")
	cmd.Flags().StringSlice("label", nil, "Label ID to filter by (repeatable, match any)")
	cmd.Flags().String("priority", "", "Exact priority filter (Critical, High, Medium, Low)")
	cmd.Flags().String("sort", "", "Sort key: date, date-asc, priority, priority-asc, title, title-desc, rating, rating-asc")

	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatter := NewFormatter(jsonOutput, false)

	c, err := NewCLI(ctx)
	if err != nil {
		return initError(formatter, err)
	}
	defer closeCLI(c)

	userID, err := c.RequireUser()
	if err != nil {
		if fmtErr := formatter.Error("NOT_LOGGED_IN", err.Error()); fmtErr != nil {
			logFormatError(fmtErr)
		}
		os.Exit(ExitUsage)
	}

	search, _ := cmd.Flags().GetString("search")
	labels, _ := cmd.Flags().GetStringSlice("label")
	priority, _ := cmd.Flags().GetString("priority")
	sortKey, _ := cmd.Flags().GetString("sort")

	c.App.Board.UpdateFilters(view.CriteriaPatch{
		Search:   &search,
		Labels:   &labels,
		Priority: &priority,
		Sort:     &sortKey,
	})

	columns := c.App.Board.Columns()
	sort.SliceStable(columns, func(i, j int) bool { return columns[i].Order < columns[j].Order })
	tasks := c.App.Board.Tasks()

	if jsonOutput {
		type columnOut struct {
			ID    string         `json:"id"`
			Title string         `json:"title"`
			Tasks []*models.Task `json:"tasks"`
		}
		out := make([]columnOut, len(columns))
		for i, col := range columns {
			list := tasks[col.ID]
			if list == nil {
				list = []*models.Task{}
			}
			out[i] = columnOut{ID: col.ID, Title: col.Title, Tasks: list}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"user":    userID,
			"columns": out,
		})
	}

	fmt.Println(renderBoard(columns, tasks))
	return nil
}

// renderBoard lays the columns out side by side.
func renderBoard(columns []models.Column, tasks map[string][]*models.Task) string {
	rendered := make([]string, len(columns))
	for i, col := range columns {
		rendered[i] = renderColumn(col, tasks[col.ID])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderColumn(col models.Column, tasks []*models.Task) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("%s (%d)", col.Title, len(tasks))))

	for _, task := range tasks {
		b.WriteString("\n\n")
		b.WriteString(renderTask(task))
	}

	if len(tasks) == 0 {
		b.WriteString("\n\n")
		b.WriteString(SubtitleStyle.Render("no tasks"))
	}

	return ColumnStyle.Render(b.String())
}

func renderTask(task *models.Task) string {
	title := task.Title
	if task.Starred {
		title = "★ " + title
	}

	lines := []string{
		ValueStyle.Render(title),
		SubtitleStyle.Render(fmt.Sprintf("%s · %.1f", task.Priority, task.Rating)),
	}
	if len(task.Labels) > 0 {
		lines = append(lines, SubtitleStyle.Render(strings.Join(task.Labels, " ")))
	}
	return strings.Join(lines, "\n")
}
