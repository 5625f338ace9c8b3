package cmd

import (
	"github.com/spf13/cobra"

	"github.com/hypejab/triage/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "triage",
	Short: "Triage - a kanban board for security-issue triage",
	Long:  `Triage is a single-user kanban board: columns of task cards with priority, rating, and label metadata, persisted per account.`,
}

func init() {
	rootCmd.AddCommand(cli.BoardCmd())
	rootCmd.AddCommand(cli.ColumnCmd())
	rootCmd.AddCommand(cli.TaskCmd())
	rootCmd.AddCommand(cli.LabelCmd())
	for _, c := range cli.AuthCmds() {
		rootCmd.AddCommand(c)
	}
}

func Execute() error {
	return rootCmd.Execute()
}
