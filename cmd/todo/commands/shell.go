package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/todo/internal/app"
)

func (c *CLI) newShellCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive task list session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputMode, _ := cmd.Flags().GetString("output")
			filter, _ := cmd.Flags().GetString("filter")
			ci, _ := cmd.Flags().GetBool("ci")

			// If --ci is set, override output to "linear"
			if ci {
				outputMode = "linear"
			}

			return c.app.Shell(cmd.Context(), app.ShellOptions{
				OutputMode: outputMode,
				Filter:     filter,
			})
		},
	}
	cmd.Flags().StringP("output", "o", "", "Output mode: auto, tui, or linear (default from todo.yaml, else auto)")
	cmd.Flags().StringP("filter", "f", "", "Initial filter: all, completed, or pending (default from todo.yaml, else all)")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output=linear)")
	return cmd
}
