package commands

import (
	"github.com/spf13/cobra"

	"github.com/pintab/pintab-cli/internal/cli"
	"github.com/pintab/pintab-cli/pkg/models"
)

// NewClearCommand creates the clear command
func NewClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the session record",
		Long: `Empty the pinned list and the ghost slot for the current project. The
documents themselves are untouched; only the session record changes.

Examples:
  pintab clear
  pintab clear --yes`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewCommandContext().ValidateProject()
		},
		RunE: runClear,
	}
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	state, err := ctx.LoadSession()
	if err != nil {
		return err
	}

	if state.Empty() {
		cli.PrintInfo("Session record is already empty")
		return nil
	}

	ok, err := cli.Confirm("Clear all pinned documents and the ghost entry?", false)
	if err != nil {
		return err
	}
	if !ok {
		cli.PrintInfo("Aborted")
		return nil
	}

	if err := ctx.SaveSession(&models.SessionState{}); err != nil {
		return err
	}
	cli.PrintSuccess("Session record cleared")
	return nil
}
