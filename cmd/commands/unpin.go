package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pintab/pintab-cli/internal/cli"
)

// NewUnpinCommand creates the unpin command
func NewUnpinCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unpin <name>",
		Short: "Remove a document from the pinned list",
		Long: `Remove a document name from the session's pinned list. Entries to the
right shift left; relative order is preserved.

Examples:
  pintab unpin main.go`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewCommandContext().ValidateProject()
		},
		RunE: runUnpin,
	}
}

func runUnpin(cmd *cobra.Command, args []string) error {
	name := args[0]
	ctx := cli.NewCommandContext()

	state, err := ctx.LoadSession()
	if err != nil {
		return err
	}

	i := state.IndexOf(name)
	if i < 0 {
		return fmt.Errorf("'%s' is not pinned", name)
	}
	state.Pinned = append(state.Pinned[:i], state.Pinned[i+1:]...)

	if err := ctx.SaveSession(state); err != nil {
		return err
	}
	cli.PrintSuccess("Unpinned '%s'", name)
	return nil
}
