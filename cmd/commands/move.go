package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pintab/pintab-cli/internal/cli"
)

// NewMoveCommand creates the move command
func NewMoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "move <name> <left|right>",
		Short: "Swap a pinned document with its neighbor",
		Long: `Swap a pinned document with its left or right neighbor in the session's
pinned list. Moving past the boundary is a no-op.

Examples:
  pintab move main.go left
  pintab move handler.go right`,
		Args: cobra.ExactArgs(2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.NewCommandContext().ValidateProject(); err != nil {
				return err
			}
			return cli.ValidateDirection(args[1])
		},
		RunE: runMove,
	}
}

func runMove(cmd *cobra.Command, args []string) error {
	name := args[0]
	dir := strings.ToLower(args[1])
	ctx := cli.NewCommandContext()

	state, err := ctx.LoadSession()
	if err != nil {
		return err
	}

	i := state.IndexOf(name)
	if i < 0 {
		return fmt.Errorf("'%s' is not pinned", name)
	}

	j := i - 1
	if dir == "right" {
		j = i + 1
	}
	if j < 0 || j >= len(state.Pinned) {
		cli.PrintInfo("'%s' is already at the %s boundary", name, dir)
		return nil
	}
	state.Pinned[i], state.Pinned[j] = state.Pinned[j], state.Pinned[i]

	if err := ctx.SaveSession(state); err != nil {
		return err
	}
	cli.PrintSuccess("Moved '%s' %s", name, dir)
	return nil
}
