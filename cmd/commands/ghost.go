package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pintab/pintab-cli/internal/cli"
)

var ghostClear bool

// NewGhostCommand creates the ghost command
func NewGhostCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ghost [name]",
		Short: "Show, set, or clear the ghost entry",
		Long: `With no arguments, print the current ghost entry. With a name, record
that name as the ghost. The ghost slot holds the one unpinned document the
strip shows; a pinned name cannot also be the ghost.

Examples:
  # Show the current ghost entry
  pintab ghost

  # Record a ghost entry
  pintab ghost notes.md

  # Clear the ghost slot
  pintab ghost --clear`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.NewCommandContext().ValidateProject(); err != nil {
				return err
			}
			if len(args) > 0 {
				return cli.ValidateDocumentName(args[0])
			}
			return nil
		},
		RunE: runGhost,
	}

	cmd.Flags().BoolVar(&ghostClear, "clear", false, "Clear the ghost slot")

	return cmd
}

func runGhost(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	state, err := ctx.LoadSession()
	if err != nil {
		return err
	}

	if ghostClear {
		if len(args) > 0 {
			return fmt.Errorf("cannot combine a name with --clear")
		}
		state.Ghost = ""
		if err := ctx.SaveSession(state); err != nil {
			return err
		}
		cli.PrintSuccess("Ghost slot cleared")
		return nil
	}

	if len(args) == 0 {
		if state.Ghost == "" {
			cli.PrintInfo("No ghost entry")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), state.Ghost)
		}
		return nil
	}

	name := args[0]
	if state.Contains(name) {
		return fmt.Errorf("'%s' is pinned; a pinned document cannot be the ghost", name)
	}
	state.Ghost = name

	if err := ctx.SaveSession(state); err != nil {
		return err
	}
	cli.PrintSuccess("Ghost entry set to '%s'", name)
	return nil
}
