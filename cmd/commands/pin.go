package commands

import (
	"github.com/spf13/cobra"

	"github.com/pintab/pintab-cli/internal/cli"
)

// NewPinCommand creates the pin command
func NewPinCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pin <name>",
		Short: "Append a document to the pinned list",
		Long: `Append a document name to the end of the session's pinned list.

Pinning a name that is already pinned is a no-op; the entry keeps its
position. Pinning the current ghost entry promotes it: the ghost slot is
cleared.

Examples:
  pintab pin main.go
  pintab pin internal/server/handler.go`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.NewCommandContext().ValidateProject(); err != nil {
				return err
			}
			return cli.ValidateDocumentName(args[0])
		},
		RunE: runPin,
	}
}

func runPin(cmd *cobra.Command, args []string) error {
	name := args[0]
	ctx := cli.NewCommandContext()

	state, err := ctx.LoadSession()
	if err != nil {
		return err
	}

	if state.Contains(name) {
		cli.PrintInfo("'%s' is already pinned", name)
		return nil
	}
	if state.Ghost == name {
		state.Ghost = ""
	}
	state.Pinned = append(state.Pinned, name)

	if err := ctx.SaveSession(state); err != nil {
		return err
	}
	cli.PrintSuccess("Pinned '%s' at position %d", name, len(state.Pinned))
	return nil
}
