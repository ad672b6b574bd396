package commands

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pintab/pintab-cli/internal/cli"
)

// ListResult represents the output structure for the list command
type ListResult struct {
	Pinned []ListItem `json:"pinned" yaml:"pinned"`
	Ghost  string     `json:"ghost,omitempty" yaml:"ghost,omitempty"`
	Count  int        `json:"count" yaml:"count"`
}

// ListItem represents a single pinned entry
type ListItem struct {
	Index int    `json:"index" yaml:"index"`
	Name  string `json:"name" yaml:"name"`
}

var listCopy bool

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pinned documents and the ghost entry",
		Long: `List the pinned documents recorded for the current project, in strip
order, along with the ghost entry if one is tracked.

Examples:
  # List the session record
  pintab list

  # List with JSON output
  pintab list -o json

  # Copy the pinned names to the clipboard
  pintab list --copy`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewCommandContext().ValidateProject()
		},
		RunE: runList,
	}

	cmd.Flags().BoolVar(&listCopy, "copy", false, "Copy pinned names to the clipboard")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	state, err := ctx.LoadSession()
	if err != nil {
		return err
	}

	result := ListResult{Ghost: state.Ghost, Count: len(state.Pinned)}
	for i, name := range state.Pinned {
		result.Pinned = append(result.Pinned, ListItem{Index: i + 1, Name: name})
	}

	if listCopy {
		if err := clipboard.WriteAll(strings.Join(state.Pinned, "\n")); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.PrintSuccess("%d pinned names copied to clipboard", len(state.Pinned))
	}

	outputFormat := string(cli.FormatText)
	if cmd.Flags().Changed("output") {
		outputFormat, _ = cmd.Flags().GetString("output")
		if err := cli.ValidateOutputFormat(outputFormat); err != nil {
			return err
		}
	}
	switch cli.OutputFormat(outputFormat) {
	case cli.FormatJSON, cli.FormatYAML:
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	default:
		return outputListText(cmd, result)
	}
}

// listNameWidth caps the Name column so one pathological entry cannot
// wreck the table layout.
const listNameWidth = 60

func outputListText(cmd *cobra.Command, result ListResult) error {
	if result.Count == 0 && result.Ghost == "" {
		cli.PrintInfo("No pinned documents")
		return nil
	}

	if result.Count > 0 {
		table := cli.NewTableFormatter(cmd.OutOrStdout())
		table.Header("#", "Name")
		for _, item := range result.Pinned {
			table.Row(fmt.Sprintf("%d", item.Index), cli.TruncateString(item.Name, listNameWidth))
		}
		table.Flush()
	}

	if result.Ghost != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "\nGhost: %s\n", result.Ghost)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\nTotal: %d pinned\n", result.Count)

	return nil
}
