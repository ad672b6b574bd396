package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pintab/pintab-cli/cmd/commands"
	"github.com/pintab/pintab-cli/internal/cli"
	"github.com/pintab/pintab-cli/pkg/files"
	"github.com/pintab/pintab-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

var (
	flagOutput  string
	flagQuiet   bool
	flagNoColor bool
	flagYes     bool
)

var rootCmd = &cobra.Command{
	Use:   "pintab",
	Short: "Pinned-document tabline for your editing sessions",
	Long: `Pintab keeps a small, deliberate list of pinned documents and renders it
as a tabline strip. State lives in plain YAML under .pintab/ so the same
record drives the interactive TUI and the command line.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cli.SetGlobalFlags(flagQuiet, flagNoColor, flagYes)
		return cli.ValidateOutputFormat(flagOutput)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if !files.ProjectExists() {
			cli.PrintError("No .pintab directory found in the current directory.")
			fmt.Fprintf(os.Stderr, "Please run 'pintab init' first to initialize a new project.\n")
			os.Exit(1)
		}

		settings := files.ReadSettingsWithDefault()
		if err := settings.Validate(); err != nil {
			cli.PrintError("Invalid settings: %v", err)
			os.Exit(1)
		}

		app := tui.NewApp(settings, cli.NewLogger(settings))
		p := tea.NewProgram(app, tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			cli.PrintError("Failed to start the terminal user interface: %v", err)
			fmt.Fprintf(os.Stderr, "This could be due to terminal compatibility issues. Try running in a different terminal.\n")
			os.Exit(1)
		}
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new Pintab project",
	Long:  `Creates the .pintab folder structure in the current directory`,
	Run: func(cmd *cobra.Command, args []string) {
		cwd, err := os.Getwd()
		if err != nil {
			cli.PrintError("Failed to determine current directory: %v", err)
			os.Exit(1)
		}

		fmt.Printf("Initializing Pintab project in %s...\n", cwd)

		if err := files.InitProjectStructure(); err != nil {
			cli.PrintError("Failed to initialize project structure: %v", err)
			fmt.Fprintf(os.Stderr, "Make sure you have write permissions in the current directory.\n")
			os.Exit(1)
		}

		fmt.Println("✓ Created .pintab folder structure")
		fmt.Println("\nRun 'pintab' to start the interactive TUI.")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Pintab",
	Long:  `Display the current version of the Pintab CLI tool`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Pintab version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "text", "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagYes, "yes", "y", false, "Skip confirmation prompts")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewPinCommand())
	rootCmd.AddCommand(commands.NewUnpinCommand())
	rootCmd.AddCommand(commands.NewMoveCommand())
	rootCmd.AddCommand(commands.NewGhostCommand())
	rootCmd.AddCommand(commands.NewClearCommand())
	rootCmd.AddCommand(commands.NewSetCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
