package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pintab/pintab-cli/internal/cli"
	"github.com/pintab/pintab-cli/pkg/files"
	"github.com/pintab/pintab-cli/pkg/models"
)

// NewSetCommand creates the set command
func NewSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> [value]",
		Short: "Get or set a configuration value",
		Long: `With a key only, print the current value. With a key and value, update
.pintab/settings.yaml.

Keys:
  tabline.auto_hide_when_empty   bool
  tabline.ghost_enabled          bool
  tabline.icon_style             color|monochrome|monochrome_selected|hidden
  tabline.separator              string
  tabline.max_width              int (0 = unbounded)
  removal.mode                   delete|wipeout
  removal.layout_preserving      bool
  logging.enabled                bool
  logging.level                  trace|debug|info|error

Examples:
  pintab set tabline.ghost_enabled
  pintab set tabline.ghost_enabled false
  pintab set removal.mode wipeout
  pintab set tabline.separator "｜"`,
		Args: cobra.RangeArgs(1, 2),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewCommandContext().ValidateProject()
		},
		RunE: runSet,
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	settings := cli.NewCommandContext().LoadSettingsWithDefault()
	key := args[0]

	if len(args) == 1 {
		value, err := getSetting(settings, key)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	}

	if err := applySetting(settings, key, args[1]); err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := files.WriteSettings(settings); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	cli.PrintSuccess("%s = %s", key, args[1])
	return nil
}

func getSetting(s *models.Settings, key string) (string, error) {
	switch key {
	case "tabline.auto_hide_when_empty":
		return strconv.FormatBool(s.Tabline.AutoHideWhenEmpty), nil
	case "tabline.ghost_enabled":
		return strconv.FormatBool(s.Tabline.GhostEnabled), nil
	case "tabline.icon_style":
		return string(s.Tabline.IconStyle), nil
	case "tabline.separator":
		return s.Tabline.Separator, nil
	case "tabline.max_width":
		return strconv.Itoa(s.Tabline.MaxWidth), nil
	case "removal.mode":
		return string(s.Removal.Mode), nil
	case "removal.layout_preserving":
		return strconv.FormatBool(s.Removal.LayoutPreserving), nil
	case "logging.enabled":
		return strconv.FormatBool(s.Logging.Enabled), nil
	case "logging.level":
		return s.Logging.Level, nil
	}
	return "", fmt.Errorf("unknown setting: %s", key)
}

func applySetting(s *models.Settings, key, value string) error {
	switch key {
	case "tabline.auto_hide_when_empty":
		return setBool(&s.Tabline.AutoHideWhenEmpty, key, value)
	case "tabline.ghost_enabled":
		return setBool(&s.Tabline.GhostEnabled, key, value)
	case "tabline.icon_style":
		if err := cli.ValidateIconStyle(value); err != nil {
			return err
		}
		s.Tabline.IconStyle = models.IconStyle(value)
		return nil
	case "tabline.separator":
		s.Tabline.Separator = value
		return nil
	case "tabline.max_width":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid value for %s: %s (must be a non-negative integer)", key, value)
		}
		s.Tabline.MaxWidth = n
		return nil
	case "removal.mode":
		if err := cli.ValidateRemovalMode(value); err != nil {
			return err
		}
		s.Removal.Mode = models.RemovalMode(value)
		return nil
	case "removal.layout_preserving":
		return setBool(&s.Removal.LayoutPreserving, key, value)
	case "logging.enabled":
		return setBool(&s.Logging.Enabled, key, value)
	case "logging.level":
		if err := cli.ValidateLogLevel(value); err != nil {
			return err
		}
		s.Logging.Level = value
		return nil
	}
	return fmt.Errorf("unknown setting: %s", key)
}

func setBool(target *bool, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %s (must be true or false)", key, value)
	}
	*target = b
	return nil
}
