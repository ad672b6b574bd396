package cli

import (
	"fmt"
	"os"

	"github.com/pintab/pintab-cli/pkg/files"
	"github.com/pintab/pintab-cli/pkg/models"
)

// CommandContext manages project validation and common command context
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	validated   bool
}

// NewCommandContext creates a new command context
func NewCommandContext() *CommandContext {
	return &CommandContext{
		ProjectPath: files.PintabDir,
	}
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no .pintab directory found. Run 'pintab init' first")
	}

	c.validated = true
	return nil
}

// LoadSettingsWithDefault loads settings or returns defaults if the file is
// missing or unreadable
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	c.Settings = files.ReadSettingsWithDefault()
	return c.Settings
}

// LoadSession reads the session record for the current project
func (c *CommandContext) LoadSession() (*models.SessionState, error) {
	state, err := files.ReadSession()
	if err != nil {
		return nil, fmt.Errorf("failed to read session record: %w", err)
	}
	return state, nil
}

// SaveSession writes the session record for the current project
func (c *CommandContext) SaveSession(state *models.SessionState) error {
	if err := files.WriteSession(state); err != nil {
		return fmt.Errorf("failed to write session record: %w", err)
	}
	return nil
}
