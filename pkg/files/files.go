package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pintab/pintab-cli/pkg/models"
)

const (
	PintabDir    = ".pintab"
	SettingsFile = "settings.yaml"
	SessionFile  = "session.yaml"
	LogFile      = "pintab.log"
)

// InitProjectStructure creates the .pintab directory and a default
// settings file when none exists yet.
func InitProjectStructure() error {
	if err := os.MkdirAll(PintabDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", PintabDir, err)
	}

	settingsPath := filepath.Join(PintabDir, SettingsFile)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		if err := WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}

	return nil
}

// ProjectExists reports whether the current directory is initialized.
func ProjectExists() bool {
	info, err := os.Stat(PintabDir)
	return err == nil && info.IsDir()
}

// ReadSettings loads settings.yaml from the project directory.
func ReadSettings() (*models.Settings, error) {
	path := filepath.Join(PintabDir, SettingsFile)

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return settings, nil
}

// ReadSettingsWithDefault loads settings, falling back to defaults when the
// file is missing or unreadable.
func ReadSettingsWithDefault() *models.Settings {
	settings, err := ReadSettings()
	if err != nil {
		return models.DefaultSettings()
	}
	return settings
}

// WriteSettings saves settings.yaml to the project directory.
func WriteSettings(settings *models.Settings) error {
	if err := os.MkdirAll(PintabDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", PintabDir, err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	path := filepath.Join(PintabDir, SettingsFile)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return nil
}
