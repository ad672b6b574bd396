package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pintab/pintab-cli/pkg/models"
)

// ReadSession loads the persisted session record. A missing file is not an
// error: it yields an empty record, matching the "no prior state" rule for
// anything the slot cannot produce.
func ReadSession() (*models.SessionState, error) {
	path := filepath.Join(PintabDir, SessionFile)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.SessionState{}, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var state models.SessionState
	if err := yaml.Unmarshal(content, &state); err != nil {
		return nil, fmt.Errorf("failed to parse session YAML: %w", err)
	}

	return &state, nil
}

// WriteSession saves the session record to the durable slot.
func WriteSession(state *models.SessionState) error {
	if err := os.MkdirAll(PintabDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", PintabDir, err)
	}

	content, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session to YAML: %w", err)
	}

	path := filepath.Join(PintabDir, SessionFile)
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	return nil
}
