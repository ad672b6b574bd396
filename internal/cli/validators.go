package cli

import (
	"fmt"
	"strings"

	"github.com/pintab/pintab-cli/pkg/models"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	for _, valid := range validFormats {
		if format == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateDocumentName validates a document name used in the session record
func ValidateDocumentName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("document name cannot be empty")
	}
	if strings.ContainsAny(name, "\n\r\t") {
		return fmt.Errorf("document name contains control characters")
	}
	return nil
}

// ValidateDirection validates a move direction argument
func ValidateDirection(dir string) error {
	switch strings.ToLower(dir) {
	case "left", "right":
		return nil
	}
	return fmt.Errorf("invalid direction: %s (must be: left or right)", dir)
}

// ValidateIconStyle validates an icon style setting value
func ValidateIconStyle(s string) error {
	if !models.IconStyle(s).Valid() {
		return fmt.Errorf("invalid icon style: %s (must be: color, monochrome, monochrome_selected, or hidden)", s)
	}
	return nil
}

// ValidateRemovalMode validates a removal mode setting value
func ValidateRemovalMode(s string) error {
	if !models.RemovalMode(s).Valid() {
		return fmt.Errorf("invalid removal mode: %s (must be: delete or wipeout)", s)
	}
	return nil
}

// ValidateLogLevel validates a logging level setting value
func ValidateLogLevel(s string) error {
	switch strings.ToLower(s) {
	case "trace", "debug", "info", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %s (must be: trace, debug, info, or error)", s)
}
