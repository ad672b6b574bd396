package models

import "fmt"

// IconStyle selects how file-type icons are rendered in the strip.
type IconStyle string

const (
	IconStyleColor              IconStyle = "color"
	IconStyleMonochrome         IconStyle = "monochrome"
	IconStyleMonochromeSelected IconStyle = "monochrome_selected"
	IconStyleHidden             IconStyle = "hidden"
)

// Valid reports whether the style is one of the closed set.
func (s IconStyle) Valid() bool {
	switch s {
	case IconStyleColor, IconStyleMonochrome, IconStyleMonochromeSelected, IconStyleHidden:
		return true
	}
	return false
}

// RemovalMode selects how the host is asked to close a document.
type RemovalMode string

const (
	RemovalDelete  RemovalMode = "delete"
	RemovalWipeout RemovalMode = "wipeout"
)

// Valid reports whether the mode is one of the closed set.
func (m RemovalMode) Valid() bool {
	return m == RemovalDelete || m == RemovalWipeout
}

// Settings is the project configuration, persisted as
// .pintab/settings.yaml. Construct it with DefaultSettings and check it
// with Validate before use; the zero value has invalid enum fields.
type Settings struct {
	Tabline TablineSettings `yaml:"tabline"`
	Removal RemovalSettings `yaml:"removal"`
	Logging LoggingSettings `yaml:"logging"`
}

// TablineSettings controls how the strip is rendered and whether the
// ghost slot and the default key bindings are active.
type TablineSettings struct {
	AutoHideWhenEmpty bool      `yaml:"auto_hide_when_empty"`
	GhostEnabled      bool      `yaml:"ghost_enabled"`
	IconStyle         IconStyle `yaml:"icon_style"`
	Separator         string    `yaml:"separator"`
	MaxWidth          int       `yaml:"max_width"` // 0 means unbounded
	DefaultBindings   bool      `yaml:"default_bindings"`
}

// RemovalSettings controls how the host is asked to close a document
// when one is removed from the strip.
type RemovalSettings struct {
	Mode             RemovalMode `yaml:"mode"`
	LayoutPreserving bool        `yaml:"layout_preserving"`
}

// LoggingSettings selects the diagnostics sink and its minimum level.
type LoggingSettings struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"` // trace, debug, info, error
}

// DefaultSettings returns the configuration used when settings.yaml is
// missing or unreadable.
func DefaultSettings() *Settings {
	return &Settings{
		Tabline: TablineSettings{
			AutoHideWhenEmpty: false,
			GhostEnabled:      true,
			IconStyle:         IconStyleHidden,
			Separator:         "|",
			MaxWidth:          0,
			DefaultBindings:   true,
		},
		Removal: RemovalSettings{
			Mode:             RemovalDelete,
			LayoutPreserving: false,
		},
		Logging: LoggingSettings{
			Enabled: false,
			Level:   "info",
		},
	}
}

// Validate checks the closed-enum fields and reports the first bad value.
func (s *Settings) Validate() error {
	if !s.Tabline.IconStyle.Valid() {
		return fmt.Errorf("invalid tabline.icon_style %q (want color, monochrome, monochrome_selected or hidden)", s.Tabline.IconStyle)
	}
	if !s.Removal.Mode.Valid() {
		return fmt.Errorf("invalid removal.mode %q (want delete or wipeout)", s.Removal.Mode)
	}
	switch s.Logging.Level {
	case "trace", "debug", "info", "error":
	default:
		return fmt.Errorf("invalid logging.level %q (want trace, debug, info or error)", s.Logging.Level)
	}
	return nil
}
