package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pintab/pintab-cli/pkg/models"
)

// chtmp moves the test into a fresh temp dir and restores the old cwd.
func chtmp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestInitProjectStructure(t *testing.T) {
	chtmp(t)

	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure: %v", err)
	}

	if !ProjectExists() {
		t.Error("ProjectExists = false after init")
	}
	if _, err := os.Stat(filepath.Join(PintabDir, SettingsFile)); err != nil {
		t.Errorf("settings file not created: %v", err)
	}
}

func TestInitKeepsExistingSettings(t *testing.T) {
	chtmp(t)

	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure: %v", err)
	}

	settings := models.DefaultSettings()
	settings.Tabline.AutoHideWhenEmpty = true
	if err := WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings: %v", err)
	}

	// A second init must not clobber the customized file.
	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure (second): %v", err)
	}

	got, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings: %v", err)
	}
	if !got.Tabline.AutoHideWhenEmpty {
		t.Error("AutoHideWhenEmpty lost after re-init")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	chtmp(t)

	want := models.DefaultSettings()
	want.Tabline.IconStyle = models.IconStyleMonochrome
	want.Tabline.Separator = "·"
	want.Removal.Mode = models.RemovalWipeout
	want.Logging.Enabled = true
	want.Logging.Level = "debug"

	if err := WriteSettings(want); err != nil {
		t.Fatalf("WriteSettings: %v", err)
	}

	got, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings: %v", err)
	}

	if got.Tabline.IconStyle != want.Tabline.IconStyle {
		t.Errorf("IconStyle = %q, want %q", got.Tabline.IconStyle, want.Tabline.IconStyle)
	}
	if got.Tabline.Separator != want.Tabline.Separator {
		t.Errorf("Separator = %q, want %q", got.Tabline.Separator, want.Tabline.Separator)
	}
	if got.Removal.Mode != want.Removal.Mode {
		t.Errorf("Removal.Mode = %q, want %q", got.Removal.Mode, want.Removal.Mode)
	}
	if !got.Logging.Enabled || got.Logging.Level != "debug" {
		t.Errorf("Logging = %+v, want enabled debug", got.Logging)
	}
}

func TestReadSettingsMissing(t *testing.T) {
	chtmp(t)

	if _, err := ReadSettings(); err == nil {
		t.Error("ReadSettings on missing file: want error")
	}

	settings := ReadSettingsWithDefault()
	if settings.Tabline.Separator != models.DefaultSettings().Tabline.Separator {
		t.Error("ReadSettingsWithDefault did not fall back to defaults")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	chtmp(t)

	want := &models.SessionState{
		Pinned: []string{"internal/app/server.go", "README.md", "go.mod"},
		Ghost:  "docs/notes.md",
	}
	if err := WriteSession(want); err != nil {
		t.Fatalf("WriteSession: %v", err)
	}

	got, err := ReadSession()
	if err != nil {
		t.Fatalf("ReadSession: %v", err)
	}

	if len(got.Pinned) != len(want.Pinned) {
		t.Fatalf("Pinned count = %d, want %d", len(got.Pinned), len(want.Pinned))
	}
	for i := range want.Pinned {
		if got.Pinned[i] != want.Pinned[i] {
			t.Errorf("Pinned[%d] = %q, want %q", i, got.Pinned[i], want.Pinned[i])
		}
	}
	if got.Ghost != want.Ghost {
		t.Errorf("Ghost = %q, want %q", got.Ghost, want.Ghost)
	}
}

func TestReadSessionMissingIsEmpty(t *testing.T) {
	chtmp(t)

	state, err := ReadSession()
	if err != nil {
		t.Fatalf("ReadSession: %v", err)
	}
	if !state.Empty() {
		t.Errorf("missing session should read as empty, got %+v", state)
	}
}

func TestReadSessionMalformed(t *testing.T) {
	chtmp(t)

	if err := os.MkdirAll(PintabDir, 0755); err != nil {
		t.Fatal(err)
	}
	bad := []byte("pinned: [unclosed")
	if err := os.WriteFile(filepath.Join(PintabDir, SessionFile), bad, 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadSession(); err == nil {
		t.Error("ReadSession on malformed file: want error")
	}
}
