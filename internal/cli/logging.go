package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/pslog"

	"github.com/pintab/pintab-cli/pkg/files"
	"github.com/pintab/pintab-cli/pkg/models"
)

// NewLogger builds the process logger from the logging settings. When
// logging is disabled the returned logger discards everything. Otherwise
// lines are appended to .pintab/pintab.log; if the file cannot be opened
// the logger falls back to stderr rather than failing the command.
func NewLogger(settings *models.Settings) pslog.Logger {
	if !settings.Logging.Enabled {
		return pslog.NewWithOptions(io.Discard, pslog.Options{
			Mode: pslog.ModeStructured,
		})
	}

	var w io.Writer = os.Stderr
	path := filepath.Join(files.PintabDir, files.LogFile)
	if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		w = f
	} else {
		PrintWarning("cannot open %s, logging to stderr: %v", path, err)
	}

	opts := pslog.Options{Mode: pslog.ModeStructured}
	switch strings.ToLower(settings.Logging.Level) {
	case "trace":
		opts.MinLevel = pslog.TraceLevel
	case "debug":
		opts.MinLevel = pslog.DebugLevel
	case "error":
		opts.MinLevel = pslog.ErrorLevel
	default:
		opts.MinLevel = pslog.InfoLevel
	}
	return pslog.NewWithOptions(w, opts)
}
