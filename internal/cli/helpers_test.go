package cli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn with os.Stderr redirected to a pipe and returns
// what was written.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()
	w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestPrintErrorPlainLabel(t *testing.T) {
	SetGlobalFlags(false, true, false)
	t.Cleanup(func() { SetGlobalFlags(false, false, false) })

	out := captureStderr(t, func() { PrintError("settings invalid: %d bad keys", 2) })
	if out != "ERROR: settings invalid: 2 bad keys\n" {
		t.Errorf("stderr = %q", out)
	}
}

func TestPrintWarningNotSilencedByQuiet(t *testing.T) {
	SetGlobalFlags(true, true, false)
	t.Cleanup(func() { SetGlobalFlags(false, false, false) })

	out := captureStderr(t, func() { PrintWarning("log file unavailable") })
	if out != "WARNING: log file unavailable\n" {
		t.Errorf("stderr = %q", out)
	}
}

func TestTableFormatterRuleMatchesColumns(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableFormatter(&buf)
	table.Header("#", "Name")
	table.Row("1", "a.go")
	table.Flush()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3:\n%s", len(lines), buf.String())
	}
	if !strings.Contains(lines[1], "-") || strings.ContainsAny(lines[1], "#N") {
		t.Errorf("rule line = %q, want dashes only", lines[1])
	}
}

func TestValidateOutputFormat(t *testing.T) {
	for _, format := range []string{"text", "json", "yaml"} {
		if err := ValidateOutputFormat(format); err != nil {
			t.Errorf("ValidateOutputFormat(%q) = %v", format, err)
		}
	}
	for _, format := range []string{"", "bogus", "xml", "JSON "} {
		if err := ValidateOutputFormat(format); err == nil {
			t.Errorf("ValidateOutputFormat(%q) accepted", format)
		}
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in     string
		maxLen int
		want   string
	}{
		{"short.go", 20, "short.go"},
		{"exactly-ten", 11, "exactly-ten"},
		{"internal/app/server_handlers.go", 20, "internal/app/serv..."},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := TruncateString(tt.in, tt.maxLen); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.maxLen, got, tt.want)
		}
	}
}
