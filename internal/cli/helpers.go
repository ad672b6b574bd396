package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Global output flags, set once from the root command.
var (
	quiet       bool
	noColor     bool
	skipConfirm bool
)

// SetGlobalFlags records the root command's output flags.
func SetGlobalFlags(q, nc, sc bool) {
	quiet = q
	noColor = nc
	skipConfirm = sc
}

// Confirm prompts on stdout and reads a yes/no answer from stdin. The
// --yes flag short-circuits to true so scripted runs never block.
func Confirm(prompt string, defaultYes bool) (bool, error) {
	if skipConfirm {
		return true, nil
	}

	suffix := " [y/N]: "
	if defaultYes {
		suffix = " [Y/n]: "
	}
	fmt.Print(prompt + suffix)

	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "" {
		return defaultYes, nil
	}
	return answer == "y" || answer == "yes", nil
}

// status writes one marked line to w. Under --no-color the glyph is
// replaced with a plain text label.
func status(w io.Writer, glyph, label, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Fprintf(w, "%s: %s\n", label, msg)
		return
	}
	fmt.Fprintf(w, "%s %s\n", glyph, msg)
}

// PrintSuccess reports a completed mutation unless --quiet is set.
func PrintSuccess(format string, args ...interface{}) {
	if !quiet {
		status(os.Stdout, "✓", "OK", format, args...)
	}
}

// PrintInfo reports an informational or no-op outcome unless --quiet is set.
func PrintInfo(format string, args ...interface{}) {
	if !quiet {
		status(os.Stdout, "ℹ", "INFO", format, args...)
	}
}

// PrintWarning reports a degraded but continuing operation on stderr.
// Warnings are not silenced by --quiet.
func PrintWarning(format string, args ...interface{}) {
	status(os.Stderr, "⚠", "WARNING", format, args...)
}

// PrintError reports a failure on stderr.
func PrintError(format string, args ...interface{}) {
	status(os.Stderr, "✗", "ERROR", format, args...)
}
