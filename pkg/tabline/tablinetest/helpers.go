// Package tablinetest provides builders shared by the engine tests: a
// populated in-memory host and a readable diff for strip mismatches.
package tablinetest

import (
	"github.com/pmezard/go-difflib/difflib"

	"github.com/pintab/pintab-cli/pkg/host"
	"github.com/pintab/pintab-cli/pkg/models"
)

// NewHost builds a MemHost with one open, listed document per name, in
// order. The last document becomes the selection.
func NewHost(workingDir string, names ...string) (*host.MemHost, []host.Handle) {
	m := host.NewMemHost(workingDir)
	handles := make([]host.Handle, 0, len(names))
	for _, name := range names {
		h := m.Open(name)
		handles = append(handles, h)
		m.SwitchTo(h)
	}
	return m, handles
}

// Settings returns defaults with ghost tracking on, no icons, plain "|"
// separator. Tests mutate the returned value as needed.
func Settings() *models.Settings {
	return models.DefaultSettings()
}

// Diff renders a unified diff between two rendered strips, for test
// failure messages.
func Diff(want, got string) string {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  1,
	})
	if err != nil {
		return "diff unavailable: " + err.Error()
	}
	return text
}
