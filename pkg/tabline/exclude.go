package tabline

import "github.com/pintab/pintab-cli/pkg/host"

// ExcludeFunc is a user-supplied veto on pin and ghost eligibility.
type ExcludeFunc func(host.Handle) bool

// Excluded reports whether the document may not be pinned or tracked as the
// ghost entry. It never errors: a stale handle is simply excluded.
//
// A document is excluded when it has no backing name, is a help document,
// is a plugin utility window (flagged explicitly, or unresolved
// classification while absent from the listable set), is shown on a
// floating surface, or the user predicate rejects it.
func Excluded(h host.Host, doc host.Handle, user ExcludeFunc) bool {
	if !h.Exists(doc) {
		return true
	}
	if h.DisplayName(doc) == "" {
		return true
	}
	if h.IsHelp(doc) {
		return true
	}
	if h.IsPluginOwned(doc) {
		return true
	}
	if h.Classification(doc) == "" && !h.IsListed(doc) {
		return true
	}
	if h.IsFloating(doc) {
		return true
	}
	if user != nil && user(doc) {
		return true
	}
	return false
}
