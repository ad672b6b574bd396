package models

// SessionState is the persisted form of the pinned list and ghost reference.
// It is keyed by document names rather than handles: handles are process
// scoped and do not survive a restart, names are re-resolved on load.
type SessionState struct {
	// Pinned holds the full document names in strip order.
	Pinned []string `yaml:"pinned"`
	// Ghost holds the name of the trailing transient entry, if any.
	Ghost string `yaml:"ghost,omitempty"`
}

// Empty reports whether the record carries no state at all.
func (s *SessionState) Empty() bool {
	return len(s.Pinned) == 0 && s.Ghost == ""
}

// Contains reports whether name is one of the pinned entries.
func (s *SessionState) Contains(name string) bool {
	for _, n := range s.Pinned {
		if n == name {
			return true
		}
	}
	return false
}

// IndexOf returns the position of name in the pinned list, or -1.
func (s *SessionState) IndexOf(name string) int {
	for i, n := range s.Pinned {
		if n == name {
			return i
		}
	}
	return -1
}
