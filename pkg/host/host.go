// Package host defines the boundary to the editor that owns documents,
// windows and the displayed tabline. The engine in pkg/tabline only ever
// talks to these interfaces; MemHost provides an in-process implementation
// for the demo application and for tests.
package host

// Handle is an opaque identifier for an open document. Handles are only
// meaningful within a single process run; persistence is keyed by names.
type Handle int

// NoHandle is the zero Handle and never refers to a document.
const NoHandle Handle = 0

// CloseMode selects the strength of a document close request.
type CloseMode int

const (
	// CloseDelete unloads the document but keeps host metadata about it.
	CloseDelete CloseMode = iota
	// CloseWipeout removes every trace of the document from the host.
	CloseWipeout
)

func (m CloseMode) String() string {
	if m == CloseWipeout {
		return "wipeout"
	}
	return "delete"
}

// Host is the set of editor primitives the tabline engine consumes.
// Implementations must tolerate stale handles: queries on a handle that no
// longer exists return zero values rather than failing.
type Host interface {
	// Exists reports whether the handle still refers to an open document.
	Exists(h Handle) bool
	// DisplayName returns the document's full name, or "" when the
	// document has no backing name.
	DisplayName(h Handle) string
	// WorkingDir returns the host's current working directory.
	WorkingDir() string

	// Selection returns the currently selected document.
	Selection() Handle
	// SwitchTo makes h the current selection. Stale handles are ignored.
	SwitchTo(h Handle)
	// Close asks the host to close the document.
	Close(h Handle, mode CloseMode)
	// FindOrCreate resolves a name to a handle, creating a backing
	// document when none is open under that name.
	FindOrCreate(name string) Handle

	// Classification returns the document's content-type classification,
	// or "" when unresolved.
	Classification(h Handle) string
	// IsListed reports whether the document appears in the host's normal
	// listable-document set.
	IsListed(h Handle) bool
	// IsFloating reports whether the document is shown in a floating or
	// overlay surface.
	IsFloating(h Handle) bool
	// IsPluginOwned reports whether the document is a plugin utility
	// window.
	IsPluginOwned(h Handle) bool
	// IsModified reports whether the document has unsaved changes.
	IsModified(h Handle) bool
	// IsHelp reports whether the document is a read-only help document.
	IsHelp(h Handle) bool

	// SessionLoading reports whether a session restore is in progress.
	// Rendering is suppressed while it is set.
	SessionLoading() bool

	// SetTablineVisible toggles the host-level show-tabline flag.
	SetTablineVisible(visible bool)
	// SetTabline writes the rendered strip to the displayed surface.
	SetTabline(strip string)
}

// LayoutCloser is an optional capability: closing a document without
// disturbing the window layout. Hosts that support it are detected once at
// engine construction; absence degrades to plain Close.
type LayoutCloser interface {
	CloseKeepLayout(h Handle, mode CloseMode)
}
