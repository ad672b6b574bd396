package host

import "path/filepath"

// document is MemHost's record of one open document.
type document struct {
	name           string
	classification string
	listed         bool
	floating       bool
	pluginOwned    bool
	modified       bool
	help           bool
}

// CloseCall records one Close or CloseKeepLayout request, for tests and for
// the demo app's status line.
type CloseCall struct {
	Doc        Handle
	Mode       CloseMode
	KeepLayout bool
}

// MemHost is an in-memory Host. The demo application uses it as its
// document table; tests use it to drive the engine without an editor.
type MemHost struct {
	docs       map[Handle]*document
	order      []Handle
	next       Handle
	selection  Handle
	workingDir string

	loading bool

	// Strip and Visible record the last SetTabline / SetTablineVisible
	// calls.
	Strip   string
	Visible bool

	// CloseCalls records removal requests in order.
	CloseCalls []CloseCall
}

var _ Host = (*MemHost)(nil)
var _ LayoutCloser = (*MemHost)(nil)

// NewMemHost creates an empty host with the given working directory.
func NewMemHost(workingDir string) *MemHost {
	return &MemHost{
		docs:       make(map[Handle]*document),
		next:       1,
		workingDir: workingDir,
		Visible:    true,
	}
}

// Open creates a named, listed document and returns its handle. The
// classification is derived from the file extension.
func (m *MemHost) Open(name string) Handle {
	h := m.next
	m.next++
	m.docs[h] = &document{
		name:           name,
		classification: classify(name),
		listed:         true,
	}
	m.order = append(m.order, h)
	return h
}

// OpenScratch creates an unnamed placeholder document.
func (m *MemHost) OpenScratch() Handle {
	h := m.next
	m.next++
	m.docs[h] = &document{listed: true}
	m.order = append(m.order, h)
	return h
}

func classify(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return "text"
	}
	return ext[1:]
}

// SetModified marks the document's unsaved-changes flag.
func (m *MemHost) SetModified(h Handle, modified bool) {
	if d, ok := m.docs[h]; ok {
		d.modified = modified
	}
}

// SetHelp marks the document as a read-only help document.
func (m *MemHost) SetHelp(h Handle, help bool) {
	if d, ok := m.docs[h]; ok {
		d.help = help
	}
}

// SetFloating marks the document as shown in a floating surface.
func (m *MemHost) SetFloating(h Handle, floating bool) {
	if d, ok := m.docs[h]; ok {
		d.floating = floating
	}
}

// SetPluginOwned marks the document as a plugin utility window.
func (m *MemHost) SetPluginOwned(h Handle, owned bool) {
	if d, ok := m.docs[h]; ok {
		d.pluginOwned = owned
	}
}

// SetUnlisted removes the document from the listable set and clears its
// classification, the shape plugin windows typically take.
func (m *MemHost) SetUnlisted(h Handle) {
	if d, ok := m.docs[h]; ok {
		d.listed = false
		d.classification = ""
	}
}

// SetSessionLoading toggles the session-restore-in-progress flag.
func (m *MemHost) SetSessionLoading(loading bool) {
	m.loading = loading
}

// Handles returns all open handles in open order.
func (m *MemHost) Handles() []Handle {
	out := make([]Handle, len(m.order))
	copy(out, m.order)
	return out
}

// Host interface.

func (m *MemHost) Exists(h Handle) bool {
	_, ok := m.docs[h]
	return ok
}

func (m *MemHost) DisplayName(h Handle) string {
	if d, ok := m.docs[h]; ok {
		return d.name
	}
	return ""
}

func (m *MemHost) WorkingDir() string { return m.workingDir }

func (m *MemHost) Selection() Handle { return m.selection }

func (m *MemHost) SwitchTo(h Handle) {
	if _, ok := m.docs[h]; ok {
		m.selection = h
	}
}

func (m *MemHost) Close(h Handle, mode CloseMode) {
	m.CloseCalls = append(m.CloseCalls, CloseCall{Doc: h, Mode: mode})
	m.remove(h)
}

// CloseKeepLayout implements the optional LayoutCloser capability.
func (m *MemHost) CloseKeepLayout(h Handle, mode CloseMode) {
	m.CloseCalls = append(m.CloseCalls, CloseCall{Doc: h, Mode: mode, KeepLayout: true})
	m.remove(h)
}

func (m *MemHost) remove(h Handle) {
	if _, ok := m.docs[h]; !ok {
		return
	}
	delete(m.docs, h)
	for i, o := range m.order {
		if o == h {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	if m.selection == h {
		m.selection = NoHandle
		if len(m.order) > 0 {
			m.selection = m.order[len(m.order)-1]
		}
	}
}

func (m *MemHost) FindOrCreate(name string) Handle {
	for _, h := range m.order {
		if m.docs[h].name == name {
			return h
		}
	}
	return m.Open(name)
}

func (m *MemHost) Classification(h Handle) string {
	if d, ok := m.docs[h]; ok {
		return d.classification
	}
	return ""
}

func (m *MemHost) IsListed(h Handle) bool {
	if d, ok := m.docs[h]; ok {
		return d.listed
	}
	return false
}

func (m *MemHost) IsFloating(h Handle) bool {
	if d, ok := m.docs[h]; ok {
		return d.floating
	}
	return false
}

func (m *MemHost) IsPluginOwned(h Handle) bool {
	if d, ok := m.docs[h]; ok {
		return d.pluginOwned
	}
	return false
}

func (m *MemHost) IsModified(h Handle) bool {
	if d, ok := m.docs[h]; ok {
		return d.modified
	}
	return false
}

func (m *MemHost) IsHelp(h Handle) bool {
	if d, ok := m.docs[h]; ok {
		return d.help
	}
	return false
}

func (m *MemHost) SessionLoading() bool { return m.loading }

func (m *MemHost) SetTablineVisible(visible bool) { m.Visible = visible }

func (m *MemHost) SetTabline(strip string) { m.Strip = strip }
