package tabline

import (
	"io"

	"pkt.systems/pslog"

	"github.com/pintab/pintab-cli/pkg/host"
	"github.com/pintab/pintab-cli/pkg/models"
)

// Controller owns the pinned list and the ghost reference. It is an
// explicit state object: construct one per host at startup and route every
// host event and user command through it. All methods are synchronous and
// must be called from a single goroutine (the host event loop).
type Controller struct {
	host     host.Host
	settings *models.Settings
	log      pslog.Logger

	exclude ExcludeFunc
	icons   IconProvider
	store   SessionStore

	// layout is the optional layout-preserving closer, resolved once at
	// construction. layoutMissing flips the first time the configuration
	// asks for it while the capability is absent, so the degradation is
	// logged once.
	layout        host.LayoutCloser
	layoutMissing bool

	pinned []host.Handle
	ghost  host.Handle
}

// NewController creates a controller bound to a host. Optional
// collaborators are attached with the Set methods before the first event
// is routed.
func NewController(h host.Host, settings *models.Settings) *Controller {
	c := &Controller{
		host:     h,
		settings: settings,
		log:      pslog.NewWithOptions(io.Discard, pslog.Options{Mode: pslog.ModeStructured}),
	}
	if lc, ok := h.(host.LayoutCloser); ok {
		c.layout = lc
	}
	return c
}

// SetLogger routes diagnostics to the given logger.
func (c *Controller) SetLogger(log pslog.Logger) {
	c.log = log
}

// SetExcludeFunc installs the user eligibility veto.
func (c *Controller) SetExcludeFunc(f ExcludeFunc) {
	c.exclude = f
}

// SetIconProvider installs the optional icon collaborator.
func (c *Controller) SetIconProvider(p IconProvider) {
	c.icons = p
}

// SetStore installs the durable session slot. A nil store disables
// persistence.
func (c *Controller) SetStore(s SessionStore) {
	c.store = s
}

// Bind subscribes the controller's handlers to host events.
func (c *Controller) Bind(d *host.Dispatcher) {
	d.Subscribe(host.DocEntered, func(e host.Event) { c.DocEntered(e.Doc) })
	d.Subscribe(host.DocLeft, func(host.Event) { c.Render() })
	d.Subscribe(host.DocClosed, func(e host.Event) { c.DocClosed(e.Doc) })
	d.Subscribe(host.DocWiped, func(e host.Event) { c.DocClosed(e.Doc) })
	d.Subscribe(host.SessionSavePoint, func(host.Event) { c.persist() })
	d.Subscribe(host.SessionRestored, func(host.Event) { c.Restore() })
	d.Subscribe(host.FocusRegained, func(host.Event) { c.Render() })
	d.Subscribe(host.ColorSchemeChanged, func(host.Event) { c.Render() })
}

// Pinned returns the pinned handles in strip order.
func (c *Controller) Pinned() []host.Handle {
	out := make([]host.Handle, len(c.pinned))
	copy(out, c.pinned)
	return out
}

// Ghost returns the current ghost handle, or NoHandle.
func (c *Controller) Ghost() host.Handle {
	return c.ghost
}

// PinnedNames returns the display names of the pinned entries in order.
func (c *Controller) PinnedNames() []string {
	names := make([]string, 0, len(c.pinned))
	for _, h := range c.pinned {
		names = append(names, c.host.DisplayName(h))
	}
	return names
}

func (c *Controller) indexOf(doc host.Handle) int {
	for i, h := range c.pinned {
		if h == doc {
			return i
		}
	}
	return -1
}

func (c *Controller) isExcluded(doc host.Handle) bool {
	return Excluded(c.host, doc, c.exclude)
}

// Pin appends the document to the pinned list. Excluded documents and
// documents already pinned are ignored. A matching ghost reference is
// cleared first: an entry cannot be both pinned and ghost.
func (c *Controller) Pin(doc host.Handle) {
	if c.isExcluded(doc) {
		c.log.Debug("pin rejected", "doc", int(doc), "reason", "excluded")
		return
	}
	if c.indexOf(doc) >= 0 {
		return
	}
	if c.ghost == doc {
		c.ghost = host.NoHandle
	}
	c.pinned = append(c.pinned, doc)
	c.log.Info("pinned", "doc", int(doc), "name", c.host.DisplayName(doc))
	c.Render()
}

// Unpin removes the document from the pinned list. When the document being
// unpinned is the current selection it becomes the ghost, so the strip
// keeps showing the file the user is looking at.
func (c *Controller) Unpin(doc host.Handle) {
	i := c.indexOf(doc)
	if i < 0 {
		return
	}
	c.pinned = append(c.pinned[:i], c.pinned[i+1:]...)
	if c.host.Selection() == doc && c.settings.Tabline.GhostEnabled {
		c.ghost = doc
	}
	c.log.Info("unpinned", "doc", int(doc))
	c.Render()
}

// Toggle pins the document if absent, unpins it if present.
func (c *Controller) Toggle(doc host.Handle) {
	if c.indexOf(doc) >= 0 {
		c.Unpin(doc)
		return
	}
	c.Pin(doc)
}

// MoveLeft swaps the document with its left neighbor. No-op at the left
// boundary or when the document is not pinned.
func (c *Controller) MoveLeft(doc host.Handle) {
	i := c.indexOf(doc)
	if i <= 0 {
		return
	}
	c.pinned[i-1], c.pinned[i] = c.pinned[i], c.pinned[i-1]
	c.Render()
}

// MoveRight swaps the document with its right neighbor. No-op at the right
// boundary or when the document is not pinned.
func (c *Controller) MoveRight(doc host.Handle) {
	i := c.indexOf(doc)
	if i < 0 || i >= len(c.pinned)-1 {
		return
	}
	c.pinned[i], c.pinned[i+1] = c.pinned[i+1], c.pinned[i]
	c.Render()
}

// DocEntered tracks the ghost reference: entering an eligible, non-pinned
// document makes it the ghost.
func (c *Controller) DocEntered(doc host.Handle) {
	if c.settings.Tabline.GhostEnabled && c.indexOf(doc) < 0 && !c.isExcluded(doc) {
		c.ghost = doc
	}
	c.Render()
}

// DocClosed drops any state referring to a document the host reported
// closed or wiped. Silent: documents can be closed behind our back at any
// time.
func (c *Controller) DocClosed(doc host.Handle) {
	if c.ghost == doc {
		c.ghost = host.NoHandle
	}
	if i := c.indexOf(doc); i >= 0 {
		c.pinned = append(c.pinned[:i], c.pinned[i+1:]...)
	}
	c.Render()
}

// prune drops every handle that no longer refers to an existing document.
// Runs before every render.
func (c *Controller) prune() {
	kept := c.pinned[:0]
	for _, h := range c.pinned {
		if c.host.Exists(h) {
			kept = append(kept, h)
		}
	}
	c.pinned = kept
	if c.ghost != host.NoHandle && !c.host.Exists(c.ghost) {
		c.ghost = host.NoHandle
	}
}

// Render prunes, renders the strip and writes it to the host, then
// persists the session record. Suppressed while a session restore is in
// progress.
func (c *Controller) Render() {
	c.render(false)
}

// ForceRender renders even while the host reports a session load. Used
// once, at the end of Restore.
func (c *Controller) ForceRender() {
	c.render(true)
}

func (c *Controller) render(force bool) {
	if c.host.SessionLoading() && !force {
		return
	}
	c.prune()

	ghost := c.ghost
	if !c.settings.Tabline.GhostEnabled {
		ghost = host.NoHandle
	}
	strip := RenderStrip(RenderInput{
		Pinned:     c.pinned,
		Ghost:      ghost,
		Selection:  c.host.Selection(),
		Name:       c.host.DisplayName,
		WorkingDir: c.host.WorkingDir(),
		Separator:  c.settings.Tabline.Separator,
		IconStyle:  c.settings.Tabline.IconStyle,
		Icons:      c.icons,
		MaxWidth:   c.settings.Tabline.MaxWidth,
	})

	c.host.SetTabline(strip.Text)
	if c.settings.Tabline.AutoHideWhenEmpty {
		c.host.SetTablineVisible(len(c.pinned) > 0)
	} else {
		c.host.SetTablineVisible(true)
	}

	c.persist()
}
