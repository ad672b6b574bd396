package tabline

import (
	"github.com/pintab/pintab-cli/pkg/host"
	"github.com/pintab/pintab-cli/pkg/models"
)

// Remove closes a document and reconciles the pinned list around the
// close, using the removal mode and closer from settings.
//
// A modified document is closed without unpinning: if the close is refused
// over unsaved changes, the pin keeps the file visible so an in-progress
// edit is not lost track of. An unmodified document is unpinned first (and
// a matching ghost cleared), then closed.
func (c *Controller) Remove(doc host.Handle) {
	if !c.host.Exists(doc) {
		return
	}

	mode := host.CloseDelete
	if c.settings.Removal.Mode == models.RemovalWipeout {
		mode = host.CloseWipeout
	}

	if c.host.IsModified(doc) {
		c.close(doc, mode)
		c.Render()
		return
	}

	if i := c.indexOf(doc); i >= 0 {
		c.pinned = append(c.pinned[:i], c.pinned[i+1:]...)
	}
	if c.ghost == doc {
		c.ghost = host.NoHandle
	}
	c.close(doc, mode)
	c.Render()
}

// close dispatches to the layout-preserving closer when configured and
// available, otherwise to the plain host primitive. A configured but
// absent collaborator degrades silently after one log line.
func (c *Controller) close(doc host.Handle, mode host.CloseMode) {
	if c.settings.Removal.LayoutPreserving {
		if c.layout != nil {
			c.layout.CloseKeepLayout(doc, mode)
			return
		}
		if !c.layoutMissing {
			c.layoutMissing = true
			c.log.Debug("layout-preserving removal unavailable, using plain close")
		}
	}
	c.host.Close(doc, mode)
}
