package tabline

import "github.com/pintab/pintab-cli/pkg/host"

// Navigation treats the strip as circular, with the ghost entry sitting
// conceptually to the right of all pinned entries. Every transition that
// changes the selection triggers a re-render.

// EditLeft switches to the entry left of the current selection.
func (c *Controller) EditLeft() {
	c.prune()
	target := c.leftOf(c.host.Selection())
	c.switchTo(target)
}

// EditRight switches to the entry right of the current selection.
func (c *Controller) EditRight() {
	c.prune()
	target := c.rightOf(c.host.Selection())
	c.switchTo(target)
}

// EditByIndex switches to the i-th pinned entry (1-based). Index N+1
// selects the ghost when one is set. Anything else is a no-op.
func (c *Controller) EditByIndex(i int) {
	c.prune()
	n := len(c.pinned)
	switch {
	case i >= 1 && i <= n:
		c.switchTo(c.pinned[i-1])
	case i == n+1 && c.activeGhost() != host.NoHandle:
		c.switchTo(c.ghost)
	}
}

func (c *Controller) switchTo(target host.Handle) {
	if target == host.NoHandle || target == c.host.Selection() {
		return
	}
	c.host.SwitchTo(target)
	c.Render()
}

// activeGhost returns the ghost handle, respecting the feature toggle.
func (c *Controller) activeGhost() host.Handle {
	if !c.settings.Tabline.GhostEnabled {
		return host.NoHandle
	}
	return c.ghost
}

func (c *Controller) leftOf(sel host.Handle) host.Handle {
	n := len(c.pinned)
	ghost := c.activeGhost()

	if sel == ghost && ghost != host.NoHandle {
		// Ghost sits right of all pinned entries.
		if n > 0 {
			return c.pinned[n-1]
		}
		return host.NoHandle
	}

	i := c.indexOf(sel)
	switch {
	case i > 0:
		return c.pinned[i-1]
	case i == 0:
		if ghost != host.NoHandle {
			return ghost
		}
		if n > 0 {
			return c.pinned[n-1]
		}
	default:
		// Selection is neither pinned nor ghost: enter the strip from
		// its right edge.
		if n > 0 {
			return c.pinned[n-1]
		}
		return ghost
	}
	return host.NoHandle
}

func (c *Controller) rightOf(sel host.Handle) host.Handle {
	n := len(c.pinned)
	ghost := c.activeGhost()

	if sel == ghost && ghost != host.NoHandle {
		if n > 0 {
			return c.pinned[0]
		}
		return host.NoHandle
	}

	i := c.indexOf(sel)
	switch {
	case i >= 0 && i < n-1:
		return c.pinned[i+1]
	case i == n-1 && i >= 0:
		if ghost != host.NoHandle {
			return ghost
		}
		return c.pinned[0]
	default:
		// Selection is neither pinned nor ghost: enter the strip from
		// its left edge.
		if n > 0 {
			return c.pinned[0]
		}
		return ghost
	}
}
