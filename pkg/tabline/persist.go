package tabline

import (
	"github.com/pintab/pintab-cli/pkg/files"
	"github.com/pintab/pintab-cli/pkg/host"
	"github.com/pintab/pintab-cli/pkg/models"
)

// SessionStore is the durable, session-scoped slot the engine persists
// into. The engine writes after every render and reads once per restore.
type SessionStore interface {
	Load() (*models.SessionState, error)
	Save(*models.SessionState) error
}

// FileStore persists the session record in the project's .pintab
// directory.
type FileStore struct{}

func (FileStore) Load() (*models.SessionState, error) { return files.ReadSession() }

func (FileStore) Save(s *models.SessionState) error { return files.WriteSession(s) }

// MemStore keeps the record in memory. Used by tests and by the demo app
// when no project directory exists.
type MemStore struct {
	State *models.SessionState
	Saves int
}

func (m *MemStore) Load() (*models.SessionState, error) {
	if m.State == nil {
		return &models.SessionState{}, nil
	}
	return m.State, nil
}

func (m *MemStore) Save(s *models.SessionState) error {
	m.State = s
	m.Saves++
	return nil
}

// Serialize maps the current state to its persisted form: surviving pinned
// handles become names in order, and the ghost name is included when the
// feature is enabled and the ghost still exists.
func (c *Controller) Serialize() *models.SessionState {
	state := &models.SessionState{}
	for _, h := range c.pinned {
		if !c.host.Exists(h) {
			continue
		}
		if name := c.host.DisplayName(h); name != "" {
			state.Pinned = append(state.Pinned, name)
		}
	}
	if c.settings.Tabline.GhostEnabled && c.ghost != host.NoHandle && c.host.Exists(c.ghost) {
		state.Ghost = c.host.DisplayName(c.ghost)
	}
	return state
}

// persist writes the serialized state to the store, if one is attached.
func (c *Controller) persist() {
	if c.store == nil {
		return
	}
	if err := c.store.Save(c.Serialize()); err != nil {
		c.log.Error("session save failed", "err", err)
	}
}

// Restore replaces the pinned list and ghost reference from the store,
// re-resolving names to fresh handles (creating backing documents as
// needed). A missing or malformed record restores to empty state. Ends
// with one forced render: normal rendering is suppressed during session
// load, and this is the single exception.
func (c *Controller) Restore() {
	state := &models.SessionState{}
	if c.store != nil {
		loaded, err := c.store.Load()
		if err != nil {
			c.log.Error("session load failed, starting empty", "err", err)
		} else {
			state = loaded
		}
	}
	c.RestoreState(state)
}

// RestoreState applies an already-decoded record.
func (c *Controller) RestoreState(state *models.SessionState) {
	c.pinned = c.pinned[:0]
	c.ghost = host.NoHandle

	for _, name := range state.Pinned {
		h := c.host.FindOrCreate(name)
		if h == host.NoHandle || c.indexOf(h) >= 0 {
			continue
		}
		c.pinned = append(c.pinned, h)
	}
	if state.Ghost != "" && c.settings.Tabline.GhostEnabled {
		if h := c.host.FindOrCreate(state.Ghost); h != host.NoHandle && c.indexOf(h) < 0 {
			c.ghost = h
		}
	}

	c.log.Info("session restored", "pinned", len(c.pinned), "ghost", state.Ghost != "")
	c.ForceRender()
}
