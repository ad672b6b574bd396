package tabline

import (
	"errors"
	"testing"

	"github.com/pintab/pintab-cli/pkg/host"
	"github.com/pintab/pintab-cli/pkg/models"
	"github.com/pintab/pintab-cli/pkg/tabline/tablinetest"
)

// failStore always errors on Load.
type failStore struct{ MemStore }

func (failStore) Load() (*models.SessionState, error) {
	return nil, errors.New("corrupt record")
}

func TestSerializeNamesInOrder(t *testing.T) {
	m, docs := tablinetest.NewHost("/work", "a.go", "b.go", "g.go")
	c := pinAll(t, m, docs[:2])
	m.SwitchTo(docs[2])
	c.DocEntered(docs[2])

	state := c.Serialize()
	want := []string{"a.go", "b.go"}
	if len(state.Pinned) != len(want) {
		t.Fatalf("pinned names = %v, want %v", state.Pinned, want)
	}
	for i := range want {
		if state.Pinned[i] != want[i] {
			t.Errorf("pinned[%d] = %q, want %q", i, state.Pinned[i], want[i])
		}
	}
	if state.Ghost != "g.go" {
		t.Errorf("ghost = %q, want %q", state.Ghost, "g.go")
	}
}

func TestSerializeSkipsDeadAndUnnamed(t *testing.T) {
	m, docs := tablinetest.NewHost("/work", "a.go", "b.go")
	c := pinAll(t, m, docs)

	m.Close(docs[0], host.CloseDelete)
	state := c.Serialize()
	if len(state.Pinned) != 1 || state.Pinned[0] != "b.go" {
		t.Errorf("pinned names = %v, want [b.go]", state.Pinned)
	}
}

func TestSerializeGhostOmittedWhenDisabled(t *testing.T) {
	m, docs := tablinetest.NewHost("/work", "a.go", "g.go")
	settings := tablinetest.Settings()
	c := NewController(m, settings)
	c.Pin(docs[0])
	m.SwitchTo(docs[1])
	c.DocEntered(docs[1])

	settings.Tabline.GhostEnabled = false
	if state := c.Serialize(); state.Ghost != "" {
		t.Errorf("ghost = %q serialized while feature disabled", state.Ghost)
	}
}

func TestPersistAfterEveryRender(t *testing.T) {
	m, docs := tablinetest.NewHost("/work", "a.go", "b.go")
	c := NewController(m, tablinetest.Settings())
	store := &MemStore{}
	c.SetStore(store)

	c.Pin(docs[0])
	c.Pin(docs[1])
	c.MoveRight(docs[0])
	if store.Saves != 3 {
		t.Errorf("saves = %d, want one per state change", store.Saves)
	}
	want := []string{"b.go", "a.go"}
	for i := range want {
		if store.State.Pinned[i] != want[i] {
			t.Errorf("stored pinned[%d] = %q, want %q", i, store.State.Pinned[i], want[i])
		}
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	m, docs := tablinetest.NewHost("/work", "a.go", "b.go", "g.go")
	c := pinAll(t, m, docs[:2])
	m.SwitchTo(docs[2])
	c.DocEntered(docs[2])
	store := &MemStore{}
	c.SetStore(store)
	c.Render()

	// Fresh host and controller, as after an editor restart.
	m2 := host.NewMemHost("/work")
	c2 := NewController(m2, tablinetest.Settings())
	c2.SetStore(store)
	c2.Restore()

	names := c2.PinnedNames()
	if len(names) != 2 || names[0] != "a.go" || names[1] != "b.go" {
		t.Errorf("restored pinned = %v, want [a.go b.go]", names)
	}
	if g := c2.Ghost(); g == host.NoHandle || m2.DisplayName(g) != "g.go" {
		t.Errorf("restored ghost = %q, want g.go", m2.DisplayName(c2.Ghost()))
	}
}

func TestRestoreCreatesMissingDocuments(t *testing.T) {
	m := host.NewMemHost("/work")
	c := NewController(m, tablinetest.Settings())

	c.RestoreState(&models.SessionState{Pinned: []string{"a.go", "b.go"}})
	if n := len(m.Handles()); n != 2 {
		t.Fatalf("host has %d documents after restore, want 2", n)
	}
	if n := len(c.Pinned()); n != 2 {
		t.Errorf("pinned count = %d, want 2", n)
	}
}

func TestRestoreResolvesToExistingHandles(t *testing.T) {
	m, docs := tablinetest.NewHost("/work", "a.go")
	c := NewController(m, tablinetest.Settings())

	c.RestoreState(&models.SessionState{Pinned: []string{"a.go"}})
	if got := c.Pinned()[0]; got != docs[0] {
		t.Errorf("restore opened a duplicate, handle = %d, want %d", got, docs[0])
	}
}

func TestRestoreSkipsDuplicateNames(t *testing.T) {
	m := host.NewMemHost("/work")
	c := NewController(m, tablinetest.Settings())

	c.RestoreState(&models.SessionState{Pinned: []string{"a.go", "a.go"}, Ghost: "a.go"})
	if n := len(c.Pinned()); n != 1 {
		t.Errorf("pinned count = %d, want 1", n)
	}
	if c.Ghost() != host.NoHandle {
		t.Errorf("pinned name also restored as ghost")
	}
}

func TestRestoreFailedLoadStartsEmpty(t *testing.T) {
	m, docs := tablinetest.NewHost("/work", "a.go")
	c := pinAll(t, m, docs)
	c.SetStore(&failStore{})

	c.Restore()
	if n := len(c.Pinned()); n != 0 {
		t.Errorf("pinned count = %d after failed load, want empty state", n)
	}
}

func TestRestoreReplacesExistingState(t *testing.T) {
	m, docs := tablinetest.NewHost("/work", "old.go")
	c := pinAll(t, m, docs)

	c.RestoreState(&models.SessionState{Pinned: []string{"new.go"}})
	names := c.PinnedNames()
	if len(names) != 1 || names[0] != "new.go" {
		t.Errorf("restored pinned = %v, want [new.go]", names)
	}
}

func TestRestoreGhostDisabled(t *testing.T) {
	m := host.NewMemHost("/work")
	settings := tablinetest.Settings()
	settings.Tabline.GhostEnabled = false
	c := NewController(m, settings)

	c.RestoreState(&models.SessionState{Ghost: "g.go"})
	if c.Ghost() != host.NoHandle {
		t.Errorf("ghost restored while feature disabled")
	}
}
