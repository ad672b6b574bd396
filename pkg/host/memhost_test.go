package host

import "testing"

func TestOpenAssignsSequentialHandles(t *testing.T) {
	m := NewMemHost("/work")
	a := m.Open("a.go")
	b := m.Open("b.go")

	if a == NoHandle || b == NoHandle {
		t.Fatal("Open returned NoHandle")
	}
	if a == b {
		t.Fatalf("handles collide: %d", a)
	}
	if !m.Exists(a) || !m.Exists(b) {
		t.Error("opened document does not exist")
	}
	if got := m.DisplayName(a); got != "a.go" {
		t.Errorf("DisplayName = %q, want a.go", got)
	}
}

func TestClassification(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"main.go", "go"},
		{"notes.md", "md"},
		{"README", "text"},
	}
	m := NewMemHost("/work")
	for _, tt := range tests {
		h := m.Open(tt.name)
		if got := m.Classification(h); got != tt.want {
			t.Errorf("Classification(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestStaleHandleQueriesReturnZero(t *testing.T) {
	m := NewMemHost("/work")
	stale := Handle(42)

	if m.Exists(stale) {
		t.Error("Exists true for stale handle")
	}
	if got := m.DisplayName(stale); got != "" {
		t.Errorf("DisplayName = %q for stale handle", got)
	}
	if m.IsListed(stale) || m.IsModified(stale) || m.IsHelp(stale) {
		t.Error("flag query true for stale handle")
	}
}

func TestSwitchToIgnoresStaleHandle(t *testing.T) {
	m := NewMemHost("/work")
	a := m.Open("a.go")
	m.SwitchTo(a)

	m.SwitchTo(Handle(42))
	if got := m.Selection(); got != a {
		t.Errorf("selection = %d after stale switch, want %d", got, a)
	}
}

func TestCloseMovesSelection(t *testing.T) {
	m := NewMemHost("/work")
	a := m.Open("a.go")
	b := m.Open("b.go")
	m.SwitchTo(b)

	m.Close(b, CloseDelete)
	if m.Exists(b) {
		t.Error("closed document still exists")
	}
	if got := m.Selection(); got != a {
		t.Errorf("selection = %d after close, want fallback %d", got, a)
	}

	m.Close(a, CloseDelete)
	if got := m.Selection(); got != NoHandle {
		t.Errorf("selection = %d with no documents, want NoHandle", got)
	}
}

func TestCloseRecordsCalls(t *testing.T) {
	m := NewMemHost("/work")
	a := m.Open("a.go")
	b := m.Open("b.go")

	m.Close(a, CloseWipeout)
	m.CloseKeepLayout(b, CloseDelete)

	if len(m.CloseCalls) != 2 {
		t.Fatalf("close calls = %d, want 2", len(m.CloseCalls))
	}
	if c := m.CloseCalls[0]; c.Doc != a || c.Mode != CloseWipeout || c.KeepLayout {
		t.Errorf("first call = %+v", c)
	}
	if c := m.CloseCalls[1]; c.Doc != b || c.Mode != CloseDelete || !c.KeepLayout {
		t.Errorf("second call = %+v", c)
	}
}

func TestFindOrCreate(t *testing.T) {
	m := NewMemHost("/work")
	a := m.Open("a.go")

	if got := m.FindOrCreate("a.go"); got != a {
		t.Errorf("FindOrCreate returned %d for open name, want %d", got, a)
	}
	fresh := m.FindOrCreate("b.go")
	if fresh == NoHandle || fresh == a {
		t.Errorf("FindOrCreate returned %d for new name", fresh)
	}
	if got := m.DisplayName(fresh); got != "b.go" {
		t.Errorf("created document named %q, want b.go", got)
	}
}

func TestSetUnlistedClearsClassification(t *testing.T) {
	m := NewMemHost("/work")
	h := m.Open("panel.txt")
	m.SetUnlisted(h)

	if m.IsListed(h) {
		t.Error("document still listed")
	}
	if got := m.Classification(h); got != "" {
		t.Errorf("classification = %q after unlisting, want empty", got)
	}
}

func TestHandlesReturnsOpenOrder(t *testing.T) {
	m := NewMemHost("/work")
	a := m.Open("a.go")
	b := m.Open("b.go")
	c := m.Open("c.go")
	m.Close(b, CloseDelete)

	got := m.Handles()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("Handles = %v, want [%d %d]", got, a, c)
	}
}
