package tabline

import (
	"testing"

	"github.com/pintab/pintab-cli/pkg/host"
)

func TestExcluded(t *testing.T) {
	tests := []struct {
		name  string
		setup func(m *host.MemHost) host.Handle
		user  ExcludeFunc
		want  bool
	}{
		{
			name:  "plain listed file",
			setup: func(m *host.MemHost) host.Handle { return m.Open("a.go") },
			want:  false,
		},
		{
			name:  "dead handle",
			setup: func(m *host.MemHost) host.Handle { return host.Handle(99) },
			want:  true,
		},
		{
			name:  "unnamed scratch",
			setup: func(m *host.MemHost) host.Handle { return m.OpenScratch() },
			want:  true,
		},
		{
			name: "help document",
			setup: func(m *host.MemHost) host.Handle {
				h := m.Open("doc.txt")
				m.SetHelp(h, true)
				return h
			},
			want: true,
		},
		{
			name: "plugin owned",
			setup: func(m *host.MemHost) host.Handle {
				h := m.Open("tree")
				m.SetPluginOwned(h, true)
				return h
			},
			want: true,
		},
		{
			name: "unlisted with no classification",
			setup: func(m *host.MemHost) host.Handle {
				h := m.Open("panel")
				m.SetUnlisted(h)
				return h
			},
			want: true,
		},
		{
			name: "floating surface",
			setup: func(m *host.MemHost) host.Handle {
				h := m.Open("preview.md")
				m.SetFloating(h, true)
				return h
			},
			want: true,
		},
		{
			name:  "user veto",
			setup: func(m *host.MemHost) host.Handle { return m.Open("a.log") },
			user:  func(host.Handle) bool { return true },
			want:  true,
		},
		{
			name:  "user predicate accepts",
			setup: func(m *host.MemHost) host.Handle { return m.Open("a.go") },
			user:  func(host.Handle) bool { return false },
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := host.NewMemHost("/work")
			doc := tt.setup(m)
			if got := Excluded(m, doc, tt.user); got != tt.want {
				t.Errorf("Excluded = %v, want %v", got, tt.want)
			}
		})
	}
}
