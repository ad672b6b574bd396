package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"pkt.systems/pslog"

	"github.com/pintab/pintab-cli/pkg/files"
	"github.com/pintab/pintab-cli/pkg/host"
	"github.com/pintab/pintab-cli/pkg/models"
	"github.com/pintab/pintab-cli/pkg/tabline"
)

// App is the interactive demo host: an in-memory document table driven by
// the same engine an editor integration would use. Every key ends up as a
// controller call or a host event, never as direct state mutation.
type App struct {
	mem    *host.MemHost
	engine *tabline.Controller
	events *host.Dispatcher

	input       textinput.Model
	inputActive bool
	statusMsg   string
	width       int
	height      int

	// bindings mirrors tabline.default_bindings: when off, only the
	// open/cycle/quit keys are active and tabline shortcuts are left to
	// the integrating host.
	bindings bool
}

// NewApp wires a MemHost, a controller and a dispatcher together and
// restores the previous session from the project directory.
func NewApp(settings *models.Settings, log pslog.Logger) *App {
	cwd, _ := os.Getwd()
	mem := host.NewMemHost(cwd)

	engine := tabline.NewController(mem, settings)
	engine.SetLogger(log)
	if files.ProjectExists() {
		engine.SetStore(tabline.FileStore{})
	}

	events := host.NewDispatcher()
	engine.Bind(events)

	mem.SetSessionLoading(true)
	events.Emit(host.Event{Type: host.SessionRestored})
	mem.SetSessionLoading(false)

	input := textinput.New()
	input.Placeholder = "path/to/file"
	input.CharLimit = 256

	return &App{
		mem:      mem,
		engine:   engine,
		events:   events,
		input:    input,
		bindings: settings.Tabline.DefaultBindings,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) SetSize(width, height int) {
	a.width = width
	a.height = height
	a.input.Width = width - 4
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if a.inputActive {
			return a.updateInput(msg)
		}
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.inputActive = false
		a.input.Reset()
		return a, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(a.input.Value())
		a.inputActive = false
		a.input.Reset()
		if name == "" {
			return a, nil
		}
		h := a.mem.FindOrCreate(name)
		a.mem.SwitchTo(h)
		a.events.Emit(host.Event{Type: host.DocEntered, Doc: h})
		a.statusMsg = fmt.Sprintf("Opened %s", name)
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "q":
		return a, tea.Quit
	case "o":
		a.inputActive = true
		a.input.Focus()
		return a, textinput.Blink
	case "tab":
		a.cycleSelection()
		return a, nil
	}

	if !a.bindings {
		return a, nil
	}

	if key >= "1" && key <= "9" {
		a.engine.EditByIndex(int(key[0] - '0'))
		a.entered()
		return a, nil
	}

	switch key {
	case "p":
		sel := a.mem.Selection()
		if sel == host.NoHandle {
			return a, nil
		}
		a.engine.Toggle(sel)
		a.statusMsg = fmt.Sprintf("Toggled pin on %s", a.mem.DisplayName(sel))
		return a, nil

	case "H":
		a.engine.MoveLeft(a.mem.Selection())
		return a, nil

	case "L":
		a.engine.MoveRight(a.mem.Selection())
		return a, nil

	case "h", "left":
		a.engine.EditLeft()
		a.entered()
		return a, nil

	case "l", "right":
		a.engine.EditRight()
		a.entered()
		return a, nil

	case "m":
		sel := a.mem.Selection()
		if sel != host.NoHandle {
			a.mem.SetModified(sel, !a.mem.IsModified(sel))
			a.engine.Render()
		}
		return a, nil

	case "x":
		sel := a.mem.Selection()
		if sel == host.NoHandle {
			return a, nil
		}
		name := a.mem.DisplayName(sel)
		a.engine.Remove(sel)
		if a.mem.Exists(sel) {
			a.statusMsg = fmt.Sprintf("%s has unsaved changes, close refused", name)
		} else {
			a.statusMsg = fmt.Sprintf("Removed %s", name)
		}
		return a, nil
	}

	return a, nil
}

// entered mirrors the enter-document notification an editor host would
// fire after any selection change.
func (a *App) entered() {
	if sel := a.mem.Selection(); sel != host.NoHandle {
		a.events.Emit(host.Event{Type: host.DocEntered, Doc: sel})
	}
}

// cycleSelection moves the selection to the next open document in open
// order, wrapping at the end.
func (a *App) cycleSelection() {
	handles := a.mem.Handles()
	if len(handles) == 0 {
		return
	}
	sel := a.mem.Selection()
	next := handles[0]
	for i, h := range handles {
		if h == sel && i+1 < len(handles) {
			next = handles[i+1]
			break
		}
	}
	a.mem.SwitchTo(next)
	a.events.Emit(host.Event{Type: host.DocEntered, Doc: next})
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var b strings.Builder

	if a.mem.Visible {
		b.WriteString(a.mem.Strip)
	}
	b.WriteString("\n\n")

	b.WriteString(a.viewDocuments())
	b.WriteString("\n")

	if a.inputActive {
		b.WriteString(promptStyle.Render("Open: ") + a.input.View() + "\n")
	} else if a.statusMsg != "" {
		b.WriteString(statusStyle.Render(a.statusMsg) + "\n")
	}

	b.WriteString(helpStyle.Render(helpText))
	return b.String()
}

func (a *App) viewDocuments() string {
	handles := a.mem.Handles()
	if len(handles) == 0 {
		return dimStyle.Render("No open documents. Press 'o' to open one.")
	}

	pinned := a.engine.Pinned()
	pinIndex := make(map[host.Handle]int, len(pinned))
	for i, h := range pinned {
		pinIndex[h] = i + 1
	}

	var b strings.Builder
	for _, h := range handles {
		cursor := "  "
		if h == a.mem.Selection() {
			cursor = "> "
		}

		marker := "   "
		if i, ok := pinIndex[h]; ok {
			marker = fmt.Sprintf("[%d]", i)
		} else if h == a.engine.Ghost() {
			marker = "(g)"
		}

		name := a.mem.DisplayName(h)
		if name == "" {
			name = "[No Name]"
		}
		if a.mem.IsModified(h) {
			name += " +"
		}

		line := cursor + marker + " " + name
		if h == a.mem.Selection() {
			line = selectedLineStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

const helpText = "o open · tab cycle · p pin · H/L reorder · h/l edit · 1-9 jump · m modify · x remove · q quit"

var (
	promptStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	statusStyle       = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	dimStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	selectedLineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
)
