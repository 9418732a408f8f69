// Package tui is the interactive terminal view of a panel.
//
// It mirrors the browser control page in the terminal: a 12x8 cell
// grid, a cursor, and single-key bindings for toggling cells and the
// whole-grid operations. Every mutation is a round-trip through the
// panel's HTTP surface; the cell under the cursor is repainted from
// the toggle response, and whole-grid operations trigger a full
// /state refresh.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muldrow/ledpanel/internal/client"
	"github.com/muldrow/ledpanel/internal/grid"
)

// keyMap defines the grid view key bindings.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Toggle   key.Binding
	LightAll key.Binding
	ClearAll key.Binding
	Refresh  key.Binding
	Quit     key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.LightAll, k.ClearAll, k.Refresh, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.LightAll, k.ClearAll, k.Refresh, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Toggle:   key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		LightAll: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "light all")),
		ClearAll: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear all")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Messages carrying HTTP results back into the update loop.
type stateMsg struct{ states [][]bool }
type toggleMsg struct{ res *client.ToggleResult }
type errMsg struct{ err error }

// Model is the grid view model.
type Model struct {
	client *client.Client

	cells    [][]bool
	cursorX  int
	cursorY  int
	lastErr  error
	keys     keyMap
	help     help.Model
	quitting bool
}

// New creates a grid view bound to one panel.
func New(c *client.Client) Model {
	cells := make([][]bool, grid.Height)
	for y := range cells {
		cells[y] = make([]bool, grid.Width)
	}
	return Model{
		client: c,
		cells:  cells,
		keys:   defaultKeyMap(),
		help:   help.New(),
	}
}

// Init fetches the initial panel state.
func (m Model) Init() tea.Cmd {
	return m.fetchState
}

func (m Model) fetchState() tea.Msg {
	st, err := m.client.State()
	if err != nil {
		return errMsg{err}
	}
	return stateMsg{states: st.States}
}

func (m Model) toggleCursor() tea.Msg {
	res, err := m.client.Toggle(m.cursorX, m.cursorY)
	if err != nil {
		return errMsg{err}
	}
	return toggleMsg{res: res}
}

func (m Model) lightAll() tea.Msg {
	if err := m.client.LightAll(); err != nil {
		return errMsg{err}
	}
	return m.fetchState()
}

func (m Model) clearAll() tea.Msg {
	if err := m.client.ClearAll(); err != nil {
		return errMsg{err}
	}
	return m.fetchState()
}

// Update handles key presses and HTTP results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursorY > 0 {
				m.cursorY--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursorY < grid.Height-1 {
				m.cursorY++
			}
		case key.Matches(msg, m.keys.Left):
			if m.cursorX > 0 {
				m.cursorX--
			}
		case key.Matches(msg, m.keys.Right):
			if m.cursorX < grid.Width-1 {
				m.cursorX++
			}
		case key.Matches(msg, m.keys.Toggle):
			return m, m.toggleCursor
		case key.Matches(msg, m.keys.LightAll):
			return m, m.lightAll
		case key.Matches(msg, m.keys.ClearAll):
			return m, m.clearAll
		case key.Matches(msg, m.keys.Refresh):
			return m, m.fetchState
		}

	case stateMsg:
		m.lastErr = nil
		if len(msg.states) == grid.Height {
			m.cells = msg.states
		}

	case toggleMsg:
		m.lastErr = nil
		if grid.InRange(msg.res.X, msg.res.Y) {
			m.cells[msg.res.Y][msg.res.X] = msg.res.State
		}

	case errMsg:
		m.lastErr = msg.err
	}
	return m, nil
}

// View renders the grid, cursor and help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("LED Panel " + m.client.BaseURL))
	b.WriteByte('\n')

	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			glyph := "··"
			style := darkCellStyle
			if m.cells[y][x] {
				glyph = "██"
				style = litCellStyle
			}
			if x == m.cursorX && y == m.cursorY {
				b.WriteString(cursorStyle.Render("[") + style.Render(glyph) + cursorStyle.Render("]"))
			} else {
				b.WriteString(" " + style.Render(glyph) + " ")
			}
		}
		b.WriteByte('\n')
	}

	if m.lastErr != nil {
		b.WriteString(errorStyle.Render(m.lastErr.Error()))
		b.WriteByte('\n')
	}
	b.WriteString(statusStyle.Render(m.help.View(m.keys)))
	return b.String()
}
