package tui

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"devmux/internal/browse"
	"devmux/internal/tui/theme"
)

// Target is the project the user confirmed. A nil Target from Run means the
// browse was cancelled.
type Target struct {
	Path string
}

type App struct {
	root string
	flat bool
}

// New builds the interactive browser rooted at root. With flat set, the UI
// is a single-level picklist of the root's immediate subdirectories instead
// of the navigable tree.
func New(root string, flat bool) *App {
	return &App{root: root, flat: flat}
}

// Run owns the terminal for its duration: bubbletea switches to the
// alternate screen and raw input on entry and restores the terminal on every
// exit path, including errors, before Run returns.
func (a *App) Run() (*Target, error) {
	m := initialModel(a.root, a.flat)
	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	if fm, ok := finalModel.(model); ok {
		return fm.target, nil
	}
	return nil, nil
}

type model struct {
	state  *browse.State
	keys   keyMap
	flat   bool
	list   list.Model
	target *Target
}

type projectItem string

func (p projectItem) Title() string       { return string(p) + "/" }
func (p projectItem) Description() string { return "" }
func (p projectItem) FilterValue() string { return string(p) }

func initialModel(root string, flat bool) model {
	state := browse.NewState(root)

	m := model{
		state: state,
		keys:  defaultKeyMap(),
		flat:  flat,
	}

	if flat {
		items := make([]list.Item, 0, len(state.Entries))
		for _, entry := range state.Entries {
			items = append(items, projectItem(entry))
		}
		del := list.NewDefaultDelegate()
		del.ShowDescription = false
		del.Styles.NormalTitle = theme.TextStyle.PaddingLeft(2)
		del.Styles.SelectedTitle = theme.SelectedStyle.PaddingLeft(1).SetString("❯")
		l := list.New(items, del, 0, 0)
		l.DisableQuitKeybindings()
		l.SetShowHelp(false)
		l.SetShowTitle(false)
		l.SetShowStatusBar(false)
		l.SetFilteringEnabled(true)
		l.FilterInput.Prompt = "/ "
		l.FilterInput.PromptStyle = theme.KeyStyle
		l.FilterInput.TextStyle = theme.TextStyle
		m.list = l
	}

	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.flat {
		return m.updateFlat(msg)
	}

	// bubbletea delivers key presses only, so every KeyMsg is actionable.
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			if path, ok := m.state.Selected(); ok {
				m.target = &Target{Path: path}
				return m, tea.Quit
			}
		case key.Matches(msg, m.keys.Up):
			m.state.MoveUp()
		case key.Matches(msg, m.keys.Down):
			m.state.MoveDown()
		case key.Matches(msg, m.keys.Descend):
			m.state.Enter()
		case key.Matches(msg, m.keys.Back):
			m.state.Back()
		}
	}
	return m, nil
}

func (m model) updateFlat(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-2, msg.Height-5)
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Confirm):
			if item, ok := m.list.SelectedItem().(projectItem); ok {
				m.target = &Target{Path: filepath.Join(m.state.Path, string(item))}
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var b strings.Builder
	b.WriteString(theme.HeaderStyle.Render(" " + browse.ShortenPath(m.state.Path)))
	b.WriteString("\n")
	b.WriteString(theme.SeparatorStyle.Render(" " + strings.Repeat("─", 38)))
	b.WriteString("\n")
	b.WriteString(theme.DimStyle.Render(" " + m.legend()))
	b.WriteString("\n\n")

	if m.flat {
		b.WriteString(m.list.View())
		return b.String()
	}

	if len(m.state.Entries) == 0 {
		b.WriteString(theme.DimStyle.Render("   (no subdirectories)"))
		b.WriteString("\n")
		return b.String()
	}

	for i, entry := range m.state.Entries {
		if i == m.state.Cursor {
			b.WriteString(theme.SelectedStyle.Render(" ❯ " + entry + "/"))
		} else {
			b.WriteString(theme.TextStyle.Render("   " + entry + "/"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) legend() string {
	if m.flat {
		return "[↑↓] move  [/] filter  [enter] tmux  [q] quit"
	}
	return "[↑↓] move  [space] enter  [enter] tmux  [←/bs] back  [q] quit"
}
