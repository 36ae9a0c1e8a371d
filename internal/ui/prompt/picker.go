package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"chefctl/internal/ui/theme"
)

// pickerModel is a single-choice list rendered inline, one per interactive
// step of the workflow.
type pickerModel struct {
	title     string
	items     []string
	cursor    int
	done      bool
	cancelled bool
}

func newPickerModel(title string, items []string) pickerModel {
	return pickerModel{title: title, items: items}
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "esc", "q":
		m.cancelled = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m pickerModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(theme.Title.Render(m.title))
	b.WriteString("\n")
	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(theme.Selected.Render("❯ " + item))
		} else {
			b.WriteString(theme.Muted.Render("  " + item))
		}
		b.WriteString("\n")
	}
	b.WriteString(theme.Muted.Render("↑/↓ to move · enter to choose · esc to cancel") + "\n")
	return b.String()
}
