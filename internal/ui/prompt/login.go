package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	authdto "chefctl/internal/modules/auth/dto"
	"chefctl/internal/ui/theme"
)

// login form field indices
const (
	fieldCompany = iota
	fieldUsername
	fieldPassword
	fieldCount
)

type loginModel struct {
	inputs    [fieldCount]textinput.Model
	focus     int
	done      bool
	cancelled bool
}

func newLoginModel() loginModel {
	company := textinput.New()
	company.Placeholder = "company"
	company.CharLimit = 64
	company.Focus()

	username := textinput.New()
	username.Placeholder = "username"
	username.CharLimit = 64

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginModel{inputs: [fieldCount]textinput.Model{company, username, password}}
}

func (m loginModel) fields() authdto.LoginFields {
	return authdto.LoginFields{
		Company:  strings.TrimSpace(m.inputs[fieldCompany].Value()),
		Username: strings.TrimSpace(m.inputs[fieldUsername].Value()),
		Password: m.inputs[fieldPassword].Value(),
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit

	case "enter":
		if m.focus < fieldPassword {
			return m.moveFocus(m.focus + 1), nil
		}
		m.done = true
		return m, tea.Quit

	case "tab", "down":
		return m.moveFocus((m.focus + 1) % fieldCount), nil

	case "shift+tab", "up":
		return m.moveFocus((m.focus + fieldCount - 1) % fieldCount), nil
	}
	return m.updateFocused(msg)
}

func (m loginModel) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) moveFocus(to int) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = to
	m.inputs[m.focus].Focus()
	return m
}

func (m loginModel) View() string {
	if m.done || m.cancelled {
		return ""
	}
	var b strings.Builder
	b.WriteString(theme.Title.Render("Log in to chef-gourmet"))
	b.WriteString("\n\n")
	labels := [fieldCount]string{"Company", "Username", "Password"}
	for i, input := range m.inputs {
		label := labels[i]
		if i == m.focus {
			label = theme.Selected.Render(label)
		} else {
			label = theme.Muted.Render(label)
		}
		b.WriteString(label + "\n" + input.View() + "\n")
	}
	b.WriteString("\n" + theme.Muted.Render("enter to continue · esc to cancel") + "\n")
	return b.String()
}
