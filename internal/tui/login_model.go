package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoginModel collects server credentials. It only gathers the form values;
// the caller performs the actual log-in after the program exits.
type LoginModel struct {
	inputs  []textinput.Model
	focused int

	submitted bool
	cancelled bool
}

// NewLoginModel builds the email + password form.
func NewLoginModel() LoginModel {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = "Email    "
	email.CharLimit = 254
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "Password "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return LoginModel{
		inputs: []textinput.Model{email, password},
	}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Email() string    { return strings.TrimSpace(m.inputs[0].Value()) }
func (m LoginModel) Password() string { return m.inputs[1].Value() }

func (m *LoginModel) setFocus(index int) tea.Cmd {
	m.focused = index
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == index {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return cmd
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		case "tab", "down":
			return m, m.setFocus((m.focused + 1) % len(m.inputs))
		case "shift+tab", "up":
			return m, m.setFocus((m.focused + len(m.inputs) - 1) % len(m.inputs))
		case "enter":
			if m.focused == 0 {
				return m, m.setFocus(1)
			}
			if m.Email() != "" && m.Password() != "" {
				m.submitted = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m LoginModel) View() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true)

	var b strings.Builder
	b.WriteString(headerStyle.Render("Log in to giglog"))
	b.WriteString("\n\n")
	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	b.WriteString(helpStyle.Render("enter submit · tab next field · esc cancel"))

	formStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2)

	return formStyle.Render(b.String())
}
