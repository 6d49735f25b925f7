package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoginModel is the TUI model for the sign-in form
type LoginModel struct {
	inputs  []textinput.Model
	focused int

	validationErr string
	done          bool
	cancelled     bool
}

// NewLoginModel creates the two-field sign-in form
func NewLoginModel(prefillEmail string) LoginModel {
	inputs := make([]textinput.Model, 2)

	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[0].Placeholder = "you@example.com"
	inputs[0].CharLimit = 100
	inputs[0].SetValue(prefillEmail)
	inputs[0].Focus()

	inputs[1].Placeholder = "password"
	inputs[1].CharLimit = 100
	inputs[1].EchoMode = textinput.EchoPassword
	inputs[1].EchoCharacter = '•'

	return LoginModel{inputs: inputs}
}

func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "tab", "shift+tab", "up", "down":
			if msg.String() == "shift+tab" || msg.String() == "up" {
				m.focused--
			} else {
				m.focused++
			}
			if m.focused < 0 {
				m.focused = len(m.inputs) - 1
			}
			if m.focused >= len(m.inputs) {
				m.focused = 0
			}
			for i := range m.inputs {
				if i == m.focused {
					m.inputs[i].Focus()
				} else {
					m.inputs[i].Blur()
				}
			}
			return m, nil

		case "enter":
			if m.focused < len(m.inputs)-1 {
				m.inputs[m.focused].Blur()
				m.focused++
				m.inputs[m.focused].Focus()
				return m, nil
			}
			if strings.TrimSpace(m.inputs[0].Value()) == "" || m.inputs[1].Value() == "" {
				m.validationErr = "Email and password are required"
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m LoginModel) View() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Sign in to Taday") + "\n\n")
	b.WriteString(labelStyle.Render("Email") + "\n")
	b.WriteString(m.inputs[0].View() + "\n\n")
	b.WriteString(labelStyle.Render("Password") + "\n")
	b.WriteString(m.inputs[1].View() + "\n\n")

	if m.validationErr != "" {
		b.WriteString(errStyle.Render(m.validationErr) + "\n\n")
	}

	b.WriteString(helpStyle.Render("enter: continue • tab: switch field • esc: cancel"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(b.String())
}

// RunLoginForm collects credentials interactively. ok is false when
// the user cancelled.
func RunLoginForm(prefillEmail string) (email, password string, ok bool, err error) {
	program := tea.NewProgram(NewLoginModel(prefillEmail))
	final, err := program.Run()
	if err != nil {
		return "", "", false, fmt.Errorf("login form: %w", err)
	}

	model := final.(LoginModel)
	if !model.done || model.cancelled {
		return "", "", false, nil
	}
	return strings.TrimSpace(model.inputs[0].Value()), model.inputs[1].Value(), true, nil
}
