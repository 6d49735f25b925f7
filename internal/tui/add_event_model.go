package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EventInput is what the add-event wizard collects. Recurrence is
// asked for but currently has no effect server-side; the backend is
// always sent "no recurrence".
type EventInput struct {
	Title       string
	Date        string // as typed; the command parses it
	Time        string
	Tags        []string
	Priority    bool
	Recurrence  string
	Description string
}

// eventStep is the current step in the wizard
type eventStep int

const (
	stepTitle eventStep = iota
	stepDate
	stepTime
	stepTags
	stepPriority
	stepRecurrence
	stepDescription
	stepDone
)

var eventStepLabels = []string{
	"Title", "Date", "Start time", "Tags", "Priority", "Recurrence", "Description",
}

// AddEventModel is the TUI model for the add-event wizard
type AddEventModel struct {
	step   eventStep
	inputs []textinput.Model

	tags []string

	validationErr string
	done          bool
	cancelled     bool
}

// NewAddEventModel creates the wizard, one input per step
func NewAddEventModel(prefilled map[string]string) AddEventModel {
	inputs := make([]textinput.Model, 7)

	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[stepTitle].Placeholder = "Event title... (required)"
	inputs[stepTitle].CharLimit = 200
	inputs[stepTitle].Focus()

	inputs[stepDate].Placeholder = "dd/mm/yyyy, today, tomorrow (Enter for today)"
	inputs[stepDate].CharLimit = 20

	inputs[stepTime].Placeholder = "24-hour HH:MM (Enter for 09:00)"
	inputs[stepTime].CharLimit = 5

	inputs[stepTags].Placeholder = "Add tag (Enter to skip, 'q' when done adding tags)"
	inputs[stepTags].CharLimit = 50

	inputs[stepPriority].Placeholder = "y/n (Enter to skip - not priority)"
	inputs[stepPriority].CharLimit = 3

	inputs[stepRecurrence].Placeholder = "daily/weekly/monthly/yearly (Enter to skip)"
	inputs[stepRecurrence].CharLimit = 10

	inputs[stepDescription].Placeholder = "Longer description (Enter to skip)"
	inputs[stepDescription].CharLimit = 500

	model := AddEventModel{inputs: inputs}
	for key, value := range prefilled {
		switch key {
		case "title":
			model.inputs[stepTitle].SetValue(value)
		case "date":
			model.inputs[stepDate].SetValue(value)
		case "time":
			model.inputs[stepTime].SetValue(value)
		case "tags":
			for _, tag := range strings.Split(value, ",") {
				if tag = strings.TrimSpace(tag); tag != "" {
					model.tags = append(model.tags, tag)
				}
			}
		}
	}
	return model
}

func (m AddEventModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m AddEventModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			return m.advance()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.step], cmd = m.inputs[m.step].Update(msg)
	return m, cmd
}

// advance validates the current step and moves to the next one
func (m AddEventModel) advance() (tea.Model, tea.Cmd) {
	m.validationErr = ""
	value := strings.TrimSpace(m.inputs[m.step].Value())

	switch m.step {
	case stepTitle:
		if value == "" {
			m.validationErr = "Title is required"
			return m, nil
		}

	case stepTags:
		// Tags accumulate: each Enter adds one, 'q' or empty moves on
		if value != "" && value != "q" {
			m.tags = append(m.tags, value)
			m.inputs[stepTags].SetValue("")
			return m, nil
		}

	case stepPriority:
		if value != "" && value != "y" && value != "n" && value != "yes" && value != "no" {
			m.validationErr = "Answer y or n"
			return m, nil
		}

	case stepRecurrence:
		switch value {
		case "", "daily", "weekly", "monthly", "yearly":
		default:
			m.validationErr = "Use daily, weekly, monthly or yearly"
			return m, nil
		}
	}

	if m.step == stepDescription {
		m.step = stepDone
		m.done = true
		return m, tea.Quit
	}

	m.inputs[m.step].Blur()
	m.step++
	m.inputs[m.step].Focus()
	return m, textinput.Blink
}

func (m AddEventModel) View() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true)
	stepStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError))

	var b strings.Builder
	b.WriteString(titleStyle.Render("New event") + "\n\n")

	for i := eventStep(0); i < m.step && i < stepDone; i++ {
		value := strings.TrimSpace(m.inputs[i].Value())
		if i == stepTags {
			value = strings.Join(m.tags, ", ")
		}
		if value == "" {
			value = "-"
		}
		b.WriteString(doneStyle.Render(fmt.Sprintf("%s: %s", eventStepLabels[i], value)) + "\n")
	}

	if m.step < stepDone {
		b.WriteString("\n" + stepStyle.Render(eventStepLabels[m.step]) + "\n")
		b.WriteString(m.inputs[m.step].View() + "\n")
		if m.step == stepTags && len(m.tags) > 0 {
			b.WriteString(doneStyle.Render("So far: "+strings.Join(m.tags, ", ")) + "\n")
		}
	}

	if m.validationErr != "" {
		b.WriteString("\n" + errStyle.Render(m.validationErr) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter: next • esc: cancel"))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1, 2).
		Render(b.String())
}

// RunAddEventForm runs the wizard. ok is false when cancelled.
func RunAddEventForm(prefilled map[string]string) (EventInput, bool, error) {
	program := tea.NewProgram(NewAddEventModel(prefilled))
	final, err := program.Run()
	if err != nil {
		return EventInput{}, false, fmt.Errorf("add event form: %w", err)
	}

	model := final.(AddEventModel)
	if !model.done || model.cancelled {
		return EventInput{}, false, nil
	}

	startTime := strings.TrimSpace(model.inputs[stepTime].Value())
	if startTime == "" {
		startTime = "09:00"
	}
	priority := strings.TrimSpace(model.inputs[stepPriority].Value())

	return EventInput{
		Title:       strings.TrimSpace(model.inputs[stepTitle].Value()),
		Date:        strings.TrimSpace(model.inputs[stepDate].Value()),
		Time:        startTime,
		Tags:        model.tags,
		Priority:    priority == "y" || priority == "yes",
		Recurrence:  strings.TrimSpace(model.inputs[stepRecurrence].Value()),
		Description: strings.TrimSpace(model.inputs[stepDescription].Value()),
	}, true, nil
}
