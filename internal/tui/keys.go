package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/registro/internal/alert"
	"github.com/javiermolinar/registro/internal/form"
	"github.com/javiermolinar/registro/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The alert blocks the form until it is dismissed.
	if m.controller.Alert().Visible {
		return m.handleAlertKeys(msg)
	}
	return m.handleFormKeys(msg)
}

// handleAlertKeys handles keys while the alert is shown.
func (m Model) handleAlertKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc", " ":
		props := m.controller.Props(m.acknowledgeAlert)
		props.Close()
		return m, nil
	case "y":
		return m, commands.CopyText(m.clipboard, m.controller.Alert().Message)
	}
	return m, nil
}

// handleFormKeys handles keys while editing the form.
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit

	case "tab", "down":
		return m, m.setFocus((m.focus+1)%focusCount, "next")

	case "shift+tab", "up":
		return m, m.setFocus((m.focus+focusCount-1)%focusCount, "prev")

	case "ctrl+s":
		return m.submit()

	case "enter":
		if m.focus >= form.FieldCount-1 {
			return m.submit()
		}
		return m, m.setFocus(m.focus+1, "enter")

	case " ":
		if m.focus == focusSubmit {
			return m.submit()
		}
	}

	if m.focus < focusSubmit {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		m.controller.SetField(form.Fields[m.focus], m.inputs[m.focus].Value())
		return m, cmd
	}

	return m, nil
}

// setFocus moves focus to control i and returns the input's focus command.
func (m *Model) setFocus(i int, reason string) tea.Cmd {
	if i == m.focus {
		return nil
	}
	LogFocusChange(m.focus, i, reason)
	m.focus = i

	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
	return cmd
}

// submit copies every input into the controller and runs validation.
func (m Model) submit() (tea.Model, tea.Cmd) {
	for i, f := range form.Fields {
		m.controller.SetField(f, m.inputs[i].Value())
	}

	state := m.controller.Submit()
	LogSubmit(state, m.controller.Err())
	return m, nil
}

// acknowledgeAlert is the alert's close callback. After a success the
// inputs are cleared and focus returns to the first field.
func (m *Model) acknowledgeAlert() {
	kind := m.controller.Alert().Kind
	if !m.controller.Acknowledge() {
		return
	}

	reset := kind == alert.KindSuccess
	if reset {
		for i := range m.inputs {
			m.inputs[i].Reset()
		}
		m.setFocus(0, "reset")
	}
	LogAcknowledge(kind.String(), reset)
}
