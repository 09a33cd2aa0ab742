package tui

import "github.com/javiermolinar/registro/internal/form"

// statusMsgOrDefault returns the status message or a space to preserve layout.
func (m Model) statusMsgOrDefault() string {
	if m.statusMsg == "" {
		return " "
	}
	return m.statusMsg
}

// helpText returns the key help for the current mode.
func (m Model) helpText() string {
	if m.controller.Alert().Visible {
		return "enter/esc: dismiss  y: copy  ctrl+c: quit"
	}
	return "tab/↑↓: move  enter: next  ctrl+s: submit  esc: quit"
}

// keyboardHint describes what a field expects.
func keyboardHint(k form.Keyboard) string {
	switch k {
	case form.KeyboardNumeric:
		return "digits only"
	case form.KeyboardPhone:
		return "digits only, no spaces"
	case form.KeyboardEmail:
		return "name@example.com"
	default:
		return ""
	}
}
