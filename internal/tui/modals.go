package tui

import "github.com/javiermolinar/registro/internal/tui/view"

// renderModal renders the alert for the current submit result.
// Rendering never acknowledges, so the close callback is left unset.
func (m Model) renderModal() string {
	props := m.controller.Props(nil)
	return view.RenderAlert(view.AlertModelFromProps(props), m.styles.AlertStyles(props.Kind))
}
