package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/registro/internal/alert"
)

// AlertDismissLabel is the label of the single dismissal control.
const AlertDismissLabel = "[Enter] OK"

// AlertModel contains the fields needed to render an alert.
type AlertModel struct {
	Visible bool
	Kind    alert.Kind
	Title   string
	Message string
}

// AlertModelFromProps converts presenter props into a render model.
func AlertModelFromProps(p alert.Props) AlertModel {
	return AlertModel{
		Visible: p.Visible,
		Kind:    p.Kind,
		Title:   p.Title,
		Message: p.Message,
	}
}

// AlertStyles groups styles for the alert. Icon, Title and Button carry
// the kind's color; Frame provides the shared modal chrome.
type AlertStyles struct {
	Frame  ModalStyles
	Icon   lipgloss.Style
	Title  lipgloss.Style
	Body   lipgloss.Style
	Button lipgloss.Style
}

// RenderAlert renders the alert dialog, or "" when it is hidden.
// The message is printed literally.
func RenderAlert(model AlertModel, styles AlertStyles) string {
	if !model.Visible {
		return ""
	}

	sep := styles.Body.Render(" ")
	title := styles.Icon.Render(model.Kind.Icon()) + sep + styles.Title.Render(LiteralText(model.Title))
	body := styles.Body.Render(LiteralText(model.Message))
	frame := styles.Frame
	frame.ModalButtonActiveStyle = styles.Button
	footer := RenderModalButtons(frame, AlertDismissLabel)

	return RenderModalFrame(title, body, footer, frame)
}
