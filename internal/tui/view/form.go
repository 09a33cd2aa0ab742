package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FormFieldModel is one labeled input row.
type FormFieldModel struct {
	Label    string
	Input    string // rendered textinput view
	Hint     string
	Focused  bool
	Required bool
}

// FormModel contains the fields needed to render the registration form.
type FormModel struct {
	Title         string
	Subtitle      string
	Fields        []FormFieldModel
	SubmitLabel   string
	SubmitFocused bool
	Width         int
}

// FormStyles groups styles for the form body.
type FormStyles struct {
	TitleStyle         lipgloss.Style
	SubtitleStyle      lipgloss.Style
	SeparatorStyle     lipgloss.Style
	LabelStyle         lipgloss.Style
	HintStyle          lipgloss.Style
	InputStyle         lipgloss.Style
	InputFocusedStyle  lipgloss.Style
	ButtonStyle        lipgloss.Style
	ButtonFocusedStyle lipgloss.Style
	BodyStyle          lipgloss.Style
}

// RenderForm renders the header, every field, and the submit button.
func RenderForm(model FormModel, styles FormStyles) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(model.Title) + "\n")
	if model.Subtitle != "" {
		b.WriteString(styles.SubtitleStyle.Render(model.Subtitle) + "\n")
	}
	if model.Width > 0 {
		b.WriteString(styles.SeparatorStyle.Render(strings.Repeat("─", model.Width)) + "\n")
	}
	b.WriteString("\n")

	sep := styles.BodyStyle.Render(" ")
	for _, f := range model.Fields {
		label := f.Label
		if f.Required {
			label += " *"
		}
		line := styles.LabelStyle.Render(label)
		if f.Hint != "" {
			line += sep + styles.HintStyle.Render(f.Hint)
		}
		b.WriteString(line + "\n")

		inputStyle := styles.InputStyle
		if f.Focused {
			inputStyle = styles.InputFocusedStyle
		}
		b.WriteString(inputStyle.Render(f.Input) + "\n")
	}

	b.WriteString("\n")
	button := styles.ButtonStyle
	if model.SubmitFocused {
		button = styles.ButtonFocusedStyle
	}
	b.WriteString(button.Render(model.SubmitLabel))

	return b.String()
}
