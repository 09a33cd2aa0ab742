package view

import "github.com/charmbracelet/lipgloss"

// FooterModel holds the strings needed to render the footer section.
type FooterModel struct {
	Width       int
	StatusText  string
	HelpText    string
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	Bg          lipgloss.Color
}

// RenderFooter renders the status and help lines.
func RenderFooter(model FooterModel) string {
	s := model.StatusStyle.Render(model.StatusText) + "\n" + model.HelpStyle.Render(model.HelpText)
	return PlaceBox(model.Width, 2, lipgloss.Left, lipgloss.Bottom, s, model.Bg)
}
