package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func plainFormStyles() FormStyles {
	return FormStyles{
		TitleStyle:         lipgloss.NewStyle().Bold(true),
		SubtitleStyle:      lipgloss.NewStyle(),
		SeparatorStyle:     lipgloss.NewStyle(),
		LabelStyle:         lipgloss.NewStyle(),
		HintStyle:          lipgloss.NewStyle(),
		InputStyle:         lipgloss.NewStyle(),
		InputFocusedStyle:  lipgloss.NewStyle(),
		ButtonStyle:        lipgloss.NewStyle(),
		ButtonFocusedStyle: lipgloss.NewStyle(),
		BodyStyle:          lipgloss.NewStyle(),
	}
}

func TestRenderForm_IncludesFieldsInOrder(t *testing.T) {
	model := FormModel{
		Title:    "User Registration",
		Subtitle: "Complete your personal details",
		Fields: []FormFieldModel{
			{Label: "ID", Input: "123", Required: true, Focused: true},
			{Label: "Full name", Input: "Ana", Required: true},
			{Label: "Phone", Input: "", Required: true, Hint: "digits only"},
			{Label: "Email", Input: "", Required: true},
		},
		SubmitLabel: "Register",
		Width:       10,
	}

	got := ansi.Strip(RenderForm(model, plainFormStyles()))
	order := []string{"User Registration", "Complete your personal details", "ID *", "123", "Full name *", "Phone * digits only", "Email *", "Register"}
	pos := 0
	for _, want := range order {
		idx := strings.Index(got[pos:], want)
		if idx < 0 {
			t.Fatalf("expected %q after offset %d in:\n%s", want, pos, got)
		}
		pos += idx + len(want)
	}
	if !strings.Contains(got, strings.Repeat("─", 10)) {
		t.Fatalf("expected separator of width 10")
	}
}

func TestRenderForm_FocusedStyles(t *testing.T) {
	styles := plainFormStyles()
	styles.ButtonFocusedStyle = lipgloss.NewStyle().Underline(true)
	model := FormModel{Title: "T", SubmitLabel: "Register", SubmitFocused: true}

	got := RenderForm(model, styles)
	if !strings.Contains(got, styles.ButtonFocusedStyle.Render("Register")) {
		t.Fatalf("expected focused button style")
	}
}
