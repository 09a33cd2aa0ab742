package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/registro/internal/form"
	"github.com/javiermolinar/registro/internal/tui/view"
)

func sized(t *testing.T, m Model) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

func TestView_NoSizeShowsPlaceholder(t *testing.T) {
	m := newTestModel(t)
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q, want Loading...", got)
	}
}

func TestView_RendersForm(t *testing.T) {
	m := sized(t, newTestModel(t))
	out := ansi.Strip(m.View())

	for _, want := range []string{formTitle, submitLabel} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}
	last := -1
	for _, f := range form.Fields {
		idx := strings.Index(out, f.Label())
		if idx < 0 {
			t.Fatalf("view missing label %q", f.Label())
		}
		if idx < last {
			t.Fatalf("label %q out of order", f.Label())
		}
		last = idx
	}
	if strings.Contains(out, view.AlertDismissLabel) {
		t.Fatal("alert should not render before submit")
	}
}

func TestView_AlertLifecycle(t *testing.T) {
	m := sized(t, newTestModel(t))
	m, _ = press(t, m, key(tea.KeyCtrlS))

	out := ansi.Strip(m.View())
	for _, want := range []string{form.TitleValidationError, "Please complete all fields", view.AlertDismissLabel} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}

	m, _ = press(t, m, key(tea.KeyEnter))
	out = ansi.Strip(m.View())
	if strings.Contains(out, form.TitleValidationError) {
		t.Fatal("alert should be gone after dismiss")
	}
}

func TestView_SuccessShowsSummary(t *testing.T) {
	m := sized(t, fillForm(t, newTestModel(t), validData))
	m, _ = press(t, m, key(tea.KeyCtrlS))

	out := ansi.Strip(m.View())
	for _, want := range []string{form.TitleSuccess, "ID: 123456", "Email: ana@example.com"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q", want)
		}
	}
}

func TestView_ViewDoesNotAcknowledge(t *testing.T) {
	m := sized(t, newTestModel(t))
	m, _ = press(t, m, key(tea.KeyCtrlS))

	_ = m.View()
	_ = m.View()
	if !m.Alert().Visible {
		t.Fatal("rendering must not dismiss the alert")
	}
}

func TestHelpText_FollowsMode(t *testing.T) {
	m := newTestModel(t)
	if !strings.Contains(m.helpText(), "submit") {
		t.Fatalf("form help = %q", m.helpText())
	}
	m, _ = press(t, m, key(tea.KeyCtrlS))
	if !strings.Contains(m.helpText(), "dismiss") {
		t.Fatalf("alert help = %q", m.helpText())
	}
}

func TestKeyboardHint(t *testing.T) {
	tests := []struct {
		field form.Field
		empty bool
	}{
		{field: form.FieldID},
		{field: form.FieldFullName, empty: true},
		{field: form.FieldPhone},
		{field: form.FieldEmail},
	}

	for _, tt := range tests {
		t.Run(tt.field.String(), func(t *testing.T) {
			got := keyboardHint(tt.field.Keyboard())
			if (got == "") != tt.empty {
				t.Fatalf("keyboardHint(%s) = %q", tt.field, got)
			}
		})
	}
}
