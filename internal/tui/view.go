package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/registro/internal/form"
	"github.com/javiermolinar/registro/internal/tui/view"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	state := m.viewState()
	return view.Render(state)
}

func (m Model) viewState() view.ViewState {
	base := m.renderAppContent()
	showModal := m.controller.Alert().Visible
	modal := ""
	if showModal {
		modal = m.renderModal()
		m.overlay.Show()
	} else {
		m.overlay.Hide()
	}

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      base,
		ModalContent:     modal,
		ShowModal:        showModal,
		Overlay:          m.overlay,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	body := view.RenderForm(m.formViewState(), m.styles.FormStyles())
	footer := view.RenderFooter(m.footerViewState())

	content := lipgloss.JoinVertical(lipgloss.Left, body, "", footer)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

func (m Model) formViewState() view.FormModel {
	fields := make([]view.FormFieldModel, 0, len(form.Fields))
	for i, f := range form.Fields {
		fields = append(fields, view.FormFieldModel{
			Label:    f.Label(),
			Input:    m.inputs[i].View(),
			Hint:     keyboardHint(f.Keyboard()),
			Focused:  m.focus == i,
			Required: true,
		})
	}

	return view.FormModel{
		Title:         formTitle,
		Subtitle:      formSubtitle,
		Fields:        fields,
		SubmitLabel:   submitLabel,
		SubmitFocused: m.focus == focusSubmit,
		Width:         formWidth,
	}
}

func (m Model) footerViewState() view.FooterModel {
	return view.FooterModel{
		Width:       formWidth,
		StatusText:  m.statusMsgOrDefault(),
		HelpText:    m.helpText(),
		StatusStyle: m.styles.StatusStyle,
		HelpStyle:   m.styles.HelpStyle,
		Bg:          m.styles.colorBg,
	}
}
