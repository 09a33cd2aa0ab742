package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/registro/internal/alert"
	"github.com/javiermolinar/registro/internal/tui/theme"
	"github.com/javiermolinar/registro/internal/tui/view"
)

// Form layout widths.
const (
	formWidth  = 56
	inputWidth = 48
	modalWidth = 60
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWarning     lipgloss.Color

	// Form header
	TitleStyle     lipgloss.Style
	SubtitleStyle  lipgloss.Style
	SeparatorStyle lipgloss.Style

	// Form fields
	LabelStyle        lipgloss.Style
	HintStyle         lipgloss.Style
	InputStyle        lipgloss.Style
	InputFocusedStyle lipgloss.Style
	InputTextStyle    lipgloss.Style
	InputCursorStyle  lipgloss.Style
	PlaceholderStyle  lipgloss.Style

	// Submit button
	ButtonStyle        lipgloss.Style
	ButtonFocusedStyle lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Base text on the app background
	BodyStyle lipgloss.Style

	// Screen behind an open alert
	DimmedStyle lipgloss.Style

	// Modal styles
	ModalStyle       lipgloss.Style
	ModalBgColor     lipgloss.Color
	ModalHeaderStyle lipgloss.Style
	ModalFooterStyle lipgloss.Style
	ModalTitleStyle  lipgloss.Style
	ModalBodyStyle   lipgloss.Style

	// App container
	AppStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)
	s.palette = palette

	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorWarning = palette.Warning

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg).
		Width(formWidth).
		Align(lipgloss.Center)

	s.SubtitleStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Width(formWidth).
		Align(lipgloss.Center)

	s.SeparatorStyle = lipgloss.NewStyle().
		Foreground(s.colorBgSelection).
		Background(s.colorBg)

	s.LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.HintStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Italic(true)

	s.InputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorBgSelection).
		BorderBackground(s.colorBg).
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 1).
		Width(inputWidth)

	s.InputFocusedStyle = s.InputStyle.
		BorderForeground(s.colorAccent).
		Background(s.colorBgSelection)

	s.InputTextStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.InputCursorStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(s.colorAccent)

	s.PlaceholderStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.ButtonStyle = lipgloss.NewStyle().
		Background(s.colorBgHighlight).
		Foreground(s.colorFg).
		Padding(0, 3)

	s.ButtonFocusedStyle = lipgloss.NewStyle().
		Background(s.colorAccent).
		Foreground(palette.TextOnAccent).
		Bold(true).
		Padding(0, 3)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.BodyStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.DimmedStyle = lipgloss.NewStyle().
		Foreground(palette.Dimmed).
		Background(s.colorBg)

	// Modal styles - use high-contrast theme colors
	modal := palette.Modal
	s.ModalBgColor = modal.Bg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		Background(modal.Bg).
		Foreground(modal.Text).
		Padding(1, 2).
		Width(modalWidth).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modal.Bg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Bg)

	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2)

	return s
}

// ModalStyles returns the shared modal chrome.
func (s *Styles) ModalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       s.ModalHeaderStyle,
		ModalTitleStyle:        s.ModalTitleStyle,
		ModalFooterStyle:       s.ModalFooterStyle,
		ModalStyle:             s.ModalStyle,
		ModalButtonStyle:       s.ModalBodyStyle,
		ModalButtonActiveStyle: s.ModalBodyStyle,
		ModalBodyStyle:         s.ModalBodyStyle,
	}
}

// AlertStyles returns the alert styles for a kind. Only the icon, title
// and button change with the kind; the frame border takes its color too.
func (s *Styles) AlertStyles(kind alert.Kind) view.AlertStyles {
	colors := s.palette.Alert(kind)
	frame := s.ModalStyles()
	frame.ModalStyle = s.ModalStyle.BorderForeground(colors.Accent)

	return view.AlertStyles{
		Frame: frame,
		Icon: lipgloss.NewStyle().
			Foreground(colors.Accent).
			Background(s.ModalBgColor).
			Bold(true),
		Title: s.ModalTitleStyle.Foreground(colors.Accent),
		Body:  s.ModalBodyStyle,
		Button: lipgloss.NewStyle().
			Background(colors.Accent).
			Foreground(colors.TextOnAccent).
			Bold(true).
			Padding(0, 3),
	}
}

// FormStyles returns the styles used by the form body.
func (s *Styles) FormStyles() view.FormStyles {
	return view.FormStyles{
		TitleStyle:         s.TitleStyle,
		SubtitleStyle:      s.SubtitleStyle,
		SeparatorStyle:     s.SeparatorStyle,
		LabelStyle:         s.LabelStyle,
		HintStyle:          s.HintStyle,
		InputStyle:         s.InputStyle,
		InputFocusedStyle:  s.InputFocusedStyle,
		ButtonStyle:        s.ButtonStyle,
		ButtonFocusedStyle: s.ButtonFocusedStyle,
		BodyStyle:          s.BodyStyle,
	}
}
