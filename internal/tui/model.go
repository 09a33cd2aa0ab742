// Package tui provides the terminal user interface for registro.
package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/registro/internal/config"
	"github.com/javiermolinar/registro/internal/form"
	"github.com/javiermolinar/registro/internal/tui/commands"
	"github.com/javiermolinar/registro/internal/tui/theme"
)

// Focus positions: 0..FieldCount-1 are the inputs, then the submit button.
const (
	focusSubmit = form.FieldCount
	focusCount  = form.FieldCount + 1
)

// Screen copy.
const (
	formTitle    = "User Registration"
	formSubtitle = "Complete your personal details"
	submitLabel  = "Register"
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config    *config.Config
	clipboard commands.ClipboardWriter

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Form state; inputs mirror the controller's data field by field.
	controller *form.Controller
	inputs     []textinput.Model
	focus      int

	// Overlay state
	overlay OverlayModel

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	// Error state
	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClipboard replaces the system clipboard writer.
func WithClipboard(w commands.ClipboardWriter) ModelOption {
	return func(m *Model) {
		m.clipboard = w
	}
}

// WithController starts the model from an existing controller.
func WithController(c *form.Controller) ModelOption {
	return func(m *Model) {
		if c == nil {
			return
		}
		m.controller = c
		for i, f := range form.Fields {
			m.inputs[i].SetValue(c.Data().Get(f))
		}
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, opts ...ModelOption) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	inputs := make([]textinput.Model, 0, form.FieldCount)
	for _, f := range form.Fields {
		inputs = append(inputs, newFieldInput(f, styles))
	}
	inputs[0].Focus()

	overlay := NewOverlayModel()
	overlay.SetBackground(styles.ModalBgColor)
	overlay.SetDimStyle(styles.DimmedStyle)

	m := &Model{
		config:     cfg,
		clipboard:  clipboard.WriteAll,
		theme:      t,
		styles:     styles,
		controller: form.NewController(),
		inputs:     inputs,
		focus:      0,
		overlay:    overlay,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func newFieldInput(f form.Field, styles *Styles) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = f.Placeholder()
	ti.Width = inputWidth - 4
	ti.PlaceholderStyle = styles.PlaceholderStyle
	ti.TextStyle = styles.InputTextStyle
	ti.PromptStyle = styles.InputTextStyle
	ti.Cursor.Style = styles.InputCursorStyle
	ti.Cursor.TextStyle = styles.InputTextStyle
	return ti
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Data returns the current form data.
func (m Model) Data() form.Data {
	return m.controller.Data()
}

// Alert returns the current alert state.
func (m Model) Alert() form.AlertState {
	return m.controller.Alert()
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug, cfg.Debug.LogPath); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
