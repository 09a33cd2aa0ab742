package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/registro/internal/alert"
	"github.com/javiermolinar/registro/internal/config"
	"github.com/javiermolinar/registro/internal/form"
	"github.com/javiermolinar/registro/internal/tui/commands"
)

func newTestModel(t *testing.T, opts ...ModelOption) Model {
	t.Helper()
	return *New(config.Default(), opts...)
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var updated tea.Model
		updated, cmd = m.Update(k)
		m = updated.(Model)
	}
	return m, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func fillForm(t *testing.T, m Model, d form.Data) Model {
	t.Helper()
	for i, f := range form.Fields {
		m.setFocus(i, "test")
		m = typeText(t, m, d.Get(f))
	}
	return m
}

var validData = form.Data{
	ID:       "123456",
	FullName: "Ana Pérez",
	Phone:    "3001234567",
	Email:    "ana@example.com",
}

func TestNew_FocusesFirstField(t *testing.T) {
	m := newTestModel(t)

	if m.focus != 0 {
		t.Fatalf("focus = %d, want 0", m.focus)
	}
	if !m.inputs[0].Focused() {
		t.Fatal("first input should be focused")
	}
	for i := 1; i < len(m.inputs); i++ {
		if m.inputs[i].Focused() {
			t.Fatalf("input %d should not be focused", i)
		}
	}
	if m.Alert().Visible {
		t.Fatal("alert should start hidden")
	}
}

func TestHandleFormKeys_FocusCycle(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want int
	}{
		{name: "tab", keys: []tea.KeyMsg{key(tea.KeyTab)}, want: 1},
		{name: "down", keys: []tea.KeyMsg{key(tea.KeyDown)}, want: 1},
		{name: "wraps_forward", keys: []tea.KeyMsg{key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyTab)}, want: 0},
		{name: "shift_tab_wraps_back", keys: []tea.KeyMsg{key(tea.KeyShiftTab)}, want: focusSubmit},
		{name: "up", keys: []tea.KeyMsg{key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyUp)}, want: 1},
		{name: "enter_advances", keys: []tea.KeyMsg{key(tea.KeyEnter), key(tea.KeyEnter)}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := press(t, newTestModel(t), tt.keys...)
			if m.focus != tt.want {
				t.Fatalf("focus = %d, want %d", m.focus, tt.want)
			}
			for i := range m.inputs {
				if got, want := m.inputs[i].Focused(), i == tt.want; got != want {
					t.Fatalf("input %d focused = %v, want %v", i, got, want)
				}
			}
		})
	}
}

func TestHandleFormKeys_TypingUpdatesField(t *testing.T) {
	m := newTestModel(t)
	m = typeText(t, m, "12a")
	m, _ = press(t, m, key(tea.KeyTab))
	m = typeText(t, m, "Ana Pérez")

	d := m.Data()
	if d.ID != "12a" {
		t.Fatalf("ID = %q, want %q", d.ID, "12a")
	}
	if d.FullName != "Ana Pérez" {
		t.Fatalf("FullName = %q, want %q", d.FullName, "Ana Pérez")
	}
	if m.Alert().Visible {
		t.Fatal("typing must not validate")
	}
}

func TestHandleFormKeys_Submit(t *testing.T) {
	tests := []struct {
		name        string
		data        form.Data
		keys        []tea.KeyMsg
		wantKind    alert.Kind
		wantTitle   string
		wantMessage string
	}{
		{
			name:        "ctrl_s_empty_form",
			keys:        []tea.KeyMsg{key(tea.KeyCtrlS)},
			wantKind:    alert.KindError,
			wantTitle:   form.TitleValidationError,
			wantMessage: "Please complete all fields",
		},
		{
			name:        "ctrl_s_bad_phone",
			data:        form.Data{ID: "1", FullName: "A", Phone: "300-123", Email: "a@b.co"},
			keys:        []tea.KeyMsg{key(tea.KeyCtrlS)},
			wantKind:    alert.KindError,
			wantTitle:   form.TitleValidationError,
			wantMessage: "Phone must contain only numbers",
		},
		{
			name:        "enter_on_last_field",
			data:        validData,
			keys:        []tea.KeyMsg{key(tea.KeyEnter)},
			wantKind:    alert.KindSuccess,
			wantTitle:   form.TitleSuccess,
			wantMessage: form.Summary(validData),
		},
		{
			name:        "space_on_button",
			data:        validData,
			keys:        []tea.KeyMsg{key(tea.KeyTab), key(tea.KeySpace)},
			wantKind:    alert.KindSuccess,
			wantTitle:   form.TitleSuccess,
			wantMessage: form.Summary(validData),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := fillForm(t, newTestModel(t), tt.data)
			m, _ = press(t, m, tt.keys...)

			got := m.Alert()
			if !got.Visible {
				t.Fatal("alert should be visible")
			}
			if got.Kind != tt.wantKind {
				t.Fatalf("kind = %q, want %q", got.Kind, tt.wantKind)
			}
			if got.Title != tt.wantTitle {
				t.Fatalf("title = %q, want %q", got.Title, tt.wantTitle)
			}
			if got.Message != tt.wantMessage {
				t.Fatalf("message = %q, want %q", got.Message, tt.wantMessage)
			}
		})
	}
}

func TestHandleAlertKeys_SwallowsFormKeys(t *testing.T) {
	m := newTestModel(t)
	m = typeText(t, m, "9")
	m, _ = press(t, m, key(tea.KeyCtrlS))
	if !m.Alert().Visible {
		t.Fatal("expected alert")
	}

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, key(tea.KeyTab))
	if cmd != nil {
		t.Fatal("swallowed keys should not return a command")
	}
	if m.focus != 0 {
		t.Fatalf("focus = %d, want 0", m.focus)
	}
	if got := m.Data().ID; got != "9" {
		t.Fatalf("ID = %q, want %q", got, "9")
	}
	if !m.Alert().Visible {
		t.Fatal("alert should stay visible")
	}
}

func TestHandleAlertKeys_DismissError(t *testing.T) {
	for _, k := range []tea.KeyMsg{key(tea.KeyEnter), key(tea.KeyEsc), key(tea.KeySpace)} {
		t.Run(k.String(), func(t *testing.T) {
			d := validData
			d.Email = "bad-email"
			m := fillForm(t, newTestModel(t), d)
			m, _ = press(t, m, key(tea.KeyCtrlS))
			if m.Alert().Kind != alert.KindError {
				t.Fatalf("kind = %q, want error", m.Alert().Kind)
			}

			m, cmd := press(t, m, k)
			if cmd != nil {
				t.Fatal("dismiss should not quit")
			}
			if m.Alert().Visible {
				t.Fatal("alert should be hidden")
			}
			if m.Data() != d {
				t.Fatalf("data = %+v, want %+v", m.Data(), d)
			}
			if got := m.inputs[3].Value(); got != d.Email {
				t.Fatalf("email input = %q, want %q", got, d.Email)
			}
		})
	}
}

func TestHandleAlertKeys_DismissSuccessResets(t *testing.T) {
	m := fillForm(t, newTestModel(t), validData)
	m, _ = press(t, m, key(tea.KeyCtrlS))
	if m.Alert().Kind != alert.KindSuccess {
		t.Fatalf("kind = %q, want success", m.Alert().Kind)
	}

	m, _ = press(t, m, key(tea.KeyEnter))

	if m.Alert().Visible {
		t.Fatal("alert should be hidden")
	}
	if !m.Data().IsZero() {
		t.Fatalf("data = %+v, want empty", m.Data())
	}
	for i := range m.inputs {
		if got := m.inputs[i].Value(); got != "" {
			t.Fatalf("input %d = %q, want empty", i, got)
		}
	}
	if m.focus != 0 || !m.inputs[0].Focused() {
		t.Fatalf("focus = %d, want first field focused", m.focus)
	}
}

func TestHandleAlertKeys_CopyMessage(t *testing.T) {
	var copied string
	m := newTestModel(t, WithClipboard(func(text string) error {
		copied = text
		return nil
	}))
	m, _ = press(t, m, key(tea.KeyCtrlS))

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if cmd == nil {
		t.Fatal("expected copy command")
	}
	msg := cmd()
	if _, ok := msg.(commands.StatusMsgCmd); !ok {
		t.Fatalf("msg = %T, want StatusMsgCmd", msg)
	}
	if copied != "Please complete all fields" {
		t.Fatalf("copied = %q", copied)
	}
	if !m.Alert().Visible {
		t.Fatal("copy should not dismiss the alert")
	}
}

func TestHandleAlertKeys_CopyError(t *testing.T) {
	m := newTestModel(t, WithClipboard(func(string) error {
		return errors.New("no clipboard")
	}))
	m, _ = press(t, m, key(tea.KeyCtrlS))

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if _, ok := cmd().(commands.ErrMsg); !ok {
		t.Fatal("expected ErrMsg")
	}
}

func TestHandleKeyMsg_Quit(t *testing.T) {
	tests := []struct {
		name      string
		withAlert bool
		key       tea.KeyMsg
		wantQuit  bool
	}{
		{name: "esc_on_form", key: key(tea.KeyEsc), wantQuit: true},
		{name: "ctrl_c_on_form", key: key(tea.KeyCtrlC), wantQuit: true},
		{name: "ctrl_c_on_alert", withAlert: true, key: key(tea.KeyCtrlC), wantQuit: true},
		{name: "esc_on_alert_dismisses", withAlert: true, key: key(tea.KeyEsc), wantQuit: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t)
			if tt.withAlert {
				m, _ = press(t, m, key(tea.KeyCtrlS))
			}
			_, cmd := press(t, m, tt.key)

			quit := false
			if cmd != nil {
				_, quit = cmd().(tea.QuitMsg)
			}
			if quit != tt.wantQuit {
				t.Fatalf("quit = %v, want %v", quit, tt.wantQuit)
			}
		})
	}
}

func TestWithController_PrefillsInputs(t *testing.T) {
	c := form.NewController()
	c.SetField(form.FieldEmail, "ana@example.com")

	m := newTestModel(t, WithController(c))
	if got := m.inputs[3].Value(); got != "ana@example.com" {
		t.Fatalf("email input = %q", got)
	}
}
