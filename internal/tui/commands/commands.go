// Package commands provides TUI command constructors and message types.
package commands

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusDuration is how long a status message stays on screen.
const StatusDuration = 3 * time.Second

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Context string
	Err     error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// ClipboardWriter writes text to the system clipboard.
type ClipboardWriter func(text string) error

// CopyText writes text to the clipboard off the event loop and reports
// back with a status or an error message.
func CopyText(write ClipboardWriter, text string) tea.Cmd {
	return func() tea.Msg {
		if write == nil {
			return ErrMsg{Context: "copy", Err: fmt.Errorf("clipboard unavailable")}
		}
		if err := write(text); err != nil {
			return ErrMsg{Context: "copy", Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied alert message"}
	}
}

// ClearStatusAfter schedules a ClearStatusMsg.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
