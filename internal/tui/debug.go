package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/registro/internal/form"
)

// DebugLogger logs TUI state, keystrokes, and events to a file.
// Field values are never written; only field names and outcomes.
type DebugLogger struct {
	mu      sync.Mutex
	file    *os.File
	enabled bool
	seq     int
}

// Global debug logger instance
var debugLog *DebugLogger

// InitDebugLogger initializes the debug logger if debug mode is enabled.
func InitDebugLogger(enabled bool, path string) error {
	if !enabled {
		debugLog = &DebugLogger{enabled: false}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating debug log: %w", err)
	}

	debugLog = &DebugLogger{
		file:    f,
		enabled: true,
	}

	debugLog.log("DEBUG_START", map[string]any{
		"log_file": path,
		"time":     time.Now().Format(time.RFC3339),
	})

	return nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	if debugLog != nil && debugLog.file != nil {
		debugLog.log("DEBUG_END", map[string]any{
			"time": time.Now().Format(time.RFC3339),
		})
		_ = debugLog.file.Close()
		debugLog.file = nil
	}
}

// log writes a structured log entry.
func (d *DebugLogger) log(event string, data map[string]any) {
	if d == nil || !d.enabled || d.file == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	entry := map[string]any{
		"seq":   d.seq,
		"ts":    time.Now().Format("15:04:05.000"),
		"event": event,
	}
	for k, v := range data {
		entry[k] = v
	}

	b, _ := json.Marshal(entry)
	_, _ = fmt.Fprintf(d.file, "%s\n", b)
}

func debugEnabled() bool {
	return debugLog != nil && debugLog.enabled
}

// LogKeyPress logs a key press event. Printable keys typed into a field
// are logged as "rune" so field contents never reach the log.
func LogKeyPress(msg tea.KeyMsg) {
	if !debugEnabled() {
		return
	}
	key := msg.String()
	if msg.Type == tea.KeyRunes {
		key = "rune"
	}
	debugLog.log("KEY_PRESS", map[string]any{
		"key": key,
	})
}

// LogFocusChange logs focus moving between form controls.
func LogFocusChange(from, to int, reason string) {
	if !debugEnabled() {
		return
	}
	debugLog.log("FOCUS_CHANGE", map[string]any{
		"from":   focusName(from),
		"to":     focusName(to),
		"reason": reason,
	})
}

// LogSubmit logs the outcome of a submit attempt.
func LogSubmit(state form.AlertState, err error) {
	if !debugEnabled() {
		return
	}
	debugLog.log("SUBMIT", map[string]any{
		"kind":   state.Kind.String(),
		"reason": form.Reason(err),
	})
}

// LogAcknowledge logs an alert dismissal and whether the form was reset.
func LogAcknowledge(kind string, reset bool) {
	if !debugEnabled() {
		return
	}
	debugLog.log("ACKNOWLEDGE", map[string]any{
		"kind":  kind,
		"reset": reset,
	})
}

// LogError logs an error.
func LogError(context string, err error) {
	if !debugEnabled() {
		return
	}
	debugLog.log("ERROR", map[string]any{
		"context": context,
		"error":   err.Error(),
	})
}

func focusName(i int) string {
	if i >= 0 && i < len(form.Fields) {
		return form.Fields[i].String()
	}
	if i == focusSubmit {
		return "submit"
	}
	return fmt.Sprintf("Unknown(%d)", i)
}
