package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/javiermolinar/registro/internal/alert"
)

// Color definitions for consistent styling across the UI.
var (
	// Success: bold green, matching the alert scheme
	colorSuccess = color.New(color.FgGreen, color.Bold)

	// Error: bold red
	colorError = color.New(color.FgRed, color.Bold)

	// Info: bold blue
	colorInfo = color.New(color.FgBlue, color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// colorForKind returns the terminal color of an alert kind.
func colorForKind(k alert.Kind) *color.Color {
	switch k {
	case alert.KindSuccess:
		return colorSuccess
	case alert.KindError:
		return colorError
	default:
		return colorInfo
	}
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
