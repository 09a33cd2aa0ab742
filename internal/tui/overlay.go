package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// OverlayModel draws a modal on top of the screen. While active the base
// screen is dimmed so it reads as inert behind the dialog.
type OverlayModel struct {
	active   bool
	bgColor  lipgloss.Color
	dimStyle lipgloss.Style
}

// NewOverlayModel initializes an inactive overlay.
func NewOverlayModel() OverlayModel {
	return OverlayModel{
		bgColor:  lipgloss.Color(""),
		dimStyle: lipgloss.NewStyle(),
	}
}

// Show activates the overlay.
func (o *OverlayModel) Show() {
	o.active = true
}

// Hide deactivates the overlay.
func (o *OverlayModel) Hide() {
	o.active = false
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetBackground updates the color used to pad modal lines.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// SetDimStyle sets the style applied to the base screen behind the modal.
func (o *OverlayModel) SetDimStyle(style lipgloss.Style) {
	o.dimStyle = style
}

// Render dims base and centers content on top of it.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	contentLines := o.contentLines(content)
	if len(contentLines) == 0 {
		return base
	}
	boxW, boxH := o.contentSize(contentLines)
	if boxW > width {
		boxW = width
	}
	if boxH > height {
		boxH = height
	}

	top := (height - boxH) / 2
	left := (width - boxW) / 2
	if top < 0 {
		top = 0
	}
	if left < 0 {
		left = 0
	}

	baseLines := o.dimBase(base, width, height)
	bgSeq := o.backgroundSeq()

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+boxH {
			lines = append(lines, baseLines[row])
			continue
		}

		modalLine := o.fitLine(contentLines[row-top], boxW, bgSeq)
		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+boxW, width)
		lines = append(lines, leftSlice+modalLine+rightSlice)
	}

	return strings.Join(lines, "\n")
}

func (o OverlayModel) backgroundSeq() string {
	if o.bgColor == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()
}

// fitLine cuts or pads a modal line to exactly width cells, keeping the
// modal background after every reset inside the line.
func (o OverlayModel) fitLine(line string, width int, bgSeq string) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth > width {
		line = ansi.Cut(line, 0, width)
		lineWidth = width
	}
	if lineWidth < width {
		line += strings.Repeat(" ", width-lineWidth)
	}
	if bgSeq != "" {
		line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
		line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
		line = bgSeq + line
	}
	return line + ansi.ResetStyle
}

func (o OverlayModel) contentLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (o OverlayModel) contentSize(lines []string) (int, int) {
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth, len(lines)
}

// dimBase strips styling from the base screen, restyles it with the dim
// style, and normalizes it to width x height.
func (o OverlayModel) dimBase(base string, width, height int) []string {
	lines := strings.Split(ansi.Strip(base), "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			line = ansi.Cut(line, 0, width)
		} else if lineWidth < width {
			line += strings.Repeat(" ", width-lineWidth)
		}
		lines[i] = o.dimStyle.Render(line)
	}

	return lines
}
