// Package alert defines the contract of the modal alert: its kinds, icons,
// color schemes, and the props a caller passes to render and dismiss it.
package alert

import "strings"

// Kind selects the icon and color scheme of an alert.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// ParseKind maps a name to a Kind. Unknown names fall back to KindInfo.
func ParseKind(s string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindSuccess:
		return KindSuccess
	case KindError:
		return KindError
	default:
		return KindInfo
	}
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k.normalize())
}

func (k Kind) normalize() Kind {
	switch k {
	case KindSuccess, KindError:
		return k
	default:
		return KindInfo
	}
}

// Icon returns the glyph shown next to the alert title.
func (k Kind) Icon() string {
	switch k.normalize() {
	case KindSuccess:
		return "✔"
	case KindError:
		return "✘"
	default:
		return "ℹ"
	}
}

// Scheme holds the two shades of an alert color family.
// Light is used on light backgrounds, Dark on dark ones.
type Scheme struct {
	Light string
	Dark  string
}

// Pick returns the shade matching the background luminance.
func (s Scheme) Pick(lightBackground bool) string {
	if lightBackground {
		return s.Light
	}
	return s.Dark
}

// Scheme returns the color family for the kind: green, red or blue.
func (k Kind) Scheme() Scheme {
	switch k.normalize() {
	case KindSuccess:
		return Scheme{Light: "#4CAF50", Dark: "#2E7D32"}
	case KindError:
		return Scheme{Light: "#F44336", Dark: "#C62828"}
	default:
		return Scheme{Light: "#2196F3", Dark: "#1565C0"}
	}
}

// Props configures a single alert render. The alert keeps no state of its
// own; everything it shows comes from here.
type Props struct {
	Visible bool
	Title   string
	Message string
	Kind    Kind
	OnClose func()
}

// Close runs the dismissal callback. It does nothing else: what happens
// next is up to the caller.
func (p Props) Close() {
	if p.OnClose != nil {
		p.OnClose()
	}
}
