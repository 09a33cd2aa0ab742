package form

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Validation errors, in the order they are checked.
var (
	ErrMissingFields   = errors.New("missing fields")
	ErrIDNotNumeric    = errors.New("id must be numeric")
	ErrPhoneNotNumeric = errors.New("phone must be numeric")
	ErrInvalidEmail    = errors.New("invalid email format")
)

// nonSpace matches one rune that is not whitespace in the Unicode sense:
// RE2's \S alone still lets \v, NBSP and the other Z-category spaces through.
const nonSpace = `[^\s\v\p{Z}\x{FEFF}]`

var (
	digitsPattern = regexp.MustCompile(`^\d+$`)
	emailPattern  = regexp.MustCompile(`^` + nonSpace + `+@` + nonSpace + `+\.` + nonSpace + `+$`)
)

// Validate checks d and returns the first failing rule, or nil.
// Values are checked verbatim: no trimming and no length limits.
func Validate(d Data) error {
	for _, f := range Fields {
		if d.Get(f) == "" {
			return ErrMissingFields
		}
	}
	if !digitsPattern.MatchString(d.ID) {
		return ErrIDNotNumeric
	}
	if !digitsPattern.MatchString(d.Phone) {
		return ErrPhoneNotNumeric
	}
	if !emailPattern.MatchString(d.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// Reason returns a short machine-readable tag for a validation error,
// suitable for logs that must not carry field values.
func Reason(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrMissingFields):
		return "missing_fields"
	case errors.Is(err, ErrIDNotNumeric):
		return "id_not_numeric"
	case errors.Is(err, ErrPhoneNotNumeric):
		return "phone_not_numeric"
	case errors.Is(err, ErrInvalidEmail):
		return "invalid_email"
	default:
		return "unknown"
	}
}

// Message returns the text shown to the user for a validation error.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrMissingFields):
		return "Please complete all fields"
	case errors.Is(err, ErrIDNotNumeric):
		return "ID must contain only numbers"
	case errors.Is(err, ErrPhoneNotNumeric):
		return "Phone must contain only numbers"
	case errors.Is(err, ErrInvalidEmail):
		return "Please enter a valid email address"
	case err == nil:
		return ""
	default:
		return err.Error()
	}
}

// Summary formats the success message: an intro line, a blank line, then
// one labeled line per field with the value verbatim.
func Summary(d Data) string {
	var b strings.Builder
	b.WriteString("Your details have been registered successfully:\n\n")
	for i, f := range Fields {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %s", f.Label(), d.Get(f))
	}
	return b.String()
}
