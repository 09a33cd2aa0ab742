// Package form defines the registration form: its fields, validation rules,
// and the controller that turns a submit into an alert.
package form

import "fmt"

// Field names one of the four form inputs.
type Field int

const (
	FieldID Field = iota
	FieldFullName
	FieldPhone
	FieldEmail
)

// FieldCount is the number of form fields.
const FieldCount = 4

// Fields lists every field in display and validation order.
var Fields = []Field{FieldID, FieldFullName, FieldPhone, FieldEmail}

// Keyboard hints the kind of text a field expects.
type Keyboard string

const (
	KeyboardNumeric Keyboard = "numeric"
	KeyboardWords   Keyboard = "words"
	KeyboardPhone   Keyboard = "phone"
	KeyboardEmail   Keyboard = "email"
)

// ParseField resolves a canonical field name.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", name)
}

// Valid reports whether f is one of the four known fields.
func (f Field) Valid() bool {
	return f >= FieldID && f <= FieldEmail
}

// String returns the canonical field name.
func (f Field) String() string {
	switch f {
	case FieldID:
		return "id"
	case FieldFullName:
		return "fullName"
	case FieldPhone:
		return "phone"
	case FieldEmail:
		return "email"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Label returns the human-readable label, also used in the success summary.
func (f Field) Label() string {
	switch f {
	case FieldID:
		return "ID"
	case FieldFullName:
		return "Full name"
	case FieldPhone:
		return "Phone"
	case FieldEmail:
		return "Email"
	default:
		return f.String()
	}
}

// Placeholder returns the hint shown in an empty input.
func (f Field) Placeholder() string {
	switch f {
	case FieldID:
		return "Enter your national ID"
	case FieldFullName:
		return "Enter your full name"
	case FieldPhone:
		return "Enter your phone number"
	case FieldEmail:
		return "Enter your email address"
	default:
		return ""
	}
}

// Keyboard returns the input hint for the field.
func (f Field) Keyboard() Keyboard {
	switch f {
	case FieldID:
		return KeyboardNumeric
	case FieldPhone:
		return KeyboardPhone
	case FieldEmail:
		return KeyboardEmail
	default:
		return KeyboardWords
	}
}
