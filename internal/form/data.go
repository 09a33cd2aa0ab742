package form

// Data holds the raw field values exactly as typed.
type Data struct {
	ID       string
	FullName string
	Phone    string
	Email    string
}

// Set replaces the value of a single field. Unknown fields are ignored.
func (d *Data) Set(f Field, value string) {
	switch f {
	case FieldID:
		d.ID = value
	case FieldFullName:
		d.FullName = value
	case FieldPhone:
		d.Phone = value
	case FieldEmail:
		d.Email = value
	}
}

// Get returns the value of a single field.
func (d Data) Get(f Field) string {
	switch f {
	case FieldID:
		return d.ID
	case FieldFullName:
		return d.FullName
	case FieldPhone:
		return d.Phone
	case FieldEmail:
		return d.Email
	default:
		return ""
	}
}

// IsZero reports whether every field is empty.
func (d Data) IsZero() bool {
	return d == Data{}
}
