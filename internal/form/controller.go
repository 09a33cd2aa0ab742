package form

import "github.com/javiermolinar/registro/internal/alert"

// Alert titles.
const (
	TitleValidationError = "Validation Error"
	TitleSuccess         = "Registration Successful"
)

// AlertState is the transient result of the latest submit.
type AlertState struct {
	Visible bool
	Kind    alert.Kind
	Title   string
	Message string
}

// Controller owns the form data and the alert derived from it.
//
// A submit shows an alert; the data is only cleared once a success alert
// is acknowledged. The zero value is an empty, idle form.
type Controller struct {
	data  Data
	alert AlertState
	err   error // validation result of the last submit
}

// NewController returns an idle controller with empty data.
func NewController() *Controller {
	return &Controller{}
}

// Data returns a copy of the current field values.
func (c *Controller) Data() Data {
	return c.data
}

// Alert returns the current alert state.
func (c *Controller) Alert() AlertState {
	return c.alert
}

// SetField replaces one field value. It never validates.
func (c *Controller) SetField(f Field, value string) {
	c.data.Set(f, value)
}

// Submit validates the data and shows the resulting alert.
// While an alert is still showing the call is ignored and the current
// alert is returned.
func (c *Controller) Submit() AlertState {
	if c.alert.Visible {
		return c.alert
	}

	c.err = Validate(c.data)
	if err := c.err; err != nil {
		c.alert = AlertState{
			Visible: true,
			Kind:    alert.KindError,
			Title:   TitleValidationError,
			Message: Message(err),
		}
		return c.alert
	}

	c.alert = AlertState{
		Visible: true,
		Kind:    alert.KindSuccess,
		Title:   TitleSuccess,
		Message: Summary(c.data),
	}
	return c.alert
}

// Err returns the validation error of the last submit, or nil if it
// passed or nothing was submitted yet.
func (c *Controller) Err() error {
	return c.err
}

// Acknowledge hides the alert. Data is reset only if the alert being
// dismissed was a success. It reports whether an alert was showing.
func (c *Controller) Acknowledge() bool {
	if !c.alert.Visible {
		return false
	}
	wasSuccess := c.alert.Kind == alert.KindSuccess
	c.alert.Visible = false
	if wasSuccess {
		c.data = Data{}
	}
	return true
}

// Props builds the alert props for the current state.
func (c *Controller) Props(onClose func()) alert.Props {
	return alert.Props{
		Visible: c.alert.Visible,
		Title:   c.alert.Title,
		Message: c.alert.Message,
		Kind:    c.alert.Kind,
		OnClose: onClose,
	}
}
