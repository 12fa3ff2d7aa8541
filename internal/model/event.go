package model

// Event is a discrete user action the controller reacts to
type Event string

const (
	EventLoginClicked    Event = "login_clicked"
	EventSignUpClicked   Event = "signup_clicked"
	EventCloseClicked    Event = "close_clicked"
	EventLoginSubmitted  Event = "login_submitted"
	EventSignUpSubmitted Event = "signup_submitted"
	EventPopupConfirmed  Event = "popup_confirmed"
)

// String returns the string representation of Event
func (e Event) String() string {
	return string(e)
}

// IsSubmit returns true for form submissions, which carry field values
func (e Event) IsSubmit() bool {
	return e == EventLoginSubmitted || e == EventSignUpSubmitted
}
