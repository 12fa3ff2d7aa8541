package model

// ViewID identifies one full-panel view of the main window
type ViewID string

const (
	// ViewLanding is the start view with the log in and sign up buttons
	ViewLanding ViewID = "landing"

	// ViewLogin is the log in form
	ViewLogin ViewID = "login"

	// ViewSignUp is the sign up form
	ViewSignUp ViewID = "signup"
)

// String returns the string representation of ViewID
func (v ViewID) String() string {
	return string(v)
}

// IsValid returns true if v names one of the known views
func (v ViewID) IsValid() bool {
	return v == ViewLanding || v == ViewLogin || v == ViewSignUp
}

// AllViews returns every known view in a stable order, landing first
func AllViews() []ViewID {
	return []ViewID{ViewLanding, ViewLogin, ViewSignUp}
}
