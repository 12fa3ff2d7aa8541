package account

import (
	"github.com/ytget/todolist/internal/model"
)

// Navigator switches the view shown in the main window.
type Navigator interface {
	Show(id model.ViewID) error
	Active() model.ViewID
}

// Popup is the independent verification surface shown after sign up.
type Popup interface {
	Show()
	Hide()
	Visible() bool
}

// Notifier presents a blocking message to the user.
type Notifier interface {
	Notify(title, message string)
}
