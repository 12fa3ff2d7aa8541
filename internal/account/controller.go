package account

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ytget/todolist/internal/logging"
	"github.com/ytget/todolist/internal/model"
)

// Notification texts for a rejected submit
const (
	InvalidEmailTitle   = "Error"
	InvalidEmailMessage = "Please enter a valid email address"
)

var (
	// ErrInvalidEmail is returned by the submit methods when the email fails IsValidEmail
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrUnknownEvent is returned by Handle for events without a navigation row
	ErrUnknownEvent = errors.New("no transition for event")
)

// Controller owns the session draft and drives navigation and submit flows.
// All methods are meant to be called from the UI event thread.
type Controller struct {
	nav      Navigator
	popup    Popup
	notifier Notifier
	logger   *zap.Logger

	transitions map[model.Event]model.ViewID
	draft       model.SessionDraft
}

// NewController creates a controller. A nil logger means no logging.
func NewController(nav Navigator, popup Popup, notifier Notifier, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		nav:         nav,
		popup:       popup,
		notifier:    notifier,
		logger:      logger.Named("account"),
		transitions: buildTransitions(navigationTable),
	}
}

// Transitions returns a copy of the navigation table
func (c *Controller) Transitions() []Transition {
	out := make([]Transition, len(navigationTable))
	copy(out, navigationTable)
	return out
}

// Handle performs the navigation row registered for event.
// EventPopupConfirmed also hides the popup.
func (c *Controller) Handle(event model.Event) error {
	target, ok := c.transitions[event]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEvent, event)
	}

	if event == model.EventPopupConfirmed {
		c.popup.Hide()
		logging.LogPopup(c.logger, false, "confirmed")
	}

	return c.navigate(target, event)
}

// ConfirmPopup hides the verification popup and shows the log in view
func (c *Controller) ConfirmPopup() error {
	return c.Handle(model.EventPopupConfirmed)
}

// SubmitLogin records the credentials and validates the email. A valid email
// has no further effect.
func (c *Controller) SubmitLogin(email, password string) error {
	c.draft.ApplyLogin(email, password)

	if !model.IsValidEmail(email) {
		return c.reject()
	}

	logging.LogSubmit(c.logger, c.draft, true)
	// TODO: route to a post-login view once one exists; success is silent for now
	return nil
}

// SubmitSignUp records the credentials, validates the email and shows the
// verification popup on success.
func (c *Controller) SubmitSignUp(email, username, password string) error {
	c.draft.ApplySignUp(email, username, password)

	if !model.IsValidEmail(email) {
		return c.reject()
	}

	logging.LogSubmit(c.logger, c.draft, true)
	c.popup.Show()
	logging.LogPopup(c.logger, true, "signup")
	return nil
}

// Draft returns a copy of the most recent submission
func (c *Controller) Draft() model.SessionDraft {
	return c.draft
}

func (c *Controller) reject() error {
	logging.LogSubmit(c.logger, c.draft, false)
	c.notifier.Notify(InvalidEmailTitle, InvalidEmailMessage)
	return ErrInvalidEmail
}

func (c *Controller) navigate(target model.ViewID, event model.Event) error {
	from := c.nav.Active()
	if err := c.nav.Show(target); err != nil {
		return fmt.Errorf("failed to show %s: %w", target, err)
	}
	logging.LogViewChange(c.logger, from, target, event)
	return nil
}
