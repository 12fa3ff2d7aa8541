package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"go.uber.org/zap"

	"github.com/ytget/todolist/internal/account"
	"github.com/ytget/todolist/internal/config"
	"github.com/ytget/todolist/internal/model"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	settings *config.Settings
	logger   *zap.Logger

	stack      *ViewStack
	popup      *VerificationPopup
	notifier   *DialogNotifier
	controller *account.Controller

	landing *landingView
	login   *loginView
	signUp  *signUpView
}

// NewRootUI creates and initializes the main UI. The landing view is active
// when it returns.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, logger *zap.Logger) (*RootUI, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ui := &RootUI{
		window:   window,
		settings: settings,
		logger:   logger.Named("ui"),
		stack:    NewViewStack(),
		popup:    NewVerificationPopup(app, settings.GetPopupSize()),
		notifier: NewDialogNotifier(window),
	}

	ui.controller = account.NewController(ui.stack, ui.popup, ui.notifier, logger)
	ui.popup.SetOnConfirm(func() {
		reportActionError(ui.logger, ui.controller.ConfirmPopup())
	})

	if err := ui.setupUI(); err != nil {
		return nil, err
	}
	return ui, nil
}

// setupUI builds the three views and shows the landing view
func (ui *RootUI) setupUI() error {
	closeIcon := LoadCloseIcon()

	ui.landing = newLandingView(ui.controller, ui.logger)
	ui.login = newLoginView(ui.controller, closeIcon, ui.logger)
	ui.signUp = newSignUpView(ui.controller, closeIcon, ui.logger)

	views := map[model.ViewID]fyne.CanvasObject{
		model.ViewLanding: ui.landing.content,
		model.ViewLogin:   ui.login.content,
		model.ViewSignUp:  ui.signUp.content,
	}
	for _, id := range model.AllViews() {
		if err := ui.stack.Register(id, views[id]); err != nil {
			return fmt.Errorf("failed to register view %s: %w", id, err)
		}
	}

	if err := ui.stack.Show(model.ViewLanding); err != nil {
		return fmt.Errorf("failed to show landing view: %w", err)
	}

	ui.window.SetContent(ui.stack.Container())

	ui.logger.Debug("UI setup completed", zap.Stringer("active", ui.stack.Active()))
	return nil
}

// Controller returns the application controller
func (ui *RootUI) Controller() *account.Controller {
	return ui.controller
}

// ActiveView returns the id of the visible view
func (ui *RootUI) ActiveView() model.ViewID {
	return ui.stack.Active()
}

// PopupVisible reports whether the verification popup is shown
func (ui *RootUI) PopupVisible() bool {
	return ui.popup.Visible()
}
