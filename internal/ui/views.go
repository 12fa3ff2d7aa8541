package ui

import (
	"errors"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/todolist/internal/account"
	"github.com/ytget/todolist/internal/model"
)

// actions is what a view may ask of the controller
type actions interface {
	Handle(event model.Event) error
	SubmitLogin(email, password string) error
	SubmitSignUp(email, username, password string) error
}

// landingView shows the app title with log in and sign up buttons
type landingView struct {
	content   fyne.CanvasObject
	loginBtn  *RoundedButton
	signUpBtn *RoundedButton
}

func newLandingView(act actions, logger *zap.Logger) *landingView {
	v := &landingView{}

	title := newTitle(AppTitleText, AppTitleTextSize)

	v.loginBtn = NewRoundedButton(LoginButtonText, LightButtonStyle(), func() {
		reportActionError(logger, act.Handle(model.EventLoginClicked))
	})
	v.signUpBtn = NewRoundedButton(SignUpButtonText, LightButtonStyle(), func() {
		reportActionError(logger, act.Handle(model.EventSignUpClicked))
	})

	v.content = container.NewCenter(container.NewVBox(
		title,
		vgap(TitleSpacing),
		v.loginBtn,
		vgap(RowSpacing),
		v.signUpBtn,
	))
	return v
}

// loginView is the log in form
type loginView struct {
	content   fyne.CanvasObject
	closeBtn  *widget.Button
	email     *PlaceholderEntry
	password  *SecretEntry
	submitBtn *RoundedButton
}

func newLoginView(act actions, closeIcon fyne.Resource, logger *zap.Logger) *loginView {
	v := &loginView{
		email:    NewPlaceholderEntry(PlaceholderEmail),
		password: NewSecretEntry(PlaceholderPassword),
	}

	v.closeBtn = newCloseButton(closeIcon, func() {
		reportActionError(logger, act.Handle(model.EventCloseClicked))
	})
	v.submitBtn = NewRoundedButton(LoginButtonText, DarkButtonStyle(), func() {
		reportActionError(logger, act.SubmitLogin(v.email.Value(), v.password.Value()))
	})

	form := container.NewVBox(
		newTitle(LoginTitleText, FormTitleTextSize),
		widget.NewLabel(EmailLabelText),
		v.email.Container(),
		widget.NewLabel(PasswordLabelText),
		v.password.Container(),
		vgap(RowSpacing),
		container.NewCenter(v.submitBtn),
	)

	v.content = container.NewBorder(
		container.NewHBox(v.closeBtn), // top-left close
		nil,
		nil,
		nil,
		container.NewCenter(form),
	)
	return v
}

// signUpView is the sign up form
type signUpView struct {
	content   fyne.CanvasObject
	closeBtn  *widget.Button
	email     *PlaceholderEntry
	username  *PlaceholderEntry
	password  *SecretEntry
	submitBtn *RoundedButton
}

func newSignUpView(act actions, closeIcon fyne.Resource, logger *zap.Logger) *signUpView {
	v := &signUpView{
		email:    NewPlaceholderEntry(PlaceholderEmail),
		username: NewPlaceholderEntry(PlaceholderUsername),
		password: NewSecretEntry(PlaceholderPassword),
	}

	v.closeBtn = newCloseButton(closeIcon, func() {
		reportActionError(logger, act.Handle(model.EventCloseClicked))
	})
	v.submitBtn = NewRoundedButton(SignUpButtonText, DarkButtonStyle(), func() {
		reportActionError(logger, act.SubmitSignUp(v.email.Value(), v.username.Value(), v.password.Value()))
	})

	form := container.NewVBox(
		newTitle(SignUpTitleText, FormTitleTextSize),
		widget.NewLabel(EmailLabelText),
		v.email.Container(),
		widget.NewLabel(UsernameLabelText),
		v.username.Container(),
		widget.NewLabel(PasswordLabelText),
		v.password.Container(),
		vgap(RowSpacing),
		container.NewCenter(v.submitBtn),
	)

	v.content = container.NewBorder(
		container.NewHBox(v.closeBtn),
		nil,
		nil,
		nil,
		container.NewCenter(form),
	)
	return v
}

func newTitle(text string, size float32) *canvas.Text {
	title := canvas.NewText(text, ColorNormalText)
	title.TextSize = size
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter
	return title
}

func newCloseButton(icon fyne.Resource, tapped func()) *widget.Button {
	btn := widget.NewButtonWithIcon("", icon, tapped)
	btn.Importance = widget.LowImportance
	return btn
}

// vgap is a fixed vertical gap for VBox layouts
func vgap(height float32) fyne.CanvasObject {
	gap := canvas.NewRectangle(color.Transparent)
	gap.SetMinSize(fyne.NewSize(0, height))
	return gap
}

// reportActionError logs controller errors. A rejected email has already
// been shown to the user and is not logged again.
func reportActionError(logger *zap.Logger, err error) {
	if err == nil || errors.Is(err, account.ErrInvalidEmail) {
		return
	}
	logger.Error("Action failed", zap.Error(err))
}
