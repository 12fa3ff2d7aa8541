package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// VerificationPopup is a separate top-level window announcing a successful
// sign up. It starts hidden and is reused across sign ups.
type VerificationPopup struct {
	window     fyne.Window
	confirmBtn *RoundedButton
	visible    bool
	onConfirm  func()
}

// NewVerificationPopup creates the popup window without showing it
func NewVerificationPopup(app fyne.App, size fyne.Size) *VerificationPopup {
	p := &VerificationPopup{
		window: app.NewWindow(PopupWindowTitle),
	}

	title := canvas.NewText(PopupTitleText, ColorNormalText)
	title.TextSize = FormTitleTextSize
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	message := widget.NewLabel(PopupMessageText)
	message.Alignment = fyne.TextAlignCenter

	p.confirmBtn = NewRoundedButton(PopupConfirmText, LightButtonStyle(), p.confirm)

	p.window.SetContent(container.NewCenter(container.NewVBox(
		title,
		message,
		container.NewCenter(p.confirmBtn),
	)))
	p.window.Resize(size)
	p.window.CenterOnScreen()
	p.window.SetFixedSize(true)

	p.window.SetCloseIntercept(p.onCloseRequested)

	return p
}

// SetOnConfirm sets the callback for the popup's log in button
func (p *VerificationPopup) SetOnConfirm(fn func()) {
	p.onConfirm = fn
}

// Show makes the popup window visible
func (p *VerificationPopup) Show() {
	p.window.Show()
	p.visible = true
}

// Hide hides the popup window
func (p *VerificationPopup) Hide() {
	p.window.Hide()
	p.visible = false
}

// Visible reports whether the popup is shown
func (p *VerificationPopup) Visible() bool {
	return p.visible
}

// Window returns the popup's window
func (p *VerificationPopup) Window() fyne.Window {
	return p.window
}

// onCloseRequested handles the window's close affordance. It only hides the
// popup and never navigates.
func (p *VerificationPopup) onCloseRequested() {
	p.Hide()
}

func (p *VerificationPopup) confirm() {
	if p.onConfirm != nil {
		p.onConfirm()
		return
	}
	p.Hide()
}
