package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
)

func TestVerificationPopup_Visibility(t *testing.T) {
	app := test.NewApp()
	p := NewVerificationPopup(app, fyne.NewSize(300, 150))
	t.Cleanup(p.Window().Close)

	if p.Visible() {
		t.Error("Popup should start hidden")
	}
	if p.Window().Title() != PopupWindowTitle {
		t.Errorf("Expected window title %q, got %q", PopupWindowTitle, p.Window().Title())
	}

	p.Show()
	if !p.Visible() {
		t.Error("Popup should be visible after Show")
	}

	p.Hide()
	if p.Visible() {
		t.Error("Popup should be hidden after Hide")
	}
}

func TestVerificationPopup_ConfirmCallback(t *testing.T) {
	app := test.NewApp()
	p := NewVerificationPopup(app, fyne.NewSize(300, 150))
	t.Cleanup(p.Window().Close)

	called := 0
	p.SetOnConfirm(func() {
		called++
		p.Hide()
	})

	p.Show()
	test.Tap(p.confirmBtn)

	if called != 1 {
		t.Errorf("Expected confirm callback once, got %d", called)
	}
	if p.Visible() {
		t.Error("Popup should be hidden by the callback")
	}
}

func TestVerificationPopup_ConfirmWithoutCallback(t *testing.T) {
	app := test.NewApp()
	p := NewVerificationPopup(app, fyne.NewSize(300, 150))
	t.Cleanup(p.Window().Close)

	p.Show()
	test.Tap(p.confirmBtn)

	if p.Visible() {
		t.Error("Confirm without a callback should still hide the popup")
	}
}

func TestVerificationPopup_CloseRequestOnlyHides(t *testing.T) {
	app := test.NewApp()
	p := NewVerificationPopup(app, fyne.NewSize(300, 150))
	t.Cleanup(p.Window().Close)

	called := 0
	p.SetOnConfirm(func() { called++ })

	p.Show()
	p.onCloseRequested()

	if p.Visible() {
		t.Error("Close request should hide the popup")
	}
	if called != 0 {
		t.Errorf("Close request must not confirm, callback ran %d times", called)
	}
}

func TestVerificationPopup_ConfirmButtonStyle(t *testing.T) {
	app := test.NewApp()
	p := NewVerificationPopup(app, fyne.NewSize(300, 150))
	t.Cleanup(p.Window().Close)

	if p.confirmBtn.Text != PopupConfirmText {
		t.Errorf("Expected confirm text %q, got %q", PopupConfirmText, p.confirmBtn.Text)
	}
	if p.confirmBtn.Style != LightButtonStyle() {
		t.Errorf("Confirm button should use the light style, got %+v", p.confirmBtn.Style)
	}
	if p.confirmBtn.Style.Fill != ColorButtonFill {
		t.Errorf("Expected fill %v, got %v", ColorButtonFill, p.confirmBtn.Style.Fill)
	}
}
