package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// DialogNotifier shows messages as modal dialogs over a window
type DialogNotifier struct {
	window fyne.Window
}

// NewDialogNotifier creates a notifier bound to window
func NewDialogNotifier(window fyne.Window) *DialogNotifier {
	return &DialogNotifier{window: window}
}

// Notify shows an error-styled dialog with a single dismiss button
func (n *DialogNotifier) Notify(title, message string) {
	content := container.NewHBox(
		widget.NewIcon(theme.ErrorIcon()),
		widget.NewLabel(message),
	)
	d := dialog.NewCustom(title, "OK", content, n.window)
	d.Show()
}
