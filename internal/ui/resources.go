package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/todolist/internal/platform"
)

// LoadCloseIcon loads closeicon.png from the working directory or next to the
// executable, falling back to the theme's cancel icon.
func LoadCloseIcon() fyne.Resource {
	path, err := platform.FindResource(CloseIconFile)
	if err != nil {
		return theme.CancelIcon()
	}
	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		return theme.CancelIcon()
	}
	return res
}
