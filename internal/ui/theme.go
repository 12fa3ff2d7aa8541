package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/todolist/internal/config"
)

// ClassicTheme renders grey panels with black, bold, white-lettered buttons
type ClassicTheme struct{}

// NewClassicTheme creates a new classic theme
func NewClassicTheme() fyne.Theme {
	return &ClassicTheme{}
}

// Color returns theme colors
func (t *ClassicTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return ColorPanel
	case theme.ColorNameButton:
		return ColorDarkFill
	case theme.ColorNameForeground:
		return ColorNormalText
	case theme.ColorNamePlaceHolder:
		return ColorMutedText
	case theme.ColorNameInputBackground:
		return color.White
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *ClassicTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ClassicTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *ClassicTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return ButtonTextSize
	case theme.SizeNameInputRadius:
		return ButtonCornerRadius
	}

	return theme.DefaultTheme().Size(name)
}

// ThemeByName returns the theme registered under name
func ThemeByName(name string) (fyne.Theme, error) {
	switch name {
	case config.ThemeClassic:
		return NewClassicTheme(), nil
	case config.ThemeDefault, "":
		return theme.DefaultTheme(), nil
	default:
		return nil, fmt.Errorf("unknown theme %q", name)
	}
}

// ApplyTheme installs the named theme. On error the app keeps its current theme.
func ApplyTheme(app fyne.App, name string) error {
	th, err := ThemeByName(name)
	if err != nil {
		return err
	}
	app.Settings().SetTheme(th)
	return nil
}

// textColorTheme overrides only the foreground color of a base theme
type textColorTheme struct {
	fyne.Theme
	foreground color.Color
}

func (t *textColorTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNameForeground {
		return t.foreground
	}
	return t.Theme.Color(name, variant)
}

func newTextColorTheme(fg color.Color) fyne.Theme {
	base := theme.DefaultTheme()
	if app := fyne.CurrentApp(); app != nil {
		base = app.Settings().Theme()
	}
	return &textColorTheme{Theme: base, foreground: fg}
}
