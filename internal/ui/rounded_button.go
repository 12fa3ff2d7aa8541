package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// ButtonStyle describes how a RoundedButton paints itself
type ButtonStyle struct {
	Fill         color.Color
	Text         color.Color
	CornerRadius float32
	TextSize     float32
	Bold         bool
}

// LightButtonStyle is white with black bold text, used on grey panels
func LightButtonStyle() ButtonStyle {
	return ButtonStyle{
		Fill:         ColorButtonFill,
		Text:         ColorButtonText,
		CornerRadius: ButtonCornerRadius,
		TextSize:     ButtonTextSize,
		Bold:         true,
	}
}

// DarkButtonStyle is black with white bold text
func DarkButtonStyle() ButtonStyle {
	return ButtonStyle{
		Fill:         ColorDarkFill,
		Text:         ColorLightText,
		CornerRadius: ButtonCornerRadius,
		TextSize:     ButtonTextSize,
		Bold:         true,
	}
}

// RoundedButton is a tappable surface with rounded corners. Its look comes
// entirely from Style.
type RoundedButton struct {
	widget.BaseWidget

	Text     string
	Style    ButtonStyle
	OnTapped func()
}

// NewRoundedButton creates a new rounded button
func NewRoundedButton(text string, style ButtonStyle, tapped func()) *RoundedButton {
	b := &RoundedButton{
		Text:     text,
		Style:    style,
		OnTapped: tapped,
	}
	b.ExtendBaseWidget(b)
	return b
}

// Tapped calls OnTapped
func (b *RoundedButton) Tapped(*fyne.PointEvent) {
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

// Cursor shows a pointer over the button
func (b *RoundedButton) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// CreateRenderer creates the widget renderer
func (b *RoundedButton) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(b.Style.Fill)
	bg.CornerRadius = b.Style.CornerRadius

	label := canvas.NewText(b.Text, b.Style.Text)
	label.Alignment = fyne.TextAlignCenter
	label.TextSize = b.Style.TextSize
	label.TextStyle = fyne.TextStyle{Bold: b.Style.Bold}

	return &roundedButtonRenderer{button: b, background: bg, label: label}
}

// roundedButtonRenderer renders the rounded button widget
type roundedButtonRenderer struct {
	button     *RoundedButton
	background *canvas.Rectangle
	label      *canvas.Text
}

// Layout centers the label over the background
func (r *roundedButtonRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))

	textSize := r.label.MinSize()
	r.label.Resize(fyne.NewSize(size.Width, textSize.Height))
	r.label.Move(fyne.NewPos(0, (size.Height-textSize.Height)/2))
}

// MinSize returns the minimum size
func (r *roundedButtonRenderer) MinSize() fyne.Size {
	textSize := r.label.MinSize()
	return fyne.NewSize(
		fyne.Max(ButtonMinWidth, textSize.Width+2*RowSpacing),
		fyne.Max(ButtonMinHeight, textSize.Height+RowSpacing),
	)
}

// Refresh copies the style onto the canvas objects
func (r *roundedButtonRenderer) Refresh() {
	style := r.button.Style
	r.background.FillColor = style.Fill
	r.background.CornerRadius = style.CornerRadius
	r.label.Text = r.button.Text
	r.label.Color = style.Text
	r.label.TextSize = style.TextSize
	r.label.TextStyle = fyne.TextStyle{Bold: style.Bold}

	r.background.Refresh()
	r.label.Refresh()
}

// Objects returns the canvas objects
func (r *roundedButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.label}
}

// Destroy cleans up the renderer
func (r *roundedButtonRenderer) Destroy() {}
