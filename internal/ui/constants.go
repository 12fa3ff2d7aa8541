package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Placeholder literals shown in untouched fields
const (
	PlaceholderEmail    = "EMAIL"
	PlaceholderUsername = "USERNAME"
	PlaceholderPassword = "PASSWORD"
)

// Titles and labels
const (
	AppTitleText       = "ToDoList"
	LoginTitleText     = "Log in"
	SignUpTitleText    = "Sign up"
	LoginButtonText    = "Log in"
	SignUpButtonText   = "Sign up"
	EmailLabelText     = "YOUR EMAIL"
	UsernameLabelText  = "YOUR USERNAME"
	PasswordLabelText  = "YOUR PASSWORD"
	PopupWindowTitle   = "Verified!"
	PopupTitleText     = "Verified!"
	PopupMessageText   = "Email verification successful"
	PopupConfirmText   = "Log in"
)

// Text sizes
const (
	AppTitleTextSize  float32 = 24
	FormTitleTextSize float32 = 20
	ButtonTextSize    float32 = 14
)

// Layout sizing
const (
	ButtonCornerRadius float32 = 7.5 // half of the 15px arc
	ButtonMinWidth     float32 = 120
	ButtonMinHeight    float32 = 32
	EntryMinWidth      float32 = 240
	TitleSpacing       float32 = 60
	RowSpacing         float32 = 10
)

// Colors
var (
	ColorPanel      = color.Gray{Y: 128}
	ColorMutedText  = color.Gray{Y: 192}
	ColorNormalText = color.Black
	ColorButtonFill = color.White
	ColorButtonText = color.Black
	ColorDarkFill   = color.Black
	ColorLightText  = color.White
)

// PasswordMaskChar is the rune Fyne draws for concealed entry text
const PasswordMaskChar = "•"

// CloseIconFile is loaded from disk when present
const CloseIconFile = "closeicon.png"
