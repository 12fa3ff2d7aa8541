package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
	KeyTheme        = "theme"
)

// Settings resolves configuration values. Fyne preferences win over the file
// config; nothing here writes either of them back.
type Settings struct {
	app fyne.App
	cfg *Config
}

// NewSettings creates a new settings reader. A nil cfg means DefaultConfig.
func NewSettings(app fyne.App, cfg *Config) *Settings {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Settings{app: app, cfg: cfg}
}

// GetWindowTitle returns the main window title
func (s *Settings) GetWindowTitle() string {
	return s.cfg.Window.Title
}

// GetWindowSize returns the initial main window size
func (s *Settings) GetWindowSize() fyne.Size {
	prefs := s.app.Preferences()
	w := prefs.FloatWithFallback(KeyWindowWidth, float64(s.cfg.Window.Width))
	h := prefs.FloatWithFallback(KeyWindowHeight, float64(s.cfg.Window.Height))
	if w <= 0 || h <= 0 {
		return fyne.NewSize(s.cfg.Window.Width, s.cfg.Window.Height)
	}
	return fyne.NewSize(float32(w), float32(h))
}

// GetPopupSize returns the verification popup size
func (s *Settings) GetPopupSize() fyne.Size {
	return fyne.NewSize(s.cfg.Popup.Width, s.cfg.Popup.Height)
}

// GetThemeName returns the configured theme name
func (s *Settings) GetThemeName() string {
	return s.app.Preferences().StringWithFallback(KeyTheme, s.cfg.Theme)
}

// GetLogLevel returns the configured log level, empty for silent
func (s *Settings) GetLogLevel() string {
	return s.cfg.LogLevel
}
