package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ytget/todolist/internal/platform"
)

// Theme names understood by the UI
const (
	ThemeClassic = "classic"
	ThemeDefault = "default"
)

// Config holds the file-backed application configuration
type Config struct {
	Window   WindowConfig `yaml:"window"`
	Popup    PopupConfig  `yaml:"popup"`
	Theme    string       `yaml:"theme"`     // classic|default; others fall back to the Fyne default
	LogLevel string       `yaml:"log_level"` // empty means silent
}

// WindowConfig configures the main window
type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// PopupConfig configures the verification popup window
type PopupConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// DefaultConfig returns a configuration matching the stock window layout
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "ToDoList App",
			Width:  500,
			Height: 400,
		},
		Popup: PopupConfig{
			Width:  300,
			Height: 150,
		},
		Theme: ThemeClassic,
	}
}

// LoadConfig reads path on top of DefaultConfig. An empty path means the
// default location, where a missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		defaultPath, err := platform.GetDefaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks sizes. The theme name is checked when the theme is
// applied, where an unknown name falls back to the default look.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height)
	}
	if c.Popup.Width <= 0 || c.Popup.Height <= 0 {
		return fmt.Errorf("popup size must be positive, got %vx%v", c.Popup.Width, c.Popup.Height)
	}
	return nil
}
