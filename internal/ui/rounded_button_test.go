package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestRoundedButton_Tapped(t *testing.T) {
	test.NewApp()
	taps := 0
	b := NewRoundedButton("Log in", LightButtonStyle(), func() { taps++ })

	test.Tap(b)
	test.Tap(b)

	if taps != 2 {
		t.Errorf("Expected 2 taps, got %d", taps)
	}
}

func TestRoundedButton_NilCallback(t *testing.T) {
	test.NewApp()
	b := NewRoundedButton("Sign up", DarkButtonStyle(), nil)

	// must not panic
	test.Tap(b)
}

func TestRoundedButton_Renderer(t *testing.T) {
	test.NewApp()
	b := NewRoundedButton("Log in", LightButtonStyle(), nil)

	r := b.CreateRenderer().(*roundedButtonRenderer)
	size := r.MinSize()
	if size.Width < ButtonMinWidth || size.Height < ButtonMinHeight {
		t.Errorf("MinSize %v below button minimum", size)
	}
	if r.background.CornerRadius != ButtonCornerRadius {
		t.Errorf("Expected corner radius %v, got %v", ButtonCornerRadius, r.background.CornerRadius)
	}
	if len(r.Objects()) != 2 {
		t.Errorf("Expected background and label, got %d objects", len(r.Objects()))
	}

	b.Style = DarkButtonStyle()
	b.Text = "Sign up"
	r.Refresh()

	if r.background.FillColor != ColorDarkFill {
		t.Error("Refresh should apply the new fill")
	}
	if r.label.Text != "Sign up" || r.label.Color != ColorLightText {
		t.Errorf("Refresh should apply text and color, got %q %v", r.label.Text, r.label.Color)
	}
}
