package ui

import (
	"strings"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// placeholder keeps an inert hint as the real content of an entry while the
// entry is empty and unfocused. Content equal to the literal counts as
// untouched, so typing the literal itself is indistinguishable from no input.
type placeholder struct {
	literal  string
	muted    bool
	override *container.ThemeOverride

	mutedTheme  fyne.Theme
	normalTheme fyne.Theme
}

func newPlaceholder(literal string, content fyne.CanvasObject) *placeholder {
	p := &placeholder{
		literal:     literal,
		muted:       true,
		mutedTheme:  newTextColorTheme(ColorMutedText),
		normalTheme: newTextColorTheme(ColorNormalText),
	}
	p.override = container.NewThemeOverride(content, p.mutedTheme)
	return p
}

// enter clears the literal. It reports whether the content changed.
func (p *placeholder) enter(entry *widget.Entry) bool {
	if entry.Text != p.literal {
		return false
	}
	entry.SetText("")
	p.setMuted(false)
	return true
}

// leave restores the literal into an empty entry. It reports whether the
// content changed.
func (p *placeholder) leave(entry *widget.Entry) bool {
	if entry.Text != "" {
		return false
	}
	entry.SetText(p.literal)
	p.setMuted(true)
	return true
}

func (p *placeholder) setMuted(muted bool) {
	p.muted = muted
	if muted {
		p.override.Theme = p.mutedTheme
	} else {
		p.override.Theme = p.normalTheme
	}
	p.override.Refresh()
}

// PlaceholderEntry is a single-line entry showing a muted hint until focused
type PlaceholderEntry struct {
	widget.Entry
	hint *placeholder
}

// NewPlaceholderEntry creates an entry whose initial content is literal
func NewPlaceholderEntry(literal string) *PlaceholderEntry {
	e := &PlaceholderEntry{}
	e.ExtendBaseWidget(e)
	e.SetText(literal)
	e.hint = newPlaceholder(literal, e)
	return e
}

// FocusGained clears the hint
func (e *PlaceholderEntry) FocusGained() {
	e.Entry.FocusGained()
	e.hint.enter(&e.Entry)
}

// FocusLost puts the hint back into an empty entry
func (e *PlaceholderEntry) FocusLost() {
	e.Entry.FocusLost()
	e.hint.leave(&e.Entry)
}

// Value returns the raw content, which is the hint literal if never edited
func (e *PlaceholderEntry) Value() string {
	return e.Text
}

// Placeholder returns the hint literal
func (e *PlaceholderEntry) Placeholder() string {
	return e.hint.literal
}

// Muted reports whether the text is drawn in the muted hint color
func (e *PlaceholderEntry) Muted() bool {
	return e.hint.muted
}

// Container returns the object to place in layouts
func (e *PlaceholderEntry) Container() fyne.CanvasObject {
	return e.hint.override
}

// MinSize keeps the entry about twenty characters wide
func (e *PlaceholderEntry) MinSize() fyne.Size {
	return e.Entry.MinSize().Max(fyne.NewSize(EntryMinWidth, 0))
}

// SecretEntry is a PlaceholderEntry for passwords. The hint is drawn in
// clear text; real input is masked.
type SecretEntry struct {
	widget.Entry
	hint *placeholder
}

// NewSecretEntry creates a password entry whose initial content is literal
func NewSecretEntry(literal string) *SecretEntry {
	e := &SecretEntry{}
	e.ExtendBaseWidget(e)
	e.SetText(literal)
	e.hint = newPlaceholder(literal, e)
	return e
}

// FocusGained clears the hint and starts masking
func (e *SecretEntry) FocusGained() {
	e.Entry.FocusGained()
	if e.hint.enter(&e.Entry) {
		e.setMasked(true)
	}
}

// FocusLost restores the hint unmasked when the entry is empty
func (e *SecretEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.hint.leave(&e.Entry) {
		e.setMasked(false)
	}
}

func (e *SecretEntry) setMasked(masked bool) {
	e.Password = masked
	e.Refresh()
}

// Value returns the raw secret
func (e *SecretEntry) Value() string {
	return e.Text
}

// Placeholder returns the hint literal
func (e *SecretEntry) Placeholder() string {
	return e.hint.literal
}

// Muted reports whether the text is drawn in the muted hint color
func (e *SecretEntry) Muted() bool {
	return e.hint.muted
}

// Masked reports whether characters are echoed as mask runes
func (e *SecretEntry) Masked() bool {
	return e.Password
}

// Displayed returns the text as drawn on screen
func (e *SecretEntry) Displayed() string {
	if !e.Password {
		return e.Text
	}
	return strings.Repeat(PasswordMaskChar, utf8.RuneCountInString(e.Text))
}

// Container returns the object to place in layouts
func (e *SecretEntry) Container() fyne.CanvasObject {
	return e.hint.override
}

// MinSize keeps the entry about twenty characters wide
func (e *SecretEntry) MinSize() fyne.Size {
	return e.Entry.MinSize().Max(fyne.NewSize(EntryMinWidth, 0))
}
