package account

// Package account implements the application controller: a declarative table
// of navigation transitions plus the log in and sign up submit flows. It only
// talks to the UI through the Navigator, Popup and Notifier interfaces, so the
// whole state machine runs without a rendering surface.
