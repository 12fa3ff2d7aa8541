package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It builds the landing, log in and sign up views, the verification popup and
// the placeholder-aware entries, and forwards user actions to the account
// controller.
