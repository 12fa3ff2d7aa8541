package model

// Package model defines domain data structures used across the app: view
// identifiers, navigation events, and the in-memory session draft. Values are
// plain data with explicit transitions, so the UI layer can bind to them.
