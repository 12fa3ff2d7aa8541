package platform

// Package platform contains OS integration helpers: locating the per-user
// configuration directory and resources shipped next to the executable.
