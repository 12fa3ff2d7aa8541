package model

import "strings"

// IsValidEmail reports whether s is non-empty and contains "@".
// No further syntax checks are made.
func IsValidEmail(s string) bool {
	return s != "" && strings.Contains(s, "@")
}
