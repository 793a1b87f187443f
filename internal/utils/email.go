package utils

import (
	"strings"
)

// NormalizeEmail lowercases an email address for comparison and storage.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
