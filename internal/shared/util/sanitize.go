package util

import (
	"errors"
	"strings"
)

// SanitizeFileName reduces a client-supplied file name to a storage-safe one:
// path separators and anything outside [a-zA-Z0-9.-] become underscores.
// Traversal patterns are rejected outright.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	if s == "" {
		return "", errors.New("invalid file name")
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String(), nil
}
