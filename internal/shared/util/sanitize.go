package util

import (
	"errors"
	"strings"
)

// ErrInvalidFileName marks upload names that cannot be made safe.
var ErrInvalidFileName = errors.New("invalid file name")

// SanitizeFileName makes an uploaded resume name safe to log and store:
// path separators become underscores and traversal patterns are rejected
// outright rather than repaired.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrInvalidFileName
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", ErrInvalidFileName
	}
	return s, nil
}
