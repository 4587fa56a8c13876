package label

import "strings"

// NormalizeColor validates a hex color and returns its canonical form:
// lowercase, six hex digits, no leading '#'.
//
// Validation happens before any remote call so a malformed color never
// reaches the store.
func NormalizeColor(color string) (string, error) {
	trimmed := strings.TrimPrefix(color, "#")

	if len(trimmed) != 6 {
		return "", &InvalidColorError{
			Value:  color,
			Reason: "must be 6 hex digits (e.g. ff0000)",
		}
	}

	for _, c := range trimmed {
		if !isHexDigit(c) {
			return "", &InvalidColorError{
				Value:  color,
				Reason: "contains non-hexadecimal characters",
			}
		}
	}

	return strings.ToLower(trimmed), nil
}

func isHexDigit(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
