package errors

import (
	"strings"
	"unicode"
)

// ValidatePage rejects negative page numbers coming from flags or query
// strings. Zero is accepted and means "no page".
func ValidatePage(page int) error {
	if page < 0 {
		return New(ErrCodeInvalidInput, "page must not be negative, got %d", page)
	}
	return nil
}

// ValidateIdentifier checks a user-supplied id, slug or search title
// before it reaches the catalog client. The client itself interpolates
// whatever it is given; this guard only exists at the CLI and server edge.
//
//   - No empty or whitespace-only values
//   - No control characters
func ValidateIdentifier(kind, value string) error {
	if strings.TrimSpace(value) == "" {
		return New(ErrCodeInvalidInput, "%s cannot be empty", kind)
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains invalid control characters", kind)
		}
	}
	return nil
}
