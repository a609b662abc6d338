package errors

import (
	"strings"
	"unicode"
)

// MaxNodeIDLength bounds node identifiers accepted from external files.
const MaxNodeIDLength = 1024

// ValidateNodeID validates a node identifier read from external data.
//
// The rules are deliberately loose because identifiers are opaque to the
// engine (symbol names, file paths, ticket keys):
//   - No empty identifiers
//   - No control characters or null bytes
//   - Maximum length of MaxNodeIDLength bytes
func ValidateNodeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "node id cannot be empty")
	}
	if len(id) > MaxNodeIDLength {
		return New(ErrCodeInvalidInput, "node id too long (max %d characters)", MaxNodeIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "node id %q contains control characters", id)
		}
	}
	return nil
}

// ValidateAttributeKey validates an attribute key such as a metric name.
// Keys must be non-empty and free of whitespace.
func ValidateAttributeKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "attribute key cannot be empty")
	}
	if strings.IndexFunc(key, unicode.IsSpace) >= 0 {
		return New(ErrCodeInvalidInput, "attribute key %q contains whitespace", key)
	}
	return nil
}
