package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateRange checks that value lies in [lo, hi] and reports a config error
// naming the offending field otherwise.
func ValidateRange(field string, value, lo, hi int) error {
	if value < lo || value > hi {
		return New(ErrCodeInvalidConfig, "%s must be between %d and %d, got %d", field, lo, hi, value)
	}
	return nil
}

// ValidateIndex checks that i lies in [0, n). The code names what kind of index
// was out of range (shape id, slot, cell).
func ValidateIndex(code Code, what string, i, n int) error {
	if i < 0 || i >= n {
		return New(code, "%s %d out of range [0,%d)", what, i, n)
	}
	return nil
}

// ValidateShapeName validates a custom shape name from a config file.
//
// Rules:
//   - Name cannot be empty
//   - Maximum length of 32 characters
//   - No whitespace or control characters
func ValidateShapeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidShape, "shape name cannot be empty")
	}
	if len(name) > 32 {
		return New(ErrCodeInvalidShape, "shape name too long (max 32 characters)")
	}
	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidShape, "shape name %q contains whitespace or control characters", name)
		}
	}
	return nil
}

// ValidatePath validates an output or config file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, string(filepath.Separator)) || strings.HasSuffix(path, "/") {
		return New(ErrCodeInvalidPath, "path must name a file, not a directory")
	}

	return nil
}
