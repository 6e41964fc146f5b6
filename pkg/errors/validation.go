package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateName validates a user-supplied name (stored diagram names,
// registered shape names, custom algorithm names) for safety and correctness.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path traversal sequences (.., //, etc.)
//   - No null bytes
//   - Maximum length of 256 characters
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidName, "name too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "name contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(name, pattern) {
			return New(ErrCodeInvalidName, "name contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// shapeNameRegex matches valid shape registry keys.
var shapeNameRegex = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// ValidateShapeName validates a shape name used as a registry key.
// Built-in names (rectangle, circle, diamond, ellipse) pass by construction.
func ValidateShapeName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	if !shapeNameRegex.MatchString(name) {
		return New(ErrCodeInvalidShape, "invalid shape name: %q", name)
	}

	return nil
}

// algorithmNameRegex matches valid layout algorithm names.
var algorithmNameRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateAlgorithmName validates a layout algorithm name used as a
// registry key. Algorithm names are lowercase by convention (tree, grid,
// tree-list).
func ValidateAlgorithmName(name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}

	if !algorithmNameRegex.MatchString(name) {
		return New(ErrCodeInvalidAlgorithm, "invalid algorithm name: %q", name)
	}

	return nil
}

// ValidateOutputPath validates a file path used for artifact output.
// It prevents path traversal outside the working tree and ensures a
// reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
