package errors

import (
	"strings"
	"unicode"
)

// MaxLabels is the number of label slots on the scale, one per major position.
const MaxLabels = 11

// maxLabelLength bounds a single label so it cannot swamp the scale.
const maxLabelLength = 16

// ValidateDimensions checks the size precondition of the layout engine.
// Both width and height must be strictly positive.
func ValidateDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidDimensions, "dimensions must be positive, got %dx%d", width, height)
	}
	return nil
}

// ValidateLabels validates a label set for drawing.
//
// Rules:
//   - At most MaxLabels entries (fewer is fine, missing ones are not drawn)
//   - No control characters
//   - Maximum length of 16 characters per label
func ValidateLabels(labels []string) error {
	if len(labels) > MaxLabels {
		return New(ErrCodeInvalidLabels, "too many labels: %d (max %d)", len(labels), MaxLabels)
	}
	for i, l := range labels {
		if len([]rune(l)) > maxLabelLength {
			return New(ErrCodeInvalidLabels, "label %d too long (max %d characters)", i, maxLabelLength)
		}
		for _, r := range l {
			if unicode.IsControl(r) {
				return New(ErrCodeInvalidLabels, "label %d contains invalid control characters", i)
			}
		}
	}
	return nil
}

// ValidateOutputPath validates a file path the CLI is about to write.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "output path too long (max %d characters)", maxPathLength)
	}

	if strings.ContainsFunc(path, unicode.IsControl) {
		return New(ErrCodeInvalidInput, "output path contains invalid characters")
	}
	return nil
}
