package utils

import (
	"strings"

	"github.com/google/uuid"
)

// maxSubjectLength bounds the item part of a build ID
const maxSubjectLength = 24

// GenerateBuildID creates a human-readable ID for one computation.
// Format: {operation}-{subject}-{8charHexUUID}
//
// Example:
//   - Input: operation="tree", subject="item_iron_plate"
//   - Output: "tree-item_iron_plate-a3f8e2b1"
//
// Whitespace in the subject becomes "_" and long subjects are truncated.
func GenerateBuildID(operation, subject string) string {
	return operation + "-" + sanitizeSubject(subject) + "-" + generateShortUUID()
}

// sanitizeSubject keeps IDs on one token so they survive log grepping
func sanitizeSubject(subject string) string {
	cleaned := strings.Join(strings.Fields(subject), "_")
	if cleaned == "" {
		return "unknown"
	}
	if len(cleaned) > maxSubjectLength {
		return cleaned[:maxSubjectLength]
	}
	return cleaned
}

// generateShortUUID creates an 8-character hex string from a UUID.
// This provides sufficient uniqueness while keeping IDs compact.
func generateShortUUID() string {
	id := uuid.New()
	// Remove hyphens and take first 8 characters
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
