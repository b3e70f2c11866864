// Package textutil provides small text helpers shared by the table-parsing
// pipeline.
package textutil

import "strconv"

// IsNumeric reports whether s parses as a floating-point number.
func IsNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// Truncate shortens a string to maxLen, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
