// File: scan.go
// Title: Escape-Aware Occurrence Scanning
// Description: Locates every unescaped occurrence of a literal needle and
//              provides the plain overlapping and non-overlapping counters.
// Author: msto63
// Version: v0.2.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.2.0: Initial implementation

package stringx

import "strings"

// FindOccurrences returns the ascending byte offsets at which needle occurs
// in haystack and is not immediately preceded by escape. Matches may
// overlap: after a candidate at p the search resumes at p+1. An empty
// escape disables escaping. An empty needle yields nil.
//
// Escaping is purely textual. Two escape tokens in front of a needle still
// escape it, and an occurrence at offset 0 is never escaped.
func FindOccurrences(haystack, needle, escape string) []int {
	if needle == "" {
		return nil
	}

	var offsets []int
	for cursor := 0; cursor <= len(haystack)-len(needle); {
		i := strings.Index(haystack[cursor:], needle)
		if i < 0 {
			break
		}
		p := cursor + i
		if !isEscaped(haystack, p, escape) {
			offsets = append(offsets, p)
		}
		cursor = p + 1
	}
	return offsets
}

// isEscaped reports whether the match at p is preceded by escape
func isEscaped(haystack string, p int, escape string) bool {
	if escape == "" || p == 0 || p < len(escape) {
		return false
	}
	return haystack[p-len(escape):p] == escape
}

// CountSubstring counts the non-overlapping occurrences of needle, moving
// past each match. It returns 0 for an empty needle.
func CountSubstring(haystack, needle string) int {
	if needle == "" {
		return 0
	}
	return strings.Count(haystack, needle)
}

// CountSubstringOverlap counts occurrences of needle including overlapping
// ones, so "aaaa" contains "aa" three times.
func CountSubstringOverlap(haystack, needle string) int {
	if needle == "" {
		return 0
	}

	count := 0
	for cursor := 0; ; {
		i := strings.Index(haystack[cursor:], needle)
		if i < 0 {
			return count
		}
		count++
		cursor += i + 1
		if cursor > len(haystack) {
			return count
		}
	}
}
