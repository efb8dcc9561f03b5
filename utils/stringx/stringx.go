// File: stringx.go
// Title: Core String Utility Functions
// Description: General string helpers used next to the segmentation engine:
//              blank checks, padding, truncation, clamped substrings,
//              chunking and simple content predicates.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-03-02 v0.2.0: Added substring, chunk, insert/remove, counting and
//                      normalization helpers

package stringx

import (
	"fmt"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/commons/core/errors"
)

// Normalization flags for Normalize; combine with |
const (
	NormalizeNewlines          = 1 << 1
	NormalizeSpaceToUnderscore = 1 << 2
	NormalizePath              = 1 << 3
)

var (
	internCache = make(map[string]string)
	internMu    sync.RWMutex
)

// Intern returns a canonical copy of s. Useful for delimiters and pattern
// strings that are read repeatedly from configuration.
func Intern(s string) string {
	if s == "" {
		return ""
	}

	internMu.RLock()
	interned, ok := internCache[s]
	internMu.RUnlock()
	if ok {
		return interned
	}

	internMu.Lock()
	defer internMu.Unlock()
	if interned, ok := internCache[s]; ok {
		return interned
	}
	if len(internCache) >= 1000 {
		for k := range internCache {
			delete(internCache, k)
			if len(internCache) <= 500 {
				break
			}
		}
	}
	interned = strings.Clone(s)
	internCache[s] = interned
	return interned
}

// IsEmpty returns true if the string has length 0
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace
func IsBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

// IsNotEmpty is the inverse of IsEmpty
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsNotBlank is the inverse of IsBlank
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate shortens s to maxLen runes, ending with ellipsis when cut. If the
// ellipsis does not fit, the plain prefix is returned.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	runes := []rune(s)
	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-ellipsisLen]) + ellipsis
}

// Reverse reverses a string rune by rune
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ContainsIgnoreCase reports whether substr is within s, ignoring case
func ContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// PadLeft pads s on the left with pad up to width runes
func PadLeft(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(string(pad), n) + s
}

// PadRight pads s on the right with pad up to width runes
func PadRight(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), n)
}

// Center centers s within width runes; an odd remainder goes to the right
func Center(s string, width int, pad rune) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	left := n / 2
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), n-left)
}

// SplitLines splits s into lines, accepting \n, \r\n and \r endings
func SplitLines(s string) []string {
	return strings.Split(Normalize(s, NormalizeNewlines), "\n")
}

// FirstNonEmpty returns the first non-empty argument
func FirstNonEmpty(values ...string) string {
	for _, s := range values {
		if IsNotEmpty(s) {
			return s
		}
	}
	return ""
}

// FirstNonBlank returns the first argument that is not blank
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// SafeSubstring returns the runes of s in [begin, end), clamping both bounds
// to the string instead of panicking. An inverted range yields "".
func SafeSubstring(s string, begin, end int) string {
	runes := []rune(s)
	begin = clamp(begin, 0, len(runes))
	end = clamp(end, 0, len(runes))
	if begin >= end {
		return ""
	}
	return string(runes[begin:end])
}

// Chunk splits s into pieces of size runes; the last piece may be shorter
func Chunk(s string, size int) ([]string, error) {
	if size <= 0 {
		return nil, errors.StringxInvalidInput("chunk", size, "chunk size greater than 0")
	}

	runes := []rune(s)
	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks, nil
}

// InsertAt inserts insert before the rune at position, clamped to s
func InsertAt(s string, position int, insert string) string {
	runes := []rune(s)
	position = clamp(position, 0, len(runes))
	return string(runes[:position]) + insert + string(runes[position:])
}

// RemoveAt removes length runes starting at position, clamped to s
func RemoveAt(s string, position, length int) string {
	runes := []rune(s)
	position = clamp(position, 0, len(runes))
	end := clamp(position+length, position, len(runes))
	return string(runes[:position]) + string(runes[end:])
}

// CountLeading counts consecutive occurrences of r at the start of s
func CountLeading(s string, r rune) int {
	count := 0
	for _, c := range s {
		if c != r {
			break
		}
		count++
	}
	return count
}

// CountTrailing counts consecutive occurrences of r at the end of s
func CountTrailing(s string, r rune) int {
	count := 0
	for len(s) > 0 {
		c, size := utf8.DecodeLastRuneInString(s)
		if c != r {
			break
		}
		count++
		s = s[:len(s)-size]
	}
	return count
}

// IsNumeric reports whether every rune of s is a decimal digit. The empty
// string is numeric.
func IsNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsLowercase reports whether s is unchanged by lower-casing
func IsLowercase(s string) bool {
	return s == strings.ToLower(s)
}

// IsUppercase reports whether s is unchanged by upper-casing
func IsUppercase(s string) bool {
	return s == strings.ToUpper(s)
}

// IsPalindrome reports whether the ASCII letters of s read the same in both
// directions, ignoring case and every other character
func IsPalindrome(s string) bool {
	letters := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c >= 'a' && c <= 'z' {
			letters = append(letters, c)
		}
	}
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		if letters[i] != letters[j] {
			return false
		}
	}
	return true
}

// Normalize applies the transformations selected by flags, newlines first
func Normalize(s string, flags int) string {
	if flags&NormalizeNewlines != 0 {
		s = strings.ReplaceAll(s, "\r\n", "\n")
		s = strings.ReplaceAll(s, "\r", "\n")
	}
	if flags&NormalizeSpaceToUnderscore != 0 {
		s = strings.ReplaceAll(s, " ", "_")
	}
	if flags&NormalizePath != 0 {
		s = strings.ReplaceAll(s, `\`, "/")
	}
	return s
}

// ValidateRequired validates that a string is not empty
func ValidateRequired(s string) error {
	if IsEmpty(s) {
		return errors.StringxValidationError("validate_required", s, "non-empty string")
	}
	return nil
}

// ValidateNotBlank validates that a string is not blank
func ValidateNotBlank(s string) error {
	if IsBlank(s) {
		return errors.StringxValidationError("validate_not_blank", s, "non-blank string")
	}
	return nil
}

// ValidateLength validates the rune length of s; a bound of 0 is ignored
func ValidateLength(s string, minLen, maxLen int) error {
	length := utf8.RuneCountInString(s)
	if minLen > 0 && length < minLen {
		return errors.StringxValidationError("validate_length",
			fmt.Sprintf("%s (length: %d)", s, length),
			fmt.Sprintf("at least %d characters", minLen))
	}
	if maxLen > 0 && length > maxLen {
		return errors.StringxValidationError("validate_length",
			fmt.Sprintf("%s (length: %d)", s, length),
			fmt.Sprintf("at most %d characters", maxLen))
	}
	return nil
}

// FromDefault returns s, or defaultValue when s is empty
func FromDefault(s, defaultValue string) string {
	if IsEmpty(s) {
		return defaultValue
	}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
